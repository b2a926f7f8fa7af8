// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"protectionpro/internal/options"
)

// OptionsStore persists the site options record, one row per key.
type OptionsStore struct {
	db *sql.DB
}

// NewOptionsStore returns a new OptionsStore backed by the given database.
func NewOptionsStore(db *sql.DB) *OptionsStore {
	return &OptionsStore{db: db}
}

// Load returns the whole record. Keys never saved are simply absent, which
// reads as "" through SiteOptions.Get.
func (s *OptionsStore) Load(ctx context.Context) (options.SiteOptions, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM site_options ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	defer rows.Close()

	opts := make(options.SiteOptions)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		opts[k] = v
	}
	return opts, rows.Err()
}

// Replace overwrites the whole record in one transaction. Every schema key
// is written; keys missing from opts are stored as "" and keys outside the
// schema are discarded. Previous values are never merged in.
func (s *OptionsStore) Replace(ctx context.Context, opts options.SiteOptions) error {
	complete := opts.Complete()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace options begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM site_options`); err != nil {
		return fmt.Errorf("replace options clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO site_options (key, value, updated_at)
		VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("replace options prepare: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, k := range options.Keys() {
		if _, err := stmt.ExecContext(ctx, k, complete[k], now); err != nil {
			return fmt.Errorf("replace option %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace options commit: %w", err)
	}
	return nil
}

// LastSaved returns when the record was last written, or the zero time if it
// never was.
func (s *OptionsStore) LastSaved(ctx context.Context) (time.Time, error) {
	var t sql.NullTime
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(updated_at) FROM site_options`).Scan(&t); err != nil {
		return time.Time{}, fmt.Errorf("options last saved: %w", err)
	}
	return t.Time, nil
}
