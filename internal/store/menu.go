// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"protectionpro/internal/models"
)

// MenuStore reads navigation menus.
type MenuStore struct {
	db *sql.DB
}

// NewMenuStore creates a new MenuStore with the given database connection.
func NewMenuStore(db *sql.DB) *MenuStore {
	return &MenuStore{db: db}
}

// Items returns the menu at a location for a locale, in display order.
func (s *MenuStore) Items(ctx context.Context, location models.MenuLocation, locale string) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, location, locale, label, url, position
		FROM menu_items
		WHERE location = $1 AND locale = $2
		ORDER BY position ASC, label ASC`, location, locale)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Location, &m.Locale, &m.Label, &m.URL, &m.Position); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
