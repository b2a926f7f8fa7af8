// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"protectionpro/internal/models"
)

// contentColumns is the column list shared by every content query.
const contentColumns = `id, type, locale, title, slug, body, body_format, excerpt,
	fields, menu_order, status, published_at, created_at, updated_at`

// ContentStore handles all content-related database operations. Every
// post type lives in the same table, one row per locale.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanContent(row scanner, c *models.Content) error {
	return row.Scan(
		&c.ID, &c.Type, &c.Locale, &c.Title, &c.Slug, &c.Body, &c.BodyFormat, &c.Excerpt,
		&c.Fields, &c.MenuOrder, &c.Status, &c.PublishedAt, &c.CreatedAt, &c.UpdatedAt,
	)
}

// ListPublished returns published items of one type in one locale, ordered
// by menu order then newest first. A limit of 0 means no limit.
func (s *ContentStore) ListPublished(ctx context.Context, postType models.PostType, locale string, limit int) ([]models.Content, error) {
	query := `SELECT ` + contentColumns + `
		FROM content
		WHERE type = $1 AND locale = $2 AND status = 'published'
		ORDER BY menu_order ASC, published_at DESC`
	args := []any{postType, locale}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list published content: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		var c models.Content
		if err := scanContent(rows, &c); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindPublished retrieves a published item by type, locale and slug.
// Returns nil if not found.
func (s *ContentStore) FindPublished(ctx context.Context, postType models.PostType, locale, slug string) (*models.Content, error) {
	c := &models.Content{}
	err := scanContent(s.db.QueryRowContext(ctx, `SELECT `+contentColumns+`
		FROM content
		WHERE type = $1 AND locale = $2 AND slug = $3 AND status = 'published'`,
		postType, locale, slug,
	), c)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find published content: %w", err)
	}
	return c, nil
}

// TranslationLocales returns the locales in which a published item with the
// given type and slug exists. Used by the language switcher.
func (s *ContentStore) TranslationLocales(ctx context.Context, postType models.PostType, slug string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT locale FROM content
		WHERE type = $1 AND slug = $2 AND status = 'published'
		ORDER BY locale`, postType, slug)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	var locales []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		locales = append(locales, l)
	}
	return locales, rows.Err()
}

// CountPublished returns the number of published items per post type,
// across all locales.
func (s *ContentStore) CountPublished(ctx context.Context) (map[models.PostType]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT type, COUNT(*) FROM content
		WHERE status = 'published'
		GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("count published content: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.PostType]int)
	for rows.Next() {
		var t models.PostType
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("scan content count: %w", err)
		}
		counts[t] = n
	}
	return counts, rows.Err()
}

// Upsert inserts an item, or updates the existing row with the same type,
// locale and slug. Returns the stored item.
func (s *ContentStore) Upsert(ctx context.Context, c *models.Content) (*models.Content, error) {
	if c.Status == models.ContentStatusPublished && c.PublishedAt == nil {
		now := time.Now()
		c.PublishedAt = &now
	}
	if c.BodyFormat == "" {
		c.BodyFormat = models.BodyFormatMarkdown
	}
	if c.Status == "" {
		c.Status = models.ContentStatusDraft
	}

	result := &models.Content{}
	err := scanContent(s.db.QueryRowContext(ctx, `
		INSERT INTO content (type, locale, title, slug, body, body_format, excerpt,
		                     fields, menu_order, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (type, locale, slug) DO UPDATE SET
			title = EXCLUDED.title, body = EXCLUDED.body, body_format = EXCLUDED.body_format,
			excerpt = EXCLUDED.excerpt, fields = EXCLUDED.fields, menu_order = EXCLUDED.menu_order,
			status = EXCLUDED.status, published_at = EXCLUDED.published_at, updated_at = NOW()
		RETURNING `+contentColumns,
		c.Type, c.Locale, c.Title, c.Slug, c.Body, c.BodyFormat, c.Excerpt,
		c.Fields, c.MenuOrder, c.Status, c.PublishedAt,
	), result)
	if err != nil {
		return nil, fmt.Errorf("upsert content: %w", err)
	}
	return result, nil
}
