// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PostType distinguishes the kinds of content sharing the content table.
type PostType string

const (
	PostTypePage        PostType = "page"
	PostTypePost        PostType = "post"
	PostTypeCaseStudies PostType = "case_studies"
	PostTypeFAQs        PostType = "faqs"
	PostTypeVideos      PostType = "videos"
	PostTypeAdvantage   PostType = "advantage"
)

// archiveSegments maps archive URL segments to the post type they list.
// Pages have no archive; they are reached by slug.
var archiveSegments = map[string]PostType{
	"news":         PostTypePost,
	"case-studies": PostTypeCaseStudies,
	"faqs":         PostTypeFAQs,
	"videos":       PostTypeVideos,
	"advantages":   PostTypeAdvantage,
}

// PostTypeForArchive returns the post type listed under the given URL segment.
func PostTypeForArchive(segment string) (PostType, bool) {
	t, ok := archiveSegments[segment]
	return t, ok
}

// ArchiveSegment returns the URL segment for the type's archive, or "" for pages.
func (t PostType) ArchiveSegment() string {
	for seg, pt := range archiveSegments {
		if pt == t {
			return seg
		}
	}
	return ""
}

// Valid reports whether t is a known post type.
func (t PostType) Valid() bool {
	switch t {
	case PostTypePage, PostTypePost, PostTypeCaseStudies, PostTypeFAQs, PostTypeVideos, PostTypeAdvantage:
		return true
	}
	return false
}

// ContentStatus represents the publishing state of a content item.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// BodyFormat indicates how the body is stored.
type BodyFormat string

const (
	BodyFormatMarkdown BodyFormat = "markdown"
	BodyFormatHTML     BodyFormat = "html"
)

// Fields holds the custom fields of a content item. Values are free text,
// image URLs, or booleans stored as "1"/"true".
type Fields map[string]string

// Get returns the field value or "".
func (f Fields) Get(name string) string {
	return f[name]
}

// Bool interprets a field as a checkbox value.
func (f Fields) Bool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(f[name])) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// UnmarshalJSON accepts any scalar JSON value, so import files can write
// `featured: true` or `order: 3`. Booleans become "true"/"false", numbers
// their shortest decimal form and null "". Nested values are rejected.
func (f *Fields) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*f = nil
		return nil
	}
	out := make(Fields, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			out[k] = v
		case bool:
			out[k] = strconv.FormatBool(v)
		case float64:
			out[k] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			out[k] = ""
		default:
			return fmt.Errorf("field %q: want a scalar value, got %T", k, v)
		}
	}
	*f = out
	return nil
}

// Value implements driver.Valuer, storing fields as a JSON object.
func (f Fields) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for JSONB columns.
func (f *Fields) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = Fields{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("fields: unsupported scan type %T", src)
	}
	out := Fields{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("fields: %w", err)
	}
	*f = out
	return nil
}

// Content is an item of any post type in a single locale. Translations are
// separate rows sharing a slug across locales.
type Content struct {
	ID          uuid.UUID     `json:"id"`
	Type        PostType      `json:"type"`
	Locale      string        `json:"locale"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Body        string        `json:"body"`
	BodyFormat  BodyFormat    `json:"body_format"`
	Excerpt     *string       `json:"excerpt,omitempty"`
	Fields      Fields        `json:"fields"`
	MenuOrder   int           `json:"menu_order"`
	Status      ContentStatus `json:"status"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// IsPublished returns true if the content item is in published status.
func (c *Content) IsPublished() bool {
	return c.Status == ContentStatusPublished
}

// Field is shorthand for c.Fields.Get.
func (c *Content) Field(name string) string {
	return c.Fields.Get(name)
}
