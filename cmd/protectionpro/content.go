// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"protectionpro/internal/locale"
	"protectionpro/internal/models"
	"protectionpro/internal/slug"
	"protectionpro/internal/store"
)

var contentCmd = &cobra.Command{
	Use:     "content",
	Short:   "Manage site content",
	GroupID: "data",
}

var contentImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Insert or update content items from a YAML file",
	Long: "Insert or update content items from a YAML file. Items are matched on\n" +
		"type, locale and slug; a missing slug is generated from the title.\n\n" +
		"  items:\n" +
		"    - type: faqs\n" +
		"      locale: en\n" +
		"      title: How fast can you start?\n" +
		"      body: Usually within 48 hours.\n" +
		"      status: published\n" +
		"      fields:\n" +
		"        featured: true\n\n" +
		"Custom field values must be scalars; booleans and numbers are stored as text.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read content file: %w", err)
		}
		locales, err := locale.NewSet(cfg.Locales)
		if err != nil {
			return err
		}
		items, err := decodeContent(raw, locales)
		if err != nil {
			return err
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		contents := store.NewContentStore(db)
		for i := range items {
			saved, err := contents.Upsert(cmd.Context(), &items[i])
			if err != nil {
				return fmt.Errorf("item %d (%s): %w", i+1, items[i].Slug, err)
			}
			slog.Info("content imported", "type", saved.Type, "locale", saved.Locale, "slug", saved.Slug, "status", saved.Status)
		}
		flushPageCache(cmd.Context())
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentImportCmd)
	rootCmd.AddCommand(contentCmd)
}

type contentFile struct {
	Items []models.Content `json:"items"`
}

// decodeContent parses and validates a content file. Every invalid item is
// reported; nothing is returned unless all items are valid.
func decodeContent(raw []byte, locales *locale.Set) ([]models.Content, error) {
	var f contentFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, errors.New("content file has no items")
	}

	var errs []error
	for i := range f.Items {
		c := &f.Items[i]
		if c.Locale == "" {
			c.Locale = locales.Default()
		}
		if c.Slug == "" {
			c.Slug = slug.Generate(c.Title)
		}
		if err := validateContent(c, locales); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i+1, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return f.Items, nil
}

func validateContent(c *models.Content, locales *locale.Set) error {
	switch {
	case !c.Type.Valid():
		return fmt.Errorf("unknown type %q", c.Type)
	case !locales.Supported(c.Locale):
		return fmt.Errorf("unsupported locale %q", c.Locale)
	case c.Title == "":
		return errors.New("title is required")
	case c.Slug == "":
		return fmt.Errorf("cannot derive a slug from title %q", c.Title)
	case c.Slug != slug.Generate(c.Slug):
		return fmt.Errorf("slug %q is not URL-safe", c.Slug)
	}
	switch c.Status {
	case "", models.ContentStatusDraft, models.ContentStatusPublished:
	default:
		return fmt.Errorf("unknown status %q", c.Status)
	}
	switch c.BodyFormat {
	case "", models.BodyFormatMarkdown, models.BodyFormatHTML:
	default:
		return fmt.Errorf("unknown body format %q", c.BodyFormat)
	}
	return nil
}
