// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"html/template"

	"protectionpro/internal/markdown"
	"protectionpro/internal/models"
)

const summaryRunes = 180

// Body renders a content body as HTML. Markdown goes through goldmark; HTML
// bodies are trusted as entered by editors.
func Body(c *models.Content) (template.HTML, error) {
	if c.BodyFormat == models.BodyFormatHTML {
		return template.HTML(c.Body), nil
	}
	out, err := markdown.ToHTML(c.Body)
	if err != nil {
		return "", err
	}
	return template.HTML(out), nil
}

// Summary returns the item's excerpt, or one derived from its rendered body.
func Summary(c *models.Content, body template.HTML) string {
	if c.Excerpt != nil && *c.Excerpt != "" {
		return *c.Excerpt
	}
	return markdown.Excerpt(string(body), summaryRunes)
}

// ItemPath returns the locale-independent path of a content item. Pages live
// at /{slug}, everything else under its archive.
func ItemPath(c *models.Content) string {
	if seg := c.Type.ArchiveSegment(); seg != "" {
		return "/" + seg + "/" + c.Slug
	}
	return "/" + c.Slug
}

// ArchivePath returns the archive path of a post type, or "/" for pages.
func ArchivePath(t models.PostType) string {
	if seg := t.ArchiveSegment(); seg != "" {
		return "/" + seg
	}
	return "/"
}
