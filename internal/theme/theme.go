// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme renders the public site. Every render is handed the site
// options record explicitly through Page; templates never look options up
// on their own.
package theme

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"protectionpro/internal/locale"
	"protectionpro/internal/metrics"
	"protectionpro/internal/models"
	"protectionpro/internal/options"
)

//go:embed templates/*.html
var templateFS embed.FS

// shared are parsed into every page template.
var shared = []string{"templates/layout.html", "templates/partials.html"}

// Theme holds the parsed page templates.
type Theme struct {
	siteName string
	locales  *locale.Set
	catalog  *locale.Catalog
	pages    map[string]*template.Template
}

// New parses the embedded templates. Each page file is paired with the
// layout and partials, the same way the admin renderer pairs pages with its
// base layout.
func New(siteName string, locales *locale.Set, catalog *locale.Catalog) (*Theme, error) {
	return newTheme(templateFS, siteName, locales, catalog)
}

func newTheme(fsys fs.FS, siteName string, locales *locale.Set, catalog *locale.Catalog) (*Theme, error) {
	t := &Theme{
		siteName: siteName,
		locales:  locales,
		catalog:  catalog,
		pages:    make(map[string]*template.Template),
	}

	entries, err := fs.ReadDir(fsys, "templates")
	if err != nil {
		return nil, fmt.Errorf("read theme templates: %w", err)
	}
	for _, e := range entries {
		file := "templates/" + e.Name()
		if e.IsDir() || !strings.HasSuffix(file, ".html") || isShared(file) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".html")
		tmpl, err := template.New("layout.html").ParseFS(fsys, append(shared, file)...)
		if err != nil {
			return nil, fmt.Errorf("parse theme template %s: %w", name, err)
		}
		t.pages[name] = tmpl
	}
	return t, nil
}

func isShared(file string) bool {
	for _, s := range shared {
		if s == file {
			return true
		}
	}
	return false
}

// Page starts the data for one public page rendered in locale code.
// path is the locale-independent site path, e.g. "/faqs".
func (t *Theme) Page(code, path string, opts options.SiteOptions, nav Nav) *Page {
	p := &Page{
		SiteName: t.siteName,
		Lang:     code,
		Path:     path,
		Options:  opts,
		Copy:     t.catalog.For(code),
		Nav:      nav,
		locales:  t.locales,
	}
	for _, c := range t.locales.Codes() {
		p.Switcher = append(p.Switcher, LocaleLink{
			Code:    c,
			Name:    t.catalog.Name(c),
			URL:     t.locales.Path(c, path),
			Current: c == code,
		})
	}
	return p
}

// Render executes page template name into w. The output is buffered so a
// template error never produces a half-written page.
func (t *Theme) Render(w io.Writer, name string, p *Page) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("theme template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		metrics.RenderErrors.WithLabelValues(name).Inc()
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Item builds the template view of one content item in locale code.
func (t *Theme) Item(code string, c *models.Content) (Item, error) {
	body, err := Body(c)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Content: c,
		URL:     t.locales.Path(code, ItemPath(c)),
		Body:    body,
		Summary: Summary(c, body),
	}, nil
}

// Items is Item over a list.
func (t *Theme) Items(code string, list []models.Content) ([]Item, error) {
	out := make([]Item, 0, len(list))
	for i := range list {
		it, err := t.Item(code, &list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}
