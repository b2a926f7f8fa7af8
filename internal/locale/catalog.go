// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"sigs.k8s.io/yaml"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// Messages is the copy for one locale.
type Messages struct {
	Name    string            `json:"name"`
	Strings map[string]string `json:"strings"`
	Forms   map[string]string `json:"forms"`
	Links   map[string]string `json:"links"`
}

// Catalog holds the copy of every locale. Lookups fall back to the default
// locale and then to the key itself, so a missing translation never renders
// as an empty string.
type Catalog struct {
	fallback string
	messages map[string]*Messages
}

// LoadCatalog reads catalog/<code>.yaml for every code in set from the
// embedded files.
func LoadCatalog(set *Set) (*Catalog, error) {
	return loadCatalog(catalogFS, "catalog", set)
}

func loadCatalog(fsys fs.FS, dir string, set *Set) (*Catalog, error) {
	c := &Catalog{fallback: set.Default(), messages: make(map[string]*Messages)}
	for _, code := range set.Codes() {
		raw, err := fs.ReadFile(fsys, path.Join(dir, code+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", code, err)
		}
		m := &Messages{}
		if err := yaml.Unmarshal(raw, m); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", code, err)
		}
		c.messages[code] = m
	}
	return c, nil
}

func (c *Catalog) lookup(code string, pick func(*Messages) map[string]string, key string) (string, bool) {
	for _, l := range []string{code, c.fallback} {
		if m, ok := c.messages[l]; ok {
			if v, ok := pick(m)[key]; ok && v != "" {
				return v, true
			}
		}
	}
	return "", false
}

// T returns the translated string for key.
func (c *Catalog) T(code, key string) string {
	if v, ok := c.lookup(code, func(m *Messages) map[string]string { return m.Strings }, key); ok {
		return v
	}
	return key
}

// Form returns the embedded form ID registered under name, or "".
func (c *Catalog) Form(code, name string) string {
	v, _ := c.lookup(code, func(m *Messages) map[string]string { return m.Forms }, name)
	return v
}

// Link returns a locale-specific link target, or "/".
func (c *Catalog) Link(code, name string) string {
	if v, ok := c.lookup(code, func(m *Messages) map[string]string { return m.Links }, name); ok {
		return v
	}
	return "/"
}

// Name returns the display name of a locale, e.g. "Deutsch".
func (c *Catalog) Name(code string) string {
	if m, ok := c.messages[code]; ok && m.Name != "" {
		return m.Name
	}
	return strings.ToUpper(code)
}

// For binds the catalog to one locale for use in templates.
func (c *Catalog) For(code string) Copy {
	return Copy{catalog: c, code: code}
}

// Copy is a Catalog bound to one locale.
type Copy struct {
	catalog *Catalog
	code    string
}

// Code returns the bound locale.
func (p Copy) Code() string { return p.code }

// T is Catalog.T for the bound locale.
func (p Copy) T(key string) string { return p.catalog.T(p.code, key) }

// Form is Catalog.Form for the bound locale.
func (p Copy) Form(name string) string { return p.catalog.Form(p.code, name) }

// Link is Catalog.Link for the bound locale.
func (p Copy) Link(name string) string { return p.catalog.Link(p.code, name) }
