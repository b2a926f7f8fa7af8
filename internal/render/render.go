// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render renders the admin interface from embedded templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"protectionpro/internal/metrics"
	"protectionpro/internal/middleware"
	"protectionpro/internal/session"
)

//go:embed templates/admin/*.html
var adminFS embed.FS

// PageData holds all data passed to admin templates.
type PageData struct {
	Title     string        // <title> and page heading
	Section   string        // active sidebar entry
	Session   *session.Data // nil on the login page
	CSRFToken string
	SiteName  string
	Data      map[string]any
	Flashes   []Flash
}

// Flash is a one-time notification shown above the page content.
type Flash struct {
	Type    string // "success", "error"
	Message string
}

// Renderer holds the parsed admin templates.
type Renderer struct {
	siteName  string
	templates map[string]*template.Template
}

// standalone templates carry their own <html> document instead of base.html.
var standalone = map[string]bool{
	"login":      true,
	"2fa_setup":  true,
	"2fa_verify": true,
}

var funcMap = template.FuncMap{
	"activeClass": func(current, target string) string {
		if current == target {
			return "active"
		}
		return ""
	},
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}
		return t.Format("2006-01-02 15:04")
	},
}

// New parses every admin page template, pairing non-standalone pages with
// the base layout.
func New(siteName string) (*Renderer, error) {
	r := &Renderer{siteName: siteName, templates: make(map[string]*template.Template)}

	entries, err := fs.ReadDir(adminFS, "templates/admin")
	if err != nil {
		return nil, fmt.Errorf("read admin templates: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" || !strings.HasSuffix(name, ".html") {
			continue
		}
		key := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		if standalone[key] {
			tmpl, err = template.New(name).Funcs(funcMap).ParseFS(adminFS, "templates/admin/"+name)
		} else {
			tmpl, err = template.New("base.html").Funcs(funcMap).ParseFS(adminFS, "templates/admin/base.html", "templates/admin/"+name)
		}
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[key] = tmpl
	}
	return r, nil
}

// Page renders an admin page with status 200.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus renders an admin page with the given status code. The CSRF
// token and session are taken from the request context.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}
	data.SiteName = rn.siteName

	root := "base.html"
	if standalone[name] {
		root = name + ".html"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, root, data); err != nil {
		slog.Error("admin template failed", "template", name, "error", err)
		metrics.RenderErrors.WithLabelValues("admin/" + name).Inc()
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
