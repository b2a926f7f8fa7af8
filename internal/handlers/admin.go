// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"protectionpro/internal/metrics"
	"protectionpro/internal/middleware"
	"protectionpro/internal/models"
	"protectionpro/internal/options"
	"protectionpro/internal/render"
)

// dashboardTypes lists post types in dashboard order with their labels.
var dashboardTypes = []struct {
	Type  models.PostType
	Label string
}{
	{models.PostTypePage, "Pages"},
	{models.PostTypePost, "News"},
	{models.PostTypeCaseStudies, "Case studies"},
	{models.PostTypeFAQs, "FAQs"},
	{models.PostTypeVideos, "Videos"},
	{models.PostTypeAdvantage, "Advantages"},
}

// CountRow is one line of the dashboard's content table.
type CountRow struct {
	Label string
	Count int
}

// Admin groups the admin handlers behind login and 2FA.
type Admin struct {
	renderer *render.Renderer
	options  OptionsStore
	content  ContentReader
	cache    PageCache
}

// NewAdmin creates the admin handler group. pageCache may be nil.
func NewAdmin(renderer *render.Renderer, opts OptionsStore, content ContentReader, pageCache PageCache) *Admin {
	return &Admin{renderer: renderer, options: opts, content: content, cache: pageCache}
}

// Dashboard shows published counts per post type and the options status.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := a.content.CountPublished(ctx)
	if err != nil {
		slog.Error("count content failed", "error", err)
	}
	rows := make([]CountRow, 0, len(dashboardTypes))
	for _, t := range dashboardTypes {
		rows = append(rows, CountRow{Label: t.Label, Count: counts[t.Type]})
	}

	saved, err := a.options.LastSaved(ctx)
	if err != nil {
		slog.Error("options last saved failed", "error", err)
	}

	var missing []string
	if opts, err := a.options.Load(ctx); err == nil {
		for _, k := range options.Keys() {
			if !opts.Has(k) {
				missing = append(missing, k)
			}
		}
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"Counts":       rows,
			"OptionsSaved": saved,
			"Missing":      strings.Join(missing, ", "),
		},
	})
}

// SettingsPage renders every option section with its current values.
func (a *Admin) SettingsPage(w http.ResponseWriter, r *http.Request) {
	opts, err := a.options.Load(r.Context())
	if err != nil {
		slog.Warn("site options unavailable, showing empty form", "error", err)
		opts = options.SiteOptions{}
	}

	data := &render.PageData{
		Title:   "Site Essentials",
		Section: "settings",
		Data:    map[string]any{"Sections": options.Views(opts)},
	}
	if r.URL.Query().Get("saved") == "1" {
		data.Flashes = append(data.Flashes, render.Flash{Type: "success", Message: "Settings saved."})
	}
	a.renderer.Page(w, r, "settings", data)
}

// SettingsSave overwrites the whole options record with the submitted form.
// Fields missing from the form are stored empty; values are not validated.
func (a *Admin) SettingsSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	opts := options.FromForm(r.PostForm)
	if err := a.options.Replace(r.Context(), opts); err != nil {
		slog.Error("save site options failed", "error", err)
		metrics.OptionsSaves.WithLabelValues("error").Inc()
		a.renderer.PageStatus(w, r, http.StatusInternalServerError, "settings", &render.PageData{
			Title:   "Site Essentials",
			Section: "settings",
			Flashes: []render.Flash{{Type: "error", Message: "Settings could not be saved."}},
			Data:    map[string]any{"Sections": options.Views(opts)},
		})
		return
	}
	metrics.OptionsSaves.WithLabelValues("ok").Inc()

	if a.cache != nil {
		a.cache.InvalidateAll(r.Context())
	}

	by := ""
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		by = sess.Email
	}
	slog.Info("site options saved", "user", by)
	http.Redirect(w, r, "/admin/settings?saved=1", http.StatusSeeOther)
}
