// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"protectionpro/internal/cache"
	"protectionpro/internal/locale"
	"protectionpro/internal/middleware"
	"protectionpro/internal/models"
	"protectionpro/internal/options"
	"protectionpro/internal/theme"
)

// Home page section sizes.
const (
	homeAdvantages  = 6
	homeCaseStudies = 3
	homeVideos      = 3
)

// Public serves the themed site. Rendered pages are cached per locale and
// path; any options save clears the whole cache.
type Public struct {
	theme   *theme.Theme
	locales *locale.Set
	options OptionsStore
	content ContentReader
	menus   MenuReader
	cache   PageCache
}

// NewPublic creates the public handler group. pageCache may be nil.
func NewPublic(th *theme.Theme, locales *locale.Set, opts OptionsStore, content ContentReader, menus MenuReader, pageCache PageCache) *Public {
	return &Public{
		theme:   th,
		locales: locales,
		options: opts,
		content: content,
		menus:   menus,
		cache:   pageCache,
	}
}

// Mount registers the public site on r: the default locale at the root and
// every other locale under its own prefix. Unmatched paths get the themed
// 404 page in the locale of their prefix.
func (p *Public) Mount(r chi.Router) {
	r.NotFound(p.NotFound)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Locale(p.locales.Default()))
		p.Routes(r)
	})
	for _, code := range p.locales.Prefixed() {
		r.Route("/"+code, func(r chi.Router) {
			r.Use(middleware.Locale(code))
			p.Routes(r)
		})
	}
}

// Routes registers the public pages of one locale on r.
func (p *Public) Routes(r chi.Router) {
	r.Get("/", p.Home)
	r.Get("/{segment}", p.Segment)
	r.Get("/{segment}/{slug}", p.Single)
}

// Home renders the landing page.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	code := p.code(r)

	suggest := ""
	if code == p.locales.Default() {
		suggest = p.locales.Suggest(r.Header.Get("Accept-Language"))
		w.Header().Add("Vary", "Accept-Language")
	}
	key := cache.PageKey(code, "/")
	if suggest != "" && suggest != code {
		key += "@" + suggest
	}
	if p.serveCached(w, r, key) {
		return
	}

	ctx := r.Context()
	page := p.page(ctx, code, "/")
	page.Suggest(suggest)

	data := theme.HomeData{ContactForm: page.Copy.Form("contact")}
	var err error
	if data.Advantages, err = p.list(ctx, code, models.PostTypeAdvantage, homeAdvantages); err != nil {
		p.fail(w, "home", err)
		return
	}
	if data.CaseStudies, err = p.list(ctx, code, models.PostTypeCaseStudies, homeCaseStudies); err != nil {
		p.fail(w, "home", err)
		return
	}
	if data.Videos, err = p.list(ctx, code, models.PostTypeVideos, homeVideos); err != nil {
		p.fail(w, "home", err)
		return
	}
	page.Data = data

	p.write(w, r, http.StatusOK, "home", page, key)
}

// Segment renders /{segment}: an archive when the segment names a post
// type, otherwise the page with that slug, otherwise the 404 page.
func (p *Public) Segment(w http.ResponseWriter, r *http.Request) {
	segment := chi.URLParam(r, "segment")
	code := p.code(r)
	path := "/" + segment
	key := cache.PageKey(code, path)
	if p.serveCached(w, r, key) {
		return
	}
	ctx := r.Context()

	if postType, ok := models.PostTypeForArchive(segment); ok {
		list, err := p.content.ListPublished(ctx, postType, code, 0)
		if err != nil {
			p.fail(w, "archive", err)
			return
		}
		items, err := p.theme.Items(code, list)
		if err != nil {
			p.fail(w, "archive", err)
			return
		}
		page := p.page(ctx, code, path)
		heading := page.Copy.T("archive." + string(postType))
		page.Title = heading
		page.Data = theme.ArchiveData{Type: postType, Heading: heading, Items: items}
		p.write(w, r, http.StatusOK, "archive", page, key)
		return
	}

	c, err := p.content.FindPublished(ctx, models.PostTypePage, code, segment)
	if err != nil {
		p.fail(w, "page", err)
		return
	}
	if c == nil {
		p.NotFound(w, r)
		return
	}
	p.renderItem(w, r, "page", c, path, key)
}

// Single renders one item under its archive, e.g. /case-studies/{slug}.
func (p *Public) Single(w http.ResponseWriter, r *http.Request) {
	segment := chi.URLParam(r, "segment")
	slug := chi.URLParam(r, "slug")
	postType, ok := models.PostTypeForArchive(segment)
	if !ok {
		p.NotFound(w, r)
		return
	}

	code := p.code(r)
	path := "/" + segment + "/" + slug
	key := cache.PageKey(code, path)
	if p.serveCached(w, r, key) {
		return
	}

	c, err := p.content.FindPublished(r.Context(), postType, code, slug)
	if err != nil {
		p.fail(w, "single", err)
		return
	}
	if c == nil {
		p.NotFound(w, r)
		return
	}
	p.renderItem(w, r, "single", c, path, key)
}

// NotFound renders the themed 404 page with status 404. It is never cached.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	code := p.code(r)
	page := p.page(r.Context(), code, "/")
	if page.Options.Has("404_title") {
		page.Title = page.Options.Text("404_title")
	} else {
		page.Title = page.Copy.T("notfound.fallback_title")
	}
	p.write(w, r, http.StatusNotFound, "404", page, "")
}

func (p *Public) renderItem(w http.ResponseWriter, r *http.Request, tmpl string, c *models.Content, path, key string) {
	code := p.code(r)
	item, err := p.theme.Item(code, c)
	if err != nil {
		p.fail(w, tmpl, err)
		return
	}
	page := p.page(r.Context(), code, path)
	if codes, err := p.content.TranslationLocales(r.Context(), c.Type, c.Slug); err != nil {
		slog.Warn("translations unavailable", "slug", c.Slug, "error", err)
	} else {
		page.LimitSwitcher(codes)
	}
	page.Title = c.Title
	page.Data = theme.SingleData{
		Item:        item,
		BackURL:     p.locales.Path(code, theme.ArchivePath(c.Type)),
		ContactForm: page.Copy.Form("contact"),
	}
	p.write(w, r, http.StatusOK, tmpl, page, key)
}

// code returns the locale set by the Locale middleware, or the default.
func (p *Public) code(r *http.Request) string {
	if code := locale.FromContext(r.Context()); p.locales.Supported(code) {
		return code
	}
	return p.locales.Default()
}

// page assembles the shared page data. A failed options load renders with
// the empty record, a failed menu load with no menu.
func (p *Public) page(ctx context.Context, code, path string) *theme.Page {
	opts, err := p.options.Load(ctx)
	if err != nil {
		slog.Warn("site options unavailable, rendering defaults", "error", err)
		opts = options.SiteOptions{}
	}

	var nav theme.Nav
	if nav.Primary, err = p.menus.Items(ctx, models.MenuPrimary, code); err != nil {
		slog.Warn("primary menu unavailable", "locale", code, "error", err)
	}
	if nav.Footer, err = p.menus.Items(ctx, models.MenuFooter, code); err != nil {
		slog.Warn("footer menu unavailable", "locale", code, "error", err)
	}

	return p.theme.Page(code, path, opts, nav)
}

func (p *Public) list(ctx context.Context, code string, postType models.PostType, limit int) ([]theme.Item, error) {
	list, err := p.content.ListPublished(ctx, postType, code, limit)
	if err != nil {
		return nil, err
	}
	return p.theme.Items(code, list)
}

func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	if p.cache == nil {
		return false
	}
	cached, ok := p.cache.Get(r.Context(), key)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Cache", "HIT")
	w.Write(cached)
	return true
}

// write renders page and, for 200 responses with a key, stores the result
// in the page cache.
func (p *Public) write(w http.ResponseWriter, r *http.Request, status int, tmpl string, page *theme.Page, key string) {
	var buf bytes.Buffer
	if err := p.theme.Render(&buf, tmpl, page); err != nil {
		p.fail(w, tmpl, err)
		return
	}
	if p.cache != nil && status == http.StatusOK && key != "" {
		p.cache.Set(r.Context(), key, buf.Bytes())
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (p *Public) fail(w http.ResponseWriter, tmpl string, err error) {
	slog.Error("public page failed", "template", tmpl, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
