// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"fmt"
	"html/template"
	"strings"

	"protectionpro/internal/locale"
	"protectionpro/internal/models"
	"protectionpro/internal/options"
)

// Page is the data every theme template receives.
type Page struct {
	SiteName string
	Title    string
	Lang     string
	Path     string
	Options  options.SiteOptions
	Copy     locale.Copy
	Nav      Nav
	Switcher []LocaleLink
	Data     any

	locales *locale.Set
}

// Nav holds the menus of the page's locale.
type Nav struct {
	Primary []models.MenuItem
	Footer  []models.MenuItem
}

// LocaleLink is one entry of the language switcher.
type LocaleLink struct {
	Code      string
	Name      string
	URL       string
	Current   bool
	Suggested bool
	// Missing marks a locale without a translation of this page; URL then
	// points at that locale's home.
	Missing bool
}

// LimitSwitcher keeps switcher links only for the locales in available and
// sends the others to their home page. The current locale is never changed.
func (p *Page) LimitSwitcher(available []string) {
	has := make(map[string]bool, len(available))
	for _, c := range available {
		has[c] = true
	}
	for i := range p.Switcher {
		l := &p.Switcher[i]
		if l.Current || has[l.Code] {
			continue
		}
		l.Missing = true
		l.URL = p.locales.Path(l.Code, "/")
	}
}

// Suggest flags the switcher entry for code, typically the locale picked
// from Accept-Language. The current locale is never flagged.
func (p *Page) Suggest(code string) {
	for i := range p.Switcher {
		p.Switcher[i].Suggested = p.Switcher[i].Code == code && !p.Switcher[i].Current
	}
}

// URL returns site path in the page's locale.
func (p *Page) URL(path string) string {
	return p.locales.Path(p.Lang, path)
}

// SocialLink is a footer link to one of the site's social profiles.
type SocialLink struct {
	Network string
	URL     string
}

var socialKeys = []struct{ network, key string }{
	{"Twitter", "twitter_link"},
	{"Facebook", "facebook_link"},
	{"Google+", "gplus_link"},
	{"YouTube", "youtube_link"},
	{"LinkedIn", "linkedin_link"},
}

// Social returns the configured social links in footer order, skipping
// empty ones.
func (p *Page) Social() []SocialLink {
	var out []SocialLink
	for _, s := range socialKeys {
		if v := p.Options.Text(s.key); v != "" {
			out = append(out, SocialLink{Network: s.network, URL: v})
		}
	}
	return out
}

// Button is one call-to-action of the 404 page.
type Button struct {
	Icon template.HTML
	Text string
	URL  string
}

// NotFoundButtons returns the three 404 buttons. Icons are raw markup, texts
// are escaped, targets come from the locale catalog. Catalog paths are
// locale-neutral and get the page's locale prefix here. A button with
// neither icon nor text is left out.
func (p *Page) NotFoundButtons() []Button {
	var out []Button
	for i := 1; i <= 3; i++ {
		icon := p.Options.Markup(fmt.Sprintf("404_button%d_icon", i))
		text := p.Options.Text(fmt.Sprintf("404_button%d_text", i))
		if icon == "" && text == "" {
			continue
		}
		target := p.Copy.Link(fmt.Sprintf("404.button%d", i))
		if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
			target = p.URL(target)
		}
		out = append(out, Button{Icon: icon, Text: text, URL: target})
	}
	return out
}

// Item is a content item prepared for the templates.
type Item struct {
	*models.Content
	URL     string
	Body    template.HTML
	Summary string
}

// HomeData feeds home.html.
type HomeData struct {
	Advantages  []Item
	CaseStudies []Item
	Videos      []Item
	ContactForm string
}

// ArchiveData feeds archive.html.
type ArchiveData struct {
	Type    models.PostType
	Heading string
	Items   []Item
}

// IsFAQ reports whether the archive lists question/answer pairs.
func (a ArchiveData) IsFAQ() bool {
	return a.Type == models.PostTypeFAQs
}

// SingleData feeds single.html and page.html.
type SingleData struct {
	Item        Item
	BackURL     string
	ContactForm string
}
