// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package locale resolves the language a page is rendered in and supplies
// the per-language copy and third-party form IDs the theme branches on.
// The default locale is served at the site root; every other locale lives
// under a two-letter path prefix such as /de/.
package locale

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Set is the ordered list of locales the site is published in. The first
// entry is the default.
type Set struct {
	codes   []string
	matcher language.Matcher
}

// NewSet builds a Set from locale codes such as "en", "de".
func NewSet(codes []string) (*Set, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("locale set: no locales")
	}
	tags := make([]language.Tag, 0, len(codes))
	for _, c := range codes {
		tag, err := language.Parse(c)
		if err != nil {
			return nil, fmt.Errorf("locale set: %q: %w", c, err)
		}
		tags = append(tags, tag)
	}
	return &Set{
		codes:   append([]string(nil), codes...),
		matcher: language.NewMatcher(tags),
	}, nil
}

// Default returns the root locale.
func (s *Set) Default() string {
	return s.codes[0]
}

// Codes returns every locale code in configured order.
func (s *Set) Codes() []string {
	return append([]string(nil), s.codes...)
}

// Supported reports whether code is one of the configured locales.
func (s *Set) Supported(code string) bool {
	for _, c := range s.codes {
		if c == code {
			return true
		}
	}
	return false
}

// Prefixed returns the locales that live under a path prefix, i.e. all but
// the default.
func (s *Set) Prefixed() []string {
	return append([]string(nil), s.codes[1:]...)
}

// Path returns the site path p in locale code. p must start with "/".
func (s *Set) Path(code, p string) string {
	if code == s.Default() || !s.Supported(code) {
		return p
	}
	if p == "/" {
		return "/" + code + "/"
	}
	return "/" + code + p
}

// Suggest picks the configured locale that best matches an Accept-Language
// header. It falls back to the default locale.
func (s *Set) Suggest(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return s.Default()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return s.Default()
	}
	_, idx, conf := s.matcher.Match(tags...)
	if conf == language.No {
		return s.Default()
	}
	return s.codes[idx]
}

type ctxKey struct{}

// WithCode stores the request locale in ctx.
func WithCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, ctxKey{}, code)
}

// FromContext returns the request locale, or "" if none was set.
func FromContext(ctx context.Context) string {
	code, _ := ctx.Value(ctxKey{}).(string)
	return code
}
