// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package options

import (
	"html"
	"html/template"
	"net/url"
)

// SiteOptions is the single persisted options record. A nil SiteOptions is
// valid and reads as empty.
type SiteOptions map[string]string

// Get returns the stored value for key, or "" when unset.
func (o SiteOptions) Get(key string) string {
	return o[key]
}

// Text returns the value as a plain string. html/template escapes it.
func (o SiteOptions) Text(key string) string {
	return o.Get(key)
}

// Markup returns the value entity-decoded and marked safe, so it is emitted
// byte-for-byte.
func (o SiteOptions) Markup(key string) template.HTML {
	return template.HTML(html.UnescapeString(o.Get(key)))
}

// Value returns the value typed by its field: a string for text fields and
// template.HTML for textarea fields. Unknown keys are treated as text.
func (o SiteOptions) Value(key string) any {
	if f, ok := Lookup(key); ok && f.Type == FieldTextarea {
		return o.Markup(key)
	}
	return o.Text(key)
}

// Has reports whether key holds a non-empty value.
func (o SiteOptions) Has(key string) bool {
	return o.Get(key) != ""
}

// Complete returns a copy holding exactly the schema keys. Keys missing from
// o become "", keys outside the schema are dropped.
func (o SiteOptions) Complete() SiteOptions {
	out := make(SiteOptions, len(fieldIndex))
	for _, k := range Keys() {
		out[k] = o[k]
	}
	return out
}

// FromForm builds a full record from an admin form submission. Every schema
// key is present in the result; a key missing from the form is stored as ""
// rather than keeping its previous value. Values are kept verbatim.
func FromForm(form url.Values) SiteOptions {
	out := make(SiteOptions, len(fieldIndex))
	for _, k := range Keys() {
		out[k] = form.Get(k)
	}
	return out
}
