// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package options declares the site options schema ("MIC Site Essentials"):
// the named fields shown on the admin settings page, grouped into sections,
// and the flat key-value record they are stored in. Each field carries an
// explicit type that decides how its value is escaped when rendered.
package options

// FieldType decides how a field is edited in the admin and how its value is
// escaped on output.
type FieldType int

const (
	// FieldText is a single-line value. It is HTML-escaped wherever it is
	// displayed, both in the admin input and on the public site.
	FieldText FieldType = iota

	// FieldTextarea holds trusted raw markup (analytics snippets, icon
	// markup, rich copy). It is emitted unescaped.
	FieldTextarea
)

// String returns the control name used in the admin form.
func (t FieldType) String() string {
	switch t {
	case FieldTextarea:
		return "textarea"
	default:
		return "text"
	}
}

// Field describes one option key.
type Field struct {
	Key         string
	Label       string
	Description string
	Type        FieldType
}

// Section groups related fields on the settings page.
type Section struct {
	ID          string
	Title       string
	Description string
	Fields      []Field
}

// Sections is the complete options schema in display order.
var Sections = []Section{
	{
		ID:          "social",
		Title:       "Social Media",
		Description: "Profile links shown in the site footer. Leave empty to hide an icon.",
		Fields: []Field{
			{Key: "twitter_link", Label: "Twitter", Type: FieldText},
			{Key: "facebook_link", Label: "Facebook", Type: FieldText},
			{Key: "gplus_link", Label: "Google+", Type: FieldText},
			{Key: "youtube_link", Label: "YouTube", Type: FieldText},
			{Key: "linkedin_link", Label: "LinkedIn", Type: FieldText},
		},
	},
	{
		ID:          "seo",
		Title:       "SEO & Analytics",
		Description: "Snippets are injected into every page exactly as entered.",
		Fields: []Field{
			{Key: "webmaster_tools", Label: "Webmaster Tools", Description: "Verification meta tag, placed in <head>.", Type: FieldTextarea},
			{Key: "gtm_code_head", Label: "Google Tag Manager (head)", Type: FieldTextarea},
			{Key: "gtm_code_body", Label: "Google Tag Manager (body)", Description: "Placed right after the opening <body> tag.", Type: FieldTextarea},
			{Key: "ga_code", Label: "Google Analytics", Type: FieldTextarea},
		},
	},
	{
		ID:          "notfound",
		Title:       "404 Page",
		Description: "Copy and buttons for the page-not-found screen.",
		Fields: []Field{
			{Key: "404_title", Label: "Title", Type: FieldText},
			{Key: "404_body", Label: "Body", Type: FieldTextarea},
			{Key: "404_button1_icon", Label: "Button 1 icon", Type: FieldTextarea},
			{Key: "404_button1_text", Label: "Button 1 text", Type: FieldText},
			{Key: "404_button2_icon", Label: "Button 2 icon", Type: FieldTextarea},
			{Key: "404_button2_text", Label: "Button 2 text", Type: FieldText},
			{Key: "404_button3_icon", Label: "Button 3 icon", Type: FieldTextarea},
			{Key: "404_button3_text", Label: "Button 3 text", Type: FieldText},
		},
	},
}

// fieldIndex maps option keys to their descriptors.
var fieldIndex = buildIndex()

func buildIndex() map[string]Field {
	idx := make(map[string]Field)
	for _, s := range Sections {
		for _, f := range s.Fields {
			idx[f.Key] = f
		}
	}
	return idx
}

// Lookup returns the field registered under key.
func Lookup(key string) (Field, bool) {
	f, ok := fieldIndex[key]
	return f, ok
}

// Keys returns every registered option key in display order.
func Keys() []string {
	keys := make([]string, 0, len(fieldIndex))
	for _, s := range Sections {
		for _, f := range s.Fields {
			keys = append(keys, f.Key)
		}
	}
	return keys
}
