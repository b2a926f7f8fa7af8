// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package options

import (
	"bytes"
	_ "embed"
	"html/template"
)

//go:embed control.html
var controlHTML string

var controlTmpl = template.Must(template.New("control.html").Parse(controlHTML))

// Control renders the admin input for f, pre-filled with value. Both
// controls escape the value, so the browser shows the stored text exactly
// and submits it back unchanged. The textarea opens with a newline because
// browsers drop the first one after the tag.
func Control(f Field, value string) template.HTML {
	var buf bytes.Buffer
	err := controlTmpl.ExecuteTemplate(&buf, "control", struct {
		Key      string
		Value    string
		Textarea bool
	}{f.Key, value, f.Type == FieldTextarea})
	if err != nil {
		// static template into a buffer
		panic("options: render control: " + err.Error())
	}
	return template.HTML(buf.String())
}

// FieldView pairs a field with its current value for the settings page.
type FieldView struct {
	Field
	Value   string
	Control template.HTML
}

// SectionView is a section with its fields ready to render.
type SectionView struct {
	Section
	Fields []FieldView
}

// Views returns every section with controls pre-filled from o.
func Views(o SiteOptions) []SectionView {
	views := make([]SectionView, 0, len(Sections))
	for _, s := range Sections {
		sv := SectionView{Section: s, Fields: make([]FieldView, 0, len(s.Fields))}
		for _, f := range s.Fields {
			v := o.Get(f.Key)
			sv.Fields = append(sv.Fields, FieldView{Field: f, Value: v, Control: Control(f, v)})
		}
		views = append(views, sv)
	}
	return views
}
