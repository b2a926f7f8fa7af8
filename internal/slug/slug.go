// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from content titles in
// any of the site's languages.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// umlauts are spelled out the German way before accents are stripped.
	umlauts = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss", "æ", "ae", "œ", "oe", "ø", "o")

	// separators become a single hyphen.
	separators = regexp.MustCompile(`[\s_/.+-]+`)
	// invalid matches anything left that is not a letter, digit, or hyphen.
	invalid = regexp.MustCompile(`[^a-z0-9-]`)
)

// stripMarks drops combining accents: "é" becomes "e".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Generate creates a URL-friendly slug from the given string.
// Example: "Über uns: 24/7 Schutz" → "ueber-uns-24-7-schutz"
func Generate(s string) string {
	result := umlauts.Replace(strings.ToLower(strings.TrimSpace(s)))
	result = stripMarks(result)
	result = separators.ReplaceAllString(result, "-")
	result = invalid.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
