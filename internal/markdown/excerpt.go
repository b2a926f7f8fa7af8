// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips every tag, leaving text only.
var strict = bluemonday.StrictPolicy()

// Excerpt returns the first maxRunes runes of the text content of an HTML
// fragment, cut at a word boundary and suffixed with an ellipsis when
// shortened.
func Excerpt(htmlBody string, maxRunes int) string {
	text := html.UnescapeString(strict.Sanitize(htmlBody))
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)[:maxRunes]
	cut := string(runes)
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, ",.;:-") + "…"
}
