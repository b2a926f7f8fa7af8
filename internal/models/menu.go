// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// MenuLocation names a place in the theme where a menu is rendered.
type MenuLocation string

const (
	MenuPrimary MenuLocation = "primary"
	MenuFooter  MenuLocation = "footer"
)

// MenuItem is one link of a navigation menu in a given locale.
type MenuItem struct {
	ID       uuid.UUID    `json:"id"`
	Location MenuLocation `json:"location"`
	Locale   string       `json:"locale"`
	Label    string       `json:"label"`
	URL      string       `json:"url"`
	Position int          `json:"position"`
}
