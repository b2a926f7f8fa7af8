// Package web embeds the static assets served under /static/.
package web

import "embed"

// StaticFS holds web/static: the theme stylesheet and admin stylesheet.
//
//go:embed all:static
var StaticFS embed.FS
