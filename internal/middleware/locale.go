// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"

	"protectionpro/internal/locale"
)

// Locale tags every request routed through it with a fixed locale. The
// router mounts the public pages once per locale, each behind its own
// Locale middleware.
func Locale(code string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Language", code)
			next.ServeHTTP(w, r.WithContext(locale.WithCode(r.Context(), code)))
		})
	}
}
