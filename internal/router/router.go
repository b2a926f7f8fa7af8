// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains. Routes are
// split into the admin area under /admin and the public theme, which owns
// every other path.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"protectionpro/internal/handlers"
	"protectionpro/internal/middleware"
	"protectionpro/web"
)

// Deps bundles what the router wires together.
type Deps struct {
	Sessions middleware.SessionGetter
	Admin    *handlers.Admin
	Auth     *handlers.Auth
	Public   *handlers.Public

	// LoginLimiter throttles credential and TOTP submissions. nil disables it.
	LoginLimiter *middleware.RateLimiter

	// SecureCookies sets the Secure flag on the CSRF cookie.
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("router: static assets: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	throttle := func(next http.Handler) http.Handler { return next }
	if d.LoginLimiter != nil {
		throttle = d.LoginLimiter.Middleware
	}

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Use(middleware.NewCSRF(d.SecureCookies))
		r.Use(middleware.LoadSession(d.Sessions))

		// Auth pages, reachable without a session.
		r.Get("/login", d.Auth.LoginPage)
		r.With(throttle).Post("/login", d.Auth.LoginSubmit)

		// 2FA needs a session but not a completed TOTP step.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", d.Auth.TwoFASetupPage)
			r.Get("/2fa/verify", d.Auth.TwoFAVerifyPage)
			r.With(throttle).Post("/2fa/verify", d.Auth.TwoFAVerifySubmit)
		})

		// Signed in and verified.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", d.Admin.Dashboard)
			r.Post("/logout", d.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/settings", d.Admin.SettingsPage)
				r.Post("/settings", d.Admin.SettingsSave)
			})
		})
	})

	d.Public.Mount(r)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
