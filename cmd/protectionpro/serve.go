// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"protectionpro/internal/cache"
	"protectionpro/internal/database"
	"protectionpro/internal/handlers"
	"protectionpro/internal/locale"
	"protectionpro/internal/middleware"
	"protectionpro/internal/render"
	"protectionpro/internal/router"
	"protectionpro/internal/session"
	"protectionpro/internal/store"
	"protectionpro/internal/theme"
)

// Login and TOTP submissions allowed per client address and window.
const (
	loginAttempts = 10
	loginWindow   = 5 * time.Minute
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Run the HTTP server (default)",
	GroupID: "server",
	Args:    cobra.NoArgs,
	RunE:    runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr(), "locales", cfg.Locales)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			return err
		}
	}

	// Valkey backs both the page cache and admin sessions.
	valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		return err
	}
	defer valkeyClient.Close()

	locales, err := locale.NewSet(cfg.Locales)
	if err != nil {
		return err
	}
	catalog, err := locale.LoadCatalog(locales)
	if err != nil {
		return err
	}
	th, err := theme.New(cfg.SiteName, locales, catalog)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	renderer, err := render.New(cfg.SiteName)
	if err != nil {
		return fmt.Errorf("load admin templates: %w", err)
	}

	// Session cookies are Secure (HTTPS-only) outside development.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)
	pageCache := cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)

	optionsStore := store.NewOptionsStore(db)
	contentStore := store.NewContentStore(db)
	menuStore := store.NewMenuStore(db)
	userStore := store.NewUserStore(db)

	limiter := middleware.NewRateLimiter(loginAttempts, loginWindow, cfg.TrustProxy)
	go limiter.Run(ctx, time.Minute)

	r := router.New(router.Deps{
		Sessions:      sessionStore,
		Admin:         handlers.NewAdmin(renderer, optionsStore, contentStore, pageCache),
		Auth:          handlers.NewAuth(renderer, sessionStore, userStore),
		Public:        handlers.NewPublic(th, locales, optionsStore, contentStore, menuStore, pageCache),
		LoginLimiter:  limiter,
		SecureCookies: secureCookies,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutdown signal received")

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
