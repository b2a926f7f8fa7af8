// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers of the public theme and the
// admin. Handlers depend on the narrow interfaces below; the store, cache
// and session packages satisfy them in production.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"protectionpro/internal/models"
	"protectionpro/internal/options"
	"protectionpro/internal/session"
)

// OptionsStore persists the site options record.
type OptionsStore interface {
	Load(ctx context.Context) (options.SiteOptions, error)
	Replace(ctx context.Context, opts options.SiteOptions) error
	LastSaved(ctx context.Context) (time.Time, error)
}

// ContentReader reads published content.
type ContentReader interface {
	ListPublished(ctx context.Context, postType models.PostType, locale string, limit int) ([]models.Content, error)
	FindPublished(ctx context.Context, postType models.PostType, locale, slug string) (*models.Content, error)
	CountPublished(ctx context.Context) (map[models.PostType]int, error)
	TranslationLocales(ctx context.Context, postType models.PostType, slug string) ([]string, error)
}

// MenuReader reads navigation menus.
type MenuReader interface {
	Items(ctx context.Context, location models.MenuLocation, locale string) ([]models.MenuItem, error)
}

// PageCache caches rendered public pages.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, html []byte)
	InvalidateAll(ctx context.Context)
}

// UserStore reads admin accounts and manages their TOTP state.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetTOTPSecret(ctx context.Context, userID uuid.UUID, secret string) error
	EnableTOTP(ctx context.Context, userID uuid.UUID) error
	CheckPassword(user *models.User, password string) bool
}

// SessionStore manages admin sessions.
type SessionStore interface {
	Create(ctx context.Context, w http.ResponseWriter, data *session.Data) (string, error)
	Update(ctx context.Context, r *http.Request, data *session.Data) error
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}
