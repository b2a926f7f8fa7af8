// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides in-memory fakes for the handler dependencies.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"protectionpro/internal/locale"
	"protectionpro/internal/middleware"
	"protectionpro/internal/models"
	"protectionpro/internal/options"
	"protectionpro/internal/render"
	"protectionpro/internal/session"
	"protectionpro/internal/theme"
)

var errBoom = errors.New("boom")

type fakeOptions struct {
	mu       sync.Mutex
	stored   options.SiteOptions
	saved    time.Time
	loadErr  error
	saveErr  error
	replaces int
}

func (f *fakeOptions) Load(context.Context) (options.SiteOptions, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := options.SiteOptions{}
	for k, v := range f.stored {
		out[k] = v
	}
	return out, nil
}

func (f *fakeOptions) Replace(_ context.Context, opts options.SiteOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = opts.Complete()
	f.saved = time.Now()
	f.replaces++
	return nil
}

func (f *fakeOptions) LastSaved(context.Context) (time.Time, error) {
	return f.saved, nil
}

// fakeContent indexes items by type, locale and slug.
type fakeContent struct {
	items []models.Content
	err   error
}

func (f *fakeContent) ListPublished(_ context.Context, t models.PostType, code string, limit int) ([]models.Content, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Content
	for _, c := range f.items {
		if c.Type == t && c.Locale == code && c.IsPublished() {
			out = append(out, c)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeContent) FindPublished(_ context.Context, t models.PostType, code, slug string) (*models.Content, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		c := f.items[i]
		if c.Type == t && c.Locale == code && c.Slug == slug && c.IsPublished() {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeContent) CountPublished(context.Context) (map[models.PostType]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[models.PostType]int{}
	for _, c := range f.items {
		if c.IsPublished() {
			out[c.Type]++
		}
	}
	return out, nil
}

func (f *fakeContent) TranslationLocales(_ context.Context, t models.PostType, slug string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, c := range f.items {
		if c.Type == t && c.Slug == slug && c.IsPublished() {
			out = append(out, c.Locale)
		}
	}
	return out, nil
}

type fakeMenus struct {
	items []models.MenuItem
}

func (f *fakeMenus) Items(_ context.Context, loc models.MenuLocation, code string) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, m := range f.items {
		if m.Location == loc && m.Locale == code {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeCache struct {
	mu          sync.Mutex
	pages       map[string][]byte
	invalidated int
}

func newFakeCache() *fakeCache { return &fakeCache{pages: map[string][]byte{}} }

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.pages[key]
	return b, ok
}

func (f *fakeCache) Set(_ context.Context, key string, html []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[key] = append([]byte(nil), html...)
}

func (f *fakeCache) InvalidateAll(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = map[string][]byte{}
	f.invalidated++
}

type fakeUsers struct {
	users   map[uuid.UUID]*models.User
	enabled []uuid.UUID
}

func newFakeUsers(t *testing.T, email, password string, totpEnabled bool, secret string) (*fakeUsers, *models.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	u := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  "Site Admin",
		Role:         models.RoleAdmin,
		TOTPEnabled:  totpEnabled,
	}
	if secret != "" {
		u.TOTPSecret = &secret
	}
	return &fakeUsers{users: map[uuid.UUID]*models.User{u.ID: u}}, u
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUsers) SetTOTPSecret(_ context.Context, id uuid.UUID, secret string) error {
	f.users[id].TOTPSecret = &secret
	return nil
}

func (f *fakeUsers) EnableTOTP(_ context.Context, id uuid.UUID) error {
	f.users[id].TOTPEnabled = true
	f.enabled = append(f.enabled, id)
	return nil
}

func (f *fakeUsers) CheckPassword(u *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

type fakeSessions struct {
	created   []*session.Data
	updated   []*session.Data
	destroyed int
}

func (f *fakeSessions) Create(_ context.Context, w http.ResponseWriter, data *session.Data) (string, error) {
	f.created = append(f.created, data)
	http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: "test-session"})
	return "test-session", nil
}

func (f *fakeSessions) Update(_ context.Context, _ *http.Request, data *session.Data) error {
	f.updated = append(f.updated, data)
	return nil
}

func (f *fakeSessions) Destroy(context.Context, http.ResponseWriter, *http.Request) error {
	f.destroyed++
	return nil
}

func testLocales(t *testing.T) (*locale.Set, *locale.Catalog) {
	t.Helper()
	set, err := locale.NewSet([]string{"en", "de", "fr"})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	cat, err := locale.LoadCatalog(set)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return set, cat
}

func testTheme(t *testing.T) (*theme.Theme, *locale.Set) {
	t.Helper()
	set, cat := testLocales(t)
	th, err := theme.New("ProtectionPro", set, cat)
	if err != nil {
		t.Fatalf("theme.New: %v", err)
	}
	return th, set
}

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	rn, err := render.New("ProtectionPro")
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return rn
}

// withSession returns r carrying sess the way LoadSession would.
func withSession(r *http.Request, sess *session.Data) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, sess))
}

func adminSession() *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "admin@protectionpro.test",
		DisplayName: "Site Admin",
		Role:        models.RoleAdmin,
		TwoFADone:   true,
	}
}

func serve(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, r)
	return rr
}
