// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package session

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"protectionpro/internal/models"
)

// newTestStore returns a store on Valkey database 15, or skips.
func newTestStore(t *testing.T, secure bool) (*Store, *redis.Client) {
	t.Helper()

	host, port := os.Getenv("VALKEY_HOST"), os.Getenv("VALKEY_PORT")
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}
	t.Cleanup(func() {
		if keys, _ := client.Keys(ctx, keyPrefix+"*").Result(); len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return NewStore(client, secure), client
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func requestWith(c *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	if c != nil {
		r.AddCookie(c)
	}
	return r
}

func TestSessionLifecycle(t *testing.T) {
	store, client := newTestStore(t, false)
	ctx := context.Background()

	in := &Data{UserID: uuid.New(), Email: "ops@protectionpro.test", DisplayName: "Ops", Role: models.RoleAdmin}
	rr := httptest.NewRecorder()
	id, err := store.Create(ctx, rr, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(id) != 2*idLength {
		t.Errorf("id length = %d, want %d", len(id), 2*idLength)
	}
	cookie := sessionCookie(t, rr)
	if cookie.Value != id || !cookie.HttpOnly || cookie.Secure || cookie.Path != "/admin" || cookie.MaxAge != 0 {
		t.Errorf("unexpected cookie %+v", cookie)
	}

	got, err := store.Get(ctx, requestWith(cookie))
	if err != nil || got == nil {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if got.UserID != in.UserID || got.Role != models.RoleAdmin || got.TwoFADone || got.CreatedAt.IsZero() {
		t.Errorf("unexpected session %+v", got)
	}

	// Completing 2FA rewrites the payload and renews the TTL.
	client.Expire(ctx, keyPrefix+id, time.Minute)
	got.TwoFADone = true
	if err := store.Update(ctx, requestWith(cookie), got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ttl := client.TTL(ctx, keyPrefix+id).Val(); ttl <= time.Minute {
		t.Errorf("TTL after update = %v, want renewed", ttl)
	}
	if again, _ := store.Get(ctx, requestWith(cookie)); again == nil || !again.TwoFADone {
		t.Error("update should persist TwoFADone")
	}

	// Any authenticated request renews the idle timeout.
	client.Expire(ctx, keyPrefix+id, time.Minute)
	if _, err := store.Get(ctx, requestWith(cookie)); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ttl := client.TTL(ctx, keyPrefix+id).Val(); ttl <= time.Minute {
		t.Errorf("TTL after Get = %v, want renewed to %v", ttl, DefaultTTL)
	}

	out := httptest.NewRecorder()
	if err := store.Destroy(ctx, out, requestWith(cookie)); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if c := sessionCookie(t, out); c.MaxAge >= 0 {
		t.Errorf("cookie should be expired, MaxAge = %d", c.MaxAge)
	}
	if gone, err := store.Get(ctx, requestWith(cookie)); gone != nil || err != nil {
		t.Errorf("destroyed session: got %v, %v", gone, err)
	}
}

func TestSessionGetMisses(t *testing.T) {
	store, _ := newTestStore(t, false)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"unknown id", &http.Cookie{Name: CookieName, Value: "does-not-exist"}},
		{"other cookie", &http.Cookie{Name: "pp_csrf", Value: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Get(context.Background(), requestWith(tt.cookie))
			if got != nil || err != nil {
				t.Errorf("Get = %v, %v; want nil, nil", got, err)
			}
		})
	}
}

func TestSessionGetCorruptPayload(t *testing.T) {
	store, client := newTestStore(t, false)
	ctx := context.Background()
	client.Set(ctx, keyPrefix+"broken", "{not json", time.Minute)

	if _, err := store.Get(ctx, requestWith(&http.Cookie{Name: CookieName, Value: "broken"})); err == nil {
		t.Error("expected error for a corrupt payload")
	}
}

func TestSessionSecureCookie(t *testing.T) {
	store, _ := newTestStore(t, true)
	rr := httptest.NewRecorder()
	if _, err := store.Create(context.Background(), rr, &Data{UserID: uuid.New()}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !sessionCookie(t, rr).Secure {
		t.Error("secure store should set Secure cookies")
	}
}

func TestSessionWithoutCookieNeedsNoBackend(t *testing.T) {
	store := NewStore(nil, false)
	ctx := context.Background()

	if err := store.Update(ctx, requestWith(nil), &Data{}); err == nil {
		t.Error("Update without cookie should fail")
	}
	rr := httptest.NewRecorder()
	if err := store.Destroy(ctx, rr, requestWith(nil)); err != nil {
		t.Errorf("Destroy without cookie: %v", err)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Error("Destroy without cookie should not touch cookies")
	}
}

func TestGenerateIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := generateID()
		if err != nil {
			t.Fatalf("generateID: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestDataCanManageOptions(t *testing.T) {
	if (&Data{Role: models.RoleEditor}).CanManageOptions() {
		t.Error("editors must not manage site options")
	}
	if !(&Data{Role: models.RoleAdmin}).CanManageOptions() {
		t.Error("admins manage site options")
	}
}
