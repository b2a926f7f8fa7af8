// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a client on DB 15. Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     testAddr(),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, pageKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func testAddr() string {
	return net.JoinHostPort(envOr("VALKEY_HOST", "localhost"), envOr("VALKEY_PORT", "6379"))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	client, err := ConnectValkey(context.Background(), testAddr(), os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestConnectValkeyUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ConnectValkey(ctx, "127.0.0.1:1", ""); err == nil {
		t.Fatal("expected error for closed port")
	}
}

func TestPageKey(t *testing.T) {
	tests := []struct {
		locale, path, want string
	}{
		{"en", "/", "en:/"},
		{"de", "/de/faqs", "de:/de/faqs"},
	}
	for _, tt := range tests {
		if got := PageKey(tt.locale, tt.path); got != tt.want {
			t.Errorf("PageKey(%q, %q) = %q, want %q", tt.locale, tt.path, got, tt.want)
		}
	}
}

func TestNewPageCacheDefaultTTL(t *testing.T) {
	if pc := NewPageCache(nil, 0); pc.ttl != DefaultPageTTL {
		t.Errorf("expected DefaultPageTTL (%v), got %v", DefaultPageTTL, pc.ttl)
	}
	if pc := NewPageCache(nil, time.Minute); pc.ttl != time.Minute {
		t.Errorf("expected 1m, got %v", pc.ttl)
	}
}

func TestPageCacheSetAndGet(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()
	key := PageKey("en", "/faqs")

	if data, ok := pc.Get(ctx, key); ok || data != nil {
		t.Fatal("expected cache miss")
	}

	html := []byte("<html><body>FAQs</body></html>")
	pc.Set(ctx, key, html)

	data, ok := pc.Get(ctx, key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != string(html) {
		t.Errorf("data mismatch: got %q, want %q", data, html)
	}

	pc.Invalidate(ctx, key)
	if _, ok := pc.Get(ctx, key); ok {
		t.Error("expected miss after Invalidate")
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	keys := []string{PageKey("en", "/"), PageKey("de", "/de/"), PageKey("fr", "/fr/videos")}
	for _, k := range keys {
		pc.Set(ctx, k, []byte(k))
	}

	pc.InvalidateAll(ctx)

	for _, k := range keys {
		if _, ok := pc.Get(ctx, k); ok {
			t.Errorf("expected miss for %q after InvalidateAll", k)
		}
	}
}
