// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"protectionpro/internal/options"
)

func newTestAdmin(t *testing.T, stored options.SiteOptions) (*Admin, *fakeOptions, *fakeCache) {
	t.Helper()
	opts := &fakeOptions{stored: stored}
	pc := newFakeCache()
	return NewAdmin(testRenderer(t), opts, &fakeContent{items: sampleContent()}, pc), opts, pc
}

func postSettings(a *Admin, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/admin/settings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(a.SettingsSave, withSession(req, adminSession()))
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	a, opts, _ := newTestAdmin(t, nil)

	rr := postSettings(a, url.Values{"twitter_link": {"http://twitter.com/example"}})
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin/settings?saved=1" {
		t.Errorf("Location = %q", loc)
	}

	req := withSession(httptest.NewRequest(http.MethodGet, "/admin/settings", nil), adminSession())
	page := serve(a.SettingsPage, req)
	if !strings.Contains(page.Body.String(), `name="twitter_link" value="http://twitter.com/example"`) {
		t.Error("saved value should pre-fill the twitter input")
	}
	if opts.stored.Get("twitter_link") != "http://twitter.com/example" {
		t.Errorf("stored = %q", opts.stored.Get("twitter_link"))
	}
}

func TestSettingsSaveOverwritesEveryField(t *testing.T) {
	a, opts, _ := newTestAdmin(t, options.SiteOptions{
		"twitter_link": "http://twitter.com/old",
		"ga_code":      "<script>old()</script>",
	})

	postSettings(a, url.Values{
		"facebook_link": {"https://facebook.com/pp"},
		"gtm_code_head": {"<script>gtm()</script>"},
		"unknown_key":   {"dropped"},
	})

	want := options.SiteOptions{}.Complete()
	want["facebook_link"] = "https://facebook.com/pp"
	want["gtm_code_head"] = "<script>gtm()</script>"
	if diff := cmp.Diff(want, opts.stored); diff != "" {
		t.Errorf("stored record mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsSaveEmptyForm(t *testing.T) {
	a, opts, _ := newTestAdmin(t, options.SiteOptions{"twitter_link": "http://twitter.com/old"})

	if rr := postSettings(a, url.Values{}); rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if len(opts.stored) != len(options.Keys()) {
		t.Errorf("stored %d keys, want %d", len(opts.stored), len(options.Keys()))
	}
	for k, v := range opts.stored {
		if v != "" {
			t.Errorf("%s = %q, want empty", k, v)
		}
	}
}

func TestSettingsSaveInvalidatesPageCache(t *testing.T) {
	a, _, pc := newTestAdmin(t, nil)
	pc.pages["en:/"] = []byte("stale")

	postSettings(a, url.Values{"twitter_link": {"http://twitter.com/new"}})

	if pc.invalidated != 1 {
		t.Errorf("invalidated = %d, want 1", pc.invalidated)
	}
	if len(pc.pages) != 0 {
		t.Error("cached pages should be gone after a save")
	}
}

func TestSettingsSaveStoreFailure(t *testing.T) {
	a, opts, pc := newTestAdmin(t, nil)
	opts.saveErr = errBoom

	rr := postSettings(a, url.Values{"twitter_link": {"http://twitter.com/x"}})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Settings could not be saved.") {
		t.Error("failure flash missing")
	}
	if !strings.Contains(body, `value="http://twitter.com/x"`) {
		t.Error("submitted values should be shown again")
	}
	if pc.invalidated != 0 {
		t.Error("cache must not be cleared when nothing was saved")
	}
}

func TestSettingsPage(t *testing.T) {
	a, _, _ := newTestAdmin(t, options.SiteOptions{
		"404_title": `Lost "here"`,
		"404_body":  "<p>Gone &amp; away</p>",
	})

	tests := []struct {
		name     string
		query    string
		contains []string
		excludes []string
	}{
		{
			name: "fields rendered",
			contains: []string{
				`value="Lost &#34;here&#34;"`,
				`class="large-text code"><p>Gone &amp; away</p></textarea>`,
				`<legend>Social Media</legend>`,
			},
			excludes: []string{"Settings saved."},
		},
		{
			name:     "saved flash",
			query:    "?saved=1",
			contains: []string{"Settings saved."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withSession(httptest.NewRequest(http.MethodGet, "/admin/settings"+tt.query, nil), adminSession())
			rr := serve(a.SettingsPage, req)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d", rr.Code)
			}
			for _, want := range tt.contains {
				if !strings.Contains(rr.Body.String(), want) {
					t.Errorf("body missing %q", want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(rr.Body.String(), bad) {
					t.Errorf("body should not contain %q", bad)
				}
			}
		})
	}
}

func TestDashboard(t *testing.T) {
	a, opts, _ := newTestAdmin(t, options.SiteOptions{"twitter_link": "x"})
	opts.saved = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	req := withSession(httptest.NewRequest(http.MethodGet, "/admin/", nil), adminSession())
	rr := serve(a.Dashboard, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"<td>Case studies</td><td>2</td>",
		"<td>Pages</td><td>1</td>",
		"<td>News</td><td>0</td>",
		"Last saved: 2026-03-14 09:30",
		"facebook_link",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
	if strings.Contains(body, "Empty fields: twitter_link") {
		t.Error("filled fields should not be listed as empty")
	}
}
