// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"protectionpro/internal/middleware"
	"protectionpro/internal/models"
	"protectionpro/internal/options"
	"protectionpro/internal/session"
)

func helperSession(role models.Role) *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "test@protectionpro.test",
		DisplayName: "Test User",
		Role:        role,
		TwoFADone:   true,
	}
}

func helperRequest(sess *session.Data) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	if sess != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.SessionKey, sess))
	}
	return req
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	rn, err := New("ProtectionPro")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rn
}

func TestNew(t *testing.T) {
	rn := newRenderer(t)
	for _, name := range []string{"dashboard", "settings", "login", "2fa_setup", "2fa_verify"} {
		if _, ok := rn.templates[name]; !ok {
			t.Errorf("expected template %q to be parsed", name)
		}
	}
	if _, ok := rn.templates["base"]; ok {
		t.Error("base.html should not be registered as a page")
	}
}

func TestDashboard(t *testing.T) {
	rn := newRenderer(t)
	rr := httptest.NewRecorder()
	rn.Page(rr, helperRequest(helperSession(models.RoleAdmin)), "dashboard", &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"Counts":       []struct{ Label string; Count int }{{"FAQs", 4}},
			"OptionsSaved": time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		},
	})

	body := rr.Body.String()
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	for _, want := range []string{"<td>FAQs</td><td>4</td>", "2026-03-01 09:30", "Test User", `href="/admin/settings"`, `class="active"`} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestEditorDoesNotSeeSettingsLink(t *testing.T) {
	rn := newRenderer(t)
	rr := httptest.NewRecorder()
	rn.Page(rr, helperRequest(helperSession(models.RoleEditor)), "dashboard", &PageData{
		Title: "Dashboard",
		Data:  map[string]any{"OptionsSaved": time.Time{}},
	})
	if strings.Contains(rr.Body.String(), `href="/admin/settings"`) {
		t.Error("editors should not see the settings link")
	}
	if !strings.Contains(rr.Body.String(), "Last saved: never") {
		t.Error("zero time should render as never")
	}
}

func TestSettingsControls(t *testing.T) {
	rn := newRenderer(t)
	rr := httptest.NewRecorder()
	opts := options.SiteOptions{
		"twitter_link":  "http://twitter.com/example",
		"404_title":     `<b>Oops</b> & "more"`,
		"gtm_code_body": `<noscript><iframe src="x"></iframe></noscript>`,
	}
	rn.Page(rr, helperRequest(helperSession(models.RoleAdmin)), "settings", &PageData{
		Title:   "Site Essentials",
		Section: "settings",
		Flashes: []Flash{{Type: "success", Message: "Settings saved."}},
		Data:    map[string]any{"Sections": options.Views(opts)},
	})

	body := rr.Body.String()
	for _, want := range []string{
		`name="twitter_link" value="http://twitter.com/example"`,
		`value="&lt;b&gt;Oops&lt;/b&gt; &amp; &#34;more&#34;"`,
		`<noscript><iframe src="x"></iframe></noscript></textarea>`,
		`id="section-social"`,
		`id="section-notfound"`,
		"Settings saved.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("settings page missing %q", want)
		}
	}
}

func TestStandaloneTemplates(t *testing.T) {
	rn := newRenderer(t)
	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{"login", map[string]any{"Error": "Invalid email or password.", "Email": "a@b.c"}, "Invalid email or password."},
		{"2fa_setup", map[string]any{"QRCode": "iVBORw0KGgo=", "Secret": "JBSWY3DPEHPK3PXP"}, "JBSWY3DPEHPK3PXP"},
		{"2fa_verify", map[string]any{}, `name="code"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			rn.Page(rr, helperRequest(nil), tt.name, &PageData{Title: "Sign in", Data: tt.data})
			body := rr.Body.String()
			if !strings.Contains(body, tt.want) {
				t.Errorf("%s missing %q", tt.name, tt.want)
			}
			if strings.Contains(body, `class="sidebar"`) {
				t.Errorf("%s should not use the base layout", tt.name)
			}
		})
	}
}

func TestPageStatus(t *testing.T) {
	rn := newRenderer(t)
	rr := httptest.NewRecorder()
	rn.PageStatus(rr, helperRequest(nil), http.StatusUnauthorized, "login", &PageData{Title: "Sign in"})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestMissingTemplate(t *testing.T) {
	rn := newRenderer(t)
	rr := httptest.NewRecorder()
	rn.Page(rr, helperRequest(nil), "nope", &PageData{})
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rr.Code)
	}
}

func TestCSRFAndSessionInjection(t *testing.T) {
	rn := newRenderer(t)
	sess := helperSession(models.RoleAdmin)
	h := middleware.NewCSRF(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := &PageData{Title: "Dashboard", Data: map[string]any{"OptionsSaved": time.Time{}}}
		rn.Page(w, r, "dashboard", data)
		if data.CSRFToken == "" {
			t.Error("CSRF token not injected")
		}
		if data.Session != sess {
			t.Error("session not injected from context")
		}
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, helperRequest(sess))
	if !strings.Contains(rr.Body.String(), `name="csrf_token" value="`) {
		t.Error("logout form should carry the CSRF token")
	}
}
