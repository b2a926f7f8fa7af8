package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// seedItem is a piece of starter content created in development.
type seedItem struct {
	typ, locale, title, slug, body, fields string
	order                                  int
}

var seedContent = []seedItem{
	{"page", "en", "About ProtectionPro", "about", "We protect people, property and data.", `{"hero_title":"Protection you can count on","show_contact_form":"1"}`, 0},
	{"page", "de", "Über ProtectionPro", "about", "Wir schützen Menschen, Eigentum und Daten.", `{"hero_title":"Schutz, auf den Sie zählen können","show_contact_form":"1"}`, 0},
	{"advantage", "en", "24/7 monitoring", "monitoring", "Our control room never sleeps.", `{"icon":"<i class=\"icon-eye\"></i>"}`, 1},
	{"advantage", "en", "Certified staff", "certified-staff", "Every guard is trained and certified.", `{"icon":"<i class=\"icon-badge\"></i>"}`, 2},
	{"case_studies", "en", "Logistics hub", "logistics-hub", "How we secured a 40,000 m² warehouse.", `{"client":"Acme Logistics","subtitle":"Perimeter and access control","featured":"1"}`, 1},
	{"faqs", "en", "How fast can you start?", "how-fast-can-you-start", "Usually within 48 hours of signing.", `{}`, 1},
	{"faqs", "de", "Wie schnell können Sie starten?", "how-fast-can-you-start", "In der Regel innerhalb von 48 Stunden.", `{}`, 1},
	{"videos", "en", "A night in the control room", "control-room", "", `{"video_url":"https://www.youtube.com/embed/dQw4w9WgXcQ"}`, 1},
}

var seedMenus = []struct {
	location, locale, label, url string
	position                     int
}{
	{"primary", "en", "Advantages", "/advantages", 1},
	{"primary", "en", "Case studies", "/case-studies", 2},
	{"primary", "en", "Videos", "/videos", 3},
	{"primary", "en", "FAQ", "/faqs", 4},
	{"primary", "de", "Vorteile", "/de/advantages", 1},
	{"primary", "de", "FAQ", "/de/faqs", 2},
	{"footer", "en", "About", "/about", 1},
	{"footer", "de", "Über uns", "/de/about", 1},
}

// Seed populates the database with initial development data: a default
// admin user, a handful of content items, and navigation menus. It does
// nothing if any user exists already. Site options are left unset.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@protectionpro.local", string(hash), "Admin", "admin", false); err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	for _, c := range seedContent {
		if _, err := tx.Exec(`
			INSERT INTO content (type, locale, title, slug, body, fields, menu_order, status, published_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 'published', now())
			ON CONFLICT (type, locale, slug) DO NOTHING
		`, c.typ, c.locale, c.title, c.slug, c.body, c.fields, c.order); err != nil {
			return fmt.Errorf("seed insert content %s/%s: %w", c.locale, c.slug, err)
		}
	}

	for _, m := range seedMenus {
		if _, err := tx.Exec(`
			INSERT INTO menu_items (location, locale, label, url, position)
			VALUES ($1, $2, $3, $4, $5)
		`, m.location, m.locale, m.label, m.url, m.position); err != nil {
			return fmt.Errorf("seed insert menu item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@protectionpro.local",
		"password", "admin",
		"content", len(seedContent),
	)
	return nil
}
