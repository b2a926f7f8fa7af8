// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"protectionpro/internal/config"
	"protectionpro/internal/database"
)

// newMockDB returns a sqlmock database whose expectations are checked when
// the test ends.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

// testDB connects to the PostgreSQL instance named by the usual POSTGRES_*
// variables and migrates it. Integration tests skip when it is unreachable.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	cfg, err := config.Load(context.Background())
	if err != nil {
		t.Skipf("skipping integration test: config: %v", err)
	}
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	if _, err := db.Exec("DELETE FROM users WHERE email = ANY($1)", emails); err != nil {
		t.Logf("clean users: %v", err)
	}
}

func cleanContent(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	if _, err := db.Exec("DELETE FROM content WHERE slug = ANY($1)", slugs); err != nil {
		t.Logf("clean content: %v", err)
	}
}
