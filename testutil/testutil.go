// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/wtcounter/cliparse"
	"github.com/danielhkuo/wtcounter/db"
)

// AllowedOrigin is a whitelisted origin usable in tests.
const AllowedOrigin = "https://wt.tepis.me"

// SetupTestDB creates a fresh, migrated SQLite database in a temp directory,
// opened the same way main opens it with the test config's pool size.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	return SetupTestDBWithConns(t, GetTestConfig().MaxOpenConns)
}

// SetupTestDBWithConns is SetupTestDB with an explicit pool size.
func SetupTestDBWithConns(t *testing.T, maxConns int) *sqlx.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = "file:" + filepath.Join(t.TempDir(), "test.db")
	cfg.MaxOpenConns = maxConns

	conn, err := db.Connect(cfg.DriverName(), cfg.DataSourceName(), cfg.MaxOpenConns)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.NewMigrationRunner(conn).Run(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8088,
		DatabaseURL:  "file:test.db",
		DatabaseType: "sqlite",
		MaxOpenConns: 1,
		QueryTimeout: 5 * time.Second,
	}
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MakeRequest creates an HTTP test request with a raw text body
func MakeRequest(method, path, body string, headers map[string]string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
