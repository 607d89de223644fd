// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migration is one schema step. Statements are keyed by dialect.
type migration struct {
	Version    int
	Name       string
	Statements map[string][]string
}

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite"
)

var migrations = []migration{
	{
		Version: 1,
		Name:    "chapters_and_visits",
		Statements: map[string][]string{
			dialectPostgres: {
				`CREATE TABLE IF NOT EXISTS chapters (
					id SERIAL PRIMARY KEY,
					relative_path VARCHAR NOT NULL UNIQUE,
					visit_count BIGINT NOT NULL DEFAULT 0
				)`,
				`CREATE TABLE IF NOT EXISTS visits (
					id BIGSERIAL PRIMARY KEY,
					chapter_id INTEGER NOT NULL REFERENCES chapters(id),
					timestamp BIGINT NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp)`,
				`CREATE INDEX IF NOT EXISTS idx_visits_chapter_id ON visits(chapter_id)`,
			},
			dialectSQLite: {
				`CREATE TABLE IF NOT EXISTS chapters (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					relative_path TEXT NOT NULL UNIQUE,
					visit_count INTEGER NOT NULL DEFAULT 0
				)`,
				`CREATE TABLE IF NOT EXISTS visits (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					chapter_id INTEGER NOT NULL REFERENCES chapters(id),
					timestamp INTEGER NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp)`,
				`CREATE INDEX IF NOT EXISTS idx_visits_chapter_id ON visits(chapter_id)`,
			},
		},
	},
}

// MigrationRunner applies pending migrations to the database.
type MigrationRunner struct {
	db         *sqlx.DB
	dialect    string
	migrations []migration
}

func NewMigrationRunner(db *sqlx.DB) *MigrationRunner {
	return &MigrationRunner{
		db:         db,
		dialect:    dialectFor(db.DriverName()),
		migrations: migrations,
	}
}

func dialectFor(driverName string) string {
	switch driverName {
	case "sqlite", "sqlite3":
		return dialectSQLite
	default:
		return dialectPostgres
	}
}

// Run creates the schema_migrations table if needed, then applies every
// migration that has not been recorded yet, each in its own transaction.
// Safe to call multiple times.
func (r *MigrationRunner) Run(ctx context.Context) error {
	if r.dialect == dialectSQLite {
		if _, err := r.db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	if _, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	for _, m := range r.migrations {
		applied, err := r.isApplied(ctx, m.Version)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if applied {
			continue
		}

		if err := r.apply(ctx, m); err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Name, err)
		}
	}

	return nil
}

// Version returns the highest applied migration version, or 0.
func (r *MigrationRunner) Version(ctx context.Context) (int, error) {
	var version int
	err := r.db.GetContext(ctx, &version, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func (r *MigrationRunner) isApplied(ctx context.Context, version int) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		r.db.Rebind("SELECT COUNT(*) FROM schema_migrations WHERE version = ?"), version)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MigrationRunner) apply(ctx context.Context, m migration) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range m.Statements[r.dialect] {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		tx.Rebind("INSERT INTO schema_migrations (version, name) VALUES (?, ?)"),
		m.Version, m.Name,
	); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}

	return tx.Commit()
}
