// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the persisted chapter and visit data.

# Schema

NewMigrationRunner applies versioned migrations, recording each in
schema_migrations:

	if err := db.NewMigrationRunner(conn).Run(ctx); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times. DDL is selected by driver: PostgreSQL
(github.com/lib/pq) in production, SQLite (modernc.org/sqlite) locally and in tests.

# Tables

  - chapters: id, relative_path (unique), visit_count
  - visits: id, chapter_id, timestamp (ms since epoch)

	chapters 1──* visits

# Store

Store runs the four storage operations against a pooled *sqlx.DB:

	store := db.NewStore(conn)
	err := store.RecordVisit(ctx, "/chapters/1.html")
	rows, err := store.ListChaptersRecent(ctx, 1, models.TimeFrameDay)

RecordVisit inserts the visit row and increments chapters.visit_count in a
single transaction, so visit_count always equals the number of visit rows.

Queries are written with ? placeholders and passed through Rebind.
*/
package db
