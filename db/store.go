// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/wtcounter/models"
)

// PageSize is the number of rows returned per ranking page.
const PageSize = 50

var ErrInvalidPage = errors.New("page must be >= 1")

type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

type Option func(*Store)

// WithClock overrides the clock used for visit timestamps and window cutoffs.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(db *sqlx.DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect opens a pool of at most maxConns connections and verifies it.
func Connect(driverName, dsn string, maxConns int) (*sqlx.DB, error) {
	conn, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driverName, err)
	}
	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(maxConns)
	return conn, nil
}

// Ping verifies a pooled connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetOrCreateChapter returns the chapter for path, creating it with a zero
// visit count when absent.
func (s *Store) GetOrCreateChapter(ctx context.Context, path string) (models.Chapter, error) {
	return getOrCreateChapter(ctx, s.db, path)
}

func getOrCreateChapter(ctx context.Context, q sqlx.ExtContext, path string) (models.Chapter, error) {
	selectQuery := q.Rebind(`
		SELECT id, relative_path, visit_count
		FROM chapters
		WHERE relative_path = ?
	`)

	var chapter models.Chapter
	err := sqlx.GetContext(ctx, q, &chapter, selectQuery, path)
	if err == nil {
		return chapter, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Chapter{}, fmt.Errorf("failed to query chapter: %w", err)
	}

	// The unique constraint on relative_path makes a concurrent insert a no-op.
	_, err = q.ExecContext(ctx, q.Rebind(`
		INSERT INTO chapters (relative_path, visit_count)
		VALUES (?, 0)
		ON CONFLICT (relative_path) DO NOTHING
	`), path)
	if err != nil {
		return models.Chapter{}, fmt.Errorf("failed to insert chapter: %w", err)
	}

	if err := sqlx.GetContext(ctx, q, &chapter, selectQuery, path); err != nil {
		return models.Chapter{}, fmt.Errorf("failed to query created chapter: %w", err)
	}
	return chapter, nil
}

// RecordVisit appends a visit for path and increments the chapter's counter.
// Both writes commit together or not at all.
func (s *Store) RecordVisit(ctx context.Context, path string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	chapter, err := getOrCreateChapter(ctx, tx, path)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO visits (chapter_id, timestamp)
		VALUES (?, ?)
	`), chapter.ID, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		UPDATE chapters
		SET visit_count = visit_count + 1
		WHERE id = ?
	`), chapter.ID)
	if err != nil {
		return fmt.Errorf("failed to increment visit count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit visit: %w", err)
	}
	return nil
}

// ListChaptersAll ranks chapters by their all-time visit count.
// Ties are ordered by chapter id so pages do not overlap.
func (s *Store) ListChaptersAll(ctx context.Context, page int) ([]models.ChapterVisitInfo, error) {
	offset, err := pageOffset(page)
	if err != nil {
		return nil, err
	}

	rows := []models.ChapterVisitInfo{}
	err = s.db.SelectContext(ctx, &rows, s.db.Rebind(`
		SELECT relative_path, visit_count
		FROM chapters
		ORDER BY visit_count DESC, id ASC
		LIMIT ? OFFSET ?
	`), PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}
	return rows, nil
}

// ListChaptersRecent ranks chapters by the number of visits newer than
// now minus the window. Chapters without visits in the window are omitted.
func (s *Store) ListChaptersRecent(ctx context.Context, page int, window models.TimeFrame) ([]models.ChapterVisitInfo, error) {
	offset, err := pageOffset(page)
	if err != nil {
		return nil, err
	}
	if window.Duration() == 0 {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownTimeFrame, string(window))
	}

	cutoff := s.now().UnixMilli() - window.Milliseconds()

	rows := []models.ChapterVisitInfo{}
	err = s.db.SelectContext(ctx, &rows, s.db.Rebind(`
		SELECT chapters.relative_path AS relative_path, COUNT(*) AS visit_count
		FROM visits
		INNER JOIN chapters ON visits.chapter_id = chapters.id
		WHERE visits.timestamp > ?
		GROUP BY chapters.id, chapters.relative_path
		ORDER BY COUNT(*) DESC, chapters.id ASC
		LIMIT ? OFFSET ?
	`), cutoff, PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent chapters: %w", err)
	}
	return rows, nil
}

// CountVisits returns the number of visit rows recorded for a chapter.
func (s *Store) CountVisits(ctx context.Context, chapterID int32) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, s.db.Rebind(`
		SELECT COUNT(*) FROM visits WHERE chapter_id = ?
	`), chapterID)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return count, nil
}

func pageOffset(page int) (int, error) {
	if page < 1 {
		return 0, ErrInvalidPage
	}
	return (page - 1) * PageSize, nil
}
