// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/wtcounter/db"
	"github.com/danielhkuo/wtcounter/models"
	"github.com/danielhkuo/wtcounter/testutil"
)

var errStorageDown = errors.New("connection refused")

// failingStore fails every call, for checking the 500 paths.
type failingStore struct{}

func (failingStore) RecordVisit(ctx context.Context, path string) error {
	return errStorageDown
}

func (failingStore) ListChaptersAll(ctx context.Context, page int) ([]models.ChapterVisitInfo, error) {
	return nil, errStorageDown
}

func (failingStore) ListChaptersRecent(ctx context.Context, page int, window models.TimeFrame) ([]models.ChapterVisitInfo, error) {
	return nil, errStorageDown
}

// deadlineStore reports whether calls carried a deadline.
type deadlineStore struct {
	hadDeadline bool
}

func (s *deadlineStore) RecordVisit(ctx context.Context, path string) error {
	_, s.hadDeadline = ctx.Deadline()
	return nil
}

func setupTestStore(t *testing.T, now time.Time) *db.Store {
	t.Helper()
	return db.NewStore(testutil.SetupTestDB(t), db.WithClock(testutil.FixedClock(now)))
}
