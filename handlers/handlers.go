// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielhkuo/wtcounter/models"
)

// VisitRecorder records one visit for a relative path.
type VisitRecorder interface {
	RecordVisit(ctx context.Context, path string) error
}

// ChapterLister serves the ranking queries.
type ChapterLister interface {
	ListChaptersAll(ctx context.Context, page int) ([]models.ChapterVisitInfo, error)
	ListChaptersRecent(ctx context.Context, page int, window models.TimeFrame) ([]models.ChapterVisitInfo, error)
}

// storageContext bounds a storage call by timeout when one is configured.
func storageContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}
