// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package reporter periodically logs the most visited chapters of the last hour.
package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/danielhkuo/wtcounter/models"
)

// RecentLister is the read side the reporter needs.
type RecentLister interface {
	ListChaptersRecent(ctx context.Context, page int, window models.TimeFrame) ([]models.ChapterVisitInfo, error)
}

type Reporter struct {
	store     RecentLister
	scheduler *gocron.Scheduler
	timeout   time.Duration
}

// New schedules a report every interval. Call Start to begin running it.
func New(store RecentLister, interval, timeout time.Duration) (*Reporter, error) {
	r := &Reporter{
		store:     store,
		scheduler: gocron.NewScheduler(time.UTC),
		timeout:   timeout,
	}

	// Skip a run rather than overlap a slow one
	r.scheduler.SingletonModeAll()
	if _, err := r.scheduler.Every(interval).WaitForSchedule().Do(r.report); err != nil {
		return nil, fmt.Errorf("failed to schedule report: %w", err)
	}

	return r, nil
}

func (r *Reporter) Start() {
	r.scheduler.StartAsync()
}

func (r *Reporter) Stop() {
	r.scheduler.Stop()
}

// Report logs the current top chapters of the last hour.
func (r *Reporter) Report(ctx context.Context) error {
	rows, err := r.store.ListChaptersRecent(ctx, 1, models.TimeFrameHour)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		slog.Info("no visits in the last hour")
		return nil
	}

	var visits int64
	for _, row := range rows {
		visits += row.VisitCount
	}
	slog.Info("recent visits",
		"window", string(models.TimeFrameHour),
		"chapters", len(rows),
		"visits", visits,
		"top_path", rows[0].RelativePath,
		"top_count", rows[0].VisitCount,
	)
	return nil
}

func (r *Reporter) report() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.Report(ctx); err != nil {
		slog.Error("failed to build visit report", "error", err)
	}
}
