// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/wtcounter/db"
	"github.com/danielhkuo/wtcounter/models"
	"github.com/danielhkuo/wtcounter/testutil"
)

func TestListAll(t *testing.T) {
	store := setupTestStore(t, time.Now())
	handler := NewChaptersHandler(store, testutil.GetTestConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.RecordVisit(ctx, "ch1"); err != nil {
			t.Fatalf("Failed to record visit: %v", err)
		}
	}
	if err := store.RecordVisit(ctx, "ch2"); err != nil {
		t.Fatalf("Failed to record visit: %v", err)
	}

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedRows   []models.ChapterVisitInfo
	}{
		{
			name:           "first page",
			query:          "?page=1",
			expectedStatus: http.StatusOK,
			expectedRows: []models.ChapterVisitInfo{
				{RelativePath: "ch1", VisitCount: 3},
				{RelativePath: "ch2", VisitCount: 1},
			},
		},
		{
			name:           "page past the end",
			query:          "?page=2",
			expectedStatus: http.StatusOK,
			expectedRows:   []models.ChapterVisitInfo{},
		},
		{"missing page", "", http.StatusBadRequest, nil},
		{"non-numeric page", "?page=abc", http.StatusBadRequest, nil},
		{"zero page", "?page=0", http.StatusBadRequest, nil},
		{"negative page", "?page=-1", http.StatusBadRequest, nil},
		{"page overflows int32", "?page=3000000000", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/chapters/all"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ListAll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var rows []models.ChapterVisitInfo
			testutil.AssertJSON(t, w, &rows)
			if fmt.Sprint(rows) != fmt.Sprint(tt.expectedRows) {
				t.Errorf("Expected rows %v, got %v", tt.expectedRows, rows)
			}
		})
	}
}

func TestListAll_EmptyEncodesAsArray(t *testing.T) {
	handler := NewChaptersHandler(setupTestStore(t, time.Now()), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/api/chapters/all?page=1", nil)
	w := httptest.NewRecorder()

	handler.ListAll(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("Expected '[]', got '%s'", body)
	}
}

func TestListAll_PageSize(t *testing.T) {
	store := setupTestStore(t, time.Now())
	handler := NewChaptersHandler(store, testutil.GetTestConfig())

	for i := 0; i < db.PageSize+5; i++ {
		if err := store.RecordVisit(context.Background(), fmt.Sprintf("/c/%d", i)); err != nil {
			t.Fatalf("Failed to record visit: %v", err)
		}
	}

	req := httptest.NewRequest("GET", "/api/chapters/all?page=1", nil)
	w := httptest.NewRecorder()
	handler.ListAll(w, req)

	var rows []models.ChapterVisitInfo
	testutil.AssertJSON(t, w, &rows)
	if len(rows) != db.PageSize {
		t.Errorf("Expected %d rows, got %d", db.PageSize, len(rows))
	}
}

func TestListRecent(t *testing.T) {
	now := time.Now()
	conn := testutil.SetupTestDB(t)
	ctx := context.Background()

	twoHoursAgo := db.NewStore(conn, db.WithClock(testutil.FixedClock(now.Add(-2*time.Hour))))
	halfHourAgo := db.NewStore(conn, db.WithClock(testutil.FixedClock(now.Add(-30*time.Minute))))
	current := db.NewStore(conn, db.WithClock(testutil.FixedClock(now)))

	if err := twoHoursAgo.RecordVisit(ctx, "old"); err != nil {
		t.Fatalf("Failed to record visit: %v", err)
	}
	if err := halfHourAgo.RecordVisit(ctx, "new"); err != nil {
		t.Fatalf("Failed to record visit: %v", err)
	}

	handler := NewChaptersHandler(current, testutil.GetTestConfig())

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedPaths  []string
	}{
		{"hour window", "?page=1&time_frame=HOUR", http.StatusOK, []string{"new"}},
		// Equal counts fall back to creation order
		{"day window", "?page=1&time_frame=DAY", http.StatusOK, []string{"old", "new"}},
		{"year window", "?page=1&time_frame=YEAR", http.StatusOK, []string{"old", "new"}},
		{"missing time_frame", "?page=1", http.StatusBadRequest, nil},
		{"lowercase time_frame", "?page=1&time_frame=hour", http.StatusBadRequest, nil},
		{"unknown time_frame", "?page=1&time_frame=DECADE", http.StatusBadRequest, nil},
		{"missing page", "?time_frame=HOUR", http.StatusBadRequest, nil},
		{"invalid page", "?page=x&time_frame=HOUR", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/chapters/recent"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ListRecent(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var rows []models.ChapterVisitInfo
			testutil.AssertJSON(t, w, &rows)

			paths := make([]string, 0, len(rows))
			for _, row := range rows {
				if row.VisitCount != 1 {
					t.Errorf("Expected visit_count 1 for %s, got %d", row.RelativePath, row.VisitCount)
				}
				paths = append(paths, row.RelativePath)
			}
			if strings.Join(paths, ",") != strings.Join(tt.expectedPaths, ",") {
				t.Errorf("Expected paths %v, got %v", tt.expectedPaths, paths)
			}
		})
	}
}

func TestChapters_StorageFailure(t *testing.T) {
	handler := NewChaptersHandler(failingStore{}, testutil.GetTestConfig())

	for _, tc := range []struct {
		path string
		fn   http.HandlerFunc
	}{
		{"/api/chapters/all?page=1", handler.ListAll},
		{"/api/chapters/recent?page=1&time_frame=DAY", handler.ListRecent},
	} {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			w := httptest.NewRecorder()

			tc.fn(w, req)

			testutil.AssertStatus(t, w, http.StatusInternalServerError)
			if strings.Contains(w.Body.String(), errStorageDown.Error()) {
				t.Errorf("Response leaked storage error: %s", w.Body.String())
			}
		})
	}
}
