// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/wtcounter/cliparse"
	"github.com/danielhkuo/wtcounter/db"
	"github.com/danielhkuo/wtcounter/middleware"
	"github.com/danielhkuo/wtcounter/models"
)

type ChaptersHandler struct {
	store ChapterLister
	cfg   cliparse.Config
}

func NewChaptersHandler(store ChapterLister, cfg cliparse.Config) *ChaptersHandler {
	return &ChaptersHandler{store: store, cfg: cfg}
}

// ListAll handles GET /api/chapters/all?page=N
func (h *ChaptersHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	ctx, cancel := storageContext(r, h.cfg.QueryTimeout)
	defer cancel()

	rows, err := h.store.ListChaptersAll(ctx, page)
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// ListRecent handles GET /api/chapters/recent?page=N&time_frame=X
// Counts only visits inside the window, so results can differ from ListAll.
func (h *ChaptersHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	raw := r.URL.Query().Get("time_frame")
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "time_frame is required")
		return
	}
	window, err := models.ParseTimeFrame(raw)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "time_frame must be one of HOUR, DAY, WEEK, MONTH, YEAR")
		return
	}

	ctx, cancel := storageContext(r, h.cfg.QueryTimeout)
	defer cancel()

	rows, err := h.store.ListChaptersRecent(ctx, page, window)
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

func (h *ChaptersHandler) storageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, db.ErrInvalidPage) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	slog.Error("failed to list chapters", "error", err, "path", r.URL.Path,
		"request_id", middleware.RequestID(r.Context()))
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}

// parsePage reads the 1-indexed page query parameter, writing a 400 when it
// is missing or invalid.
func parsePage(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "page is required")
		return 0, false
	}

	page, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || page < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "page must be a positive integer")
		return 0, false
	}

	return int(page), true
}
