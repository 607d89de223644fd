// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/wtcounter/auth"
	"github.com/danielhkuo/wtcounter/cliparse"
	"github.com/danielhkuo/wtcounter/middleware"
)

// MaxPathBytes caps the POST /count body.
const MaxPathBytes = 1024

const (
	countedBody   = "<3"
	forbiddenBody = "POST /count may only be accessed via whitelisted origins."
	internalBody  = "An internal error occurred."
)

type CountHandler struct {
	store VisitRecorder
	cfg   cliparse.Config
}

func NewCountHandler(store VisitRecorder, cfg cliparse.Config) *CountHandler {
	return &CountHandler{store: store, cfg: cfg}
}

// RecordVisit handles POST /count
// Body is the chapter's relative path as raw text. Only whitelisted origins may count.
func (h *CountHandler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Vary", "Origin")

	origin := r.Header.Get("Origin")
	if err := auth.CheckOrigin(origin); err != nil {
		slog.Debug("visit rejected", "origin", origin, "request_id", middleware.RequestID(r.Context()))
		middleware.TextResponse(w, http.StatusForbidden, forbiddenBody)
		return
	}

	path, err := middleware.ReadTextBody(w, r, MaxPathBytes)
	switch {
	case errors.Is(err, middleware.ErrBodyTooLarge):
		middleware.TextResponse(w, http.StatusRequestEntityTooLarge, "Path must be at most 1024 bytes.")
		return
	case errors.Is(err, middleware.ErrInvalidUTF8):
		middleware.TextResponse(w, http.StatusBadRequest, "Path must be valid UTF-8.")
		return
	case err != nil:
		middleware.TextResponse(w, http.StatusBadRequest, "Failed to read request body.")
		return
	}

	ctx, cancel := storageContext(r, h.cfg.QueryTimeout)
	defer cancel()

	if err := h.store.RecordVisit(ctx, path); err != nil {
		slog.Error("failed to record visit", "error", err, "path", path,
			"request_id", middleware.RequestID(r.Context()))
		middleware.TextResponse(w, http.StatusInternalServerError, internalBody)
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", origin)
	middleware.TextResponse(w, http.StatusOK, countedBody)
}
