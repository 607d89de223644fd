// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/wtcounter/cliparse"
	"github.com/danielhkuo/wtcounter/db"
	"github.com/danielhkuo/wtcounter/handlers"
	"github.com/danielhkuo/wtcounter/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	countHandler := handlers.NewCountHandler(store, cfg)
	chaptersHandler := handlers.NewChaptersHandler(store, cfg)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithRequestID(middleware.WithLogging(h))
	}

	// Health check
	mux.HandleFunc("GET /health", wrap(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			slog.Error("health check failed", "error", err)
			middleware.TextResponse(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		middleware.TextResponse(w, http.StatusOK, "OK")
	}))

	// Visit recording (whitelisted origins only)
	mux.HandleFunc("POST /count", wrap(countHandler.RecordVisit))

	// Rankings (public)
	mux.HandleFunc("GET /api/chapters/all", wrap(middleware.AllowAnyOrigin(chaptersHandler.ListAll)))
	mux.HandleFunc("GET /api/chapters/recent", wrap(middleware.AllowAnyOrigin(chaptersHandler.ListRecent)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", wrap(func(w http.ResponseWriter, r *http.Request) {
		middleware.TextResponse(w, http.StatusOK, "wtcounter API v1")
	}))

	return mux
}
