// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the visit counter API.

# Handler Types

Each handler is a struct holding its storage dependency and config:

  - CountHandler: records visits (needs a VisitRecorder)
  - ChaptersHandler: serves rankings (needs a ChapterLister)

*db.Store satisfies both:

	store := db.NewStore(conn)
	countHandler := handlers.NewCountHandler(store, cfg)

# Recording Visits

	POST /count  body: relative path (raw text, at most 1024 bytes)

The Origin header must exactly match a whitelisted site, otherwise 403.
On success the response is "<3" with Access-Control-Allow-Origin echoing
the origin. Every response carries Vary: Origin.

# Rankings

	GET /api/chapters/all?page=N                  → ListAll
	GET /api/chapters/recent?page=N&time_frame=X  → ListRecent

Pages are 1-indexed, 50 rows each. time_frame is HOUR, DAY, WEEK, MONTH or
YEAR. Responses are JSON arrays of {relative_path, visit_count}.

# Errors

Bad query parameters are 400. Storage failures are logged and returned as
500 without internal detail. Storage calls are bounded by cfg.QueryTimeout.
*/
package handlers
