// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs and Logging

	mux.HandleFunc("GET /health", middleware.WithRequestID(middleware.WithLogging(handler)))

WithRequestID assigns X-Request-ID (uuid when the client sent none).
WithLogging logs completion with method, path, status, duration_ms and request_id.

# CORS

Read-only endpoints are public:

	middleware.AllowAnyOrigin(handler) // Access-Control-Allow-Origin: *

The write endpoint echoes the caller's origin itself after the whitelist check.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.TextResponse(w, http.StatusForbidden, "message")

# Request Bodies

	path, err := middleware.ReadTextBody(w, r, 1024)

Returns ErrBodyTooLarge past the limit and ErrInvalidUTF8 for non-UTF-8 input.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, X-Real-IP, then RemoteAddr.
*/
package middleware
