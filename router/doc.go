// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the visit counter API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

	GET  /health               - Pings the database pool
	POST /count                - Record a visit (whitelisted origins)
	GET  /api/chapters/all     - All-time ranking
	GET  /api/chapters/recent  - Ranking within a time frame
	GET  /                     - Banner

Every route runs behind WithRequestID and WithLogging.
The ranking routes add Access-Control-Allow-Origin: *.
*/
package router
