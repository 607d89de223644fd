// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the wtcounter API server.

wtcounter records per-chapter visits for the reading sites and serves
all-time and recent rankings.

# Starting the Server

	DATABASE_URL=postgres://... go run .

Or with flags, against a local SQLite file:

	go run . -p 8088 -t sqlite -d "file:wtcounter.db"

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string

Optional settings:

  - PORT (-p): Server port (default: 8088)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - DB_MAX_CONNS (--max-conns): pool size (default: 4)
  - QUERY_TIMEOUT (--query-timeout): per storage call (default: 5s)
  - REPORT_INTERVAL (--report-interval): log recent top chapters (default: off)
  - VERBOSE (-v): debug logging

# Architecture

  - handlers: HTTP request handlers (count, chapters)
  - router: Route definitions using Go 1.22+ routing
  - middleware: request IDs, logging, CORS, response helpers
  - models: Chapter, Visit, TimeFrame and response types
  - auth: Origin whitelist
  - db: Migrations and the chapter/visit store
  - reporter: Scheduled recent-visit log
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
