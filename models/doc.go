// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, response, and enum types for the API.

# Domain Types

  - Chapter: a page keyed by relative_path with a denormalized visit_count
  - Visit: one timestamped access event (milliseconds since epoch)

# Response Types

  - ChapterVisitInfo: relative_path, visit_count (one ranking row)
  - ErrorResponse: error, message

# Time Frames

TimeFrame names the window for recent rankings:

	HOUR   1h
	DAY    24h
	WEEK   7d
	MONTH  30d
	YEAR   365d

Labels are case-sensitive. ParseTimeFrame returns ErrUnknownTimeFrame for anything else.
*/
package models
