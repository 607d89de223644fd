// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Domain types

// Chapter is a content page tracked by its relative path.
// VisitCount always equals the number of Visit rows referencing the chapter.
type Chapter struct {
	ID           int32  `db:"id" json:"id"`
	RelativePath string `db:"relative_path" json:"relative_path"`
	VisitCount   int64  `db:"visit_count" json:"visit_count"`
}

// Visit is one append-only access event. Timestamp is milliseconds since the Unix epoch.
type Visit struct {
	ID        int64 `db:"id" json:"id"`
	ChapterID int32 `db:"chapter_id" json:"chapter_id"`
	Timestamp int64 `db:"timestamp" json:"timestamp"`
}

// Response types

type ChapterVisitInfo struct {
	RelativePath string `db:"relative_path" json:"relative_path"`
	VisitCount   int64  `db:"visit_count" json:"visit_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
