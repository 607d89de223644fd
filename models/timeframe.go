// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownTimeFrame = errors.New("unknown time frame")

// TimeFrame is a named recency window used by the recent ranking.
type TimeFrame string

const (
	TimeFrameHour  TimeFrame = "HOUR"
	TimeFrameDay   TimeFrame = "DAY"
	TimeFrameWeek  TimeFrame = "WEEK"
	TimeFrameMonth TimeFrame = "MONTH"
	TimeFrameYear  TimeFrame = "YEAR"
)

// Month and year are fixed 30 and 365 day approximations.
var timeFrameDurations = map[TimeFrame]time.Duration{
	TimeFrameHour:  time.Hour,
	TimeFrameDay:   24 * time.Hour,
	TimeFrameWeek:  7 * 24 * time.Hour,
	TimeFrameMonth: 30 * 24 * time.Hour,
	TimeFrameYear:  365 * 24 * time.Hour,
}

// ParseTimeFrame accepts exactly one of HOUR, DAY, WEEK, MONTH or YEAR.
// Matching is case-sensitive.
func ParseTimeFrame(s string) (TimeFrame, error) {
	tf := TimeFrame(s)
	if _, ok := timeFrameDurations[tf]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTimeFrame, s)
	}
	return tf, nil
}

// Duration returns the window length. Unknown values return zero.
func (tf TimeFrame) Duration() time.Duration {
	return timeFrameDurations[tf]
}

// Milliseconds returns the window length in milliseconds.
func (tf TimeFrame) Milliseconds() int64 {
	return tf.Duration().Milliseconds()
}

func (tf *TimeFrame) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeFrame(string(text))
	if err != nil {
		return err
	}
	*tf = parsed
	return nil
}
