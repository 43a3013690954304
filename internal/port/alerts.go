// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package port

import (
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// ALERT DATE PARSING
// =============================================================================

// monthsByAbbrev maps three-letter month abbreviations to months.
var monthsByAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseAlertDate parses an alert display timestamp like "Nov 7, 13:47"
// into a calendar date in the given year. The time-of-day portion is
// ignored for filtering purposes.
//
// A timestamp that does not match the expected pattern falls back to
// today's date and returns ok=false so callers can flag the data-quality
// problem without failing the whole filter operation.
func ParseAlertDate(s string, year int, now time.Time) (t time.Time, ok bool) {
	today := truncateToDay(now)

	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 2 {
		return today, false
	}

	month, found := monthsByAbbrev[strings.ToLower(fields[0])]
	if !found {
		return today, false
	}

	dayStr := strings.TrimSuffix(fields[1], ",")
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return today, false
	}

	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), true
}

// =============================================================================
// ALERT FILTERING
// =============================================================================

// FilterAlerts returns the alerts whose parsed dates fall inside the
// range, preserving input order. An empty range returns every alert, so
// clearing filters is an identity operation.
//
// Alerts whose timestamps fail to parse count as dated today; fallbacks
// are reported so callers can surface data-quality problems.
func FilterAlerts(alerts []Alert, r DateRange, year int, now time.Time) (visible []Alert, fallbacks int) {
	if r.IsZero() {
		return alerts, 0
	}

	for _, a := range alerts {
		date, ok := ParseAlertDate(a.Timestamp, year, now)
		if !ok {
			fallbacks++
		}
		if r.Contains(date) {
			visible = append(visible, a)
		}
	}
	return visible, fallbacks
}

// =============================================================================
// READ TRACKING
// =============================================================================

// ReadSet tracks which alerts have been read. The set only grows; there
// is no way to mark an alert unread again.
type ReadSet struct {
	read map[string]struct{}
}

// NewReadSet creates an empty read set.
func NewReadSet() *ReadSet {
	return &ReadSet{read: make(map[string]struct{})}
}

// MarkRead records an alert as read. Idempotent.
func (s *ReadSet) MarkRead(id string) {
	s.read[id] = struct{}{}
}

// IsRead reports whether an alert has been read.
func (s *ReadSet) IsRead(id string) bool {
	_, ok := s.read[id]
	return ok
}

// UnreadCount returns how many of the given alerts are unread.
func (s *ReadSet) UnreadCount(alerts []Alert) int {
	n := 0
	for _, a := range alerts {
		if !s.IsRead(a.ID) {
			n++
		}
	}
	return n
}
