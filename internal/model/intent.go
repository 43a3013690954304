// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/helmstream/helmstream-tui/internal/port"
)

// =============================================================================
// INCIDENT INTENT DETECTION
// =============================================================================

// incidentKeywords is the fixed keyword set that triggers the
// "view incidents" shortcut on an answered question.
var incidentKeywords = []string{
	"incident",
	"incidents",
	"alert",
	"alerts",
	"problem",
	"problems",
	"issue",
	"issues",
	"critical",
}

// DefaultIncidentLookbackDays is the width of the default incident range
// attached to the shortcut.
const DefaultIncidentLookbackDays = 10

// DetectIncidentIntent reports whether a question is asking about
// incidents, by case-insensitive substring match against a fixed keyword
// list. Text is NFC-normalized first so composed and decomposed input
// match the same way.
func DetectIncidentIntent(question string) bool {
	q := strings.ToLower(norm.NFC.String(question))
	for _, kw := range incidentKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// DefaultIncidentRange returns the date range the incidents shortcut
// opens with: the last ten calendar days up to and including today.
func DefaultIncidentRange(now time.Time) port.DateRange {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return port.DateRange{
		Start: today.AddDate(0, 0, -DefaultIncidentLookbackDays),
		End:   today,
	}
}
