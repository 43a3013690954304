// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/port"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// AnswerResultMsg delivers a successful answer for the turn with the
// given correlation ID.
type AnswerResultMsg struct {
	TurnID string
	Answer *answer.Answer
}

// AnswerFailMsg delivers a failed query for the turn with the given
// correlation ID.
type AnswerFailMsg struct {
	TurnID string
	Err    error
}

// OpenIncidentsMsg asks the dashboard to open the alerts view with the
// given date range. Emitted by the "view incidents" shortcut.
type OpenIncidentsMsg struct {
	Range port.DateRange
}
