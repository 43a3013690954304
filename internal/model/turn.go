// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation state machine for the dashboard chat.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/port"
)

// =============================================================================
// TURN TYPES
// =============================================================================

// Role identifies who authored a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry in the conversation. Turns are appended in strict
// chronological order and never reordered. The only in-place mutation is
// a pending assistant turn transitioning to resolved or failed.
type Turn struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time

	// Sources are the citations backing an assistant answer.
	Sources []answer.Citation

	// Pending marks an assistant turn still waiting for the service.
	Pending bool

	// Failed marks an assistant turn that resolved to an error message.
	Failed bool

	// OfferIncidents marks an assistant turn that should display a
	// "view incidents" shortcut.
	OfferIncidents bool

	// IncidentRange is the date range the incidents shortcut opens with.
	IncidentRange port.DateRange

	// question is the user text that produced this assistant turn, kept
	// for intent detection at resolve time.
	question string
}

// newUserTurn creates a user turn.
func newUserTurn(text string, now time.Time) *Turn {
	return &Turn{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Text:      text,
		CreatedAt: now,
	}
}

// newPendingTurn creates the assistant placeholder for a question.
func newPendingTurn(question string, now time.Time) *Turn {
	return &Turn{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		CreatedAt: now,
		Pending:   true,
		question:  question,
	}
}
