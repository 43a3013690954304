// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/helmstream/helmstream-tui/internal/answer"
)

// QuickReplies is the fixed set of canned questions offered by the chat.
var QuickReplies = []string{
	"How many incidents in the last ten days?",
	"What's the impact of the schedule change?",
	"Show tomorrow's schedule",
	"Status of MSC Horizon",
}

// Errors returned by conversation operations.
var (
	// ErrSubmitWhilePending indicates a submit was attempted while an
	// earlier question is still awaiting its answer.
	ErrSubmitWhilePending = errors.New("a question is already awaiting its answer")

	// ErrUnknownTurn indicates the referenced turn does not exist.
	ErrUnknownTurn = errors.New("unknown turn")

	// ErrTurnNotPending indicates the referenced turn is not awaiting
	// resolution.
	ErrTurnNotPending = errors.New("turn is not pending")
)

// =============================================================================
// CONVERSATION
// =============================================================================

// Conversation owns the ordered list of chat turns.
//
// Submit appends a user turn plus a pending assistant placeholder and
// returns the placeholder's ID; the caller resolves or fails it by that
// ID once the answer service responds. Resolution targets the turn by
// correlation ID, never by list position, so a late response can never
// clobber the wrong turn.
//
// At most one pending turn exists at a time: Submit refuses while an
// earlier question is in flight.
type Conversation struct {
	turns     []*Turn
	pendingID string

	// now is the clock, swappable in tests.
	now func() time.Time
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{now: time.Now}
}

// Turns returns the turn list in chronological order.
func (c *Conversation) Turns() []*Turn {
	return c.turns
}

// Len returns the number of turns.
func (c *Conversation) Len() int {
	return len(c.turns)
}

// IsEmpty reports whether the conversation has no turns.
func (c *Conversation) IsEmpty() bool {
	return len(c.turns) == 0
}

// HasPending reports whether a question is awaiting its answer.
func (c *Conversation) HasPending() bool {
	return c.pendingID != ""
}

// PendingID returns the ID of the pending assistant turn, or "".
func (c *Conversation) PendingID() string {
	return c.pendingID
}

// TurnByID returns the turn with the given ID, or nil.
func (c *Conversation) TurnByID(id string) *Turn {
	for _, t := range c.turns {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// LastTurn returns the most recent turn, or nil.
func (c *Conversation) LastTurn() *Turn {
	if len(c.turns) == 0 {
		return nil
	}
	return c.turns[len(c.turns)-1]
}

// =============================================================================
// SUBMIT / RESOLVE / FAIL
// =============================================================================

// Submit records a user question and appends the pending assistant
// placeholder that will hold its answer. It returns the placeholder's ID
// for later resolution.
//
// A question that is empty after trimming produces no turns and returns
// ("", nil): the caller simply has nothing to send. Submitting while an
// earlier question is pending returns ErrSubmitWhilePending.
func (c *Conversation) Submit(question string) (pendingID string, err error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", nil
	}
	if c.pendingID != "" {
		return "", ErrSubmitWhilePending
	}

	now := c.now()
	user := newUserTurn(question, now)
	pending := newPendingTurn(question, now)

	c.turns = append(c.turns, user, pending)
	c.pendingID = pending.ID
	return pending.ID, nil
}

// Resolve fills a pending turn with the service's answer. The turn is
// located by ID; it must be the pending placeholder created by Submit.
//
// If the original question matched the incident keyword set, the resolved
// turn carries the "view incidents" shortcut with the default date range
// of the last ten days.
func (c *Conversation) Resolve(id string, ans *answer.Answer) error {
	t := c.TurnByID(id)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTurn, id)
	}
	if !t.Pending {
		return fmt.Errorf("%w: %s", ErrTurnNotPending, id)
	}

	t.Pending = false
	t.Failed = false
	t.Text = ans.Answer
	t.Sources = ans.Sources

	if DetectIncidentIntent(t.question) {
		t.OfferIncidents = true
		t.IncidentRange = DefaultIncidentRange(c.now())
	}

	if c.pendingID == id {
		c.pendingID = ""
	}
	return nil
}

// Fail resolves a pending turn to a visible error message chosen by the
// failure cause. The service error never propagates past this point; it
// becomes a chat turn.
func (c *Conversation) Fail(id string, cause error) error {
	t := c.TurnByID(id)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTurn, id)
	}
	if !t.Pending {
		return fmt.Errorf("%w: %s", ErrTurnNotPending, id)
	}

	t.Pending = false
	t.Failed = true
	t.Text = failureMessage(cause)

	if c.pendingID == id {
		c.pendingID = ""
	}
	return nil
}

// failureMessage maps a service failure to the message shown in chat.
func failureMessage(cause error) string {
	var svcErr *answer.ServiceError
	if errors.As(cause, &svcErr) {
		switch {
		case svcErr.IsNetwork():
			return "Unable to reach the answer service due to a network problem. Check your connection and try again."
		case svcErr.Status != 0:
			return fmt.Sprintf("The answer service returned an error (HTTP %d). Please try again.", svcErr.Status)
		default:
			return "The answer service sent an unexpected reply. Please try again."
		}
	}
	return "Something went wrong while answering. Please try again."
}

// Clear removes all turns and pending state.
func (c *Conversation) Clear() {
	c.turns = nil
	c.pendingID = ""
}
