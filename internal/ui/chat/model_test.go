// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/config"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
)

func newTestChat() Model {
	cfg := config.Default()
	m := New(styles.NewTheme(), answer.NewClient(cfg))
	m.SetSize(100, 30)
	m.Focus()
	return m
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSubmitViaEnter(t *testing.T) {
	m := newTestChat()
	m = typeString(m, "any alerts?")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a question should start the async query")
	}
	if m.Conversation().Len() != 2 {
		t.Errorf("got %d turns, want 2", m.Conversation().Len())
	}
	if !m.Conversation().HasPending() {
		t.Error("conversation should be pending")
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after submit")
	}
}

func TestEnterOnEmptyInputDoesNothing(t *testing.T) {
	m := newTestChat()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty input should not produce a command")
	}
	if m.Conversation().Len() != 0 {
		t.Errorf("got %d turns, want 0", m.Conversation().Len())
	}
}

func TestAnswerResultResolvesTurn(t *testing.T) {
	m := newTestChat()
	m = typeString(m, "how many incidents?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	id := m.Conversation().PendingID()
	m, _ = m.Update(AnswerResultMsg{
		TurnID: id,
		Answer: &answer.Answer{Answer: "Three.", Sources: []answer.Citation{}},
	})

	if m.Conversation().HasPending() {
		t.Error("turn should be resolved")
	}
	resolved := m.Conversation().TurnByID(id)
	if resolved.Text != "Three." {
		t.Errorf("text = %q", resolved.Text)
	}
	if !resolved.OfferIncidents {
		t.Error("incident question should offer the shortcut")
	}
}

func TestAnswerFailShowsError(t *testing.T) {
	m := newTestChat()
	m = typeString(m, "hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	id := m.Conversation().PendingID()
	m, _ = m.Update(AnswerFailMsg{
		TurnID: id,
		Err:    &answer.ServiceError{Cause: answer.CauseNetwork},
	})

	failed := m.Conversation().TurnByID(id)
	if !failed.Failed {
		t.Error("turn should be failed")
	}
	if !strings.Contains(strings.ToLower(failed.Text), "network") {
		t.Errorf("failure text %q should mention the network", failed.Text)
	}
}

func TestStaleAnswerIsDropped(t *testing.T) {
	m := newTestChat()
	m = typeString(m, "q")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// A result for an unknown correlation ID must not disturb state.
	m, _ = m.Update(AnswerResultMsg{TurnID: "stale-id", Answer: &answer.Answer{Answer: "x"}})

	if !m.Conversation().HasPending() {
		t.Error("pending turn should be untouched by a stale result")
	}
}

func TestQuickReplyKey(t *testing.T) {
	m := newTestChat()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	if cmd == nil {
		t.Fatal("quick reply should start a query")
	}
	turns := m.Conversation().Turns()
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}
	if turns[0].Text != "How many incidents in the last ten days?" {
		t.Errorf("quick reply text = %q", turns[0].Text)
	}
}

func TestIncidentShortcutEmitsOpenMsg(t *testing.T) {
	m := newTestChat()
	m = typeString(m, "any incidents?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	id := m.Conversation().PendingID()
	m, _ = m.Update(AnswerResultMsg{TurnID: id, Answer: &answer.Answer{Answer: "Yes."}})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	if cmd == nil {
		t.Fatal("'v' should emit the open-incidents message")
	}
	msg := cmd()
	open, ok := msg.(OpenIncidentsMsg)
	if !ok {
		t.Fatalf("got %T, want OpenIncidentsMsg", msg)
	}
	if open.Range.IsZero() {
		t.Error("shortcut should carry the default date range")
	}
}

func TestViewRendersTurns(t *testing.T) {
	m := newTestChat()
	m = typeString(m, "status?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	id := m.Conversation().PendingID()
	m, _ = m.Update(AnswerResultMsg{
		TurnID: id,
		Answer: &answer.Answer{
			Answer: "All quiet.",
			Sources: []answer.Citation{
				{Subject: "s1"}, {Subject: "s2"}, {Subject: "s3"}, {Subject: "s4"}, {Subject: "s5"},
			},
		},
	})

	out := m.View()
	if !strings.Contains(out, "All quiet.") {
		t.Error("view should contain the answer")
	}
	if !strings.Contains(out, "and 2 more sources") {
		t.Error("view should collapse citations past the first three")
	}
}
