// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the dashboard's chat widget.
package chat

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/model"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
)

// MaxQuestionLen caps the chat input length.
const MaxQuestionLen = 500

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat widget. It owns the
// conversation state machine and the answer-service client; the dashboard
// embeds it and forwards messages while the chat is focused.
type Model struct {
	theme  *styles.Theme
	conv   *model.Conversation
	client *answer.Client

	input   textinput.Model
	spinner spinner.Model

	width   int
	height  int
	focused bool
}

// New creates a chat widget.
func New(theme *styles.Theme, client *answer.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about vessels, berths, or incidents..."
	ti.CharLimit = MaxQuestionLen
	ti.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		theme:   theme,
		conv:    model.NewConversation(),
		client:  client,
		input:   ti,
		spinner: sp,
	}
}

// Conversation exposes the underlying conversation, mainly for tests.
func (m *Model) Conversation() *model.Conversation {
	return m.conv
}

// Focus gives the chat keyboard focus.
func (m *Model) Focus() {
	m.focused = true
	m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// Focused reports whether the chat has keyboard focus.
func (m *Model) Focused() bool {
	return m.focused
}

// SetSize updates the widget dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case AnswerResultMsg:
		if err := m.conv.Resolve(msg.TurnID, msg.Answer); err != nil {
			// A response for a turn we no longer track; drop it.
			return m, nil
		}
		return m, nil

	case AnswerFailMsg:
		if err := m.conv.Fail(msg.TurnID, msg.Err); err != nil {
			return m, nil
		}
		return m, nil

	case spinner.TickMsg:
		if m.conv.HasPending() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.focused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		question := m.input.Value()
		m.input.Reset()
		return m.submit(question)

	case "v":
		// Only intercept when the input is empty, so typing "v" still
		// works; otherwise open the incidents shortcut of the latest
		// answered turn that offers one.
		if m.input.Value() == "" {
			if t := m.latestIncidentOffer(); t != nil {
				r := t.IncidentRange
				return m, func() tea.Msg { return OpenIncidentsMsg{Range: r} }
			}
		}

	case "ctrl+r":
		m.conv.Clear()
		return m, nil

	case "1", "2", "3", "4":
		if m.input.Value() == "" {
			if n, err := strconv.Atoi(msg.String()); err == nil && n <= len(model.QuickReplies) {
				return m.submit(model.QuickReplies[n-1])
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the conversation's submit and, when a turn was created,
// starts the async query plus the spinner.
func (m Model) submit(question string) (Model, tea.Cmd) {
	id, err := m.conv.Submit(question)
	if err != nil || id == "" {
		// Empty input or a question already in flight; the input stays
		// usable either way.
		return m, nil
	}

	// Capture everything the goroutine needs before it starts.
	client := m.client
	turnID := id
	ask := func() tea.Msg {
		ans, err := client.Ask(context.Background(), question)
		if err != nil {
			return AnswerFailMsg{TurnID: turnID, Err: err}
		}
		return AnswerResultMsg{TurnID: turnID, Answer: ans}
	}

	return m, tea.Batch(ask, m.spinner.Tick)
}

// latestIncidentOffer returns the newest turn offering the incidents
// shortcut, or nil.
func (m Model) latestIncidentOffer() *model.Turn {
	turns := m.conv.Turns()
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].OfferIncidents {
			return turns[i]
		}
	}
	return nil
}

// quickReplyHint renders the numbered quick replies for the empty state.
func (m Model) quickReplyHint() string {
	out := ""
	for i, q := range model.QuickReplies {
		out += m.theme.ShortcutKey.Render(fmt.Sprintf("%d", i+1)) + " " +
			m.theme.ShortcutDesc.Render(q) + "\n"
	}
	return out
}
