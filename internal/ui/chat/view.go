// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/model"
	"github.com/helmstream/helmstream-tui/internal/ui/components"
)

// maxVisibleSources is how many citations are listed before collapsing
// the rest into a count.
const maxVisibleSources = 3

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	messages := m.renderTurns()
	input := m.renderInput()

	// The message area gets whatever height the input does not use.
	inputHeight := lipgloss.Height(input)
	messageHeight := m.height - inputHeight
	if messageHeight < 1 {
		messageHeight = 1
	}

	messageArea := lipgloss.NewStyle().
		Width(m.width).
		Height(messageHeight).
		Render(messages)

	return lipgloss.JoinVertical(lipgloss.Left, messageArea, input)
}

// renderTurns renders the conversation, newest at the bottom.
func (m Model) renderTurns() string {
	if m.conv.IsEmpty() {
		return m.renderEmptyState()
	}

	bubbleWidth := m.width - 8
	var blocks []string
	for _, t := range m.conv.Turns() {
		blocks = append(blocks, m.renderTurn(t, bubbleWidth))
	}
	return strings.Join(blocks, "\n")
}

func (m Model) renderTurn(t *model.Turn, width int) string {
	switch {
	case t.Role == model.RoleUser:
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Right).
			Render(m.theme.UserBubble.MaxWidth(width).Render(t.Text))

	case t.Pending:
		return m.theme.ThinkingText.Render(m.spinner.View() + " thinking...")

	case t.Failed:
		return m.theme.ErrorBubble.MaxWidth(width).Render(t.Text)

	default:
		body := components.ParseCodeBlocks(t.Text, width)
		block := m.theme.AssistantBubble.MaxWidth(width).Render(body)

		if len(t.Sources) > 0 {
			block += "\n" + m.renderSources(t.Sources)
		}
		if t.OfferIncidents {
			block += "\n" + m.theme.ShortcutButton.Render("v: view incidents")
		}
		return block
	}
}

// renderSources lists the top citations, collapsing the tail into a
// "... and N more sources" line.
func (m Model) renderSources(sources []answer.Citation) string {
	var lines []string

	visible := sources
	if len(visible) > maxVisibleSources {
		visible = visible[:maxVisibleSources]
	}
	for _, s := range visible {
		line := s.Subject
		if s.Vessel != "" {
			line += " (" + s.Vessel + ")"
		}
		lines = append(lines, m.theme.SourceLine.Render("- "+line))
	}
	if rest := len(sources) - len(visible); rest > 0 {
		lines = append(lines, m.theme.SourceLine.Render(
			fmt.Sprintf("... and %d more sources", rest)))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderEmptyState() string {
	title := m.theme.PanelTitle.Render("Ask the port assistant")
	hint := m.theme.InputPlaceholder.Render("Questions go to the answer service with cited sources.")
	return title + "\n" + hint + "\n\n" + m.quickReplyHint()
}

func (m Model) renderInput() string {
	var status string
	if m.conv.HasPending() {
		status = m.theme.ThinkingDots.Render("waiting for answer")
	} else {
		status = m.theme.CharCount.Render(
			fmt.Sprintf("%d/%d", len(m.input.Value()), MaxQuestionLen))
	}

	return m.theme.InputContainer.Width(m.width - 2).Render(
		m.input.View() + "\n" + status)
}
