// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/helmstream/helmstream-tui/internal/port"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
	"github.com/helmstream/helmstream-tui/internal/util"
)

func workflowIndicator(status port.WorkflowStatus) string {
	switch status {
	case port.WorkflowCompleted:
		return styles.StatusIndicators.Success
	case port.WorkflowFailed:
		return styles.StatusIndicators.Error
	case port.WorkflowRunning:
		return styles.StatusIndicators.Active
	default:
		return styles.StatusIndicators.Pending
	}
}

func workflowColor(status port.WorkflowStatus) lipgloss.AdaptiveColor {
	switch status {
	case port.WorkflowCompleted:
		return styles.Emerald
	case port.WorkflowFailed:
		return styles.Rose
	case port.WorkflowRunning:
		return styles.Blue
	default:
		return styles.Amber
	}
}

// RenderWorkflowsPanel renders the automated workflow tickets.
func RenderWorkflowsPanel(theme *styles.Theme, workflows []port.Workflow, width int, selected int, focused bool) string {
	var rows []string
	rows = append(rows, theme.PanelTitle.Render("Automated Workflows"))

	inner := width - 4
	for i, wf := range workflows {
		indicator := lipgloss.NewStyle().
			Foreground(workflowColor(wf.Status)).
			Render(workflowIndicator(wf.Status))

		line := indicator + " " + util.TruncateWidth(wf.Title, inner-6)
		meta := theme.RowMuted.Render("triggered by " + wf.Trigger)

		if focused && i == selected {
			rows = append(rows, theme.RowSelected.Width(inner).Render(line), meta)
		} else {
			rows = append(rows, theme.RowNormal.Render(line), meta)
		}
	}

	box := theme.PanelBox
	if focused {
		box = theme.PanelBoxFocused
	}
	return box.Width(width - 2).Render(strings.Join(rows, "\n"))
}

// RenderWorkflowDetail renders one workflow ticket in full.
func RenderWorkflowDetail(theme *styles.Theme, wf *port.Workflow, width int) string {
	if wf == nil {
		return theme.PanelBox.Width(width - 2).Render(
			theme.RowMuted.Render("No workflow selected"))
	}

	status := lipgloss.NewStyle().
		Foreground(workflowColor(wf.Status)).
		Bold(true).
		Render(string(wf.Status))

	var b strings.Builder
	b.WriteString(theme.PanelTitle.Render(wf.Title) + "  " + status + "\n\n")
	b.WriteString(detailRow(theme, "Trigger", wf.Trigger))
	b.WriteString(detailRow(theme, "Vessel", wf.Vessel))
	b.WriteString(detailRow(theme, "Created", wf.CreatedAt))
	b.WriteString("\n" + theme.RowNormal.Render(wf.Description))

	return theme.PanelBoxFocused.Width(width - 2).Render(b.String())
}
