// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/helmstream/helmstream-tui/internal/port"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
	"github.com/helmstream/helmstream-tui/internal/util"
)

func berthStatusColor(status string) lipgloss.AdaptiveColor {
	switch status {
	case "occupied":
		return styles.Amber
	case "available":
		return styles.Emerald
	case "maintenance":
		return styles.Rose
	default:
		return styles.TextSecondary
	}
}

// RenderBerthsPanel renders the berth list with occupancy status.
func RenderBerthsPanel(theme *styles.Theme, berths []port.Berth, width int, selected int, focused bool) string {
	title := theme.PanelTitle.Render("Berths")

	var rows []string
	rows = append(rows, title)

	inner := width - 4
	for i, b := range berths {
		status := lipgloss.NewStyle().
			Foreground(berthStatusColor(b.Status)).
			Render(b.Status)

		line := fmt.Sprintf("%s  %s", b.Name, status)
		if b.Occupant != "" {
			line += theme.RowMuted.Render("  " + b.Occupant)
		}
		line = util.TruncateWidth(line, inner)

		if focused && i == selected {
			rows = append(rows, theme.RowSelected.Width(inner).Render(line))
		} else {
			rows = append(rows, theme.RowNormal.Render(line))
		}
	}

	box := theme.PanelBox
	if focused {
		box = theme.PanelBoxFocused
	}
	return box.Width(width - 2).Render(strings.Join(rows, "\n"))
}

// RenderBerthDetail renders one berth with its schedule.
func RenderBerthDetail(theme *styles.Theme, b *port.Berth, width int) string {
	if b == nil {
		return theme.PanelBox.Width(width - 2).Render(
			theme.RowMuted.Render("No berth selected"))
	}

	status := lipgloss.NewStyle().
		Foreground(berthStatusColor(b.Status)).
		Bold(true).
		Render(b.Status)

	var sb strings.Builder
	sb.WriteString(theme.PanelTitle.Render(b.Name) + "  " + status + "\n")
	if b.Occupant != "" {
		sb.WriteString(theme.RowNormal.Render("Occupied by "+b.Occupant) + "\n")
	}

	if len(b.Schedule) > 0 {
		sb.WriteString("\n" + theme.PanelTitle.Render("Schedule") + "\n")
		for _, slot := range b.Schedule {
			sb.WriteString(theme.RowNormal.Render(slot.Vessel) +
				theme.RowMuted.Render(fmt.Sprintf("  %s - %s", slot.From, slot.To)) + "\n")
		}
	}

	return theme.PanelBoxFocused.Width(width - 2).Render(strings.TrimRight(sb.String(), "\n"))
}
