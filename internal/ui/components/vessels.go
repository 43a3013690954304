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

// vesselStatusColor maps a vessel status to its accent color.
func vesselStatusColor(status port.VesselStatus) lipgloss.AdaptiveColor {
	switch status {
	case port.StatusDelayed:
		return styles.Rose
	case port.StatusWaiting:
		return styles.Amber
	case port.StatusApproaching:
		return styles.Blue
	case port.StatusDocked:
		return styles.Emerald
	default:
		return styles.TextSecondary
	}
}

// RenderVesselsPanel renders the vessel list. The selected row is
// highlighted when the panel is focused.
func RenderVesselsPanel(theme *styles.Theme, vessels []port.Vessel, width int, selected int, focused bool) string {
	title := theme.PanelTitle.Render("Vessels")
	badge := theme.PanelBadge.Render(fmt.Sprintf("%d", len(vessels)))

	var rows []string
	rows = append(rows, title+" "+badge)

	inner := width - 4
	for i, v := range vessels {
		status := lipgloss.NewStyle().
			Foreground(vesselStatusColor(v.Status)).
			Render(string(v.Status))

		line := fmt.Sprintf("%s  %s", v.Name, status)
		if v.ETA != "" {
			line += theme.RowMuted.Render("  ETA " + v.ETA)
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

// RenderVesselDetail renders the ship detail view for one vessel.
func RenderVesselDetail(theme *styles.Theme, v *port.Vessel, width int) string {
	if v == nil {
		return theme.PanelBox.Width(width - 2).Render(
			theme.RowMuted.Render("No vessel selected"))
	}

	status := lipgloss.NewStyle().
		Foreground(vesselStatusColor(v.Status)).
		Bold(true).
		Render(string(v.Status))

	var b strings.Builder
	b.WriteString(theme.PanelTitle.Render(v.Name) + "  " + status + "\n\n")
	b.WriteString(detailRow(theme, "Type", v.Type))
	b.WriteString(detailRow(theme, "Flag", v.Flag))
	b.WriteString(detailRow(theme, "Cargo", v.Cargo))
	b.WriteString(detailRow(theme, "ETA", v.ETA))
	b.WriteString(detailRow(theme, "Berth", v.Berth))
	if v.Remarks != "" {
		b.WriteString("\n" + theme.AlertInsight.Render(v.Remarks))
	}

	return theme.PanelBoxFocused.Width(width - 2).Render(b.String())
}

func detailRow(theme *styles.Theme, label, value string) string {
	if value == "" {
		value = "-"
	}
	return theme.RowMuted.Render(fmt.Sprintf("%-8s", label)) +
		theme.RowNormal.Render(value) + "\n"
}
