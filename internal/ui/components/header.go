// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/helmstream/helmstream-tui/internal/port"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
)

// RenderHeader renders the dashboard's top bar: brand, vessel summary,
// and the unread alert badge.
func RenderHeader(theme *styles.Theme, width int, fleet *port.Fleet, unreadAlerts int) string {
	brand := theme.HeaderBrand.Render("HELMSTREAM")
	subtitle := theme.HeaderSubtitle.Render("port operations")

	var delayed, waiting int
	for _, v := range fleet.Vessels {
		switch v.Status {
		case port.StatusDelayed:
			delayed++
		case port.StatusWaiting:
			waiting++
		}
	}

	summary := theme.HeaderTitle.Render(
		fmt.Sprintf("%d vessels", len(fleet.Vessels)))
	if delayed > 0 {
		summary += theme.HeaderSubtitle.Render(fmt.Sprintf("  %d delayed", delayed))
	}
	if waiting > 0 {
		summary += theme.HeaderSubtitle.Render(fmt.Sprintf("  %d waiting", waiting))
	}

	var badge string
	if unreadAlerts > 0 {
		badge = theme.UnreadBadge.Render(fmt.Sprintf("%d unread alerts", unreadAlerts))
	}

	left := brand + " " + subtitle + "  " + summary
	gap := width - lipgloss.Width(left) - lipgloss.Width(badge) - 2
	if gap < 1 {
		gap = 1
	}

	return theme.Header.Width(width).Render(
		left + lipgloss.NewStyle().Width(gap).Render("") + badge)
}
