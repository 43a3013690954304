// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/helmstream/helmstream-tui/internal/port"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
	"github.com/helmstream/helmstream-tui/internal/util"
)

// RenderMessagesPanel renders the communications panel: channel tabs on
// top, the selected channel's messages below.
func RenderMessagesPanel(theme *styles.Theme, fleet *port.Fleet, active port.Channel,
	width int, selected int, focused bool) string {

	var tabs []string
	for _, ch := range port.Channels {
		count := len(fleet.MessagesForChannel(ch))
		label := fmt.Sprintf("%s (%d)", ch, count)
		if ch == active {
			tabs = append(tabs, theme.ShortcutButton.Render(label))
		} else {
			tabs = append(tabs, theme.PanelBadge.Render(label))
		}
	}

	var rows []string
	rows = append(rows, theme.PanelTitle.Render("Communications"))
	rows = append(rows, strings.Join(tabs, " "))

	inner := width - 4
	messages := fleet.MessagesForChannel(active)
	if len(messages) == 0 {
		rows = append(rows, theme.RowMuted.Render("No messages on this channel"))
	}
	for i, m := range messages {
		subject := m.Subject
		if m.Unread {
			subject = "* " + subject
		}
		line := util.TruncateWidth(subject, inner)
		meta := theme.RowMuted.Render(fmt.Sprintf("%s, %s  %s", m.Sender, m.SenderRole, m.Timestamp))

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

// RenderSearchResults renders full-text search hits over communications.
func RenderSearchResults(theme *styles.Theme, query string, results []port.Message, width int) string {
	var rows []string
	rows = append(rows, theme.PanelTitle.Render("Search")+" "+
		theme.RowMuted.Render(fmt.Sprintf("%q, %d hits", query, len(results))))

	inner := width - 4
	if len(results) == 0 {
		rows = append(rows, theme.RowMuted.Render("No matching messages"))
	}
	for _, m := range results {
		rows = append(rows, theme.RowNormal.Render(util.TruncateWidth(m.Subject, inner)))
		rows = append(rows, theme.RowMuted.Render(fmt.Sprintf("%s on %s, %s", m.Sender, m.Channel, m.Timestamp)))
	}

	return theme.PanelBox.Width(width - 2).Render(strings.Join(rows, "\n"))
}
