// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/helmstream/helmstream-tui/internal/ui/styles"
)

// Shortcut is one key hint in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// RenderStatusBar renders the bottom key-hint bar. Hints are dropped from
// the right when the terminal is too narrow.
func RenderStatusBar(theme *styles.Theme, width int, shortcuts []Shortcut) string {
	var parts []string
	used := 0

	for _, s := range shortcuts {
		part := theme.ShortcutKey.Render(s.Key) + " " + theme.ShortcutDesc.Render(s.Desc)
		w := lipgloss.Width(part) + 2
		if used+w > width-2 {
			break
		}
		parts = append(parts, part)
		used += w
	}

	return theme.StatusBar.Width(width).Render(strings.Join(parts, "  "))
}
