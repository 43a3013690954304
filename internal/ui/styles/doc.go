// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the helmstream TUI.
//
// The package exposes an adaptive color palette (light/dark aware via
// lipgloss.AdaptiveColor) and a Theme struct that groups every styled
// component used by the dashboard: panels, alert cards, chat bubbles,
// the input area, and the status bar.
//
// Terminal capabilities are detected once at startup with termenv; the
// palette degrades gracefully on terminals without true color.
package styles
