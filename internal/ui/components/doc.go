// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the render helpers behind the dashboard
// panels: vessels, berths, alerts, communications, workflows, the header,
// the status bar, and syntax-highlighted code blocks in chat answers.
//
// Components are pure functions from theme plus data to a rendered
// string; all state (cursors, focus, filters) lives in the dashboard and
// chat models.
package components
