// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav implements the dashboard's panel router: a single top-level
// selector holding at most one active modal view at a time, plus the
// auxiliary selection state (ship, berth, channel, alert date range) the
// active panel consumes.
//
// Open replaces the active view; Close is the single uniform teardown
// path that clears the view and every selection field. Opening the alerts
// view without a date range explicitly clears any previous range rather
// than keeping it.
package nav
