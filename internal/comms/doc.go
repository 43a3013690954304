// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package comms indexes port communications for full-text search.
//
// The index is an in-memory SQLite database with an FTS5 mirror over
// message subjects, bodies, senders, and vessel names. It is rebuilt from
// the fleet dataset on startup and on every fleet reload; nothing is
// persisted.
//
// # Key Functions
//
//   - NewMessageIndex: open an empty index
//   - Load: replace the index contents with a message list
//   - Search: ranked full-text search
//   - CountByChannel, UnreadCount: panel badge counters
package comms
