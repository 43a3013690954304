// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation state machine behind the
// dashboard chat.
//
// A Conversation owns an ordered, append-only list of turns. Submitting a
// question appends a user turn and a pending assistant placeholder; the
// placeholder is later resolved to the service's answer or failed to a
// visible error message. Placeholders are addressed by correlation ID so
// responses always land on the turn that asked, even if another question
// was submitted in the meantime.
//
// # Key Functions
//
//   - NewConversation: create an empty conversation
//   - Submit: append a question and its pending placeholder
//   - Resolve: fill a placeholder with the answer and citations
//   - Fail: turn a service failure into a visible chat message
//   - DetectIncidentIntent: keyword test behind the incidents shortcut
//
// Questions about incidents (matched against a fixed keyword list) get a
// "view incidents" shortcut attached to the answered turn, preset to the
// last ten days.
package model
