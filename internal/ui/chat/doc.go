// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the dashboard's chat widget as a Bubble Tea
// model.
//
// The widget wraps the conversation state machine from internal/model and
// the answer-service client from internal/answer. Submitting a question
// kicks off an async command whose result comes back as an
// AnswerResultMsg or AnswerFailMsg tagged with the pending turn's
// correlation ID, so late responses always land on the right turn.
//
// Answered turns that offer the "view incidents" shortcut emit an
// OpenIncidentsMsg when activated; the dashboard routes it to the alerts
// view.
package chat
