// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package answer provides the HTTP client for the remote answer service
// that powers the dashboard chat.
//
// The service exposes a single endpoint, POST /api/query, authenticated
// with an x-api-key header. Each question results in exactly one request;
// the client never retries. Every failure mode collapses into a
// *ServiceError carrying one of three causes:
//
//   - "network" for connectivity problems and timeouts
//   - "http-status:<code>" for non-2xx responses
//   - "malformed-response" for bodies that fail to parse or lack an answer
//
// # Key Functions
//
//   - NewClient: build a client from configuration
//   - Ask: send one question, get an Answer with citation Sources
//   - AskWithFilters: same, with an explicit filters object
//
// Requests carry an X-Request-ID header (UUID) for correlation and are
// paced by a token-bucket rate limiter.
package answer
