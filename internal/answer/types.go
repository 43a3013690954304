// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package answer

import (
	"errors"
	"fmt"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// Citation identifies a source document backing an answer. Citations are
// supplied entirely by the remote service and are displayed, never mutated.
type Citation struct {
	EmailID         string  `json:"email_id"`
	Sender          string  `json:"sender"`
	SenderRole      string  `json:"sender_role"`
	Subject         string  `json:"subject"`
	Date            string  `json:"date"`
	Vessel          string  `json:"vessel"`
	EventCategory   string  `json:"event_category"`
	SimilarityScore float64 `json:"similarity_score"`
}

// TokenUsage reports token counts for a single query.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Answer is a successful response from the answer service.
type Answer struct {
	Answer         string         `json:"answer"`
	Sources        []Citation     `json:"sources"`
	FiltersApplied map[string]any `json:"filters_applied"`
	TokenUsage     TokenUsage     `json:"token_usage"`
}

// queryRequest is the JSON body sent to POST /api/query.
type queryRequest struct {
	Query   string         `json:"query"`
	Filters map[string]any `json:"filters"`
}

// answerEnvelope mirrors Answer but with a pointer answer field so a
// missing "answer" key can be told apart from an empty string.
type answerEnvelope struct {
	Answer         *string        `json:"answer"`
	Sources        []Citation     `json:"sources"`
	FiltersApplied map[string]any `json:"filters_applied"`
	TokenUsage     TokenUsage     `json:"token_usage"`
}

// =============================================================================
// ERRORS
// =============================================================================

// Failure causes carried by ServiceError.
const (
	CauseNetwork   = "network"
	CauseMalformed = "malformed-response"
)

// CauseHTTPStatus builds the failure cause for a non-2xx response.
func CauseHTTPStatus(code int) string {
	return fmt.Sprintf("http-status:%d", code)
}

var (
	// ErrEmptyQuestion indicates the question was empty after trimming.
	// Rejected locally, no request is made.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrNotConfigured indicates the service API key is not set.
	ErrNotConfigured = errors.New("answer service API key not configured")
)

// ServiceError represents a failed query to the answer service. Every
// network-level failure, non-2xx status, and unparseable body surfaces as
// a ServiceError with a machine-readable Cause.
type ServiceError struct {
	// Cause is one of "network", "http-status:<code>", "malformed-response".
	Cause string

	// Status is the HTTP status code, when one was received.
	Status int

	// Err is the underlying error, when one exists.
	Err error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("answer service error (%s): %v", e.Cause, e.Err)
	}
	return fmt.Sprintf("answer service error (%s)", e.Cause)
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsNetwork reports whether the failure was a connectivity problem
// (connection refused, DNS failure, timeout).
func (e *ServiceError) IsNetwork() bool {
	return e.Cause == CauseNetwork
}
