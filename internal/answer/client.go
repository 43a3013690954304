// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package answer provides the client for the remote answer service.
package answer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/helmstream/helmstream-tui/internal/config"
)

// Configuration constants for the answer service API.
const (
	// queryPath is the query endpoint, appended to the base URL.
	queryPath = "/api/query"

	// DefaultTimeout bounds each query request. A hung request would
	// otherwise leave the conversation pending forever.
	DefaultTimeout = 30 * time.Second

	// DefaultRatePerSec caps outbound queries per second.
	DefaultRatePerSec = 2

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// sharedHTTPClient is the pooled HTTP client for all answer-service
// requests. Per-request timeouts are applied via context.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the remote answer service.
//
// The client performs exactly one POST per question. No retry is performed
// here; retry policy, if desired, belongs to the caller.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	userAgent  string
}

// NewClient creates a client from configuration.
func NewClient(cfg *config.Config) *Client {
	timeout := DefaultTimeout
	if cfg.Service.TimeoutSecs > 0 {
		timeout = time.Duration(cfg.Service.TimeoutSecs) * time.Second
	}

	ratePerSec := cfg.Service.RatePerSec
	if ratePerSec <= 0 {
		ratePerSec = DefaultRatePerSec
	}

	return &Client{
		apiKey:     strings.TrimSpace(cfg.Service.APIKey),
		baseURL:    strings.TrimSuffix(cfg.Service.BaseURL, "/"),
		httpClient: sharedHTTPClient,
		timeout:    timeout,
		limiter:    rate.NewLimiter(rate.Limit(ratePerSec), 1),
		userAgent:  "helmstream/0.1.0",
	}
}

// WithBaseURL sets a custom base URL.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	return c
}

// WithHTTPClient sets a custom HTTP client. Used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// IsConfigured returns true if the client has an API key configured.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIKeyMasked returns a masked version of the API key for display.
// Never exposes key fragments.
func (c *Client) APIKeyMasked() string {
	if c.apiKey == "" {
		return "[not set]"
	}
	return fmt.Sprintf("[REDACTED, length=%d, fingerprint=%s]", len(c.apiKey), c.keyFingerprint())
}

// keyFingerprint returns a short SHA-256 fingerprint of the API key.
func (c *Client) keyFingerprint() string {
	h := sha256.Sum256([]byte(c.apiKey))
	return hex.EncodeToString(h[:4])
}

// =============================================================================
// QUERY
// =============================================================================

// Ask sends one question to the answer service and returns the structured
// answer plus citation sources.
//
// An empty question (after trimming) is rejected locally with
// ErrEmptyQuestion and no request is made. All remote failures surface as
// a *ServiceError whose Cause distinguishes connectivity problems, non-2xx
// statuses, and unparseable bodies.
func (c *Client) Ask(ctx context.Context, question string) (*Answer, error) {
	return c.AskWithFilters(ctx, question, nil)
}

// AskWithFilters is Ask with an explicit filters object. A nil filters map
// is sent as an empty object.
func (c *Client) AskWithFilters(ctx context.Context, question string, filters map[string]any) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	if filters == nil {
		filters = map[string]any{}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &ServiceError{Cause: CauseNetwork, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	bodyBytes, err := json.Marshal(queryRequest{Query: question, Filters: filters})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+queryPath, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)

	req.Header.Del("x-api-key")

	if err != nil {
		// Timeouts and cancellations take the network path so a hung
		// request resolves to a visible network failure.
		return nil, &ServiceError{Cause: CauseNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return nil, &ServiceError{Cause: CauseNetwork, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServiceError{
			Cause:  CauseHTTPStatus(resp.StatusCode),
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	var env answerEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ServiceError{Cause: CauseMalformed, Status: resp.StatusCode, Err: err}
	}
	if env.Answer == nil {
		return nil, &ServiceError{
			Cause:  CauseMalformed,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("response missing answer field"),
		}
	}

	sources := env.Sources
	if sources == nil {
		sources = []Citation{}
	}

	return &Answer{
		Answer:         *env.Answer,
		Sources:        sources,
		FiltersApplied: env.FiltersApplied,
		TokenUsage:     env.TokenUsage,
	}, nil
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}

	return body, nil
}
