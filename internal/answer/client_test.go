// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package answer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/helmstream/helmstream-tui/internal/config"
)

func newTestClient(baseURL string) *Client {
	cfg := config.Default()
	cfg.Service.BaseURL = baseURL
	cfg.Service.APIKey = "test-key"
	cfg.Service.RatePerSec = 1000 // don't rate-limit tests
	return NewClient(cfg)
}

func TestAskEmptyQuestion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty question should not reach the network")
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := client.Ask(context.Background(), q); !errors.Is(err, ErrEmptyQuestion) {
			t.Errorf("Ask(%q) error = %v, want ErrEmptyQuestion", q, err)
		}
	}
}

func TestAskHappyPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/query" {
			t.Errorf("path = %s, want /api/query", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		var req struct {
			Query   string         `json:"query"`
			Filters map[string]any `json:"filters"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Query != "How many incidents in the last ten days?" {
			t.Errorf("query = %q", req.Query)
		}
		if req.Filters == nil {
			t.Error("filters should be an empty object, not null")
		}

		json.NewEncoder(w).Encode(map[string]any{
			"answer": "There were 3 incidents.",
			"sources": []map[string]any{
				{
					"email_id":         "msg-7",
					"sender":           "Capt. Reyes",
					"sender_role":      "Captain",
					"subject":          "Engine failure",
					"date":             "Nov 7, 13:47",
					"vessel":           "MV Pacific Glory",
					"event_category":   "incident",
					"similarity_score": 0.92,
				},
			},
			"filters_applied": map[string]any{},
			"token_usage":     map[string]int{"input_tokens": 40, "output_tokens": 12},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ans, err := client.Ask(context.Background(), "How many incidents in the last ten days?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if ans.Answer != "There were 3 incidents." {
		t.Errorf("answer = %q", ans.Answer)
	}
	if len(ans.Sources) != 1 {
		t.Fatalf("got %d sources, want 1", len(ans.Sources))
	}
	if ans.Sources[0].Vessel != "MV Pacific Glory" {
		t.Errorf("source vessel = %q", ans.Sources[0].Vessel)
	}
	if ans.TokenUsage.InputTokens != 40 {
		t.Errorf("input tokens = %d", ans.TokenUsage.InputTokens)
	}
}

func TestAskHTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Ask(context.Background(), "status?")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %v", err)
	}
	if svcErr.Cause != "http-status:500" {
		t.Errorf("cause = %q, want http-status:500", svcErr.Cause)
	}
	if svcErr.Status != 500 {
		t.Errorf("status = %d", svcErr.Status)
	}
}

func TestAskNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := newTestClient(server.URL)

	_, err := client.Ask(context.Background(), "anyone there?")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %v", err)
	}
	if !svcErr.IsNetwork() {
		t.Errorf("cause = %q, want %q", svcErr.Cause, CauseNetwork)
	}
}

func TestAskMalformedResponse(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"missing answer field", `{"sources": []}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.Ask(context.Background(), "hello")
			var svcErr *ServiceError
			if !errors.As(err, &svcErr) {
				t.Fatalf("expected *ServiceError, got %v", err)
			}
			if svcErr.Cause != CauseMalformed {
				t.Errorf("cause = %q, want %q", svcErr.Cause, CauseMalformed)
			}
		})
	}
}

func TestAskNilSourcesBecomesEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": "ok"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ans, err := client.Ask(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if ans.Sources == nil {
		t.Error("sources should be an empty slice, not nil")
	}
}

func TestAskTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"answer": "too late"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL).WithTimeout(50 * time.Millisecond)

	_, err := client.Ask(context.Background(), "slow question")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %v", err)
	}
	if !svcErr.IsNetwork() {
		t.Errorf("timeout should surface as network cause, got %q", svcErr.Cause)
	}
}

func TestAPIKeyMasked(t *testing.T) {
	cfg := config.Default()
	cfg.Service.APIKey = "super-secret"
	client := NewClient(cfg)

	masked := client.APIKeyMasked()
	if masked == "super-secret" {
		t.Error("APIKeyMasked leaked the key")
	}

	cfg.Service.APIKey = ""
	if got := NewClient(cfg).APIKeyMasked(); got != "[not set]" {
		t.Errorf("APIKeyMasked() = %q", got)
	}
}
