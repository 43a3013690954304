// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Service and configuration status command.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/config"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
)

// statusProbeTimeout bounds the reachability check.
const statusProbeTimeout = 5 * time.Second

// HandleStatusCommand prints the configured endpoint, key fingerprint,
// and whether the answer service is reachable.
func HandleStatusCommand(w io.Writer) error {
	cfg := config.Global()
	client := answer.NewClient(cfg)

	fmt.Fprintf(w, "endpoint:  %s\n", client.BaseURL())
	fmt.Fprintf(w, "api key:   %s\n", client.APIKeyMasked())
	fmt.Fprintf(w, "timeout:   %ds\n", cfg.Service.TimeoutSecs)
	if cfg.Port.FleetFile != "" {
		fmt.Fprintf(w, "fleet:     %s\n", cfg.Port.FleetFile)
	} else {
		fmt.Fprintf(w, "fleet:     built-in sample data\n")
	}

	if !client.IsConfigured() {
		fmt.Fprintln(w, styles.RenderStatus(false, "not configured (missing API key)"))
		return nil
	}

	reachable := probeService(client.BaseURL())
	if reachable {
		fmt.Fprintln(w, styles.RenderStatus(true, "answer service reachable"))
	} else {
		fmt.Fprintln(w, styles.RenderStatus(false, "answer service unreachable"))
	}
	return nil
}

// probeService checks TCP+HTTP reachability of the service base URL.
// Any HTTP response counts as reachable; only transport errors fail.
func probeService(baseURL string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), statusProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
