// helmstream TUI - A terminal dashboard for maritime port operations.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/cli"
	"github.com/helmstream/helmstream-tui/internal/comms"
	"github.com/helmstream/helmstream-tui/internal/config"
	"github.com/helmstream/helmstream-tui/internal/port"
	"github.com/helmstream/helmstream-tui/internal/ui/dashboard"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// fleetReloadDebounce coalesces editor write bursts into one reload.
const fleetReloadDebounce = 500 * time.Millisecond

// Global program reference for async fleet reload delivery
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func init() {
	// Sync version info with the cli and dashboard packages
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
	dashboard.Version = Version
}

func main() {
	cmd, args := cli.Parse()

	if cmd == cli.CmdTUI {
		runTUI()
		return
	}

	if err := cli.Run(cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sendToProgram delivers a message to the running Bubble Tea program,
// dropping it if the program has not started yet.
func sendToProgram(msg tea.Msg) {
	programMu.Lock()
	p := programRef
	programMu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func runTUI() {
	// Load configuration at startup
	cfg := config.Global()

	// Load the fleet dataset: the configured TOML file, or the built-in
	// sample data when none is set.
	fleet := port.DefaultFleet()
	if cfg.Port.FleetFile != "" {
		loaded, err := port.LoadFleet(cfg.Port.FleetFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: fleet file %s: %v (using built-in data)\n",
				cfg.Port.FleetFile, err)
		} else {
			fleet = loaded
		}
	}

	// Build the in-memory message search index
	index, err := comms.NewMessageIndex()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: message index unavailable: %v\n", err)
		index = nil
	} else {
		defer index.Close()
		if err := index.Load(fleet.Messages); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: message index load: %v\n", err)
		}
	}

	client := answer.NewClient(cfg)
	m := dashboard.New(cfg, fleet, index, client)

	// Watch the fleet file and push reloads into the running program
	if cfg.Port.FleetFile != "" {
		watcher := port.NewFleetWatcher(cfg.Port.FleetFile, fleetReloadDebounce)
		watcher.OnReload = func(reloaded *port.Fleet) {
			sendToProgram(dashboard.FleetReloadedMsg{Fleet: reloaded})
		}
		watcher.OnError = func(err error) {
			sendToProgram(dashboard.FleetReloadErrMsg{Err: err})
		}
		if err := watcher.Watch(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: fleet watcher: %v\n", err)
		} else {
			defer watcher.Close()
		}
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	programMu.Lock()
	programRef = p
	programMu.Unlock()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running helmstream: %v\n", err)
		os.Exit(1)
	}
}
