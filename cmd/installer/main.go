// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main provides the helmstream installer - a guided first-run setup.
package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/helmstream/helmstream-tui/internal/config"
)

const version = "0.1.0"

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--text", "-t", "--simple":
			runTextSetup()
			return
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			fmt.Printf("helmstream installer v%s\n", version)
			return
		}
	}

	if !isTerminal() {
		fmt.Println("The helmstream installer requires an interactive terminal.")
		fmt.Println("Run with --text for a simple text-based setup.")
		os.Exit(1)
	}

	p := tea.NewProgram(
		NewInstaller(),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running installer: %v\n", err)
		os.Exit(1)
	}
}

// printHelp shows usage information
func printHelp() {
	fmt.Println(`helmstream installer v` + version + `

Usage: helmstream-installer [OPTIONS]

Options:
  --text, -t     Run in text mode (copy/paste friendly)
  --help, -h     Show this help
  --version, -v  Show version

The default mode is an interactive full-screen installer. Use --text
for a plain prompt-driven setup.`)
}

// isTerminal checks if we're running in an interactive terminal
func isTerminal() bool {
	if runtime.GOOS == "windows" {
		return true
	}
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// =============================================================================
// TEXT MODE SETUP
// =============================================================================

func runTextSetup() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println()
	fmt.Println("================================================================================")
	fmt.Println("                            HELMSTREAM SETUP")
	fmt.Println("                  Maritime port operations dashboard")
	fmt.Println("================================================================================")
	fmt.Println()

	fmt.Println("This setup will:")
	fmt.Println("  [1] Check your environment")
	fmt.Println("  [2] Collect the answer service endpoint and API key")
	fmt.Println("  [3] Write your configuration")
	fmt.Println()
	fmt.Print("Press Enter to continue (or 'q' to quit): ")
	input, _ := reader.ReadString('\n')
	if strings.TrimSpace(input) == "q" {
		fmt.Println("Setup cancelled.")
		return
	}

	fmt.Println()
	fmt.Printf("  [OK] Operating System: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	if err := config.EnsureConfigDir(); err != nil {
		fmt.Printf("  [!!] Config directory: %v\n", err)
		os.Exit(1)
	}
	dir, _ := config.ConfigDir()
	fmt.Printf("  [OK] Config directory: %s\n", dir)
	fmt.Println()

	cfg := config.Default()

	fmt.Printf("Answer service URL [%s]: ", cfg.Service.BaseURL)
	input, _ = reader.ReadString('\n')
	if v := strings.TrimSpace(input); v != "" {
		cfg.Service.BaseURL = v
	}

	fmt.Print("API key (leave empty to configure later): ")
	input, _ = reader.ReadString('\n')
	cfg.Service.APIKey = strings.TrimSpace(input)

	if err := cfg.Validate(); err != nil {
		fmt.Printf("\nInvalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := config.Save(cfg); err != nil {
		fmt.Printf("\nFailed to write configuration: %v\n", err)
		os.Exit(1)
	}

	path, _ := config.ConfigPath()
	fmt.Println()
	fmt.Println("================================================================================")
	fmt.Println("                           SETUP COMPLETE")
	fmt.Println("================================================================================")
	fmt.Println()
	fmt.Printf("Configuration written to %s\n", path)
	fmt.Println()
	fmt.Println("To start the dashboard, run:")
	fmt.Println()
	fmt.Println("    helmstream")
	fmt.Println()
	fmt.Println("Quick tips:")
	fmt.Println("    tab        - Switch between panels and chat")
	fmt.Println("    1-4        - Quick replies in chat")
	fmt.Println("    a          - Open the alerts panel")
	fmt.Println("    helmstream ask \"...\"  - One-shot question from the shell")
	fmt.Println()
}
