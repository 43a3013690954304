// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for helmstream.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/helmstream/helmstream-tui/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after command parsing)
	Raw []string
}

const usageText = `helmstream - maritime port operations dashboard

Helmstream is a terminal dashboard for port operations teams. It
combines live fleet, berth, and alert panels with an AI assistant that
answers questions from the port's email and messaging archive.

Usage:
  helmstream                 Start the dashboard (default)
  helmstream ask "question"  Ask a single question
  helmstream chat            Interactive chat
  helmstream status, s       Show service and config status
  helmstream config [show|set|path]  Configuration
  helmstream version         Show version
  helmstream help            Show this help

Examples:
  helmstream ask "How many incidents in the last ten days?"
  helmstream config set service.api_key hs-xxxx
  helmstream config set port.fleet_file /srv/port/fleet.toml

Environment:
  HELMSTREAM_API_URL         Override the answer service URL
  HELMSTREAM_API_KEY         Override the API key
  HELMSTREAM_TIMEOUT_SECS    Override the request timeout
  HELMSTREAM_FLEET_FILE      Override the fleet data file
  NO_COLOR                   Disable colored output

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("helmstream version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	raw := os.Args[1:]
	var parsed Args

	if len(raw) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(raw[0])
	parsed.Raw = raw[1:]

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "ask":
		return CmdAsk, parsed

	case "chat":
		return CmdChat, parsed

	case "status", "s":
		return CmdStatus, parsed

	case "config":
		if len(parsed.Raw) > 0 {
			parsed.Subcommand = strings.ToLower(parsed.Raw[0])
		}
		if len(parsed.Raw) > 1 {
			parsed.ConfigKey = parsed.Raw[1]
		}
		if len(parsed.Raw) > 2 {
			parsed.ConfigVal = strings.Join(parsed.Raw[2:], " ")
		}
		return CmdConfig, parsed

	case "version", "-v", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, parsed
	}
}

// =============================================================================
// CONFIG COMMAND
// =============================================================================

// HandleConfigCommand implements "helmstream config [show|set|path]".
func HandleConfigCommand(args Args) error {
	switch args.Subcommand {
	case "", "show":
		cfg := config.Global()
		fmt.Println(cfg.String())
		return nil

	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	case "set":
		if args.ConfigKey == "" || args.ConfigVal == "" {
			return fmt.Errorf("usage: helmstream config set <key> <value>")
		}
		return setConfigValue(args.ConfigKey, args.ConfigVal)

	default:
		return fmt.Errorf("unknown config subcommand: %s", args.Subcommand)
	}
}

// setConfigValue updates one dotted key and saves the config file.
func setConfigValue(key, value string) error {
	cfg := config.Global()

	switch strings.ToLower(key) {
	case "service.base_url":
		cfg.Service.BaseURL = value
	case "service.api_key":
		cfg.Service.APIKey = value
	case "service.timeout_secs":
		var secs int
		if _, err := fmt.Sscanf(value, "%d", &secs); err != nil {
			return fmt.Errorf("invalid timeout: %q", value)
		}
		cfg.Service.TimeoutSecs = secs
	case "port.fleet_file":
		cfg.Port.FleetFile = value
	case "port.assumed_year":
		var year int
		if _, err := fmt.Sscanf(value, "%d", &year); err != nil {
			return fmt.Errorf("invalid year: %q", value)
		}
		cfg.Port.AssumedYear = year
	case "ui.show_welcome":
		cfg.UI.ShowWelcome = value == "true" || value == "1"
	case "ui.compact_mode":
		cfg.UI.CompactMode = value == "true" || value == "1"
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("Set %s\n", key)
	return nil
}

// Run dispatches a parsed command. CmdTUI is handled by the caller so
// this package stays free of the Bubble Tea program lifecycle.
func Run(cmd Command, args Args) error {
	switch cmd {
	case CmdAsk:
		return HandleAskCommand(args.Raw)
	case CmdChat:
		return HandleChatCommand()
	case CmdStatus:
		return HandleStatusCommand(os.Stdout)
	case CmdConfig:
		return HandleConfigCommand(args)
	case CmdVersion:
		PrintVersion()
		return nil
	case CmdHelp:
		PrintUsage()
		return nil
	default:
		return fmt.Errorf("unhandled command %d", cmd)
	}
}
