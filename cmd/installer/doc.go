// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// The helmstream installer is a guided first-run setup for the port
// operations dashboard. It checks the environment (terminal, disk,
// config directory, answer service reachability), collects the answer
// service endpoint and API key, and writes ~/.helmstream/config.toml.
//
// Run with --text for a plain, copy/paste friendly flow on terminals
// where the full-screen installer is unwanted.
package main
