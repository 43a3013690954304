// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config manages helmstream configuration from TOML files and
// environment variables.
//
// Configuration lives at ~/.helmstream/config.toml with 0600 permissions
// since it may contain the answer-service API key. Load order is fixed:
// defaults, then the TOML file, then HELMSTREAM_* environment overrides,
// then validation.
//
// # Key Functions
//
//   - Load: read config from the default path with env overrides applied
//   - LoadFromPath: read config from an explicit path
//   - Save: persist config atomically with secure permissions
//   - Global: thread-safe lazily-loaded singleton
//   - ReloadGlobal: re-read the singleton from disk
//
// # Environment Variables
//
//   - HELMSTREAM_API_URL: answer service base URL
//   - HELMSTREAM_API_KEY: answer service API key
//   - HELMSTREAM_TIMEOUT_SECS: per-request timeout in seconds
//   - HELMSTREAM_FLEET_FILE: TOML fleet file overriding the built-in dataset
package config
