// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package port holds the port operations domain model: vessels, berths,
// communications, alerts, and automated workflow tickets.
//
// The dashboard ships with a built-in dataset (DefaultFleet) that can be
// replaced by a TOML fleet file, optionally watched for live reloads.
//
// # Key Functions
//
//   - DefaultFleet: the built-in sample dataset
//   - LoadFleet: load a fleet from a TOML file
//   - NewFleetWatcher: reload a fleet file on change
//   - ParseAlertDate: parse display timestamps like "Nov 7, 13:47"
//   - FilterAlerts: apply an optional inclusive date range to alerts
//   - NewReadSet: track per-alert read state
//
// Alert timestamps are display strings without a year; parsing applies a
// configured assumed year, and unparseable timestamps silently count as
// today (flagged to the caller, never an error).
package port
