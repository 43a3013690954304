// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the helmstream application.
//
// This package contains common helper functions used throughout the
// application for string truncation and display-width measurement.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: display-width aware truncation (CJK safe)
//   - PadRight: pad or truncate a string to an exact column width
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.TruncateRunes(longText, 50)
//
//	// Fit a cell into a fixed-width table column
//	cell := util.PadRight(vesselName, 24)
package util
