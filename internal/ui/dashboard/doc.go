// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard composes the top-level TUI: the header, the panel
// area driven by the navigation router, the chat widget, and the status
// bar.
//
// The dashboard owns the fleet dataset, the alert read set, and the
// router. Panel keys open modal views through the router; escape is the
// single teardown path. Chat shortcut messages (OpenIncidentsMsg) are
// routed into the alerts view with their date range. Fleet reloads from
// the file watcher arrive as FleetReloadedMsg and swap the dataset in
// place.
package dashboard
