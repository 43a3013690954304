// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav implements the dashboard's panel router.
package nav

import "github.com/helmstream/helmstream-tui/internal/port"

// =============================================================================
// VIEWS
// =============================================================================

// View names a modal panel. At most one view is active at a time.
type View string

const (
	ViewNone        View = ""
	ViewVessels     View = "vessels"
	ViewMessages    View = "messages"
	ViewAlerts      View = "alerts"
	ViewWorkflows   View = "workflows"
	ViewBerths      View = "berths"
	ViewShipDetail  View = "ship-detail"
	ViewBerthDetail View = "berth-detail"
	ViewAIWorkflow  View = "ai-workflow"
)

// =============================================================================
// ROUTER STATE
// =============================================================================

// State is the router's complete navigation state: the single active view
// plus whatever auxiliary selection the active panel needs.
type State struct {
	ActiveView      View
	SelectedShipID  string
	SelectedBerthID string
	SelectedChannel port.Channel
	AlertRange      port.DateRange
}

// Payload carries the optional parameters of an Open call. Zero fields
// are ignored except as documented on Open.
type Payload struct {
	ShipID     string
	BerthID    string
	Channel    port.Channel
	AlertRange port.DateRange
}

// Router dispatches view-open requests and owns the selection state the
// panels consume. Opening a new view implicitly replaces whichever was
// active; there is no stacking.
type Router struct {
	state State
}

// NewRouter creates a router with no active view.
func NewRouter() *Router {
	return &Router{}
}

// State returns a copy of the current navigation state.
func (r *Router) State() State {
	return r.state
}

// ActiveView returns the currently active view, or ViewNone.
func (r *Router) ActiveView() View {
	return r.state.ActiveView
}

// IsOpen reports whether any view is active.
func (r *Router) IsOpen() bool {
	return r.state.ActiveView != ViewNone
}

// =============================================================================
// OPEN / CLOSE
// =============================================================================

// Open activates a view with the given payload.
//
// Ship detail, berth detail, and messages thread their selection from the
// payload. Opening alerts sets the alert date range from the payload;
// opening alerts with a zero range explicitly clears any previously
// active range, so stale filters never leak between unrelated alert
// views.
func (r *Router) Open(view View, payload Payload) {
	r.state.ActiveView = view

	switch view {
	case ViewShipDetail:
		r.state.SelectedShipID = payload.ShipID
	case ViewBerthDetail, ViewBerths:
		r.state.SelectedBerthID = payload.BerthID
	case ViewMessages:
		r.state.SelectedChannel = payload.Channel
	case ViewAlerts:
		// Always assign, zero range included: open('alerts') without a
		// filter is an explicit reset, not a no-op.
		r.state.AlertRange = payload.AlertRange
	}
}

// Close deactivates the current view and clears every auxiliary selection
// field. One uniform teardown path, regardless of which view was active.
func (r *Router) Close() {
	r.state = State{}
}
