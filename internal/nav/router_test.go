// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"testing"
	"time"

	"github.com/helmstream/helmstream-tui/internal/port"
)

func TestOpenShipDetail(t *testing.T) {
	r := NewRouter()
	r.Open(ViewShipDetail, Payload{ShipID: "v-pacific-glory"})

	s := r.State()
	if s.ActiveView != ViewShipDetail {
		t.Errorf("active view = %q", s.ActiveView)
	}
	if s.SelectedShipID != "v-pacific-glory" {
		t.Errorf("selected ship = %q", s.SelectedShipID)
	}
}

func TestCloseClearsEverything(t *testing.T) {
	r := NewRouter()
	r.Open(ViewMessages, Payload{Channel: port.ChannelEmail})
	r.Open(ViewAlerts, Payload{AlertRange: port.DateRange{Start: time.Now()}})
	r.Open(ViewShipDetail, Payload{ShipID: "x"})

	r.Close()

	s := r.State()
	if s.ActiveView != ViewNone {
		t.Errorf("active view = %q, want none", s.ActiveView)
	}
	if s.SelectedShipID != "" || s.SelectedBerthID != "" || s.SelectedChannel != "" {
		t.Errorf("selection fields not cleared: %+v", s)
	}
	if !s.AlertRange.IsZero() {
		t.Errorf("alert range not cleared: %+v", s.AlertRange)
	}
	if r.IsOpen() {
		t.Error("router should report closed")
	}
}

func TestOpenAlertsWithoutRangeClearsFilter(t *testing.T) {
	r := NewRouter()

	withRange := port.DateRange{
		Start: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.November, 7, 0, 0, 0, 0, time.UTC),
	}
	r.Open(ViewAlerts, Payload{AlertRange: withRange})
	if r.State().AlertRange.IsZero() {
		t.Fatal("range should be set after opening with a filter")
	}

	// Re-opening alerts without a filter is an explicit reset.
	r.Open(ViewAlerts, Payload{})
	if !r.State().AlertRange.IsZero() {
		t.Errorf("range should be cleared, got %+v", r.State().AlertRange)
	}
}

func TestOpenReplacesActiveView(t *testing.T) {
	r := NewRouter()
	r.Open(ViewVessels, Payload{})
	r.Open(ViewWorkflows, Payload{})

	if got := r.ActiveView(); got != ViewWorkflows {
		t.Errorf("active view = %q, want workflows", got)
	}
}

func TestOpenMessagesThreadsChannel(t *testing.T) {
	r := NewRouter()
	r.Open(ViewMessages, Payload{Channel: port.ChannelRadio})

	if got := r.State().SelectedChannel; got != port.ChannelRadio {
		t.Errorf("selected channel = %q", got)
	}
}

func TestOpenBerthDetail(t *testing.T) {
	r := NewRouter()
	r.Open(ViewBerthDetail, Payload{BerthID: "berth-2"})

	if got := r.State().SelectedBerthID; got != "berth-2" {
		t.Errorf("selected berth = %q", got)
	}
}
