// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/comms"
	"github.com/helmstream/helmstream-tui/internal/config"
	"github.com/helmstream/helmstream-tui/internal/nav"
	"github.com/helmstream/helmstream-tui/internal/port"
	"github.com/helmstream/helmstream-tui/internal/ui/chat"
)

func newTestDashboard(t *testing.T) Model {
	t.Helper()

	cfg := config.Default()
	cfg.UI.ShowWelcome = false
	m := New(cfg, port.DefaultFleet(), nil, answer.NewClient(cfg))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func pressKey(t *testing.T, m Model, key string) Model {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestOpenIncidentsMsgRoutesToAlerts(t *testing.T) {
	m := newTestDashboard(t)

	r := port.DateRange{
		Start: time.Date(2024, time.October, 28, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.November, 7, 0, 0, 0, 0, time.UTC),
	}
	updated, _ := m.Update(chat.OpenIncidentsMsg{Range: r})
	m = updated.(Model)

	s := m.Router().State()
	if s.ActiveView != nav.ViewAlerts {
		t.Errorf("active view = %q, want alerts", s.ActiveView)
	}
	if !s.AlertRange.Start.Equal(r.Start) || !s.AlertRange.End.Equal(r.End) {
		t.Errorf("alert range = %+v, want %+v", s.AlertRange, r)
	}
}

func TestPanelKeysOpenViews(t *testing.T) {
	m := newTestDashboard(t)
	m = pressKey(t, m, "tab") // move focus off chat

	testCases := []struct {
		key  string
		want nav.View
	}{
		{"s", nav.ViewVessels},
		{"b", nav.ViewBerths},
		{"a", nav.ViewAlerts},
		{"m", nav.ViewMessages},
		{"w", nav.ViewWorkflows},
	}

	for _, tc := range testCases {
		m = pressKey(t, m, tc.key)
		if got := m.Router().ActiveView(); got != tc.want {
			t.Errorf("key %q: active view = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestOpeningAlertsFromKeyboardClearsRange(t *testing.T) {
	m := newTestDashboard(t)

	r := port.DateRange{Start: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)}
	updated, _ := m.Update(chat.OpenIncidentsMsg{Range: r})
	m = updated.(Model)

	m = pressKey(t, m, "tab")
	m = pressKey(t, m, "a")

	if !m.Router().State().AlertRange.IsZero() {
		t.Error("reopening alerts without a filter should clear the range")
	}
}

func TestEscapeClosesView(t *testing.T) {
	m := newTestDashboard(t)
	m = pressKey(t, m, "tab")
	m = pressKey(t, m, "s")
	m = pressKey(t, m, "enter") // drill into ship detail

	if m.Router().ActiveView() != nav.ViewShipDetail {
		t.Fatalf("active view = %q, want ship-detail", m.Router().ActiveView())
	}

	m = pressKey(t, m, "esc")

	s := m.Router().State()
	if s.ActiveView != nav.ViewNone {
		t.Errorf("active view = %q, want none", s.ActiveView)
	}
	if s.SelectedShipID != "" {
		t.Errorf("ship selection not cleared: %q", s.SelectedShipID)
	}
}

func TestMarkReadKey(t *testing.T) {
	m := newTestDashboard(t)
	m = pressKey(t, m, "tab")
	m = pressKey(t, m, "a")

	before := m.reads.UnreadCount(m.Fleet().Alerts)
	m = pressKey(t, m, "r")
	m = pressKey(t, m, "r") // idempotent
	after := m.reads.UnreadCount(m.Fleet().Alerts)

	if after != before-1 {
		t.Errorf("unread went %d -> %d, want exactly one fewer", before, after)
	}
}

func TestFleetReloadSwapsDataset(t *testing.T) {
	m := newTestDashboard(t)

	fresh := &port.Fleet{
		Vessels: []port.Vessel{{ID: "v-new", Name: "Fresh Vessel", Status: port.StatusDocked}},
	}
	updated, _ := m.Update(FleetReloadedMsg{Fleet: fresh})
	m = updated.(Model)

	if len(m.Fleet().Vessels) != 1 || m.Fleet().Vessels[0].ID != "v-new" {
		t.Errorf("fleet not swapped: %+v", m.Fleet().Vessels)
	}
}

func TestMessageSearchFlow(t *testing.T) {
	idx, err := comms.NewMessageIndex()
	if err != nil {
		t.Fatalf("NewMessageIndex: %v", err)
	}
	defer idx.Close()

	fleet := port.DefaultFleet()
	if err := idx.Load(fleet.Messages); err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := config.Default()
	cfg.UI.ShowWelcome = false
	m := New(cfg, fleet, idx, answer.NewClient(cfg))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	m = pressKey(t, m, "tab")
	m = pressKey(t, m, "m")
	m = pressKey(t, m, "/")
	if !m.searching {
		t.Fatal("'/' on the messages view should open the search prompt")
	}

	for _, r := range "engine" {
		m = pressKey(t, m, string(r))
	}
	m = pressKey(t, m, "enter")

	if m.searching {
		t.Error("enter should close the search prompt")
	}
	if m.searchQuery != "engine" {
		t.Errorf("search query = %q, want %q", m.searchQuery, "engine")
	}
	if len(m.searchResults) == 0 {
		t.Error("expected at least one hit for 'engine' in the sample fleet")
	}
	if !strings.Contains(m.View(), "Search") {
		t.Error("messages view should show search results")
	}

	m = pressKey(t, m, "esc")
	if m.searchQuery != "" || m.searchResults != nil {
		t.Error("esc should clear search results")
	}
}

func TestAlertsViewFlagsTimestampFallbacks(t *testing.T) {
	m := newTestDashboard(t)
	m.fleet.Alerts = append(m.fleet.Alerts, port.Alert{
		ID:        "alert-bad",
		Severity:  port.SeverityInfo,
		Title:     "Manually entered alert",
		Timestamp: "sometime last shift",
	})

	r := port.DateRange{
		Start: time.Date(2024, time.October, 28, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.November, 7, 0, 0, 0, 0, time.UTC),
	}
	updated, _ := m.Update(chat.OpenIncidentsMsg{Range: r})
	m = updated.(Model)

	if !strings.Contains(m.View(), "1 alert with unparseable timestamps") {
		t.Error("alerts view should flag the timestamp fallback")
	}

	// Clearing the range restores the identity filter and the notice goes.
	m = pressKey(t, m, "esc")
	if strings.Contains(m.View(), "unparseable timestamps") {
		t.Error("notice should disappear without an active range")
	}
}

func TestWelcomeShowsSyncedVersion(t *testing.T) {
	orig := Version
	Version = "9.9.9-test"
	defer func() { Version = orig }()

	cfg := config.Default()
	cfg.UI.ShowWelcome = true
	m := New(cfg, port.DefaultFleet(), nil, answer.NewClient(cfg))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if !strings.Contains(m.View(), "v9.9.9-test") {
		t.Error("welcome screen should render the synced version")
	}
}

func TestViewRenders(t *testing.T) {
	m := newTestDashboard(t)

	out := m.View()
	if !strings.Contains(out, "HELMSTREAM") {
		t.Error("view should contain the brand header")
	}
	if !strings.Contains(out, "Vessels") {
		t.Error("overview should contain the vessels panel")
	}
}

func TestWelcomeScreen(t *testing.T) {
	cfg := config.Default()
	cfg.UI.ShowWelcome = true
	m := New(cfg, port.DefaultFleet(), nil, answer.NewClient(cfg))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if !strings.Contains(m.View(), "press any key") {
		t.Error("welcome screen should prompt for a key")
	}

	m = pressKey(t, m, "x")
	if strings.Contains(m.View(), "press any key") {
		t.Error("any key should dismiss the welcome screen")
	}
}
