// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/helmstream/helmstream-tui/internal/port"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
)

func TestRenderAlertsPanelShowsRange(t *testing.T) {
	theme := styles.NewTheme()
	fleet := port.DefaultFleet()
	reads := port.NewReadSet()

	r := port.DateRange{
		Start: time.Date(2024, time.October, 28, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.November, 7, 0, 0, 0, 0, time.UTC),
	}
	out := RenderAlertsPanel(theme, fleet.Alerts, reads, r, 80, 0, true)

	if !strings.Contains(out, "2024-10-28") || !strings.Contains(out, "2024-11-07") {
		t.Error("panel header should show the active date range")
	}
	if !strings.Contains(out, "unread") {
		t.Error("panel header should show the unread counter")
	}
}

func TestRenderAlertsPanelEmpty(t *testing.T) {
	theme := styles.NewTheme()
	out := RenderAlertsPanel(theme, nil, port.NewReadSet(), port.DateRange{}, 80, 0, false)

	if !strings.Contains(out, "No alerts") {
		t.Error("empty panel should say there are no alerts")
	}
}

func TestRenderAlertsPanelShowsEntitiesAndAction(t *testing.T) {
	theme := styles.NewTheme()
	alerts := []port.Alert{{
		ID:              "alert-x",
		Severity:        port.SeverityWarning,
		Title:           "Schedule conflict at Berth 3",
		Timestamp:       "Nov 7, 09:30",
		Vessel:          "MSC Horizon",
		RelatedEntities: []string{"MSC Horizon", "Berth 3"},
		SuggestedAction: "Confirm the 18:30 window with the agent.",
	}}

	out := RenderAlertsPanel(theme, alerts, port.NewReadSet(), port.DateRange{}, 100, 0, true)

	if !strings.Contains(out, "Berth 3") {
		t.Error("card should show related entity chips")
	}
	if !strings.Contains(out, "action: Confirm the 18:30 window") {
		t.Error("card should show the suggested action")
	}
	if strings.Count(out, "MSC Horizon") != 1 {
		t.Error("primary vessel should not be duplicated among the chips")
	}
}

func TestRelatedEntitiesLeadsWithVessel(t *testing.T) {
	a := port.Alert{Vessel: "Nordic Star", RelatedEntities: []string{"Berth 1"}}
	got := relatedEntities(a)
	if len(got) != 2 || got[0] != "Nordic Star" || got[1] != "Berth 1" {
		t.Errorf("relatedEntities = %v", got)
	}

	a = port.Alert{RelatedEntities: []string{"Approach channel"}}
	if got := relatedEntities(a); len(got) != 1 || got[0] != "Approach channel" {
		t.Errorf("relatedEntities without vessel = %v", got)
	}
}

func TestFormatRange(t *testing.T) {
	start := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.November, 7, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		r    port.DateRange
		want string
	}{
		{"both bounds", port.DateRange{Start: start, End: end}, "2024-11-01 to 2024-11-07"},
		{"start only", port.DateRange{Start: start}, "from 2024-11-01"},
		{"end only", port.DateRange{End: end}, "until 2024-11-07"},
		{"empty", port.DateRange{}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatRange(tc.r); got != tc.want {
				t.Errorf("formatRange = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderHeaderShowsUnreadBadge(t *testing.T) {
	theme := styles.NewTheme()
	fleet := port.DefaultFleet()

	withBadge := RenderHeader(theme, 120, fleet, 3)
	if !strings.Contains(withBadge, "3 unread alerts") {
		t.Error("header should show the unread alert badge")
	}

	without := RenderHeader(theme, 120, fleet, 0)
	if strings.Contains(without, "unread alerts") {
		t.Error("header should omit the badge when everything is read")
	}
}

func TestRenderMessagesPanelTabs(t *testing.T) {
	theme := styles.NewTheme()
	fleet := port.DefaultFleet()

	out := RenderMessagesPanel(theme, fleet, port.ChannelEmail, 100, 0, true)
	for _, ch := range port.Channels {
		if !strings.Contains(out, string(ch)) {
			t.Errorf("panel should show the %s tab", ch)
		}
	}
}

func TestParseCodeBlocks(t *testing.T) {
	text := "Berth load:\n```go\nfmt.Println(\"hi\")\n```\ndone"
	out := ParseCodeBlocks(text, 80)

	if !strings.Contains(out, "Berth load:") || !strings.Contains(out, "done") {
		t.Error("prose around the fence should survive")
	}
	if strings.Contains(out, "```") {
		t.Error("fences should be consumed")
	}
}

func TestRenderStatusBarDropsOverflow(t *testing.T) {
	theme := styles.NewTheme()
	shortcuts := []Shortcut{
		{Key: "q", Desc: "quit"},
		{Key: "tab", Desc: "switch panel"},
		{Key: "enter", Desc: "open"},
		{Key: "esc", Desc: "close"},
	}

	wide := RenderStatusBar(theme, 120, shortcuts)
	if !strings.Contains(wide, "close") {
		t.Error("wide bar should fit all hints")
	}

	narrow := RenderStatusBar(theme, 18, shortcuts)
	if strings.Contains(narrow, "close") {
		t.Error("narrow bar should drop trailing hints")
	}
}
