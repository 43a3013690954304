// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/helmstream/helmstream-tui/internal/nav"
	"github.com/helmstream/helmstream-tui/internal/ui/components"
)

// nowFunc is the clock used for alert filtering, swappable in tests.
var nowFunc = time.Now

// Version is the displayed application version, synced from the build
// metadata in main.
var Version = "0.1.0"

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.welcome {
		return m.renderWelcome()
	}

	header := components.RenderHeader(m.theme, m.width, m.fleet,
		m.reads.UnreadCount(m.fleet.Alerts))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.panelWidth()).Height(m.bodyHeight()).Render(m.renderPanels()),
		lipgloss.NewStyle().Width(m.chatWidth()).Height(m.bodyHeight()).Render(m.chat.View()),
	)

	status := components.RenderStatusBar(m.theme, m.width, m.shortcuts())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// renderPanels renders either the active modal view or the overview.
func (m Model) renderPanels() string {
	w := m.panelWidth()
	s := m.router.State()

	switch s.ActiveView {
	case nav.ViewVessels:
		return components.RenderVesselsPanel(m.theme, m.fleet.Vessels, w, m.cursor, true)

	case nav.ViewShipDetail:
		return components.RenderVesselDetail(m.theme, m.fleet.VesselByID(s.SelectedShipID), w)

	case nav.ViewBerths:
		return components.RenderBerthsPanel(m.theme, m.fleet.Berths, w, m.cursor, true)

	case nav.ViewBerthDetail:
		return components.RenderBerthDetail(m.theme, m.fleet.BerthByID(s.SelectedBerthID), w)

	case nav.ViewAlerts:
		alerts, fallbacks := m.visibleAlerts()
		panel := components.RenderAlertsPanel(m.theme, alerts, m.reads,
			s.AlertRange, w, m.cursor, true)
		if fallbacks > 0 {
			panel = lipgloss.JoinVertical(lipgloss.Left, panel, m.fallbackNotice(fallbacks))
		}
		return panel

	case nav.ViewMessages:
		var panel string
		if m.searchQuery != "" {
			panel = components.RenderSearchResults(m.theme, m.searchQuery, m.searchResults, w)
		} else {
			panel = components.RenderMessagesPanel(m.theme, m.fleet, s.SelectedChannel,
				w, m.cursor, true)
		}
		if m.searching {
			panel = lipgloss.JoinVertical(lipgloss.Left, panel, m.searchInput.View())
		}
		return panel

	case nav.ViewWorkflows, nav.ViewAIWorkflow:
		if s.ActiveView == nav.ViewAIWorkflow && m.cursor < len(m.fleet.Workflows) {
			return components.RenderWorkflowDetail(m.theme, &m.fleet.Workflows[m.cursor], w)
		}
		return components.RenderWorkflowsPanel(m.theme, m.fleet.Workflows, w, m.cursor, true)

	default:
		return m.renderOverview()
	}
}

// renderOverview stacks compact versions of every panel.
func (m Model) renderOverview() string {
	w := m.panelWidth()

	vessels := components.RenderVesselsPanel(m.theme, m.fleet.Vessels, w, -1, false)
	berths := components.RenderBerthsPanel(m.theme, m.fleet.Berths, w, -1, false)
	visible, fallbacks := m.visibleAlerts()
	alerts := components.RenderAlertsPanel(m.theme, visible, m.reads,
		m.router.State().AlertRange, w, -1, false)

	out := lipgloss.JoinVertical(lipgloss.Left, vessels, berths, alerts)
	if fallbacks > 0 {
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.fallbackNotice(fallbacks))
	}
	if m.lastErr != nil {
		out = lipgloss.JoinVertical(lipgloss.Left, out,
			m.theme.ErrorMessage.Render("fleet reload failed: "+m.lastErr.Error()))
	}
	return out
}

// fallbackNotice flags alerts that only matched the range because their
// unparseable timestamps fell back to today.
func (m Model) fallbackNotice(n int) string {
	plural := "s"
	if n == 1 {
		plural = ""
	}
	return m.theme.ErrorMessage.Render(
		fmt.Sprintf("%d alert%s with unparseable timestamps assumed to be today", n, plural))
}

func (m Model) renderWelcome() string {
	logo := m.theme.WelcomeLogo.Render("HELMSTREAM")
	version := m.theme.WelcomeVersion.Render("v" + Version)
	info := m.theme.WelcomeInfo.Render("Maritime port operations dashboard")
	press := m.theme.WelcomePressKey.Render("press any key to start")

	box := m.theme.WelcomeBox.Render(
		lipgloss.JoinVertical(lipgloss.Center, logo, version, "", info, "", press))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// shortcuts returns the status bar hints for the current mode.
func (m Model) shortcuts() []components.Shortcut {
	if m.chat.Focused() {
		return []components.Shortcut{
			{Key: "enter", Desc: "ask"},
			{Key: "1-4", Desc: "quick replies"},
			{Key: "tab", Desc: "panels"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	}

	base := []components.Shortcut{
		{Key: "s", Desc: "ships"},
		{Key: "b", Desc: "berths"},
		{Key: "a", Desc: "alerts"},
		{Key: "m", Desc: "messages"},
		{Key: "w", Desc: "workflows"},
	}
	if m.router.IsOpen() {
		base = append(base,
			components.Shortcut{Key: "enter", Desc: "open"},
			components.Shortcut{Key: "r", Desc: "mark read"},
			components.Shortcut{Key: "esc", Desc: "close"})
		if m.router.ActiveView() == nav.ViewMessages {
			base = append(base, components.Shortcut{Key: "/", Desc: "search"})
		}
	}
	return append(base,
		components.Shortcut{Key: "tab", Desc: "chat"},
		components.Shortcut{Key: "q", Desc: "quit"})
}
