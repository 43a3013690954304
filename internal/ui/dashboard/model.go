// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard composes the top-level TUI.
package dashboard

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/comms"
	"github.com/helmstream/helmstream-tui/internal/config"
	"github.com/helmstream/helmstream-tui/internal/nav"
	"github.com/helmstream/helmstream-tui/internal/port"
	"github.com/helmstream/helmstream-tui/internal/ui/chat"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// FleetReloadedMsg delivers a freshly reloaded fleet from the file
// watcher.
type FleetReloadedMsg struct {
	Fleet *port.Fleet
}

// FleetReloadErrMsg reports a failed fleet reload. The previous fleet
// stays in place.
type FleetReloadErrMsg struct {
	Err error
}

// =============================================================================
// DASHBOARD MODEL
// =============================================================================

// Model is the root Bubble Tea model: header, panels, chat, and the
// panel router.
type Model struct {
	theme *styles.Theme
	cfg   *config.Config

	fleet *port.Fleet
	reads *port.ReadSet
	index *comms.MessageIndex

	router *nav.Router
	chat   chat.Model

	// cursor is the selected row inside the active panel.
	cursor int

	// Message search state, active only on the messages view.
	searchInput   textinput.Model
	searching     bool
	searchQuery   string
	searchResults []port.Message

	width   int
	height  int
	ready   bool
	welcome bool

	lastErr error
}

// New creates the dashboard model.
func New(cfg *config.Config, fleet *port.Fleet, index *comms.MessageIndex, client *answer.Client) Model {
	theme := styles.NewTheme()

	c := chat.New(theme, client)
	c.Focus()

	search := textinput.New()
	search.Prompt = "search > "
	search.Placeholder = "search communications"
	search.CharLimit = 120

	return Model{
		theme:       theme,
		cfg:         cfg,
		fleet:       fleet,
		reads:       port.NewReadSet(),
		index:       index,
		router:      nav.NewRouter(),
		chat:        c,
		searchInput: search,
		welcome:     cfg.UI.ShowWelcome,
	}
}

// Router exposes the navigation router, mainly for tests.
func (m *Model) Router() *nav.Router {
	return m.router
}

// Fleet returns the current fleet dataset.
func (m *Model) Fleet() *port.Fleet {
	return m.fleet
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.chat.Init()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.theme.SetSize(msg.Width, msg.Height)
		m.chat.SetSize(m.chatWidth(), m.bodyHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case chat.OpenIncidentsMsg:
		m.router.Open(nav.ViewAlerts, nav.Payload{AlertRange: msg.Range})
		m.cursor = 0
		return m, nil

	case FleetReloadedMsg:
		m.fleet = msg.Fleet
		m.lastErr = nil
		if m.index != nil {
			if err := m.index.Load(msg.Fleet.Messages); err != nil {
				m.lastErr = err
			}
		}
		m.clampCursor()
		return m, nil

	case FleetReloadErrMsg:
		m.lastErr = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.welcome {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.welcome = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.chat.Focused() {
			m.chat.Blur()
		} else {
			m.chat.Focus()
		}
		return m, nil

	case "esc":
		if m.router.IsOpen() {
			m.router.Close()
			m.cursor = 0
			m.clearSearch()
			return m, nil
		}
	}

	if m.chat.Focused() {
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	return m.handlePanelKey(msg)
}

// handlePanelKey handles keys while the panel side has focus.
func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "s":
		m.router.Open(nav.ViewVessels, nav.Payload{})
		m.cursor = 0
	case "b":
		m.router.Open(nav.ViewBerths, nav.Payload{})
		m.cursor = 0
	case "a":
		// Opening alerts from the keyboard carries no filter, which
		// explicitly clears any previous range.
		m.router.Open(nav.ViewAlerts, nav.Payload{})
		m.cursor = 0
	case "m":
		m.router.Open(nav.ViewMessages, nav.Payload{Channel: port.ChannelEmail})
		m.cursor = 0
		m.clearSearch()
	case "w":
		m.router.Open(nav.ViewWorkflows, nav.Payload{})
		m.cursor = 0

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
		m.clampCursor()

	case "left", "h", "right", "l":
		if m.router.ActiveView() == nav.ViewMessages {
			m.cycleChannel(msg.String() == "right" || msg.String() == "l")
		}

	case "enter":
		m.openSelection()

	case "/":
		if m.router.ActiveView() == nav.ViewMessages && m.index != nil {
			m.searching = true
			m.searchInput.SetValue("")
			m.searchInput.Focus()
			return m, textinput.Blink
		}

	case "r":
		if m.router.ActiveView() == nav.ViewAlerts {
			alerts, _ := m.visibleAlerts()
			if m.cursor < len(alerts) {
				m.reads.MarkRead(alerts[m.cursor].ID)
			}
		}
	}

	return m, nil
}

// clearSearch resets the message search prompt and results.
func (m *Model) clearSearch() {
	m.searching = false
	m.searchQuery = ""
	m.searchResults = nil
	m.searchInput.Blur()
}

// handleSearchKey drives the message search prompt.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.clearSearch()
		return m, nil

	case "enter":
		query := m.searchInput.Value()
		m.searching = false
		m.searchInput.Blur()
		results, err := m.index.Search(query, 20)
		if err != nil {
			m.lastErr = err
			return m, nil
		}
		m.searchQuery = query
		m.searchResults = results
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// openSelection drills into the selected row of the active list view.
func (m *Model) openSelection() {
	switch m.router.ActiveView() {
	case nav.ViewVessels:
		if m.cursor < len(m.fleet.Vessels) {
			m.router.Open(nav.ViewShipDetail, nav.Payload{ShipID: m.fleet.Vessels[m.cursor].ID})
		}
	case nav.ViewBerths:
		if m.cursor < len(m.fleet.Berths) {
			m.router.Open(nav.ViewBerthDetail, nav.Payload{BerthID: m.fleet.Berths[m.cursor].ID})
		}
	case nav.ViewWorkflows:
		if m.cursor < len(m.fleet.Workflows) {
			m.router.Open(nav.ViewAIWorkflow, nav.Payload{})
		}
	}
}

// cycleChannel moves channel selection in the messages view.
func (m *Model) cycleChannel(forward bool) {
	current := m.router.State().SelectedChannel
	idx := 0
	for i, ch := range port.Channels {
		if ch == current {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(port.Channels)
	} else {
		idx = (idx - 1 + len(port.Channels)) % len(port.Channels)
	}
	m.router.Open(nav.ViewMessages, nav.Payload{Channel: port.Channels[idx]})
	m.cursor = 0
}

// visibleAlerts applies the router's date range to the alert list. The
// count reports alerts whose timestamps failed to parse and fell back
// to today's date.
func (m Model) visibleAlerts() ([]port.Alert, int) {
	return port.FilterAlerts(m.fleet.Alerts, m.router.State().AlertRange,
		m.cfg.Port.AssumedYear, nowFunc())
}

// clampCursor keeps the cursor inside the active list.
func (m *Model) clampCursor() {
	max := 0
	switch m.router.ActiveView() {
	case nav.ViewVessels:
		max = len(m.fleet.Vessels) - 1
	case nav.ViewBerths:
		max = len(m.fleet.Berths) - 1
	case nav.ViewAlerts:
		visible, _ := m.visibleAlerts()
		max = len(visible) - 1
	case nav.ViewMessages:
		max = len(m.fleet.MessagesForChannel(m.router.State().SelectedChannel)) - 1
	case nav.ViewWorkflows:
		max = len(m.fleet.Workflows) - 1
	}
	if max < 0 {
		max = 0
	}
	if m.cursor > max {
		m.cursor = max
	}
}

// layout helpers

func (m Model) chatWidth() int {
	w := m.width * 2 / 5
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) panelWidth() int {
	return m.width - m.chatWidth()
}

func (m Model) bodyHeight() int {
	// header + status bar
	h := m.height - 2
	if h < 4 {
		h = 4
	}
	return h
}
