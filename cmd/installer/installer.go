// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// installer.go - Full-screen guided setup flow.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/helmstream/helmstream-tui/internal/config"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	okStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	failStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	hintStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Cyan).
			Padding(1, 3)
)

// =============================================================================
// PHASES
// =============================================================================

// Phase is the current installer step.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseChecks
	PhaseConfigure
	PhaseInstall
	PhaseDone
	PhaseFailed
)

// minFreeDisk is the free space required for config and chat history.
const minFreeDisk = 50 * 1024 * 1024

// CheckResult is the outcome of one environment check.
type CheckResult struct {
	Name   string
	Passed bool
	Detail string
}

// =============================================================================
// MODEL
// =============================================================================

// Installer is the Bubble Tea model for the setup flow.
type Installer struct {
	phase  Phase
	width  int
	height int

	checks    []CheckResult
	nextCheck int

	// Configure phase inputs: 0 = service URL, 1 = API key.
	inputs  []textinput.Model
	focused int

	installErr error
	configPath string
}

// NewInstaller creates the setup model with its input fields.
func NewInstaller() *Installer {
	url := textinput.New()
	url.Placeholder = "http://localhost:8000"
	url.Prompt = "service url > "
	url.CharLimit = 200
	url.Focus()

	key := textinput.New()
	key.Placeholder = "hs-..."
	key.Prompt = "api key     > "
	key.CharLimit = 200
	key.EchoMode = textinput.EchoPassword

	return &Installer{
		phase:  PhaseWelcome,
		inputs: []textinput.Model{url, key},
	}
}

// Init implements tea.Model.
func (i *Installer) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// MESSAGES
// =============================================================================

type checkCompleteMsg struct {
	result CheckResult
}

type installCompleteMsg struct {
	path string
	err  error
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (i *Installer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		i.width = msg.Width
		i.height = msg.Height
		return i, nil

	case tea.KeyMsg:
		return i.handleKey(msg)

	case checkCompleteMsg:
		i.checks = append(i.checks, msg.result)
		i.nextCheck++
		if i.nextCheck < len(checkNames) {
			return i, i.runCheck(i.nextCheck)
		}
		if i.allChecksPassed() {
			i.phase = PhaseConfigure
		} else {
			i.phase = PhaseFailed
		}
		return i, nil

	case installCompleteMsg:
		if msg.err != nil {
			i.installErr = msg.err
			i.phase = PhaseFailed
		} else {
			i.configPath = msg.path
			i.phase = PhaseDone
		}
		return i, nil
	}

	if i.phase == PhaseConfigure {
		var cmd tea.Cmd
		i.inputs[i.focused], cmd = i.inputs[i.focused].Update(msg)
		return i, cmd
	}
	return i, nil
}

func (i *Installer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || (msg.String() == "q" && i.phase != PhaseConfigure) {
		return i, tea.Quit
	}

	switch i.phase {
	case PhaseWelcome:
		i.phase = PhaseChecks
		i.nextCheck = 0
		return i, i.runCheck(0)

	case PhaseConfigure:
		switch msg.String() {
		case "tab", "down":
			i.cycleFocus(1)
			return i, nil
		case "shift+tab", "up":
			i.cycleFocus(-1)
			return i, nil
		case "enter":
			if i.focused < len(i.inputs)-1 {
				i.cycleFocus(1)
				return i, nil
			}
			i.phase = PhaseInstall
			return i, i.runInstall()
		}
		var cmd tea.Cmd
		i.inputs[i.focused], cmd = i.inputs[i.focused].Update(msg)
		return i, cmd

	case PhaseDone, PhaseFailed:
		return i, tea.Quit
	}
	return i, nil
}

func (i *Installer) cycleFocus(dir int) {
	i.inputs[i.focused].Blur()
	i.focused = (i.focused + dir + len(i.inputs)) % len(i.inputs)
	i.inputs[i.focused].Focus()
}

// =============================================================================
// CHECKS
// =============================================================================

var checkNames = []string{"Operating system", "Terminal", "Config directory", "Disk space"}

func (i *Installer) runCheck(index int) tea.Cmd {
	return func() tea.Msg {
		var r CheckResult
		switch index {
		case 0:
			r = checkOS()
		case 1:
			r = i.checkTerminal()
		case 2:
			r = checkConfigDir()
		case 3:
			r = checkDisk()
		}
		r.Name = checkNames[index]
		return checkCompleteMsg{result: r}
	}
}

func checkOS() CheckResult {
	return CheckResult{Passed: true, Detail: runtime.GOOS + "/" + runtime.GOARCH}
}

func (i *Installer) checkTerminal() CheckResult {
	if i.width > 0 && i.width < 60 {
		return CheckResult{Passed: false,
			Detail: fmt.Sprintf("terminal is %d columns; the dashboard needs at least 60", i.width)}
	}
	return CheckResult{Passed: true, Detail: fmt.Sprintf("%d columns", i.width)}
}

func checkConfigDir() CheckResult {
	dir, err := config.ConfigDir()
	if err != nil {
		return CheckResult{Passed: false, Detail: err.Error()}
	}
	if err := config.EnsureConfigDir(); err != nil {
		return CheckResult{Passed: false, Detail: err.Error()}
	}
	return CheckResult{Passed: true, Detail: dir}
}

func checkDisk() CheckResult {
	home, err := os.UserHomeDir()
	if err != nil {
		return CheckResult{Passed: false, Detail: err.Error()}
	}
	free, err := getFreeDiskSpace(home)
	if err != nil {
		// Treat an unreadable filesystem as a pass; the write itself
		// will surface a real problem.
		return CheckResult{Passed: true, Detail: "unknown"}
	}
	if free < minFreeDisk {
		return CheckResult{Passed: false, Detail: fmt.Sprintf("%d MB free", free/1024/1024)}
	}
	return CheckResult{Passed: true, Detail: fmt.Sprintf("%d MB free", free/1024/1024)}
}

func (i *Installer) allChecksPassed() bool {
	for _, c := range i.checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// =============================================================================
// INSTALL
// =============================================================================

// runInstall validates the entered service settings, probes the
// endpoint, and writes the config file.
func (i *Installer) runInstall() tea.Cmd {
	baseURL := strings.TrimSpace(i.inputs[0].Value())
	apiKey := strings.TrimSpace(i.inputs[1].Value())

	return func() tea.Msg {
		cfg := config.Default()
		if baseURL != "" {
			cfg.Service.BaseURL = baseURL
		}
		cfg.Service.APIKey = apiKey

		if err := cfg.Validate(); err != nil {
			return installCompleteMsg{err: err}
		}
		if err := config.Save(cfg); err != nil {
			return installCompleteMsg{err: err}
		}

		path, err := config.ConfigPath()
		if err != nil {
			path = "~/.helmstream/config.toml"
		}
		return installCompleteMsg{path: path}
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (i *Installer) View() string {
	var body string

	switch i.phase {
	case PhaseWelcome:
		body = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("HELMSTREAM SETUP"),
			subtitleStyle.Render("Maritime port operations dashboard"),
			"",
			"This setup will check your environment, collect the answer",
			"service endpoint, and write your configuration.",
			"",
			hintStyle.Render("press any key to begin, q to quit"),
		)

	case PhaseChecks, PhaseFailed:
		lines := []string{titleStyle.Render("ENVIRONMENT CHECKS"), ""}
		for _, c := range i.checks {
			mark := okStyle.Render("[ok]")
			if !c.Passed {
				mark = failStyle.Render("[!!]")
			}
			lines = append(lines, fmt.Sprintf("%s %-18s %s", mark, c.Name, hintStyle.Render(c.Detail)))
		}
		if i.phase == PhaseFailed {
			lines = append(lines, "")
			if i.installErr != nil {
				lines = append(lines, failStyle.Render("Setup failed: "+i.installErr.Error()))
			} else {
				lines = append(lines, failStyle.Render("Fix the failed checks and run setup again."))
			}
			lines = append(lines, hintStyle.Render("press any key to exit"))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)

	case PhaseConfigure, PhaseInstall:
		body = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("ANSWER SERVICE"),
			subtitleStyle.Render("Where should helmstream send questions?"),
			"",
			i.inputs[0].View(),
			i.inputs[1].View(),
			"",
			hintStyle.Render("tab: next field, enter: save, ctrl+c: quit"),
		)

	case PhaseDone:
		body = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("SETUP COMPLETE"),
			"",
			"Configuration written to "+i.configPath,
			"",
			"Start the dashboard with:",
			"",
			"    helmstream",
			"",
			hintStyle.Render("press any key to exit"),
		)
	}

	box := boxStyle.Render(body)
	if i.width > 0 && i.height > 0 {
		return lipgloss.Place(i.width, i.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
