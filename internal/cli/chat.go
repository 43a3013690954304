// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat REPL.
//
// "helmstream chat" runs a line-oriented conversation against the
// answer service with readline-style input history. The full-screen
// dashboard is the primary surface; this is the lightweight alternative
// for plain terminals and SSH sessions.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/config"
	"github.com/helmstream/helmstream-tui/internal/model"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatInput wraps liner with persistent history in the config
// directory.
type ChatInput struct {
	line        *liner.State
	historyFile string
}

// NewChatInput creates the line editor and loads any saved history.
func NewChatInput() *ChatInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	in := &ChatInput{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	in.loadHistory()
	return in
}

func (c *ChatInput) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads one line with history navigation.
func (c *ChatInput) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// saveHistory persists history with owner-only permissions.
func (c *ChatInput) saveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and releases the terminal.
func (c *ChatInput) Close() {
	c.saveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChatCommand runs the interactive REPL until EOF, Ctrl+C, or
// /quit.
func HandleChatCommand() error {
	cfg := config.Global()
	client := answer.NewClient(cfg)
	if !client.IsConfigured() {
		return fmt.Errorf("%w; set service.api_key in %s", answer.ErrNotConfigured, configPathHint())
	}

	conv := model.NewConversation()
	input := NewChatInput()
	defer input.Close()

	printChatWelcome(client)

	for {
		line, err := input.ReadInput(promptStyle.Render("helmstream> "))
		if err != nil {
			// Ctrl+C, Ctrl+D, or a closed terminal all end the session.
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if !handleSlashCommand(line, conv) {
				return nil
			}
			continue
		}

		if err := runChatTurn(conv, client, line); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
		}
	}
}

// runChatTurn submits one question, waits for the reply, and prints it.
func runChatTurn(conv *model.Conversation, client *answer.Client, question string) error {
	turnID, err := conv.Submit(question)
	if err != nil || turnID == "" {
		return err
	}

	start := time.Now()
	ans, askErr := client.Ask(context.Background(), question)
	if askErr != nil {
		conv.Fail(turnID, askErr)
		if t := conv.TurnByID(turnID); t != nil {
			fmt.Println(warningStyle.Render(t.Text))
		}
		return nil
	}

	if err := conv.Resolve(turnID, ans); err != nil {
		return err
	}

	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(ans.Answer))
	} else {
		fmt.Println(ans.Answer)
	}

	meta := fmt.Sprintf("%d sources, %s", len(ans.Sources), time.Since(start).Round(time.Millisecond))
	fmt.Println(infoStyle.Render(meta))

	if t := conv.TurnByID(turnID); t != nil && t.OfferIncidents {
		fmt.Println(infoStyle.Render(fmt.Sprintf("Incident window: %s to %s (open the dashboard to browse alerts)",
			t.IncidentRange.Start.Format("2006-01-02"), t.IncidentRange.End.Format("2006-01-02"))))
	}
	fmt.Println()
	return nil
}

// handleSlashCommand executes a /command; false means quit.
func handleSlashCommand(cmd string, conv *model.Conversation) bool {
	switch strings.ToLower(cmd) {
	case "/quit", "/exit", "/q":
		return false

	case "/clear":
		conv.Clear()
		fmt.Println(infoStyle.Render("Conversation cleared."))

	case "/history":
		for _, t := range conv.Turns() {
			prefix := "you"
			if t.Role == model.RoleAssistant {
				prefix = "helmstream"
			}
			fmt.Printf("%s: %s\n", commandStyle.Render(prefix), firstLine(t.Text))
		}

	case "/help":
		printChatHelp()

	default:
		fmt.Println(warningStyle.Render("Unknown command: " + cmd + " (try /help)"))
	}
	return true
}

func printChatWelcome(client *answer.Client) {
	fmt.Println(welcomeStyle.Render("helmstream chat"))
	fmt.Println(infoStyle.Render("service: " + client.BaseURL()))
	fmt.Println(infoStyle.Render("Type a question, or /help for commands."))
	fmt.Println()
}

func printChatHelp() {
	fmt.Println(commandStyle.Render("/help") + "     show this help")
	fmt.Println(commandStyle.Render("/history") + "  show the conversation so far")
	fmt.Println(commandStyle.Render("/clear") + "    start a fresh conversation")
	fmt.Println(commandStyle.Render("/quit") + "     leave chat")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
