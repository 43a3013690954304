// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command.
//
// "helmstream ask <question>" sends a single question to the answer
// service and prints the reply. Markdown rendering is enabled only when
// stdout is a terminal so piped output stays plain.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/config"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(DefaultTerminalWidth),
	)
	if err != nil {
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown for terminal display, falling back to
// the raw text if rendering fails.
func renderMarkdown(text string) string {
	if markdownRenderer == nil {
		return text
	}
	out, err := markdownRenderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n") + "\n"
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAskCommand sends one question and prints the answer with its
// cited sources.
func HandleAskCommand(args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("usage: helmstream ask <question>")
	}

	cfg := config.Global()
	client := answer.NewClient(cfg)
	if !client.IsConfigured() {
		return fmt.Errorf("%w; set service.api_key in %s", answer.ErrNotConfigured, configPathHint())
	}

	ans, err := client.Ask(context.Background(), question)
	if err != nil {
		return describeServiceError(err)
	}

	displayAnswer(os.Stdout, ans)
	return nil
}

// displayAnswer writes the answer and sources. Markdown and color only
// when writing to a terminal.
func displayAnswer(w io.Writer, ans *answer.Answer) {
	if IsStdoutTTY() {
		fmt.Fprint(w, renderMarkdown(ans.Answer))
	} else {
		fmt.Fprintln(w, ans.Answer)
	}

	if len(ans.Sources) == 0 {
		return
	}

	fmt.Fprintln(w)
	if ColorEnabled() {
		fmt.Fprintln(w, styles.RenderInfo(fmt.Sprintf("Sources (%d):", len(ans.Sources))))
	} else {
		fmt.Fprintf(w, "Sources (%d):\n", len(ans.Sources))
	}
	for _, src := range ans.Sources {
		fmt.Fprintf(w, "  - %s (%s, %s)\n", src.Subject, src.Sender, src.Date)
	}
}

// describeServiceError turns a ServiceError into a user-facing message.
func describeServiceError(err error) error {
	var svcErr *answer.ServiceError
	if !errors.As(err, &svcErr) {
		return err
	}
	switch {
	case svcErr.IsNetwork():
		return fmt.Errorf("unable to reach the answer service: %w", err)
	case svcErr.Cause == answer.CauseMalformed:
		return fmt.Errorf("the answer service returned an unreadable response: %w", err)
	default:
		return fmt.Errorf("answer service error: %w", err)
	}
}

func configPathHint() string {
	path, err := config.ConfigPath()
	if err != nil {
		return "~/.helmstream/config.toml"
	}
	return path
}
