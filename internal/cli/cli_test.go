// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/helmstream/helmstream-tui/internal/answer"
	"github.com/helmstream/helmstream-tui/internal/config"
)

func parseArgs(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()

	old := os.Args
	os.Args = append([]string{"helmstream"}, argv...)
	defer func() { os.Args = old }()

	return Parse()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := parseArgs(t)
	if cmd != CmdTUI {
		t.Errorf("cmd = %d, want CmdTUI", cmd)
	}
}

func TestParseCommands(t *testing.T) {
	testCases := []struct {
		argv []string
		want Command
	}{
		{[]string{"ask", "hello"}, CmdAsk},
		{[]string{"chat"}, CmdChat},
		{[]string{"status"}, CmdStatus},
		{[]string{"s"}, CmdStatus},
		{[]string{"config", "show"}, CmdConfig},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"bogus"}, CmdHelp},
	}

	for _, tc := range testCases {
		cmd, _ := parseArgs(t, tc.argv...)
		if cmd != tc.want {
			t.Errorf("argv %v: cmd = %d, want %d", tc.argv, cmd, tc.want)
		}
	}
}

func TestParseConfigSet(t *testing.T) {
	cmd, args := parseArgs(t, "config", "set", "service.api_key", "hs-test")
	if cmd != CmdConfig {
		t.Fatalf("cmd = %d, want CmdConfig", cmd)
	}
	if args.Subcommand != "set" || args.ConfigKey != "service.api_key" || args.ConfigVal != "hs-test" {
		t.Errorf("parsed config args = %+v", args)
	}
}

func TestSetConfigValueUnknownKey(t *testing.T) {
	config.ResetGlobalForTesting()
	config.SetGlobal(config.Default())

	if err := setConfigValue("nonsense.key", "x"); err == nil {
		t.Error("expected error for unknown config key")
	}
}

func TestAskCommandUnconfigured(t *testing.T) {
	config.ResetGlobalForTesting()
	config.SetGlobal(config.Default())

	err := HandleAskCommand([]string{"any", "open", "alerts?"})
	if !errors.Is(err, answer.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestDisplayAnswerPlainOutput(t *testing.T) {
	ans := &answer.Answer{
		Answer: "Two incidents in the window.",
		Sources: []answer.Citation{
			{Subject: "Engine failure", Sender: "chief.engineer@pacificglory.com", Date: "2024-11-07"},
		},
	}

	var buf bytes.Buffer
	displayAnswer(&buf, ans)

	out := buf.String()
	if !strings.Contains(out, "Two incidents in the window.") {
		t.Errorf("output missing answer text: %q", out)
	}
	if !strings.Contains(out, "Sources (1):") {
		t.Errorf("output missing sources header: %q", out)
	}
	if !strings.Contains(out, "Engine failure") {
		t.Errorf("output missing source subject: %q", out)
	}
}

func TestDescribeServiceError(t *testing.T) {
	netErr := &answer.ServiceError{Cause: answer.CauseNetwork}
	if msg := describeServiceError(netErr).Error(); !strings.Contains(msg, "unable to reach") {
		t.Errorf("network error message = %q", msg)
	}

	malformed := &answer.ServiceError{Cause: answer.CauseMalformed}
	if msg := describeServiceError(malformed).Error(); !strings.Contains(msg, "unreadable") {
		t.Errorf("malformed error message = %q", msg)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo"); got != "one" {
		t.Errorf("firstLine = %q", got)
	}
	if got := firstLine("single"); got != "single" {
		t.Errorf("firstLine = %q", got)
	}
}
