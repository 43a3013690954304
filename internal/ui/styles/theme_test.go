// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}
}

func TestThemeSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize: got %dx%d, want 120x40", theme.Width, theme.Height)
	}
}

func TestSeverityColor(t *testing.T) {
	testCases := []struct {
		severity string
		want     string // dark variant
	}{
		{"critical", Rose.Dark},
		{"warning", Amber.Dark},
		{"info", Blue.Dark},
		{"unknown", Blue.Dark},
	}

	for _, tc := range testCases {
		t.Run(tc.severity, func(t *testing.T) {
			if got := SeverityColor(tc.severity); got.Dark != tc.want {
				t.Errorf("SeverityColor(%q).Dark = %q, want %q", tc.severity, got.Dark, tc.want)
			}
		})
	}
}

func TestRenderStatus(t *testing.T) {
	ok := RenderStatus(true, "reachable")
	if ok == "" {
		t.Error("RenderStatus(true) returned empty string")
	}
	bad := RenderStatus(false, "unreachable")
	if bad == "" {
		t.Error("RenderStatus(false) returned empty string")
	}
	if ok == bad {
		t.Error("success and failure renderings should differ")
	}
}
