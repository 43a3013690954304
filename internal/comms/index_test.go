// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package comms

import (
	"testing"

	"github.com/helmstream/helmstream-tui/internal/port"
)

func newLoadedIndex(t *testing.T) *MessageIndex {
	t.Helper()

	idx, err := NewMessageIndex()
	if err != nil {
		t.Fatalf("NewMessageIndex failed: %v", err)
	}
	t.Cleanup(func() { idx.Close() })

	if err := idx.Load(port.DefaultFleet().Messages); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return idx
}

func TestSearchFindsByBody(t *testing.T) {
	idx := newLoadedIndex(t)

	results, err := idx.Search("engine failure", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results for 'engine failure'")
	}
	if results[0].Vessel != "MV Pacific Glory" {
		t.Errorf("top result vessel = %q, want MV Pacific Glory", results[0].Vessel)
	}
}

func TestSearchFindsByVessel(t *testing.T) {
	idx := newLoadedIndex(t)

	results, err := idx.Search("Horizon", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	for _, m := range results {
		if m.Vessel != "MSC Horizon" {
			t.Errorf("unexpected result %s for vessel query", m.ID)
		}
	}
	if len(results) == 0 {
		t.Error("expected results for 'Horizon'")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	idx := newLoadedIndex(t)

	results, err := idx.Search("   ", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if results != nil {
		t.Errorf("empty query should return nothing, got %d", len(results))
	}
}

func TestSearchQuoteInjection(t *testing.T) {
	idx := newLoadedIndex(t)

	// Quotes in user input must not break the FTS query.
	if _, err := idx.Search(`"engine" OR`, 10); err != nil {
		t.Errorf("quoted query failed: %v", err)
	}
}

func TestCountByChannel(t *testing.T) {
	idx := newLoadedIndex(t)

	counts, err := idx.CountByChannel()
	if err != nil {
		t.Fatalf("CountByChannel failed: %v", err)
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if want := len(port.DefaultFleet().Messages); total != want {
		t.Errorf("total = %d, want %d", total, want)
	}
	if counts[port.ChannelEmail] == 0 {
		t.Error("expected email messages")
	}
}

func TestUnreadCount(t *testing.T) {
	idx := newLoadedIndex(t)

	n, err := idx.UnreadCount()
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}

	want := 0
	for _, m := range port.DefaultFleet().Messages {
		if m.Unread {
			want++
		}
	}
	if n != want {
		t.Errorf("UnreadCount = %d, want %d", n, want)
	}
}

func TestLoadReplacesContents(t *testing.T) {
	idx := newLoadedIndex(t)

	if err := idx.Load([]port.Message{
		{ID: "only", Channel: port.ChannelRadio, Sender: "test", Subject: "hello", Body: "world"},
	}); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	counts, err := idx.CountByChannel()
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 1 {
		t.Errorf("total after reload = %d, want 1", total)
	}
}
