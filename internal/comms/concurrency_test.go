// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Concurrency tests for the message index: searches, counts, and
// reloads racing against each other must not corrupt results or panic.
package comms

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helmstream/helmstream-tui/internal/port"
)

func TestMessageIndex_ConcurrentSearch(t *testing.T) {
	idx, err := NewMessageIndex()
	require.NoError(t, err)
	defer idx.Close()

	fleet := port.DefaultFleet()
	require.NoError(t, idx.Load(fleet.Messages))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := idx.Search("berth", 10)
			require.NoError(t, err)
			for _, m := range results {
				require.NotEmpty(t, m.ID)
			}
		}()
	}
	wg.Wait()
}

func TestMessageIndex_ConcurrentLoadAndCount(t *testing.T) {
	idx, err := NewMessageIndex()
	require.NoError(t, err)
	defer idx.Close()

	fleet := port.DefaultFleet()
	require.NoError(t, idx.Load(fleet.Messages))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			require.NoError(t, idx.Load(fleet.Messages))
		}()
		go func() {
			defer wg.Done()
			counts, err := idx.CountByChannel()
			require.NoError(t, err)
			total := 0
			for _, n := range counts {
				total += n
			}
			// Reloads are transactional, so a concurrent count must
			// never observe a partially loaded table.
			require.Equal(t, len(fleet.Messages), total)
		}()
	}
	wg.Wait()

	counts, err := idx.CountByChannel()
	require.NoError(t, err)
	total := 0
	for _, n := range counts {
		total += n
	}
	require.Equal(t, len(fleet.Messages), total)
}
