// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package port

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// FLEET FILE WATCHER
// =============================================================================

// FleetWatcher watches a TOML fleet file and reloads it on change. The
// parsed fleet is delivered through the OnReload callback; load errors go
// to OnError and leave the previous fleet in place.
type FleetWatcher struct {
	path     string
	debounce time.Duration

	// OnReload is called with each successfully reloaded fleet.
	OnReload func(*Fleet)

	// OnError is called when a reload fails.
	OnError func(error)

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc

	mu      sync.Mutex
	pending time.Time
}

// NewFleetWatcher creates a watcher for the given fleet file.
func NewFleetWatcher(path string, debounce time.Duration) *FleetWatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &FleetWatcher{
		path:     path,
		debounce: debounce,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Watch starts watching. It falls back to polling when fsnotify is not
// available on the platform.
func (w *FleetWatcher) Watch() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		go w.poll()
		return nil
	}

	// Watch the directory rather than the file itself so atomic
	// write-and-rename saves keep being observed.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		go w.poll()
		return nil
	}

	w.watcher = fsw
	go w.processEvents()
	go w.processPending()
	return nil
}

// Close stops watching and releases resources.
func (w *FleetWatcher) Close() error {
	w.cancel()
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

func (w *FleetWatcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *FleetWatcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			due := !w.pending.IsZero() && time.Since(w.pending) >= w.debounce
			if due {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if due {
				w.reload()
			}
		}
	}
}

// poll is the fallback when fsnotify cannot be used.
func (w *FleetWatcher) poll() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(w.path); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if !info.ModTime().Equal(lastMod) {
				lastMod = info.ModTime()
				w.reload()
			}
		}
	}
}

func (w *FleetWatcher) reload() {
	fleet, err := LoadFleet(w.path)
	if err != nil {
		if w.OnError != nil {
			w.OnError(err)
		}
		return
	}
	if w.OnReload != nil {
		w.OnReload(fleet)
	}
}
