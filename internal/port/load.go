// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package port

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadFleet reads a fleet dataset from a TOML file. Sections missing from
// the file fall back to the built-in dataset, so a fleet file can override
// just the vessels while keeping the default alerts.
func LoadFleet(path string) (*Fleet, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("fleet file not accessible: %w", err)
	}

	var loaded Fleet
	if _, err := toml.DecodeFile(path, &loaded); err != nil {
		return nil, fmt.Errorf("failed to decode fleet file: %w", err)
	}

	fleet := DefaultFleet()
	if loaded.Vessels != nil {
		fleet.Vessels = loaded.Vessels
	}
	if loaded.Berths != nil {
		fleet.Berths = loaded.Berths
	}
	if loaded.Messages != nil {
		fleet.Messages = loaded.Messages
	}
	if loaded.Alerts != nil {
		fleet.Alerts = loaded.Alerts
	}
	if loaded.Workflows != nil {
		fleet.Workflows = loaded.Workflows
	}
	return fleet, nil
}
