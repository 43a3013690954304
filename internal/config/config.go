// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config manages helmstream configuration.
//
// Configuration is stored as TOML at ~/.helmstream/config.toml and may be
// overridden by HELMSTREAM_* environment variables. A thread-safe global
// singleton is available via Global().
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/helmstream/helmstream-tui/internal/util"
)

// =============================================================================
// CONFIG TYPES
// =============================================================================

// Config is the root configuration structure.
type Config struct {
	// Service configures the remote answer service.
	Service ServiceConfig `toml:"service" json:"service"`

	// Port configures the port dataset.
	Port PortConfig `toml:"port" json:"port"`

	// UI configures presentation preferences.
	UI UIConfig `toml:"ui" json:"ui"`
}

// ServiceConfig holds answer-service connection settings.
type ServiceConfig struct {
	// BaseURL is the answer service base URL (the client appends /api/query).
	BaseURL string `toml:"base_url" json:"base_url"`

	// APIKey is sent as the x-api-key header on every request.
	APIKey string `toml:"api_key" json:"api_key"`

	// TimeoutSecs bounds each query request. 0 means the default (30s).
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`

	// RatePerSec caps outbound queries per second. 0 means the default (2).
	RatePerSec float64 `toml:"rate_per_sec" json:"rate_per_sec"`
}

// PortConfig holds port dataset settings.
type PortConfig struct {
	// FleetFile optionally points at a TOML fleet file overriding the
	// built-in dataset. When set, the file is watched and reloaded live.
	FleetFile string `toml:"fleet_file" json:"fleet_file"`

	// AssumedYear is the year applied when parsing alert display
	// timestamps like "Nov 7, 13:47" that carry no year of their own.
	AssumedYear int `toml:"assumed_year" json:"assumed_year"`
}

// UIConfig holds presentation preferences.
type UIConfig struct {
	// ShowWelcome controls the startup welcome screen.
	ShowWelcome bool `toml:"show_welcome" json:"show_welcome"`

	// CompactMode collapses panel padding on small terminals.
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL:     "http://localhost:8000",
			APIKey:      "",
			TimeoutSecs: 30,
			RatePerSec:  2,
		},
		Port: PortConfig{
			FleetFile:   "",
			AssumedYear: 2024,
		},
		UI: UIConfig{
			ShowWelcome: true,
			CompactMode: false,
		},
	}
}

// ConfigDir returns the helmstream configuration directory (~/.helmstream).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".helmstream"), nil
}

// ConfigPath returns the path of the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// ensureSecurePermissions tightens config file permissions to 0600.
// The config file can hold the API key, so group/other access is removed.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0077 != 0 {
		return os.Chmod(path, 0600)
	}
	return nil
}

// =============================================================================
// LOAD AND SAVE
// =============================================================================

// Load reads configuration from disk, applies environment overrides, and
// validates the result. A missing config file is not an error: defaults
// (plus env overrides) are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads and validates configuration from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the default TOML path.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration as TOML to the given path with 0600
// permissions, atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# helmstream configuration\n")
	buf.WriteString("# See 'helmstream config' for available settings.\n\n")

	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors aggregates all validation failures.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("config validation failed:")
	for _, ve := range e {
		sb.WriteString("\n  - ")
		sb.WriteString(ve.Error())
	}
	return sb.String()
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Service.BaseURL == "" {
		errs = append(errs, ValidationError{
			Field:   "service.base_url",
			Message: "must not be empty",
		})
	} else if !strings.HasPrefix(c.Service.BaseURL, "http://") &&
		!strings.HasPrefix(c.Service.BaseURL, "https://") {
		errs = append(errs, ValidationError{
			Field:   "service.base_url",
			Message: "must start with http:// or https://",
		})
	}

	if c.Service.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "service.timeout_secs",
			Message: "must not be negative",
		})
	}

	if c.Service.RatePerSec < 0 {
		errs = append(errs, ValidationError{
			Field:   "service.rate_per_sec",
			Message: "must not be negative",
		})
	}

	if c.Port.AssumedYear < 1970 || c.Port.AssumedYear > 9999 {
		errs = append(errs, ValidationError{
			Field:   "port.assumed_year",
			Message: "must be a four-digit year",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills zero values with defaults after loading.
func (c *Config) SetDefaults() {
	if c.Service.BaseURL == "" {
		c.Service.BaseURL = "http://localhost:8000"
	}
	if c.Service.TimeoutSecs == 0 {
		c.Service.TimeoutSecs = 30
	}
	if c.Service.RatePerSec == 0 {
		c.Service.RatePerSec = 2
	}
	if c.Port.AssumedYear == 0 {
		c.Port.AssumedYear = 2024
	}
}

// ApplyEnvOverrides applies HELMSTREAM_* environment variables on top of
// whatever was loaded from disk. Environment always wins.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("HELMSTREAM_API_URL"); v != "" {
		c.Service.BaseURL = v
	}
	if v := os.Getenv("HELMSTREAM_API_KEY"); v != "" {
		c.Service.APIKey = v
	}
	if v := os.Getenv("HELMSTREAM_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.Service.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("HELMSTREAM_FLEET_FILE"); v != "" {
		c.Port.FleetFile = v
	}
}

// String renders the configuration for display with the API key redacted.
func (c *Config) String() string {
	safe := *c
	if safe.Service.APIKey != "" {
		safe.Service.APIKey = "[REDACTED]"
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(safe); err != nil {
		return fmt.Sprintf("<unprintable config: %v>", err)
	}
	return buf.String()
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
// A later Global() call will not re-load from disk.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
