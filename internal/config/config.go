package config

import (
	"fmt"
	"log/slog"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config is the root configuration for todo.
type Config struct {
	Timezone string         `json:"timezone"` // IANA name; empty = host timezone
	Store    StoreConfig    `json:"store"`
	Defaults DefaultsConfig `json:"defaults"`
	Log      LogConfig      `json:"log"`
	Output   OutputConfig   `json:"output"`
}

// StoreConfig selects where tasks live.
type StoreConfig struct {
	Backend string `json:"backend"` // "sqlite" | "memory"
	Path    string `json:"path"`    // database file (default: $TODO_PATH/todos.db)
}

// DefaultsConfig holds values the CLI fills in when a flag is omitted.
type DefaultsConfig struct {
	Priority string `json:"priority"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `json:"level"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `json:"format"`
	Color  *bool  `json:"color,omitempty"` // nil = colour when stdout is a terminal
}

// SlogLevel parses the configured level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelWarn, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	return lvl, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("store.backend %q: must be %q or %q", c.Store.Backend, BackendSQLite, BackendMemory)
	}
	if err := ValidateFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("output format %q: must be one of %s, %s, %s", format, FormatTable, FormatJSON, FormatYAML)
}
