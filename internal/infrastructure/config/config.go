// Package config loads splitview configuration with Viper from a TOML file in
// the XDG config directory, with SPLITVIEW_ environment overrides.
package config

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for splitview.
type Config struct {
	// Layout tunes drop zones and how space is shared between panes.
	Layout   LayoutConfig   `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	// Session controls saving and restoring window layouts.
	Session SessionConfig `mapstructure:"session" yaml:"session" toml:"session" json:"session"`
}

// LayoutConfig holds the split view policies.
type LayoutConfig struct {
	// ZoneMargin is the edge band width as a fraction of the pane's shorter side.
	ZoneMargin float64 `mapstructure:"zone_margin" yaml:"zone_margin" toml:"zone_margin" json:"zone_margin" jsonschema:"exclusiveMinimum=0,maximum=0.5,default=0.25"` //nolint:lll // struct tags must stay on one line
	// SplitPolicy decides how a new pane shares space with its siblings.
	SplitPolicy string `mapstructure:"split_policy" yaml:"split_policy" toml:"split_policy" json:"split_policy" jsonschema:"enum=halve,enum=equal,default=halve"` //nolint:lll // struct tags must stay on one line
	// CollapsePolicy decides how survivors absorb a closed pane's region.
	CollapsePolicy string `mapstructure:"collapse_policy" yaml:"collapse_policy" toml:"collapse_policy" json:"collapse_policy" jsonschema:"enum=proportional,enum=equal,default=proportional"` //nolint:lll // struct tags must stay on one line
	// LastPanePolicy decides what closing the only pane does.
	LastPanePolicy string `mapstructure:"last_pane_policy" yaml:"last_pane_policy" toml:"last_pane_policy" json:"last_pane_policy" jsonschema:"enum=replace,enum=reset,default=replace"` //nolint:lll // struct tags must stay on one line
	// CloseEmptySource closes a pane whose last tab was dragged away.
	CloseEmptySource bool `mapstructure:"close_empty_source" yaml:"close_empty_source" toml:"close_empty_source" json:"close_empty_source" jsonschema:"default=true"` //nolint:lll // struct tags must stay on one line
	// MinShare is the smallest fraction a resize can leave a pane with.
	MinShare float64 `mapstructure:"min_share" yaml:"min_share" toml:"min_share" json:"min_share" jsonschema:"minimum=0,exclusiveMaximum=0.5,default=0.05"` //nolint:lll // struct tags must stay on one line
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"` //nolint:lll // struct tags must stay on one line
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"` //nolint:lll // struct tags must stay on one line

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSize       int    `mapstructure:"max_size" yaml:"max_size" toml:"max_size" json:"max_size" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// SessionConfig controls layout persistence.
type SessionConfig struct {
	// AutoSave restores the saved layout on start and saves it on exit.
	AutoSave bool `mapstructure:"auto_save" yaml:"auto_save" toml:"auto_save" json:"auto_save"`
	// WindowID names the layout row used by the demo window.
	WindowID string `mapstructure:"window_id" yaml:"window_id" toml:"window_id" json:"window_id"`
}
