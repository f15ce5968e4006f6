package config

const (
	defaultZoneMargin     = 0.25
	defaultMinShare       = 0.05
	defaultSplitPolicy    = "halve"
	defaultCollapsePolicy = "proportional"
	defaultLastPanePolicy = "replace"

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7

	defaultWindowID = "main"
)

// getDefaultLogDir returns the default log directory, or "" on error.
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for splitview.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			ZoneMargin:       defaultZoneMargin,
			SplitPolicy:      defaultSplitPolicy,
			CollapsePolicy:   defaultCollapsePolicy,
			LastPanePolicy:   defaultLastPanePolicy,
			CloseEmptySource: true,
			MinShare:         defaultMinShare,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSize:       defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAge:        defaultLogMaxAgeDays,
			Compress:      true,
		},
		// Database.Path is resolved in Load when empty.
		Session: SessionConfig{
			AutoSave: true,
			WindowID: defaultWindowID,
		},
	}
}
