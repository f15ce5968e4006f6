package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validSplitPolicies    = []string{"halve", "equal"}
	validCollapsePolicies = []string{"proportional", "equal"}
	validLastPanePolicies = []string{"replace", "reset"}
	validLogLevels        = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats       = []string{"console", "json"}
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(cfg *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(cfg)...)
	validationErrors = append(validationErrors, validateLogging(cfg)...)
	validationErrors = append(validationErrors, validateSession(cfg)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLayout(cfg *Config) []string {
	var validationErrors []string
	l := cfg.Layout

	if l.ZoneMargin <= 0 || l.ZoneMargin > 0.5 {
		validationErrors = append(validationErrors, "layout.zone_margin must be in (0, 0.5]")
	}
	if l.MinShare < 0 || l.MinShare >= 0.5 {
		validationErrors = append(validationErrors, "layout.min_share must be in [0, 0.5)")
	}
	validationErrors = append(validationErrors, validateEnum("layout.split_policy", l.SplitPolicy, validSplitPolicies)...)
	validationErrors = append(validationErrors, validateEnum("layout.collapse_policy", l.CollapsePolicy, validCollapsePolicies)...)
	validationErrors = append(validationErrors, validateEnum("layout.last_pane_policy", l.LastPanePolicy, validLastPanePolicies)...)
	return validationErrors
}

func validateLogging(cfg *Config) []string {
	var validationErrors []string
	l := cfg.Logging

	validationErrors = append(validationErrors, validateEnum("logging.level", l.Level, validLogLevels)...)
	validationErrors = append(validationErrors, validateEnum("logging.format", l.Format, validLogFormats)...)
	if l.MaxSize < 1 {
		validationErrors = append(validationErrors, "logging.max_size must be at least 1 (MB)")
	}
	if l.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if l.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if l.EnableFileLog && l.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir is required when enable_file_log is true")
	}
	return validationErrors
}

func validateSession(cfg *Config) []string {
	if strings.TrimSpace(cfg.Session.WindowID) == "" {
		return []string{"session.window_id cannot be empty"}
	}
	return nil
}

func validateEnum(key, value string, valid []string) []string {
	if slices.Contains(valid, value) {
		return nil
	}
	return []string{fmt.Sprintf("%s must be one of %s (got %q)", key, strings.Join(valid, ", "), value)}
}
