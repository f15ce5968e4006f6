package config

import (
	"fmt"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLayout   = "Layout"
	SectionLogging  = "Logging"
	SectionDatabase = "Database"
	SectionSession  = "Session"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 20)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getSessionKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.zone_margin",
			Type:        "float64",
			Default:     fmt.Sprintf("%.2f", defaults.Layout.ZoneMargin),
			Description: "Edge band width as a fraction of the pane's shorter side",
			Range:       "(0-0.5]",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.split_policy",
			Type:        "string",
			Default:     defaults.Layout.SplitPolicy,
			Description: "How a new pane shares space with its siblings",
			Values:      validSplitPolicies,
			Section:     SectionLayout,
		},
		{
			Key:         "layout.collapse_policy",
			Type:        "string",
			Default:     defaults.Layout.CollapsePolicy,
			Description: "How remaining panes absorb a closed pane's space",
			Values:      validCollapsePolicies,
			Section:     SectionLayout,
		},
		{
			Key:         "layout.last_pane_policy",
			Type:        "string",
			Default:     defaults.Layout.LastPanePolicy,
			Description: "Closing the only pane replaces it with a new one or resets it in place",
			Values:      validLastPanePolicies,
			Section:     SectionLayout,
		},
		{
			Key:         "layout.close_empty_source",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Layout.CloseEmptySource),
			Description: "Close a pane after its last tab is dragged into another pane",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.min_share",
			Type:        "float64",
			Default:     fmt.Sprintf("%.2f", defaults.Layout.MinShare),
			Description: "Smallest fraction of a splitter a resize can leave a pane with",
			Range:       "[0-0.5)",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity",
			Values:      validLogLevels,
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      validLogFormats,
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.EnableFileLog),
			Description: "Write logs to a rotated file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/" + appName + "/logs",
			Description: "Directory for log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSize),
			Description: "Rotate the log file after this many MB",
			Range:       ">=1",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxAge),
			Description: "Days to keep rotated log files",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.Compress),
			Description: "Gzip rotated log files",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	dbPath := "$XDG_DATA_HOME/" + appName + "/" + databaseName
	if path, err := GetDatabaseFile(); err == nil {
		dbPath = path
	}

	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     dbPath,
			Description: "Path to the SQLite layout database",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getSessionKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "session.auto_save",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Session.AutoSave),
			Description: "Restore the saved layout on start and save it on exit",
			Section:     SectionSession,
		},
		{
			Key:         "session.window_id",
			Type:        "string",
			Default:     defaults.Session.WindowID,
			Description: "Layout row used by the demo window",
			Section:     SectionSession,
		},
	}
}
