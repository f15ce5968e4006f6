// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	"github.com/bnema/splitview/internal/infrastructure/config"
	"github.com/bnema/splitview/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/splitview/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	Startup       *logging.StartupTrace

	db      *sqlite.LazyDB
	Layouts repository.LayoutRepository

	// Use cases
	SnapshotLayoutUC *usecase.SnapshotLayoutUseCase
	RestoreLayoutUC  *usecase.RestoreLayoutUseCase
	ManageLayoutsUC  *usecase.ManageLayoutsUseCase
	ConfigSchemaUC   *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// Options tune how NewApp builds the logger.
type Options struct {
	// Interactive routes logs to the log file only, so a full-screen UI
	// owns the terminal.
	Interactive bool
}

// NewApp creates a new CLI application with all dependencies.
// The database is opened on first use.
func NewApp(opts Options) (*App, error) {
	t0 := time.Now()
	mgr, cfg := loadConfig()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("SPLITVIEW_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}

	logCfg := logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"}
	fileCfg := logging.FileConfig{FileOnly: opts.Interactive}
	if cfg.Logging.EnableFileLog || opts.Interactive {
		fileCfg.Dir = cfg.Logging.LogDir
		fileCfg.MaxSizeMB = cfg.Logging.MaxSize
		fileCfg.MaxBackups = cfg.Logging.MaxBackups
		fileCfg.MaxAgeDays = cfg.Logging.MaxAge
		fileCfg.Compress = cfg.Logging.Compress
	}
	if opts.Interactive && fileCfg.Dir == "" {
		// No log directory: an interactive session stays silent.
		logCfg.Level = logging.ParseLevel("disabled")
	}

	logger, logCleanup, err := logging.NewWithFile(logCfg, fileCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
	}
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithWindowID(ctx, cfg.Session.WindowID)

	startup := logging.NewStartupTrace(logger, t0)
	startup.Mark("config_loaded")

	db := sqlite.NewLazyDB(cfg.Database.Path)
	layouts := sqlite.NewLazyLayoutRepository(db)

	logger.Debug().Str("db_path", cfg.Database.Path).Msg("database configured")

	return &App{
		Config:           cfg,
		ConfigManager:    mgr,
		Theme:            styles.NewTheme(),
		Startup:          startup,
		db:               db,
		Layouts:          layouts,
		SnapshotLayoutUC: usecase.NewSnapshotLayoutUseCase(layouts),
		RestoreLayoutUC:  usecase.NewRestoreLayoutUseCase(layouts),
		ManageLayoutsUC:  usecase.NewManageLayoutsUseCase(layouts),
		ConfigSchemaUC:   usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:              ctx,
		logCleanup:       logCleanup,
	}, nil
}

// LayoutPolicy builds the layout policy from the loaded config.
func (a *App) LayoutPolicy() (usecase.LayoutPolicy, error) {
	l := a.Config.Layout
	return usecase.ParseLayoutPolicy(l.SplitPolicy, l.CollapsePolicy, l.LastPanePolicy, l.CloseEmptySource, l.MinShare)
}

// WindowID returns the window whose layout the session saves and restores.
func (a *App) WindowID() entity.WindowID {
	return entity.WindowID(a.Config.Session.WindowID)
}

// SchemaVersion opens the database if needed and returns its migration
// version.
func (a *App) SchemaVersion(ctx context.Context) (int64, error) {
	return a.db.SchemaVersion(ctx)
}

// DatabasePath returns the configured database file.
func (a *App) DatabasePath() string {
	return a.db.Path()
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. Any failure falls
// back to defaults so read-only commands keep working.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: config unavailable: %v\n", err)
		return nil, withDatabasePath(config.DefaultConfig())
	}

	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: using default config: %v\n", err)
		return mgr, withDatabasePath(config.DefaultConfig())
	}

	return mgr, mgr.Get()
}

func withDatabasePath(cfg *config.Config) *config.Config {
	if cfg.Database.Path == "" {
		if path, err := config.GetDatabaseFile(); err == nil {
			cfg.Database.Path = path
		}
	}
	return cfg
}
