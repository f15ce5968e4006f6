package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli/model"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/infrastructure/config"
	"github.com/bnema/splitview/internal/infrastructure/ids"
	"github.com/bnema/splitview/internal/logging"
	"github.com/bnema/splitview/internal/ui/termhost"
)

var demoFresh bool

var demoCmd = &cobra.Command{
	Use:   "demo [files...]",
	Short: "Open the terminal split view workspace",
	Long: `Open an interactive split view in the terminal.

Files given on the command line open as tabs of the first pane. Drag a tab
label with the mouse and drop it on an edge of a pane to split it, or on
its center to move the tab there.

When session.auto_save is enabled the layout of session.window_id is
restored on start and saved on exit.

Examples:
  splitview demo                    # Restore or start with one pane
  splitview demo main.go notes.md   # Open two tabs in the active pane
  splitview demo --fresh            # Ignore the saved layout`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoFresh, "fresh", false, "start from a single pane instead of the saved layout")
}

func runDemo(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	policy, err := app.LayoutPolicy()
	if err != nil {
		return fmt.Errorf("layout config: %w", err)
	}

	host := termhost.NewHost(0, 0)
	manager, err := usecase.NewSplitViewManager(ctx, usecase.SplitViewDeps{
		IDGenerator: ids.NewShortGenerator("p"),
		Tabs:        termhost.TabSetFactory{},
		Host:        host,
		Policy:      policy,
	})
	if err != nil {
		return fmt.Errorf("create split view: %w", err)
	}
	app.Startup.Mark("manager_ready")

	autoSave := app.Config.Session.AutoSave
	if autoSave && !demoFresh {
		restored, restoreErr := app.RestoreLayoutUC.Execute(ctx, app.WindowID(), manager)
		if restoreErr != nil {
			log.Warn().Err(restoreErr).Msg("layout restore failed, starting fresh")
		} else if restored {
			app.Startup.Mark("layout_restored")
		}
	}

	for _, path := range args {
		if _, openErr := manager.SplitPane(ctx, manager.ActivePaneID(), entity.ZoneCenter, entity.FilePayload(path)); openErr != nil {
			log.Warn().Err(openErr).Str("path", path).Msg("cannot open file")
		}
	}

	m, err := model.NewWorkspaceModel(ctx, app.Theme, model.WorkspaceModelConfig{
		Manager:    manager,
		Host:       host,
		SnapshotUC: app.SnapshotLayoutUC,
		WindowID:   app.WindowID(),
		AutoSave:   autoSave,
		Startup:    app.Startup,
		ZoneMargin: app.Config.Layout.ZoneMargin,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	watchLayoutPolicy(app.ConfigManager, p)
	app.Startup.Mark("program_started")

	_, err = p.Run()
	return err
}

// watchLayoutPolicy forwards layout policy edits of the config file to the
// running program.
func watchLayoutPolicy(mgr *config.Manager, p *tea.Program) {
	if mgr == nil {
		return
	}
	log := logging.FromContext(GetApp().Ctx())

	mgr.OnConfigChange(func(cfg *config.Config) {
		l := cfg.Layout
		policy, err := usecase.ParseLayoutPolicy(l.SplitPolicy, l.CollapsePolicy, l.LastPanePolicy, l.CloseEmptySource, l.MinShare)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring invalid layout config")
			return
		}
		p.Send(model.PolicyChangedMsg{Policy: policy})
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}
}
