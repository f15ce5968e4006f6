package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
)

var layoutJSON bool

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect saved window layouts",
	Long: `List, show, and delete the pane trees saved by the workspace.

A layout is saved per window id when the workspace exits with
session.auto_save enabled, or on demand with ctrl+s.`,
}

var layoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	Args:  cobra.NoArgs,
	RunE:  runLayoutList,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show [window]",
	Short: "Print a saved layout as a tree",
	Long: `Print the pane tree saved for a window. Without an argument the
configured session.window_id is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayoutShow,
}

var layoutDeleteCmd = &cobra.Command{
	Use:   "delete <window>",
	Short: "Delete a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutDelete,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutListCmd)
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutDeleteCmd)

	layoutCmd.PersistentFlags().BoolVar(&layoutJSON, "json", false, "output as JSON")
}

// layoutSummaryJSON is the JSON shape of one `layout list` entry.
type layoutSummaryJSON struct {
	WindowID  string    `json:"window_id"`
	Version   int       `json:"version"`
	PaneCount int       `json:"pane_count"`
	UpdatedAt time.Time `json:"updated_at"`
	SizeBytes int       `json:"size_bytes"`
}

func runLayoutList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)

	items, err := app.ManageLayoutsUC.List(app.Ctx())
	if err != nil {
		if layoutJSON {
			return err
		}
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if layoutJSON {
		out := make([]layoutSummaryJSON, 0, len(items))
		for _, s := range items {
			out = append(out, layoutSummaryJSON{
				WindowID:  string(s.WindowID),
				Version:   s.Version,
				PaneCount: s.PaneCount,
				UpdatedAt: s.UpdatedAt,
				SizeBytes: s.SizeBytes,
			})
		}
		return writeJSON(out)
	}

	fmt.Println(renderer.RenderList(items, app.WindowID()))
	return nil
}

func runLayoutShow(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)

	windowID := app.WindowID()
	if len(args) == 1 {
		windowID = entity.WindowID(args[0])
	}

	snap, err := app.ManageLayoutsUC.Get(app.Ctx(), windowID)
	if err != nil {
		if layoutJSON {
			return err
		}
		if errors.Is(err, entity.ErrNotFound) {
			fmt.Println(renderer.RenderEmptyList())
			return nil
		}
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if layoutJSON {
		return writeJSON(snap)
	}
	fmt.Println(renderer.RenderTree(snap))
	return nil
}

func runLayoutDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)

	windowID := entity.WindowID(args[0])
	if err := app.ManageLayoutsUC.Delete(app.Ctx(), windowID); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderDeleted(windowID))
	return nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
