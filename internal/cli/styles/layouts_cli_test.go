package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
)

func TestLayoutsCLIRenderer_List(t *testing.T) {
	r := styles.NewLayoutsCLIRenderer(styles.NewTheme())

	require.Contains(t, r.RenderEmptyList(), "No saved layouts found.")

	out := r.RenderList([]repository.LayoutSummary{
		{WindowID: "main", Version: 1, PaneCount: 3, UpdatedAt: time.Now()},
		{WindowID: "scratch", Version: 1, PaneCount: 1, UpdatedAt: time.Now().Add(-2 * time.Hour)},
	}, "main")
	require.Contains(t, out, "Layouts")
	require.Contains(t, out, "main")
	require.Contains(t, out, "3 panes")
	require.Contains(t, out, "2h ago")
	require.Contains(t, out, "●")

	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
	require.Contains(t, r.RenderDeleted("main"), "deleted")
}

func TestLayoutsCLIRenderer_Tree(t *testing.T) {
	r := styles.NewLayoutsCLIRenderer(styles.NewTheme())
	snap := &entity.LayoutSnapshot{
		Version:      entity.LayoutSnapshotVersion,
		WindowID:     "main",
		ActivePaneID: "b",
		SavedAt:      time.Now(),
		Root: &entity.LayoutNodeSnapshot{
			Type:        entity.SnapshotTypeSplitter,
			ID:          "s",
			Orientation: "horizontal",
			Shares:      []float64{0.25, 0.75},
			Children: []*entity.LayoutNodeSnapshot{
				{Type: entity.SnapshotTypePane, ID: "a"},
				{Type: entity.SnapshotTypePane, ID: "b", TabState: &entity.TabState{ActiveDocument: "main.go", TabCount: 2}},
			},
		},
	}

	out := r.RenderTree(snap)
	require.Contains(t, out, "horizontal")
	require.Contains(t, out, "25%")
	require.Contains(t, out, "75%")
	require.Contains(t, out, "main.go")
	require.Contains(t, out, "untitled")
	require.Contains(t, out, "2 tabs")
	require.Contains(t, out, "2 panes")

	require.Contains(t, r.RenderTree(nil), "empty")
}
