package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
	repomocks "github.com/bnema/splitview/internal/domain/repository/mocks"
)

func TestSnapshotLayoutUseCase_Execute_SavesSnapshot(t *testing.T) {
	ctx := testContext()
	f := newSplitViewFixture(t, usecase.DefaultLayoutPolicy())
	b := f.split(t, "n1", entity.ZoneRight)
	require.NoError(t, f.tabs.created[b].OpenFile(ctx, "b.go"))

	layoutRepo := repomocks.NewMockLayoutRepository(t)
	layoutRepo.EXPECT().SaveLayout(mock.Anything, mock.AnythingOfType("*entity.LayoutSnapshot")).
		Run(func(_ context.Context, snap *entity.LayoutSnapshot) {
			require.Equal(t, entity.WindowID("main"), snap.WindowID)
			require.Equal(t, entity.LayoutSnapshotVersion, snap.Version)
			require.Equal(t, 2, snap.CountPanes())
			require.Equal(t, b, snap.ActivePaneID)
			require.Equal(t, "b.go", snap.Root.Children[1].TabState.ActiveDocument)
		}).
		Return(nil)

	uc := usecase.NewSnapshotLayoutUseCase(layoutRepo)
	snap, err := uc.Execute(ctx, "main", f.manager)
	require.NoError(t, err)
	assert.NotNil(t, snap)
}

func TestSnapshotLayoutUseCase_Execute_Errors(t *testing.T) {
	ctx := testContext()
	f := newSplitViewFixture(t, usecase.DefaultLayoutPolicy())

	layoutRepo := repomocks.NewMockLayoutRepository(t)
	uc := usecase.NewSnapshotLayoutUseCase(layoutRepo)

	_, err := uc.Execute(ctx, "", f.manager)
	assert.Error(t, err)
	_, err = uc.Execute(ctx, "main", nil)
	assert.Error(t, err)

	layoutRepo.EXPECT().SaveLayout(mock.Anything, mock.Anything).Return(errors.New("disk full"))
	_, err = uc.Execute(ctx, "main", f.manager)
	assert.ErrorContains(t, err, "disk full")
}

func TestRestoreLayoutUseCase_Execute_NoSnapshot(t *testing.T) {
	ctx := testContext()
	f := newSplitViewFixture(t, usecase.DefaultLayoutPolicy())

	layoutRepo := repomocks.NewMockLayoutRepository(t)
	layoutRepo.EXPECT().GetLayout(mock.Anything, entity.WindowID("main")).Return(nil, nil)

	restored, err := usecase.NewRestoreLayoutUseCase(layoutRepo).Execute(ctx, "main", f.manager)
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Equal(t, entity.NodeID("n1"), f.manager.Root())
}

func TestRestoreLayoutUseCase_Execute_ReopensDocuments(t *testing.T) {
	ctx := testContext()
	f := newSplitViewFixture(t, usecase.DefaultLayoutPolicy())

	snap := &entity.LayoutSnapshot{
		Version:      entity.LayoutSnapshotVersion,
		WindowID:     "main",
		ActivePaneID: "right",
		Root: &entity.LayoutNodeSnapshot{
			Type:        entity.SnapshotTypeSplitter,
			ID:          "s",
			Orientation: "vertical",
			Shares:      []float64{0.6, 0.4},
			Children: []*entity.LayoutNodeSnapshot{
				{Type: entity.SnapshotTypePane, ID: "left", TabState: &entity.TabState{ActiveDocument: "README.md", TabCount: 1}},
				{Type: entity.SnapshotTypePane, ID: "right", TabState: &entity.TabState{ActiveDocument: "untitled", TabCount: 1}},
			},
		},
	}

	layoutRepo := repomocks.NewMockLayoutRepository(t)
	layoutRepo.EXPECT().GetLayout(mock.Anything, entity.WindowID("main")).Return(snap, nil)

	restored, err := usecase.NewRestoreLayoutUseCase(layoutRepo).Execute(ctx, "main", f.manager)
	require.NoError(t, err)
	assert.True(t, restored)
	require.NoError(t, f.manager.Validate())

	panes := f.manager.Panes()
	require.Len(t, panes, 2)
	assert.Equal(t, []string{"README.md"}, f.tabs.created[panes[0]].docs)
	assert.Empty(t, f.tabs.created[panes[1]].docs)
	assert.Equal(t, panes[1], f.manager.ActivePaneID())

	root, _ := f.manager.Node(f.manager.Root())
	assert.InDeltaSlice(t, []float64{0.6, 0.4}, root.Shares, 1e-9)
}

func TestRestoreLayoutUseCase_Execute_RejectsNewerVersion(t *testing.T) {
	ctx := testContext()
	f := newSplitViewFixture(t, usecase.DefaultLayoutPolicy())

	layoutRepo := repomocks.NewMockLayoutRepository(t)
	layoutRepo.EXPECT().GetLayout(mock.Anything, entity.WindowID("main")).
		Return(&entity.LayoutSnapshot{Version: entity.LayoutSnapshotVersion + 1}, nil)

	restored, err := usecase.NewRestoreLayoutUseCase(layoutRepo).Execute(ctx, "main", f.manager)
	assert.False(t, restored)
	assert.ErrorIs(t, err, usecase.ErrVersionMismatch)
	assert.Equal(t, entity.NodeID("n1"), f.manager.Root())
}
