package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/splitview/internal/application/port/mocks"
	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
)

func TestSplitViewManager_NotifiesObserverAfterSplit(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockLayoutObserver(ctrl)
	ctx := testContext()

	m, err := usecase.NewSplitViewManager(ctx, usecase.SplitViewDeps{
		IDGenerator: sequentialIDs(),
		Tabs:        newFakeFactory(),
	})
	require.NoError(t, err)
	m.Subscribe(observer)

	gomock.InOrder(
		observer.EXPECT().OnLayoutEvent(gomock.Any(), entity.LayoutEvent{
			Kind: entity.EventStructureChanged, NodeID: "n3", Change: entity.ChangeNodeAdded,
		}),
		observer.EXPECT().OnLayoutEvent(gomock.Any(), entity.LayoutEvent{
			Kind: entity.EventStructureChanged, NodeID: "n2", Change: entity.ChangeNodeAdded,
		}),
		observer.EXPECT().OnLayoutEvent(gomock.Any(), entity.LayoutEvent{
			Kind: entity.EventPaneSplit, ParentID: "n3", PaneID: "n2", Zone: entity.ZoneTop,
		}),
		observer.EXPECT().OnLayoutEvent(gomock.Any(), entity.LayoutEvent{
			Kind: entity.EventPaneActivated, PaneID: "n2",
		}),
	)

	_, err = m.SplitPane(ctx, "n1", entity.ZoneTop, entity.DropPayload{})
	require.NoError(t, err)
}

func TestSplitViewManager_ObserverSeesFinishedTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockLayoutObserver(ctrl)
	ctx := testContext()

	m, err := usecase.NewSplitViewManager(ctx, usecase.SplitViewDeps{
		IDGenerator: sequentialIDs(),
		Tabs:        newFakeFactory(),
	})
	require.NoError(t, err)
	_, err = m.SplitPane(ctx, "n1", entity.ZoneRight, entity.DropPayload{})
	require.NoError(t, err)
	m.Subscribe(observer)

	observer.EXPECT().OnLayoutEvent(gomock.Any(), gomock.Any()).
		Do(func(_ any, _ entity.LayoutEvent) {
			require.NoError(t, m.Validate())
		}).
		MinTimes(1)

	closed, err := m.ClosePane(ctx, "n2")
	require.NoError(t, err)
	require.True(t, closed)
}
