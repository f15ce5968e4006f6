package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	"github.com/bnema/splitview/internal/logging"
)

// ErrVersionMismatch is returned when a stored layout is newer than this build understands.
var ErrVersionMismatch = errors.New("layout snapshot version mismatch")

// RestoreLayoutUseCase rebuilds a window's pane tree from storage.
type RestoreLayoutUseCase struct {
	layoutRepo repository.LayoutRepository
}

// NewRestoreLayoutUseCase creates a new RestoreLayoutUseCase.
func NewRestoreLayoutUseCase(layoutRepo repository.LayoutRepository) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{layoutRepo: layoutRepo}
}

// Execute loads windowID's layout into manager and reopens each pane's active
// document. Returns false when nothing is stored for the window.
func (uc *RestoreLayoutUseCase) Execute(
	ctx context.Context,
	windowID entity.WindowID,
	manager *SplitViewManager,
) (bool, error) {
	log := logging.FromContext(ctx)

	if windowID == "" {
		return false, fmt.Errorf("window id required")
	}
	if manager == nil {
		return false, fmt.Errorf("split view manager required")
	}

	snapshot, err := uc.layoutRepo.GetLayout(ctx, windowID)
	if err != nil {
		return false, fmt.Errorf("get layout snapshot: %w", err)
	}
	if snapshot == nil {
		log.Debug().Str("window_id", string(windowID)).Msg("no stored layout")
		return false, nil
	}
	if snapshot.Version > entity.LayoutSnapshotVersion {
		return false, fmt.Errorf("%w: stored %d, supported %d",
			ErrVersionMismatch, snapshot.Version, entity.LayoutSnapshotVersion)
	}

	idMap, err := manager.Restore(ctx, snapshot)
	if err != nil {
		return false, err
	}

	reopened := 0
	for _, pane := range collectSnapshotPanes(snapshot.Root) {
		if pane.TabState == nil {
			continue
		}
		doc := pane.TabState.ActiveDocument
		if doc == "" || doc == port.UntitledDocument {
			continue
		}
		liveID, ok := idMap[pane.ID]
		if !ok {
			continue
		}
		container, ok := manager.Container(liveID)
		if !ok {
			continue
		}
		if err := container.OpenFile(ctx, doc); err != nil {
			log.Warn().Err(err).Str("document", doc).Str("pane_id", string(liveID)).Msg("failed to reopen document")
			continue
		}
		reopened++
	}

	log.Info().
		Str("window_id", string(windowID)).
		Int("pane_count", manager.PaneCount()).
		Int("documents", reopened).
		Msg("layout restored")
	return true, nil
}

func collectSnapshotPanes(node *entity.LayoutNodeSnapshot) []*entity.LayoutNodeSnapshot {
	if node == nil {
		return nil
	}
	if node.Type == entity.SnapshotTypePane {
		return []*entity.LayoutNodeSnapshot{node}
	}
	var panes []*entity.LayoutNodeSnapshot
	for _, child := range node.Children {
		panes = append(panes, collectSnapshotPanes(child)...)
	}
	return panes
}
