package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	"github.com/bnema/splitview/internal/logging"
)

// SnapshotLayoutUseCase saves a window's pane tree.
type SnapshotLayoutUseCase struct {
	layoutRepo repository.LayoutRepository
}

// NewSnapshotLayoutUseCase creates a new SnapshotLayoutUseCase.
func NewSnapshotLayoutUseCase(layoutRepo repository.LayoutRepository) *SnapshotLayoutUseCase {
	return &SnapshotLayoutUseCase{layoutRepo: layoutRepo}
}

// Execute snapshots manager's tree and stores it under windowID.
func (uc *SnapshotLayoutUseCase) Execute(
	ctx context.Context,
	windowID entity.WindowID,
	manager *SplitViewManager,
) (*entity.LayoutSnapshot, error) {
	log := logging.FromContext(ctx)

	if windowID == "" {
		return nil, fmt.Errorf("window id required")
	}
	if manager == nil {
		return nil, fmt.Errorf("split view manager required")
	}

	snapshot := manager.Snapshot(windowID)

	log.Debug().
		Str("window_id", string(windowID)).
		Int("pane_count", snapshot.CountPanes()).
		Msg("creating layout snapshot")

	if err := uc.layoutRepo.SaveLayout(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("save layout snapshot: %w", err)
	}
	return snapshot, nil
}
