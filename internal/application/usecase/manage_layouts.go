package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	"github.com/bnema/splitview/internal/logging"
)

// ManageLayoutsUseCase lists, inspects and deletes stored layouts.
type ManageLayoutsUseCase struct {
	layoutRepo repository.LayoutRepository
}

// NewManageLayoutsUseCase creates a new ManageLayoutsUseCase.
func NewManageLayoutsUseCase(layoutRepo repository.LayoutRepository) *ManageLayoutsUseCase {
	return &ManageLayoutsUseCase{layoutRepo: layoutRepo}
}

// List returns every stored layout, most recently saved first.
func (uc *ManageLayoutsUseCase) List(ctx context.Context) ([]repository.LayoutSummary, error) {
	summaries, err := uc.layoutRepo.ListLayouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	return summaries, nil
}

// Get returns a stored layout. A missing window yields ErrNotFound.
func (uc *ManageLayoutsUseCase) Get(ctx context.Context, windowID entity.WindowID) (*entity.LayoutSnapshot, error) {
	if windowID == "" {
		return nil, fmt.Errorf("window id required")
	}
	snap, err := uc.layoutRepo.GetLayout(ctx, windowID)
	if err != nil {
		return nil, fmt.Errorf("get layout %s: %w", windowID, err)
	}
	if snap == nil {
		return nil, fmt.Errorf("layout %s: %w", windowID, entity.ErrNotFound)
	}
	return snap, nil
}

// Delete removes a stored layout. A missing window yields ErrNotFound.
func (uc *ManageLayoutsUseCase) Delete(ctx context.Context, windowID entity.WindowID) error {
	if _, err := uc.Get(ctx, windowID); err != nil {
		return err
	}
	if err := uc.layoutRepo.DeleteLayout(ctx, windowID); err != nil {
		return fmt.Errorf("delete layout %s: %w", windowID, err)
	}
	logging.FromContext(ctx).Info().Str("window_id", string(windowID)).Msg("layout deleted")
	return nil
}
