package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
)

// LazyLayoutRepository opens the database on first use.
type LazyLayoutRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutRepository creates a layout repository over provider.
func NewLazyLayoutRepository(provider port.DatabaseProvider) repository.LayoutRepository {
	return &LazyLayoutRepository{provider: provider}
}

func (r *LazyLayoutRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutRepository(db)
	})
	return r.initErr
}

func (r *LazyLayoutRepository) SaveLayout(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveLayout(ctx, snapshot)
}

func (r *LazyLayoutRepository) GetLayout(ctx context.Context, windowID entity.WindowID) (*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetLayout(ctx, windowID)
}

func (r *LazyLayoutRepository) DeleteLayout(ctx context.Context, windowID entity.WindowID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.DeleteLayout(ctx, windowID)
}

func (r *LazyLayoutRepository) ListLayouts(ctx context.Context) ([]repository.LayoutSummary, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.ListLayouts(ctx)
}
