package port

import (
	"context"

	"github.com/bnema/splitview/internal/domain/entity"
)

// LayoutObserver receives structural-change notifications once a mutation
// has fully completed (window titles, focus indicators).
//
//go:generate mockgen -source=layout_observer.go -destination=mocks/mock_layout_observer.go -package=mocks
type LayoutObserver interface {
	OnLayoutEvent(ctx context.Context, event entity.LayoutEvent)
}

// LayoutObserverFunc adapts a function to LayoutObserver.
type LayoutObserverFunc func(ctx context.Context, event entity.LayoutEvent)

// OnLayoutEvent calls f.
func (f LayoutObserverFunc) OnLayoutEvent(ctx context.Context, event entity.LayoutEvent) {
	f(ctx, event)
}
