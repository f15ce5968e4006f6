// Package repository defines persistence contracts for domain entities.
package repository

import (
	"context"
	"time"

	"github.com/bnema/splitview/internal/domain/entity"
)

// LayoutSummary describes a stored layout without decoding its tree.
type LayoutSummary struct {
	WindowID  entity.WindowID
	Version   int
	PaneCount int
	UpdatedAt time.Time
	SizeBytes int
}

// LayoutRepository persists one pane tree snapshot per window.
type LayoutRepository interface {
	// SaveLayout saves or replaces the layout of snapshot.WindowID.
	SaveLayout(ctx context.Context, snapshot *entity.LayoutSnapshot) error

	// GetLayout returns the stored layout, or nil when the window has none.
	GetLayout(ctx context.Context, windowID entity.WindowID) (*entity.LayoutSnapshot, error)

	// DeleteLayout removes a window's layout.
	DeleteLayout(ctx context.Context, windowID entity.WindowID) error

	// ListLayouts returns a summary of every stored layout, most recent first.
	ListLayouts(ctx context.Context) ([]LayoutSummary, error)
}
