package port

import (
	"context"

	"github.com/bnema/splitview/internal/domain/entity"
)

// SplitterHost is the toolkit side of the layout: it realizes structural
// commands as resizable containers and owns on-screen geometry.
// An empty parent id addresses the window's root slot.
type SplitterHost interface {
	// SetRoot installs node as the window content.
	SetRoot(ctx context.Context, node entity.NodeID) error
	// WrapWithSplitter creates a splitter container holding children in order.
	WrapWithSplitter(ctx context.Context, splitter entity.NodeID, orientation entity.Orientation, children []entity.NodeID) error
	// ReplaceChildSlot puts newChild where oldChild was inside parent.
	ReplaceChildSlot(ctx context.Context, parent, oldChild, newChild entity.NodeID) error
	// InsertChild inserts child at index inside parent.
	InsertChild(ctx context.Context, parent entity.NodeID, index int, child entity.NodeID) error
	// RemoveChild detaches child from parent.
	RemoveChild(ctx context.Context, parent, child entity.NodeID) error
	// ApplyShares sets the proportional size of every child of splitter.
	ApplyShares(ctx context.Context, splitter entity.NodeID, shares []float64) error
}
