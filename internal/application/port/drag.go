package port

import "github.com/bnema/splitview/internal/domain/entity"

// PaneGeometryProvider answers hit tests against the host's current geometry.
type PaneGeometryProvider interface {
	// PaneAt returns the pane under point and its bounds.
	PaneAt(point entity.Point) (entity.NodeID, entity.Rect, bool)
}

// DropOverlay draws the drop-zone indicator while a drag hovers a pane.
type DropOverlay interface {
	Show(pane entity.NodeID, zone entity.Zone, bounds entity.Rect)
	Hide()
}
