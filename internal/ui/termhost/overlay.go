package termhost

import (
	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
)

// Overlay remembers the drop indicator so the renderer can draw it.
type Overlay struct {
	visible bool
	pane    entity.NodeID
	zone    entity.Zone
	bounds  entity.Rect
}

var _ port.DropOverlay = (*Overlay)(nil)

// Show highlights zone of pane.
func (o *Overlay) Show(pane entity.NodeID, zone entity.Zone, bounds entity.Rect) {
	o.visible = true
	o.pane = pane
	o.zone = zone
	o.bounds = bounds
}

// Hide clears the indicator.
func (o *Overlay) Hide() {
	*o = Overlay{}
}

// Target returns the highlighted pane and zone.
func (o *Overlay) Target() (entity.NodeID, entity.Zone, bool) {
	if o == nil || !o.visible {
		return entity.NoNode, entity.ZoneNone, false
	}
	return o.pane, o.zone, true
}
