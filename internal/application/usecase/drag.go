package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/zone"
	"github.com/bnema/splitview/internal/logging"
)

// ErrUnexpectedDragEvent is returned for an event the current drag state does
// not accept. The state is left unchanged.
var ErrUnexpectedDragEvent = errors.New("unexpected drag event")

// DragState is the phase of a drag-and-drop interaction.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
	DragHoveringPane
	DragDropped
	DragCancelled
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	case DragHoveringPane:
		return "hovering_pane"
	case DragDropped:
		return "dropped"
	case DragCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("drag_state(%d)", int(s))
	}
}

// DragPhase is the kind of a normalized pointer event.
type DragPhase string

const (
	DragStart   DragPhase = "start"
	DragMove    DragPhase = "move"
	DragRelease DragPhase = "release"
	DragCancel  DragPhase = "cancel"
)

// DragEvent is a toolkit pointer event reduced to what the machine needs.
// Payload is only read on start.
type DragEvent struct {
	Phase   DragPhase
	Pointer entity.Point
	Payload entity.DropPayload
}

// DropTarget performs the drop. SplitViewManager implements it.
type DropTarget interface {
	SplitPane(ctx context.Context, paneID entity.NodeID, zone entity.Zone, payload entity.DropPayload) (entity.NodeID, error)
}

// DragResult reports how an event ended a drag. Outcome is DragDropped or
// DragCancelled for the event that finished the interaction, otherwise the
// state the machine moved to.
type DragResult struct {
	Outcome  DragState
	PaneID   entity.NodeID
	Zone     entity.Zone
	Receiver entity.NodeID
}

// DragMachineDeps wires a DragMachine.
type DragMachineDeps struct {
	Geometry port.PaneGeometryProvider
	Overlay  port.DropOverlay // optional
	Detector zone.Detector    // zero value uses the default margin
	Target   DropTarget
}

// DragMachine turns pointer events into drop-zone feedback and, on release,
// a SplitPane call. It has no timeouts; every transition is event driven.
type DragMachine struct {
	geometry port.PaneGeometryProvider
	overlay  port.DropOverlay
	detector zone.Detector
	target   DropTarget

	state   DragState
	payload entity.DropPayload
	pane    entity.NodeID
	zone    entity.Zone
}

// NewDragMachine creates a machine in the idle state.
func NewDragMachine(deps DragMachineDeps) (*DragMachine, error) {
	if deps.Geometry == nil {
		return nil, fmt.Errorf("pane geometry provider is required")
	}
	if deps.Target == nil {
		return nil, fmt.Errorf("drop target is required")
	}
	d := &DragMachine{
		geometry: deps.Geometry,
		overlay:  deps.Overlay,
		detector: deps.Detector,
		target:   deps.Target,
		zone:     entity.ZoneNone,
	}
	return d, nil
}

// State returns the current state.
func (d *DragMachine) State() DragState {
	return d.state
}

// Hover returns the pane and zone under the pointer while hovering.
func (d *DragMachine) Hover() (entity.NodeID, entity.Zone) {
	return d.pane, d.zone
}

// Payload returns what the active drag carries.
func (d *DragMachine) Payload() entity.DropPayload {
	return d.payload
}

// Handle feeds one event to the machine.
func (d *DragMachine) Handle(ctx context.Context, ev DragEvent) (DragResult, error) {
	log := logging.FromContext(ctx)

	switch d.state {
	case DragIdle:
		if ev.Phase != DragStart {
			return d.unexpected(ev)
		}
		d.payload = ev.Payload
		d.state = DragDragging
		log.Debug().Str("payload", string(ev.Payload.Kind)).Msg("drag started")
		return d.moveTo(ctx, ev.Pointer), nil

	case DragDragging, DragHoveringPane:
		switch ev.Phase {
		case DragMove:
			return d.moveTo(ctx, ev.Pointer), nil
		case DragRelease:
			// The drop lands where the pointer is released, not where it last moved.
			paneID, _, z := d.hitTest(ev.Pointer)
			if z == entity.ZoneNone {
				return d.cancel(ctx, "released outside any pane"), nil
			}
			d.pane, d.zone = paneID, z
			return d.drop(ctx)
		case DragCancel:
			return d.cancel(ctx, "cancelled"), nil
		default:
			return d.unexpected(ev)
		}

	default:
		return d.unexpected(ev)
	}
}

// moveTo re-runs the hit test and zone detection for point.
func (d *DragMachine) moveTo(ctx context.Context, point entity.Point) DragResult {
	paneID, bounds, z := d.hitTest(point)

	if z == entity.ZoneNone {
		if d.state == DragHoveringPane {
			d.hideOverlay()
			logging.FromContext(ctx).Trace().Str("pane_id", string(d.pane)).Msg("drag left pane")
		}
		d.state = DragDragging
		d.pane, d.zone = entity.NoNode, entity.ZoneNone
		return DragResult{Outcome: d.state, Zone: entity.ZoneNone}
	}

	if d.state != DragHoveringPane || d.pane != paneID || d.zone != z {
		logging.FromContext(ctx).Trace().
			Str("pane_id", string(paneID)).
			Str("zone", string(z)).
			Msg("drag hover")
	}
	d.state = DragHoveringPane
	d.pane, d.zone = paneID, z
	if d.overlay != nil {
		d.overlay.Show(paneID, z, bounds)
	}
	return DragResult{Outcome: d.state, PaneID: paneID, Zone: z}
}

// hitTest returns the pane under point and the zone it falls in, or ZoneNone
// when point is outside every pane.
func (d *DragMachine) hitTest(point entity.Point) (entity.NodeID, entity.Rect, entity.Zone) {
	paneID, bounds, ok := d.geometry.PaneAt(point)
	if !ok {
		return entity.NoNode, entity.Rect{}, entity.ZoneNone
	}
	return paneID, bounds, d.detector.Detect(point, bounds)
}

func (d *DragMachine) drop(ctx context.Context) (DragResult, error) {
	paneID, z, payload := d.pane, d.zone, d.payload
	d.state = DragDropped
	d.hideOverlay()

	logging.FromContext(ctx).Debug().
		Str("pane_id", string(paneID)).
		Str("zone", string(z)).
		Msg("drag dropped")

	receiver, err := d.target.SplitPane(ctx, paneID, z, payload)
	d.reset()
	return DragResult{Outcome: DragDropped, PaneID: paneID, Zone: z, Receiver: receiver}, err
}

func (d *DragMachine) cancel(ctx context.Context, reason string) DragResult {
	d.state = DragCancelled
	d.hideOverlay()
	logging.FromContext(ctx).Debug().Str("reason", reason).Msg("drag cancelled")
	d.reset()
	return DragResult{Outcome: DragCancelled, Zone: entity.ZoneNone}
}

func (d *DragMachine) reset() {
	d.state = DragIdle
	d.payload = entity.DropPayload{}
	d.pane, d.zone = entity.NoNode, entity.ZoneNone
}

func (d *DragMachine) hideOverlay() {
	if d.overlay != nil {
		d.overlay.Hide()
	}
}

func (d *DragMachine) unexpected(ev DragEvent) (DragResult, error) {
	return DragResult{Outcome: d.state, PaneID: d.pane, Zone: d.zone},
		fmt.Errorf("%w: %s while %s", ErrUnexpectedDragEvent, ev.Phase, d.state)
}
