// Package termhost is a terminal rendition of the collaborators the layout
// engine drives: a splitter host that mirrors the tree from commands, tab
// containers holding document names, a drop overlay and a lipgloss renderer.
package termhost

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

// ErrUnknownNode is returned when a command addresses a splitter the host
// never created.
var ErrUnknownNode = errors.New("unknown host node")

type splitterBox struct {
	orientation entity.Orientation
	children    []entity.NodeID
	shares      []float64
}

// Host mirrors the pane tree purely from SplitterHost commands and lays it
// out inside a viewport of terminal cells. Ids it has no splitter for are panes.
type Host struct {
	root      entity.NodeID
	splitters map[entity.NodeID]*splitterBox
	viewport  entity.Rect

	rects map[entity.NodeID]entity.Rect
	order []entity.NodeID
	dirty bool
}

var (
	_ port.SplitterHost         = (*Host)(nil)
	_ port.PaneGeometryProvider = (*Host)(nil)
)

// NewHost creates a host laying out into a width x height viewport.
func NewHost(width, height int) *Host {
	return &Host{
		splitters: make(map[entity.NodeID]*splitterBox),
		viewport:  entity.Rect{W: float64(width), H: float64(height)},
		rects:     make(map[entity.NodeID]entity.Rect),
		dirty:     true,
	}
}

// Resize changes the viewport.
func (h *Host) Resize(width, height int) {
	h.viewport = entity.Rect{W: float64(max(width, 0)), H: float64(max(height, 0))}
	h.dirty = true
}

// Viewport returns the area panes are laid out in.
func (h *Host) Viewport() entity.Rect {
	return h.viewport
}

// SetRoot installs node as the window content.
func (h *Host) SetRoot(ctx context.Context, node entity.NodeID) error {
	logging.FromContext(ctx).Trace().Str("node_id", string(node)).Msg("host: set root")
	h.root = node
	h.dirty = true
	return nil
}

// WrapWithSplitter creates a splitter holding children with equal shares.
func (h *Host) WrapWithSplitter(
	ctx context.Context,
	splitter entity.NodeID,
	orientation entity.Orientation,
	children []entity.NodeID,
) error {
	if len(children) < 2 {
		return fmt.Errorf("wrap %s: splitter needs 2 children, got %d", splitter, len(children))
	}
	logging.FromContext(ctx).Trace().
		Str("splitter_id", string(splitter)).
		Str("orientation", orientation.String()).
		Int("children", len(children)).
		Msg("host: wrap with splitter")

	h.splitters[splitter] = &splitterBox{
		orientation: orientation,
		children:    append([]entity.NodeID(nil), children...),
		shares:      entity.EqualShares(len(children)),
	}
	h.dirty = true
	return nil
}

// ReplaceChildSlot puts newChild where oldChild was. An empty parent is the
// window root slot.
func (h *Host) ReplaceChildSlot(ctx context.Context, parent, oldChild, newChild entity.NodeID) error {
	logging.FromContext(ctx).Trace().
		Str("parent_id", string(parent)).
		Str("old_id", string(oldChild)).
		Str("new_id", string(newChild)).
		Msg("host: replace child slot")

	h.dirty = true
	if parent == entity.NoNode {
		if h.root != oldChild {
			return fmt.Errorf("replace root %s: root is %s: %w", oldChild, h.root, ErrUnknownNode)
		}
		h.root = newChild
		return nil
	}

	box, err := h.splitter(parent)
	if err != nil {
		return err
	}
	i := indexOf(box.children, oldChild)
	if i < 0 {
		return fmt.Errorf("replace %s in %s: %w", oldChild, parent, ErrUnknownNode)
	}
	box.children[i] = newChild
	return nil
}

// InsertChild inserts child at index. The child starts with an equal share
// until the next ApplyShares.
func (h *Host) InsertChild(ctx context.Context, parent entity.NodeID, index int, child entity.NodeID) error {
	box, err := h.splitter(parent)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Trace().
		Str("parent_id", string(parent)).
		Int("index", index).
		Str("child_id", string(child)).
		Msg("host: insert child")

	index = min(max(index, 0), len(box.children))
	box.children = append(box.children, entity.NoNode)
	copy(box.children[index+1:], box.children[index:])
	box.children[index] = child

	box.shares = append(box.shares, 0)
	copy(box.shares[index+1:], box.shares[index:])
	box.shares[index] = 1.0 / float64(len(box.children))
	box.shares = entity.NormalizeShares(box.shares)

	h.dirty = true
	return nil
}

// RemoveChild detaches child; the remaining children keep their proportions.
func (h *Host) RemoveChild(ctx context.Context, parent, child entity.NodeID) error {
	box, err := h.splitter(parent)
	if err != nil {
		return err
	}
	i := indexOf(box.children, child)
	if i < 0 {
		return fmt.Errorf("remove %s from %s: %w", child, parent, ErrUnknownNode)
	}
	logging.FromContext(ctx).Trace().
		Str("parent_id", string(parent)).
		Str("child_id", string(child)).
		Msg("host: remove child")

	box.children = append(box.children[:i], box.children[i+1:]...)
	box.shares = entity.NormalizeShares(append(box.shares[:i:i], box.shares[i+1:]...))
	h.dirty = true
	return nil
}

// ApplyShares sets the proportional size of every child of splitter.
func (h *Host) ApplyShares(_ context.Context, splitter entity.NodeID, shares []float64) error {
	box, err := h.splitter(splitter)
	if err != nil {
		return err
	}
	if len(shares) != len(box.children) {
		return fmt.Errorf("apply %d shares to %s with %d children: %w",
			len(shares), splitter, len(box.children), entity.ErrInvalidShares)
	}
	box.shares = append([]float64(nil), shares...)
	h.dirty = true
	return nil
}

// PaneAt returns the pane under point and its bounds.
func (h *Host) PaneAt(point entity.Point) (entity.NodeID, entity.Rect, bool) {
	h.layout()
	for _, id := range h.order {
		if r := h.rects[id]; r.Contains(point) {
			return id, r, true
		}
	}
	return entity.NoNode, entity.Rect{}, false
}

// Rect returns a laid out pane's bounds.
func (h *Host) Rect(pane entity.NodeID) (entity.Rect, bool) {
	h.layout()
	r, ok := h.rects[pane]
	return r, ok
}

// Panes returns the panes in layout order.
func (h *Host) Panes() []entity.NodeID {
	h.layout()
	return append([]entity.NodeID(nil), h.order...)
}

// Shares returns a splitter's current shares.
func (h *Host) Shares(splitter entity.NodeID) ([]float64, bool) {
	box, ok := h.splitters[splitter]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), box.shares...), true
}

// Describe renders the mirrored tree as H(a,V(b,c)).
func (h *Host) Describe() string {
	var b strings.Builder
	h.describe(&b, h.root, make(map[entity.NodeID]bool))
	return b.String()
}

func (h *Host) describe(b *strings.Builder, id entity.NodeID, seen map[entity.NodeID]bool) {
	box, ok := h.splitters[id]
	if !ok || seen[id] {
		b.WriteString(string(id))
		return
	}
	seen[id] = true
	if box.orientation == entity.OrientationVertical {
		b.WriteString("V(")
	} else {
		b.WriteString("H(")
	}
	for i, c := range box.children {
		if i > 0 {
			b.WriteByte(',')
		}
		h.describe(b, c, seen)
	}
	b.WriteByte(')')
}

// walk visits the mirrored tree depth-first, handing each node its bounds.
func (h *Host) walk(fn func(id entity.NodeID, box *splitterBox, bounds entity.Rect)) {
	h.walkNode(h.root, h.viewport, make(map[entity.NodeID]bool), fn)
}

func (h *Host) walkNode(
	id entity.NodeID,
	bounds entity.Rect,
	seen map[entity.NodeID]bool,
	fn func(id entity.NodeID, box *splitterBox, bounds entity.Rect),
) {
	if id == entity.NoNode || seen[id] {
		return
	}
	seen[id] = true
	box := h.splitters[id]
	fn(id, box, bounds)
	if box == nil {
		return
	}
	for i, r := range splitRect(bounds, box.orientation, box.shares) {
		h.walkNode(box.children[i], r, seen, fn)
	}
}

// layout recomputes pane rectangles and drops splitters no longer reachable.
func (h *Host) layout() {
	if !h.dirty {
		return
	}
	h.rects = make(map[entity.NodeID]entity.Rect, len(h.rects))
	h.order = h.order[:0]
	reachable := make(map[entity.NodeID]bool, len(h.splitters))

	h.walk(func(id entity.NodeID, box *splitterBox, bounds entity.Rect) {
		if box != nil {
			reachable[id] = true
			return
		}
		h.rects[id] = bounds
		h.order = append(h.order, id)
	})

	for id := range h.splitters {
		if !reachable[id] {
			delete(h.splitters, id)
		}
	}
	h.dirty = false
}

func (h *Host) splitter(id entity.NodeID) (*splitterBox, error) {
	box, ok := h.splitters[id]
	if !ok {
		return nil, fmt.Errorf("splitter %s: %w", id, ErrUnknownNode)
	}
	return box, nil
}

// splitRect divides bounds along orientation. Edges are rounded to whole
// cells so adjacent children tile the parent exactly.
func splitRect(bounds entity.Rect, orientation entity.Orientation, shares []float64) []entity.Rect {
	out := make([]entity.Rect, len(shares))
	horizontal := orientation == entity.OrientationHorizontal
	extent := bounds.H
	start := bounds.Y
	if horizontal {
		extent = bounds.W
		start = bounds.X
	}

	edge := start
	cum := 0.0
	for i, s := range shares {
		cum += s
		next := start + math.Round(extent*cum)
		if i == len(shares)-1 {
			next = start + extent
		}
		if horizontal {
			out[i] = entity.Rect{X: edge, Y: bounds.Y, W: next - edge, H: bounds.H}
		} else {
			out[i] = entity.Rect{X: bounds.X, Y: edge, W: bounds.W, H: next - edge}
		}
		edge = next
	}
	return out
}

func indexOf(ids []entity.NodeID, id entity.NodeID) int {
	for i, c := range ids {
		if c == id {
			return i
		}
	}
	return -1
}
