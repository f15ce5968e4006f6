package entity

import "time"

// LayoutSnapshotVersion is the current schema version for persisted layouts.
// Increment when making breaking changes to the serialization format.
const LayoutSnapshotVersion = 1

// WindowID identifies the top-level window a layout belongs to.
type WindowID string

// Snapshot node types.
const (
	SnapshotTypePane     = "pane"
	SnapshotTypeSplitter = "splitter"
)

// LayoutSnapshot is the persisted form of one window's pane tree.
// This is serialized to JSON and stored in the database.
type LayoutSnapshot struct {
	Version      int                 `json:"version"`
	WindowID     WindowID            `json:"window_id"`
	ActivePaneID NodeID              `json:"active_pane_id"`
	Root         *LayoutNodeSnapshot `json:"root"`
	SavedAt      time.Time           `json:"saved_at"`
}

// LayoutNodeSnapshot captures one node of the tree.
type LayoutNodeSnapshot struct {
	Type        string                `json:"type"`
	ID          NodeID                `json:"id"`
	TabState    *TabState             `json:"tab_state,omitempty"`   // pane only
	Orientation string                `json:"orientation,omitempty"` // splitter only
	Shares      []float64             `json:"shares,omitempty"`      // splitter only
	Children    []*LayoutNodeSnapshot `json:"children,omitempty"`    // splitter only
}

// TabState captures what a pane's tab container showed.
type TabState struct {
	ActiveDocument string `json:"active_document"`
	TabCount       int    `json:"tab_count"`
}

// TabStateFunc reports the tab state of a pane while snapshotting.
type TabStateFunc func(NodeID) TabState

// SnapshotFromRegistry creates a LayoutSnapshot from a live registry.
func SnapshotFromRegistry(windowID WindowID, reg *Registry, active NodeID, tabs TabStateFunc) *LayoutSnapshot {
	snap := &LayoutSnapshot{
		Version:      LayoutSnapshotVersion,
		WindowID:     windowID,
		ActivePaneID: active,
		SavedAt:      time.Now(),
	}
	if reg != nil {
		snap.Root = snapshotNode(reg, reg.Root(), tabs)
	}
	return snap
}

func snapshotNode(reg *Registry, id NodeID, tabs TabStateFunc) *LayoutNodeSnapshot {
	n, ok := reg.Get(id)
	if !ok {
		return nil
	}

	switch n.Kind {
	case NodeKindPane:
		snap := &LayoutNodeSnapshot{Type: SnapshotTypePane, ID: n.ID}
		if tabs != nil {
			state := tabs(n.ID)
			snap.TabState = &state
		}
		return snap
	case NodeKindSplitter:
		snap := &LayoutNodeSnapshot{
			Type:        SnapshotTypeSplitter,
			ID:          n.ID,
			Orientation: n.Orientation.String(),
			Shares:      append([]float64(nil), n.Shares...),
			Children:    make([]*LayoutNodeSnapshot, 0, len(n.Children)),
		}
		for _, child := range n.Children {
			if c := snapshotNode(reg, child, tabs); c != nil {
				snap.Children = append(snap.Children, c)
			}
		}
		return snap
	default:
		return nil
	}
}

// CountPanes returns the number of panes in the snapshot.
func (s *LayoutSnapshot) CountPanes() int {
	if s == nil {
		return 0
	}
	return countPanesInNode(s.Root)
}

func countPanesInNode(node *LayoutNodeSnapshot) int {
	if node == nil {
		return 0
	}
	if node.Type == SnapshotTypePane {
		return 1
	}
	count := 0
	for _, child := range node.Children {
		count += countPanesInNode(child)
	}
	return count
}

// Normalize returns a copy of the subtree that satisfies the tree invariants:
// unknown node types and empty splitters are dropped, single-child splitters
// are replaced by their child, same-orientation children are flattened into
// their parent, and shares are renormalized. Returns nil if nothing is left.
func (n *LayoutNodeSnapshot) Normalize() *LayoutNodeSnapshot {
	if n == nil {
		return nil
	}

	switch n.Type {
	case SnapshotTypePane:
		c := &LayoutNodeSnapshot{Type: SnapshotTypePane, ID: n.ID}
		if n.TabState != nil {
			state := *n.TabState
			c.TabState = &state
		}
		return c
	case SnapshotTypeSplitter:
		return n.normalizeSplitter()
	default:
		return nil
	}
}

func (n *LayoutNodeSnapshot) normalizeSplitter() *LayoutNodeSnapshot {
	orientation, ok := ParseOrientation(n.Orientation)
	if !ok {
		return nil
	}

	shares := n.Shares
	if len(shares) != len(n.Children) {
		shares = EqualShares(len(n.Children))
	}
	shares = NormalizeShares(shares)

	var children []*LayoutNodeSnapshot
	var childShares []float64
	for i, raw := range n.Children {
		child := raw.Normalize()
		if child == nil {
			continue
		}
		if child.Type == SnapshotTypeSplitter && child.Orientation == n.Orientation {
			// splice grandchildren in, each scaled by the child's share
			for j, grandchild := range child.Children {
				children = append(children, grandchild)
				childShares = append(childShares, shares[i]*child.Shares[j])
			}
			continue
		}
		children = append(children, child)
		childShares = append(childShares, shares[i])
	}

	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	}

	return &LayoutNodeSnapshot{
		Type:        SnapshotTypeSplitter,
		ID:          n.ID,
		Orientation: orientation.String(),
		Shares:      NormalizeShares(childShares),
		Children:    children,
	}
}
