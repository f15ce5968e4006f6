package entity

import (
	"fmt"
	"math"
)

const shareSumTolerance = 1e-9

// Registry is the arena backing a pane tree: a flat id -> node table plus the
// root id. Nodes reference each other by id only. Released ids are remembered
// so they can never be handed out again.
type Registry struct {
	nodes    map[NodeID]*Node
	released map[NodeID]struct{}
	root     NodeID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nodes:    make(map[NodeID]*Node),
		released: make(map[NodeID]struct{}),
	}
}

// Len returns the number of live nodes.
func (r *Registry) Len() int {
	return len(r.nodes)
}

// Root returns the root id, or NoNode for an empty registry.
func (r *Registry) Root() NodeID {
	return r.root
}

// SetRoot makes id the root and clears its parent link.
func (r *Registry) SetRoot(id NodeID) error {
	n, ok := r.nodes[id]
	if !ok {
		return fmt.Errorf("set root %s: %w", id, ErrNotFound)
	}
	n.Parent = NoNode
	r.root = id
	return nil
}

// Get returns the node for id.
func (r *Registry) Get(id NodeID) (*Node, bool) {
	n, ok := r.nodes[id]
	return n, ok
}

// Has reports whether id is live.
func (r *Registry) Has(id NodeID) bool {
	_, ok := r.nodes[id]
	return ok
}

// Insert adds a node. Ids that are live or were released are rejected.
func (r *Registry) Insert(n *Node) error {
	if n == nil || n.ID == NoNode {
		return fmt.Errorf("insert: empty node id: %w", ErrDuplicateID)
	}
	if _, ok := r.nodes[n.ID]; ok {
		return fmt.Errorf("insert %s: %w", n.ID, ErrDuplicateID)
	}
	if _, ok := r.released[n.ID]; ok {
		return fmt.Errorf("insert %s (released): %w", n.ID, ErrDuplicateID)
	}
	r.nodes[n.ID] = n
	return nil
}

// Release removes a node and retires its id.
func (r *Registry) Release(id NodeID) {
	if _, ok := r.nodes[id]; !ok {
		return
	}
	delete(r.nodes, id)
	r.released[id] = struct{}{}
	if r.root == id {
		r.root = NoNode
	}
}

// WasReleased reports whether id belonged to a node that has since been released.
func (r *Registry) WasReleased(id NodeID) bool {
	_, ok := r.released[id]
	return ok
}

// Walk visits nodes depth-first from the root. Returning false from fn skips
// the node's subtree.
func (r *Registry) Walk(fn func(*Node) bool) {
	r.walkFrom(r.root, fn, make(map[NodeID]struct{}))
}

// WalkFrom visits the subtree rooted at id depth-first.
func (r *Registry) WalkFrom(id NodeID, fn func(*Node) bool) {
	r.walkFrom(id, fn, make(map[NodeID]struct{}))
}

func (r *Registry) walkFrom(id NodeID, fn func(*Node) bool, seen map[NodeID]struct{}) {
	n, ok := r.nodes[id]
	if !ok {
		return
	}
	if _, dup := seen[id]; dup {
		return
	}
	seen[id] = struct{}{}
	if !fn(n) {
		return
	}
	switch n.Kind {
	case NodeKindSplitter:
		for _, child := range n.Children {
			r.walkFrom(child, fn, seen)
		}
	case NodeKindPane:
	}
}

// Panes returns the leaf ids in visual order (left-to-right, top-to-bottom).
func (r *Registry) Panes() []NodeID {
	var panes []NodeID
	r.Walk(func(n *Node) bool {
		if n.IsPane() {
			panes = append(panes, n.ID)
		}
		return true
	})
	return panes
}

// PaneCount returns the number of registered panes, reachable or not.
func (r *Registry) PaneCount() int {
	count := 0
	for _, n := range r.nodes {
		if n.IsPane() {
			count++
		}
	}
	return count
}

// SplitterCount returns the number of registered splitters.
func (r *Registry) SplitterCount() int {
	count := 0
	for _, n := range r.nodes {
		if n.IsSplitter() {
			count++
		}
	}
	return count
}

// FirstPane returns the first leaf of the subtree rooted at id.
func (r *Registry) FirstPane(id NodeID) NodeID {
	found := NoNode
	r.WalkFrom(id, func(n *Node) bool {
		if found != NoNode {
			return false
		}
		if n.IsPane() {
			found = n.ID
			return false
		}
		return true
	})
	return found
}

// Validate checks every structural invariant of the tree and returns an error
// wrapping ErrStructuralInvariant describing the first violation found.
func (r *Registry) Validate() error {
	if r.root == NoNode {
		return violation("no root")
	}
	root, ok := r.nodes[r.root]
	if !ok {
		return violation("root %s is not registered", r.root)
	}
	if root.Parent != NoNode {
		return violation("root %s has parent %s", root.ID, root.Parent)
	}

	seen := make(map[NodeID]struct{}, len(r.nodes))
	leaves := 0
	var visit func(id NodeID) error
	visit = func(id NodeID) error {
		n, ok := r.nodes[id]
		if !ok {
			return violation("child %s is not registered", id)
		}
		if _, dup := seen[id]; dup {
			return violation("node %s reachable twice", id)
		}
		seen[id] = struct{}{}

		switch n.Kind {
		case NodeKindPane:
			leaves++
			if len(n.Children) != 0 {
				return violation("pane %s has children", id)
			}
			return nil
		case NodeKindSplitter:
			return r.validateSplitter(n, visit)
		default:
			return violation("node %s has unknown kind %s", id, n.Kind)
		}
	}
	if err := visit(r.root); err != nil {
		return err
	}

	if len(seen) != len(r.nodes) {
		return violation("%d registered nodes unreachable from root", len(r.nodes)-len(seen))
	}
	if leaves == 0 {
		return violation("tree has no pane")
	}
	if leaves != r.PaneCount() {
		return violation("leaf count %d != registered panes %d", leaves, r.PaneCount())
	}
	return nil
}

func (r *Registry) validateSplitter(n *Node, visit func(NodeID) error) error {
	if len(n.Children) < 2 {
		return violation("splitter %s has %d children", n.ID, len(n.Children))
	}
	if n.Orientation != OrientationHorizontal && n.Orientation != OrientationVertical {
		return violation("splitter %s has no orientation", n.ID)
	}
	if len(n.Shares) != len(n.Children) {
		return violation("splitter %s has %d shares for %d children", n.ID, len(n.Shares), len(n.Children))
	}
	sum := 0.0
	for _, s := range n.Shares {
		if s <= 0 {
			return violation("splitter %s has non-positive share", n.ID)
		}
		sum += s
	}
	if math.Abs(sum-1) > shareSumTolerance {
		return violation("splitter %s shares sum to %f", n.ID, sum)
	}

	for _, childID := range n.Children {
		child, ok := r.nodes[childID]
		if !ok {
			return violation("splitter %s child %s is not registered", n.ID, childID)
		}
		if child.Parent != n.ID {
			return violation("node %s parent is %s, expected %s", childID, child.Parent, n.ID)
		}
		if child.IsSplitter() && child.Orientation == n.Orientation {
			return violation("splitter %s nests same-orientation splitter %s", n.ID, childID)
		}
		if err := visit(childID); err != nil {
			return err
		}
	}
	return nil
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrStructuralInvariant}, args...)...)
}
