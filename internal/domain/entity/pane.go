// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "fmt"

// NodeID uniquely identifies a node (pane or splitter) for the lifetime of a tree.
type NodeID string

// NoNode is the zero NodeID, used as the parent link of the root.
const NoNode NodeID = ""

// NodeKind tags the variant stored in a Node.
type NodeKind int

const (
	NodeKindPane     NodeKind = iota + 1 // Leaf holding a tab container reference
	NodeKindSplitter                     // Internal node with ordered children
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindPane:
		return "pane"
	case NodeKindSplitter:
		return "splitter"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Orientation is the axis along which a splitter lays out its children.
type Orientation int

const (
	OrientationHorizontal Orientation = iota + 1 // Children side by side (left/right)
	OrientationVertical                          // Children stacked (top/bottom)
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseOrientation converts the persisted name back to an Orientation.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "horizontal":
		return OrientationHorizontal, true
	case "vertical":
		return OrientationVertical, true
	default:
		return 0, false
	}
}

// Node is a tagged variant: a Pane (leaf) or a Splitter (internal).
// Links between nodes are ids resolved through the Registry, never pointers.
type Node struct {
	ID     NodeID
	Kind   NodeKind
	Parent NodeID // NoNode for the root

	// Splitter fields
	Orientation Orientation
	Children    []NodeID
	Shares      []float64 // proportional share per child, sums to 1
}

// NewPaneNode creates a leaf node.
func NewPaneNode(id NodeID) *Node {
	return &Node{ID: id, Kind: NodeKindPane}
}

// NewSplitterNode creates a splitter with the given children and equal shares.
func NewSplitterNode(id NodeID, orientation Orientation, children ...NodeID) *Node {
	return &Node{
		ID:          id,
		Kind:        NodeKindSplitter,
		Orientation: orientation,
		Children:    append([]NodeID(nil), children...),
		Shares:      EqualShares(len(children)),
	}
}

// IsPane reports whether the node is a leaf.
func (n *Node) IsPane() bool {
	return n != nil && n.Kind == NodeKindPane
}

// IsSplitter reports whether the node is an internal splitter.
func (n *Node) IsSplitter() bool {
	return n != nil && n.Kind == NodeKindSplitter
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n != nil && n.Parent == NoNode
}

// IndexOf returns the position of child in the splitter's children, or -1.
func (n *Node) IndexOf(child NodeID) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Children = append([]NodeID(nil), n.Children...)
	c.Shares = append([]float64(nil), n.Shares...)
	return &c
}

// EqualShares returns n equal shares summing to 1.
func EqualShares(n int) []float64 {
	if n <= 0 {
		return nil
	}
	shares := make([]float64, n)
	for i := range shares {
		shares[i] = 1.0 / float64(n)
	}
	return shares
}

// NormalizeShares scales shares so they sum to 1. Non-positive entries are
// replaced by the smallest positive share (or an equal split when none is positive).
func NormalizeShares(shares []float64) []float64 {
	if len(shares) == 0 {
		return nil
	}
	out := append([]float64(nil), shares...)

	minPositive := 0.0
	for _, s := range out {
		if s > 0 && (minPositive == 0 || s < minPositive) {
			minPositive = s
		}
	}
	if minPositive == 0 {
		return EqualShares(len(out))
	}

	total := 0.0
	for i, s := range out {
		if s <= 0 {
			out[i] = minPositive
		}
		total += out[i]
	}
	for i := range out {
		out[i] /= total
	}
	return out
}
