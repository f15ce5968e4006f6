package usecase

import (
	"fmt"
	"math"

	"github.com/bnema/splitview/internal/domain/entity"
)

// SplitPolicy decides how space is shared after a directional split.
type SplitPolicy string

const (
	// SplitHalve halves the split pane's share between it and the new pane.
	// Other siblings keep their size.
	SplitHalve SplitPolicy = "halve"
	// SplitEqual gives the new pane 1/n and scales every sibling down to fit.
	SplitEqual SplitPolicy = "equal"
)

// CollapsePolicy decides how survivors absorb a closed pane's region.
type CollapsePolicy string

const (
	CollapseProportional CollapsePolicy = "proportional"
	CollapseEqual        CollapsePolicy = "equal"
)

// LastPanePolicy decides what closing the only pane does.
type LastPanePolicy string

const (
	// LastPaneReplace releases the pane and installs a fresh one with a new id.
	LastPaneReplace LastPanePolicy = "replace"
	// LastPaneReset keeps the pane and empties its tab container.
	LastPaneReset LastPanePolicy = "reset"
)

// DefaultMinShare is the smallest share SetShares leaves a child with.
const DefaultMinShare = 0.05

// LayoutPolicy groups the tunable behavior of a SplitViewManager.
type LayoutPolicy struct {
	Split            SplitPolicy
	Collapse         CollapsePolicy
	LastPane         LastPanePolicy
	CloseEmptySource bool
	MinShare         float64
}

// DefaultLayoutPolicy returns the policy used when none is configured.
func DefaultLayoutPolicy() LayoutPolicy {
	return LayoutPolicy{
		Split:            SplitHalve,
		Collapse:         CollapseProportional,
		LastPane:         LastPaneReplace,
		CloseEmptySource: true,
		MinShare:         DefaultMinShare,
	}
}

// ParseLayoutPolicy builds a policy from its configuration strings.
func ParseLayoutPolicy(split, collapse, lastPane string, closeEmptySource bool, minShare float64) (LayoutPolicy, error) {
	p := LayoutPolicy{CloseEmptySource: closeEmptySource, MinShare: minShare}

	switch SplitPolicy(split) {
	case "", SplitHalve:
		p.Split = SplitHalve
	case SplitEqual:
		p.Split = SplitEqual
	default:
		return LayoutPolicy{}, fmt.Errorf("unknown split policy %q", split)
	}
	switch CollapsePolicy(collapse) {
	case "", CollapseProportional:
		p.Collapse = CollapseProportional
	case CollapseEqual:
		p.Collapse = CollapseEqual
	default:
		return LayoutPolicy{}, fmt.Errorf("unknown collapse policy %q", collapse)
	}
	switch LastPanePolicy(lastPane) {
	case "", LastPaneReplace:
		p.LastPane = LastPaneReplace
	case LastPaneReset:
		p.LastPane = LastPaneReset
	default:
		return LayoutPolicy{}, fmt.Errorf("unknown last pane policy %q", lastPane)
	}
	if minShare < 0 || minShare >= 0.5 {
		return LayoutPolicy{}, fmt.Errorf("min share %v out of range [0, 0.5)", minShare)
	}
	return p, nil
}

func (p LayoutPolicy) withDefaults() LayoutPolicy {
	def := DefaultLayoutPolicy()
	if p.Split == "" {
		p.Split = def.Split
	}
	if p.Collapse == "" {
		p.Collapse = def.Collapse
	}
	if p.LastPane == "" {
		p.LastPane = def.LastPane
	}
	if p.MinShare < 0 || p.MinShare >= 0.5 {
		p.MinShare = def.MinShare
	}
	return p
}

// splitShares returns the shares after a child is inserted at index beside
// the child at target.
func splitShares(shares []float64, target, index int, policy SplitPolicy) []float64 {
	n := len(shares) + 1
	out := make([]float64, 0, n)

	if policy == SplitEqual {
		added := 1.0 / float64(n)
		for i, s := range shares {
			if i == index {
				out = append(out, added)
			}
			out = append(out, s*(1-added))
		}
		if index >= len(shares) {
			out = append(out, added)
		}
		return entity.NormalizeShares(out)
	}

	half := shares[target] / 2
	for i, s := range shares {
		if i == index {
			out = append(out, half)
		}
		if i == target {
			s = half
		}
		out = append(out, s)
	}
	if index >= len(shares) {
		out = append(out, half)
	}
	return entity.NormalizeShares(out)
}

// insertChild puts child at index and installs the matching shares.
func insertChild(n *entity.Node, index int, child entity.NodeID, shares []float64) {
	n.Children = append(n.Children, entity.NoNode)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child
	n.Shares = shares
}

// removeChild drops the child at index and redistributes its share.
func removeChild(n *entity.Node, index int, policy CollapsePolicy) {
	n.Children = append(n.Children[:index], n.Children[index+1:]...)
	shares := append(n.Shares[:index:index], n.Shares[index+1:]...)
	switch policy {
	case CollapseEqual:
		n.Shares = entity.EqualShares(len(n.Children))
	default:
		n.Shares = entity.NormalizeShares(shares)
	}
}

// spliceChildren replaces the child at slot with inner, scaling inner's
// shares by the share the slot held.
func spliceChildren(
	children []entity.NodeID,
	shares []float64,
	slot int,
	inner []entity.NodeID,
	innerShares []float64,
) ([]entity.NodeID, []float64) {
	outChildren := make([]entity.NodeID, 0, len(children)+len(inner)-1)
	outShares := make([]float64, 0, len(children)+len(inner)-1)

	outChildren = append(outChildren, children[:slot]...)
	outShares = append(outShares, shares[:slot]...)
	for j, id := range inner {
		outChildren = append(outChildren, id)
		outShares = append(outShares, shares[slot]*innerShares[j])
	}
	outChildren = append(outChildren, children[slot+1:]...)
	outShares = append(outShares, shares[slot+1:]...)

	return outChildren, entity.NormalizeShares(outShares)
}

// clampShares normalizes shares and raises every entry to at least minShare.
func clampShares(shares []float64, minShare float64) ([]float64, error) {
	for _, s := range shares {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("share %v: %w", s, entity.ErrInvalidShares)
		}
	}
	out := make([]float64, len(shares))
	total := 0.0
	for i, s := range shares {
		out[i] = max(s, 0)
		total += out[i]
	}
	if total == 0 {
		return entity.EqualShares(len(out)), nil
	}
	for i := range out {
		out[i] /= total
	}
	if minShare <= 0 || minShare*float64(len(out)) >= 1 {
		return out, nil
	}

	// Pin undersized entries at the floor and scale the rest into what remains.
	pinned := make([]bool, len(out))
	for {
		free, freeTotal := 1.0, 0.0
		for i, s := range out {
			if pinned[i] {
				free -= minShare
			} else {
				freeTotal += s
			}
		}
		changed := false
		for i, s := range out {
			if pinned[i] {
				out[i] = minShare
				continue
			}
			out[i] = s / freeTotal * free
			if out[i] < minShare {
				pinned[i] = true
				changed = true
			}
		}
		if !changed {
			return out, nil
		}
	}
}
