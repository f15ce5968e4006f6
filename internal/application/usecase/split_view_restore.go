package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

// Snapshot captures the current tree for persistence.
func (m *SplitViewManager) Snapshot(windowID entity.WindowID) *entity.LayoutSnapshot {
	return entity.SnapshotFromRegistry(windowID, m.reg, m.active, func(id entity.NodeID) entity.TabState {
		c, ok := m.containers[id]
		if !ok {
			return entity.TabState{}
		}
		return entity.TabState{ActiveDocument: c.CurrentDocument(), TabCount: c.TabCount()}
	})
}

// restoredNode is a node built from a snapshot but not yet registered.
type restoredNode struct {
	node      *entity.Node
	container port.TabContainer
}

// Restore replaces the whole tree with the layout in snap. Every node gets a
// fresh id; the returned map translates snapshot pane ids to live ones.
// Degenerate input is normalized, and an empty snapshot yields a single pane.
// On error the current tree is left untouched.
func (m *SplitViewManager) Restore(ctx context.Context, snap *entity.LayoutSnapshot) (map[entity.NodeID]entity.NodeID, error) {
	log := logging.FromContext(ctx)

	var root *entity.LayoutNodeSnapshot
	if snap != nil {
		root = snap.Root.Normalize()
	}
	if root == nil {
		log.Debug().Msg("restoring empty layout as a single pane")
		root = &entity.LayoutNodeSnapshot{Type: entity.SnapshotTypePane}
	}

	var built []restoredNode
	idMap := make(map[entity.NodeID]entity.NodeID)
	rootID, err := m.buildRestored(ctx, root, entity.NoNode, &built, idMap)
	if err != nil {
		for _, b := range built {
			if b.container != nil {
				m.closeContainer(ctx, b.node.ID, b.container)
			}
		}
		return nil, fmt.Errorf("restore layout: %w", err)
	}

	// Register the new tree before releasing the old one so a failed insert
	// can be undone without touching the live layout.
	inserted := make([]entity.NodeID, 0, len(built))
	for _, b := range built {
		if err := m.reg.Insert(b.node); err != nil {
			for _, id := range inserted {
				m.reg.Release(id)
			}
			for _, b := range built {
				if b.container != nil {
					m.closeContainer(ctx, b.node.ID, b.container)
				}
			}
			return nil, fmt.Errorf("restore layout: %w", err)
		}
		inserted = append(inserted, b.node.ID)
	}

	txn := m.beginTxn()
	oldRoot := m.reg.Root()
	var old []entity.NodeID
	m.reg.Walk(func(n *entity.Node) bool {
		old = append(old, n.ID)
		return true
	})
	for _, id := range old {
		n, _ := m.reg.Get(id)
		if n.IsPane() {
			m.releasePane(txn, id)
			continue
		}
		m.reg.Release(id)
		txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: id, Change: entity.ChangeNodeRemoved})
	}

	// built is in post-order, so every splitter follows its children.
	for _, b := range built {
		if b.container != nil {
			m.containers[b.node.ID] = b.container
			continue
		}
		splitterID := b.node.ID
		orientation := b.node.Orientation
		children := append([]entity.NodeID(nil), b.node.Children...)
		txn.command("wrap with splitter", func(ctx context.Context, h port.SplitterHost) error {
			return h.WrapWithSplitter(ctx, splitterID, orientation, children)
		})
		txn.touch(splitterID)
	}
	// rootID was inserted above, so SetRoot cannot fail.
	_ = m.reg.SetRoot(rootID)
	txn.command("replace root slot", func(ctx context.Context, h port.SplitterHost) error {
		if oldRoot == entity.NoNode {
			return h.SetRoot(ctx, rootID)
		}
		return h.ReplaceChildSlot(ctx, entity.NoNode, oldRoot, rootID)
	})
	txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: rootID, Change: entity.ChangeNodeAdded})

	active := m.reg.FirstPane(rootID)
	if snap != nil {
		if mapped, ok := idMap[snap.ActivePaneID]; ok {
			active = mapped
		}
	}
	m.active = entity.NoNode
	m.setActive(txn, active)
	m.commit(ctx, txn)

	log.Info().
		Int("panes", m.reg.PaneCount()).
		Int("splitters", m.reg.SplitterCount()).
		Msg("layout restored")
	return idMap, nil
}

func (m *SplitViewManager) buildRestored(
	ctx context.Context,
	snap *entity.LayoutNodeSnapshot,
	parent entity.NodeID,
	built *[]restoredNode,
	idMap map[entity.NodeID]entity.NodeID,
) (entity.NodeID, error) {
	id := m.newID()

	switch snap.Type {
	case entity.SnapshotTypePane:
		node := entity.NewPaneNode(id)
		node.Parent = parent
		container, err := m.tabs.NewTabContainer(ctx, id)
		if err != nil {
			return entity.NoNode, fmt.Errorf("create tab container for %s: %w", id, err)
		}
		*built = append(*built, restoredNode{node: node, container: container})
		if snap.ID != entity.NoNode {
			idMap[snap.ID] = id
		}
		return id, nil
	case entity.SnapshotTypeSplitter:
		orientation, _ := entity.ParseOrientation(snap.Orientation)
		node := &entity.Node{
			ID:          id,
			Kind:        entity.NodeKindSplitter,
			Parent:      parent,
			Orientation: orientation,
			Shares:      append([]float64(nil), snap.Shares...),
		}
		for _, child := range snap.Children {
			childID, err := m.buildRestored(ctx, child, id, built, idMap)
			if err != nil {
				return entity.NoNode, err
			}
			node.Children = append(node.Children, childID)
		}
		*built = append(*built, restoredNode{node: node})
		return id, nil
	default:
		return entity.NoNode, fmt.Errorf("snapshot node type %q: %w", snap.Type, entity.ErrStructuralInvariant)
	}
}
