package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

// IDGenerator returns a fresh, never repeated node id.
type IDGenerator func() string

// SplitViewDeps wires a SplitViewManager to its collaborators.
type SplitViewDeps struct {
	IDGenerator IDGenerator
	Tabs        port.TabContainerFactory
	Host        port.SplitterHost // optional
	Observers   []port.LayoutObserver
	Policy      LayoutPolicy
}

// SplitViewManager owns one window's pane tree. It is the only writer of the
// registry and must be driven from a single event loop.
type SplitViewManager struct {
	reg        *entity.Registry
	containers map[entity.NodeID]port.TabContainer
	active     entity.NodeID

	idGen     IDGenerator
	tabs      port.TabContainerFactory
	host      port.SplitterHost
	observers []port.LayoutObserver
	policy    LayoutPolicy
}

// NewSplitViewManager creates a manager holding a single root pane.
func NewSplitViewManager(ctx context.Context, deps SplitViewDeps) (*SplitViewManager, error) {
	if deps.IDGenerator == nil {
		return nil, fmt.Errorf("id generator is required")
	}
	if deps.Tabs == nil {
		return nil, fmt.Errorf("tab container factory is required")
	}

	m := &SplitViewManager{
		reg:        entity.NewRegistry(),
		containers: make(map[entity.NodeID]port.TabContainer),
		idGen:      deps.IDGenerator,
		tabs:       deps.Tabs,
		host:       deps.Host,
		observers:  deps.Observers,
		policy:     deps.Policy.withDefaults(),
	}
	if m.host == nil {
		m.host = noopHost{}
	}

	rootID := m.newID()
	container, err := m.tabs.NewTabContainer(ctx, rootID)
	if err != nil {
		return nil, fmt.Errorf("create root tab container: %w", err)
	}
	if err := m.reg.Insert(entity.NewPaneNode(rootID)); err != nil {
		return nil, err
	}
	if err := m.reg.SetRoot(rootID); err != nil {
		return nil, err
	}
	m.containers[rootID] = container

	txn := newLayoutTxn()
	txn.command("set root", func(ctx context.Context, h port.SplitterHost) error {
		return h.SetRoot(ctx, rootID)
	})
	txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: rootID, Change: entity.ChangeNodeAdded})
	m.setActive(txn, rootID)
	m.commit(ctx, txn)

	logging.FromContext(ctx).Debug().Str("root_id", string(rootID)).Msg("split view initialized")
	return m, nil
}

// Subscribe adds an observer for layout events.
func (m *SplitViewManager) Subscribe(observer port.LayoutObserver) {
	if observer != nil {
		m.observers = append(m.observers, observer)
	}
}

// Policy returns the sizing and lifecycle policy in use.
func (m *SplitViewManager) Policy() LayoutPolicy {
	return m.policy
}

// SetPolicy replaces the policy; it applies to subsequent operations.
func (m *SplitViewManager) SetPolicy(policy LayoutPolicy) {
	m.policy = policy.withDefaults()
}

// SplitPane drops payload on zone of paneID. A center drop hands the payload
// to the pane's tab container without touching the tree; a directional drop
// creates a new pane beside paneID and hands the payload to it.
// Returns the id of the pane that received the payload.
func (m *SplitViewManager) SplitPane(
	ctx context.Context,
	paneID entity.NodeID,
	zone entity.Zone,
	payload entity.DropPayload,
) (entity.NodeID, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("pane_id", string(paneID)).
		Str("zone", string(zone)).
		Str("payload", string(payload.Kind)).
		Msg("splitting pane")

	target, ok := m.reg.Get(paneID)
	if !ok || !target.IsPane() {
		return entity.NoNode, fmt.Errorf("split %s: %w", paneID, entity.ErrNotFound)
	}
	if !zone.Valid() || zone == entity.ZoneNone {
		return entity.NoNode, fmt.Errorf("split %s on %q: %w", paneID, zone, entity.ErrInvalidZone)
	}
	if err := m.checkPayload(payload); err != nil {
		return entity.NoNode, err
	}

	if zone == entity.ZoneCenter {
		err := m.deliver(ctx, paneID, payload)
		if err != nil {
			log.Warn().Err(err).Str("pane_id", string(paneID)).Msg("center drop not delivered")
			return paneID, err
		}
		m.closeEmptySource(ctx, payload, paneID)
		return paneID, nil
	}

	orientation, _ := zone.Orientation()
	newID := m.newID()
	container, err := m.tabs.NewTabContainer(ctx, newID)
	if err != nil {
		return entity.NoNode, fmt.Errorf("create tab container for %s: %w", newID, err)
	}

	txn := newLayoutTxn()
	parentID, err := m.attachSibling(txn, target, newID, orientation, zone.PlacesBefore())
	if err != nil {
		m.closeContainer(ctx, newID, container)
		return entity.NoNode, err
	}
	m.containers[newID] = container
	txn.emit(entity.LayoutEvent{
		Kind:     entity.EventPaneSplit,
		ParentID: parentID,
		PaneID:   newID,
		Zone:     zone,
	})
	m.setActive(txn, newID)
	m.commit(ctx, txn)

	log.Info().
		Str("new_pane_id", string(newID)).
		Str("parent_id", string(parentID)).
		Str("zone", string(zone)).
		Msg("pane split completed")

	if err := m.deliver(ctx, newID, payload); err != nil {
		log.Warn().Err(err).Str("pane_id", string(newID)).Msg("payload not delivered to new pane")
		return newID, err
	}
	m.closeEmptySource(ctx, payload, newID)
	return newID, nil
}

// attachSibling registers newID next to target. When target's parent already
// runs along orientation the pane becomes a direct sibling; otherwise a new
// splitter takes target's slot. Returns the splitter now holding newID.
func (m *SplitViewManager) attachSibling(
	txn *layoutTxn,
	target *entity.Node,
	newID entity.NodeID,
	orientation entity.Orientation,
	before bool,
) (entity.NodeID, error) {
	pane := entity.NewPaneNode(newID)
	if err := m.reg.Insert(pane); err != nil {
		return entity.NoNode, err
	}

	parent, hasParent := m.reg.Get(target.Parent)
	if hasParent && parent.Orientation == orientation {
		idx := parent.IndexOf(target.ID)
		insertAt := idx
		if !before {
			insertAt = idx + 1
		}
		insertChild(parent, insertAt, newID, splitShares(parent.Shares, idx, insertAt, m.policy.Split))
		pane.Parent = parent.ID

		parentID := parent.ID
		txn.command("insert child", func(ctx context.Context, h port.SplitterHost) error {
			return h.InsertChild(ctx, parentID, insertAt, newID)
		})
		txn.touch(parentID)
		txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: newID, Change: entity.ChangeNodeAdded})
		return parentID, nil
	}

	children := []entity.NodeID{target.ID, newID}
	if before {
		children = []entity.NodeID{newID, target.ID}
	}
	splitterID := m.newID()
	splitter := entity.NewSplitterNode(splitterID, orientation, children...)
	if err := m.reg.Insert(splitter); err != nil {
		m.reg.Release(newID)
		return entity.NoNode, err
	}

	oldParent := target.Parent
	splitter.Parent = oldParent
	if hasParent {
		parent.Children[parent.IndexOf(target.ID)] = splitterID
	} else if err := m.reg.SetRoot(splitterID); err != nil {
		m.reg.Release(splitterID)
		m.reg.Release(newID)
		return entity.NoNode, err
	}
	target.Parent = splitterID
	pane.Parent = splitterID

	txn.command("wrap with splitter", func(ctx context.Context, h port.SplitterHost) error {
		return h.WrapWithSplitter(ctx, splitterID, orientation, children)
	})
	targetID := target.ID
	txn.command("replace child slot", func(ctx context.Context, h port.SplitterHost) error {
		return h.ReplaceChildSlot(ctx, oldParent, targetID, splitterID)
	})
	txn.touch(splitterID)
	txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: splitterID, Change: entity.ChangeNodeAdded})
	txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: newID, Change: entity.ChangeNodeAdded})
	return splitterID, nil
}

// ClosePane removes paneID from the tree, collapsing splitters left with a
// single child. Closing the only pane resets it instead and returns false.
// An unknown id leaves the tree untouched and returns false with ErrNotFound.
func (m *SplitViewManager) ClosePane(ctx context.Context, paneID entity.NodeID) (bool, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("pane_id", string(paneID)).Msg("closing pane")

	pane, ok := m.reg.Get(paneID)
	if !ok || !pane.IsPane() {
		return false, fmt.Errorf("close %s: %w", paneID, entity.ErrNotFound)
	}

	if pane.IsRoot() {
		log.Info().Str("pane_id", string(paneID)).Msg("closing last pane, resetting in place")
		return false, m.resetLastPane(ctx, pane)
	}

	parent, ok := m.reg.Get(pane.Parent)
	if !ok {
		return false, fmt.Errorf("close %s: parent %s: %w", paneID, pane.Parent, entity.ErrStructuralInvariant)
	}

	txn := m.beginTxn()
	idx := parent.IndexOf(paneID)
	removeChild(parent, idx, m.policy.Collapse)

	parentID := parent.ID
	txn.command("remove child", func(ctx context.Context, h port.SplitterHost) error {
		return h.RemoveChild(ctx, parentID, paneID)
	})
	txn.touch(parentID)
	m.releasePane(txn, paneID)

	// Focus goes to the node that now covers the closed pane's neighborhood.
	successor := parent.Children[min(idx, len(parent.Children)-1)]
	collapsed := len(parent.Children) == 1
	if collapsed {
		successor = m.collapse(txn, parent)
	}
	if m.active == paneID {
		m.setActive(txn, m.reg.FirstPane(successor))
	}

	txn.emit(entity.LayoutEvent{Kind: entity.EventPaneClosed, PaneID: paneID, Collapsed: collapsed})
	m.commit(ctx, txn)

	log.Info().
		Str("closed_pane_id", string(paneID)).
		Str("successor_id", string(successor)).
		Msg("pane closed")
	return true, nil
}

// CloseAllSplits closes every pane except the first in layout order, which
// then fills the window and takes focus. Returns the number of panes closed.
func (m *SplitViewManager) CloseAllSplits(ctx context.Context) int {
	log := logging.FromContext(ctx)
	if !m.IsSplit() {
		return 0
	}

	oldRoot := m.reg.Root()
	keep := m.reg.FirstPane(oldRoot)
	var doomed []entity.NodeID
	m.reg.Walk(func(n *entity.Node) bool {
		if n.ID != keep {
			doomed = append(doomed, n.ID)
		}
		return true
	})

	txn := m.beginTxn()
	closed := 0
	for _, id := range doomed {
		n, _ := m.reg.Get(id)
		if n.IsPane() {
			m.releasePane(txn, id)
			txn.emit(entity.LayoutEvent{Kind: entity.EventPaneClosed, PaneID: id, Collapsed: true})
			closed++
			continue
		}
		m.reg.Release(id)
		txn.forget(id)
		txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: id, Change: entity.ChangeNodeRemoved})
	}
	_ = m.reg.SetRoot(keep)
	txn.command("replace root slot", func(ctx context.Context, h port.SplitterHost) error {
		return h.ReplaceChildSlot(ctx, entity.NoNode, oldRoot, keep)
	})
	m.setActive(txn, keep)
	m.commit(ctx, txn)

	log.Info().
		Str("kept_pane_id", string(keep)).
		Int("closed", closed).
		Msg("closed all splits")
	return closed
}

// IsSplit reports whether the window holds more than one pane.
func (m *SplitViewManager) IsSplit() bool {
	root, ok := m.reg.Get(m.reg.Root())
	return ok && root.IsSplitter()
}

// collapse replaces a single-child splitter by its child. If the child is a
// splitter running along the grandparent's axis it is flattened into the
// grandparent. Returns the node that took the splitter's place (the first
// spliced child when flattening).
func (m *SplitViewManager) collapse(txn *layoutTxn, splitter *entity.Node) entity.NodeID {
	childID := splitter.Children[0]
	child, _ := m.reg.Get(childID)
	splitterID := splitter.ID
	grandID := splitter.Parent

	grand, hasGrand := m.reg.Get(grandID)
	if !hasGrand {
		m.reg.Release(splitterID)
		_ = m.reg.SetRoot(childID)
		txn.command("replace root slot", func(ctx context.Context, h port.SplitterHost) error {
			return h.ReplaceChildSlot(ctx, entity.NoNode, splitterID, childID)
		})
		txn.forget(splitterID)
		txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: splitterID, Change: entity.ChangeNodeRemoved})
		return childID
	}

	slot := grand.IndexOf(splitterID)
	if child.IsSplitter() && child.Orientation == grand.Orientation {
		return m.flatten(txn, grand, slot, splitter, child)
	}

	grand.Children[slot] = childID
	child.Parent = grandID
	m.reg.Release(splitterID)
	txn.command("replace child slot", func(ctx context.Context, h port.SplitterHost) error {
		return h.ReplaceChildSlot(ctx, grandID, splitterID, childID)
	})
	txn.forget(splitterID)
	txn.touch(grandID)
	txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: splitterID, Change: entity.ChangeNodeRemoved})
	return childID
}

// flatten splices inner's children into grand at slot, replacing the
// collapsed splitter. inner's children run across grand's axis, so the
// result cannot nest same-orientation splitters again.
func (m *SplitViewManager) flatten(
	txn *layoutTxn,
	grand *entity.Node,
	slot int,
	collapsed *entity.Node,
	inner *entity.Node,
) entity.NodeID {
	grandID := grand.ID
	collapsedID := collapsed.ID
	innerID := inner.ID
	spliced := append([]entity.NodeID(nil), inner.Children...)

	grand.Children, grand.Shares = spliceChildren(grand.Children, grand.Shares, slot, spliced, inner.Shares)
	for _, id := range spliced {
		if n, ok := m.reg.Get(id); ok {
			n.Parent = grandID
		}
	}
	m.reg.Release(collapsedID)
	m.reg.Release(innerID)

	txn.command("remove collapsed splitter", func(ctx context.Context, h port.SplitterHost) error {
		return h.RemoveChild(ctx, grandID, collapsedID)
	})
	for i, id := range spliced {
		index := slot + i
		childID := id
		txn.command("splice child", func(ctx context.Context, h port.SplitterHost) error {
			return h.InsertChild(ctx, grandID, index, childID)
		})
	}
	txn.forget(collapsedID)
	txn.forget(innerID)
	txn.touch(grandID)
	txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: collapsedID, Change: entity.ChangeNodeRemoved})
	txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: innerID, Change: entity.ChangeNodeRemoved})
	txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: grandID, Change: entity.ChangeReordered})
	return spliced[0]
}

// resetLastPane keeps the tree non-empty when its only pane is closed.
func (m *SplitViewManager) resetLastPane(ctx context.Context, pane *entity.Node) error {
	oldID := pane.ID
	txn := newLayoutTxn()

	switch m.policy.LastPane {
	case LastPaneReset:
		if err := m.containers[oldID].ResetEmpty(ctx); err != nil {
			return fmt.Errorf("reset pane %s: %w", oldID, err)
		}
		txn.emit(entity.LayoutEvent{Kind: entity.EventPaneClosed, PaneID: oldID, Collapsed: false})
		m.commit(ctx, txn)
		return nil
	default:
		newID := m.newID()
		container, err := m.tabs.NewTabContainer(ctx, newID)
		if err != nil {
			return fmt.Errorf("create tab container for %s: %w", newID, err)
		}
		if err := m.reg.Insert(entity.NewPaneNode(newID)); err != nil {
			m.closeContainer(ctx, newID, container)
			return err
		}
		m.containers[newID] = container
		m.releasePane(txn, oldID)
		_ = m.reg.SetRoot(newID)

		txn.command("replace root slot", func(ctx context.Context, h port.SplitterHost) error {
			return h.ReplaceChildSlot(ctx, entity.NoNode, oldID, newID)
		})
		txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: newID, Change: entity.ChangeNodeAdded})
		txn.emit(entity.LayoutEvent{Kind: entity.EventPaneClosed, PaneID: oldID, Collapsed: false})
		m.setActive(txn, newID)
		m.commit(ctx, txn)
		return nil
	}
}

// ActivatePane makes paneID the focus target. Unknown ids are ignored.
func (m *SplitViewManager) ActivatePane(ctx context.Context, paneID entity.NodeID) bool {
	n, ok := m.reg.Get(paneID)
	if !ok || !n.IsPane() {
		logging.FromContext(ctx).Debug().Str("pane_id", string(paneID)).Msg("activate ignored: unknown pane")
		return false
	}
	txn := newLayoutTxn()
	m.setActive(txn, paneID)
	m.commit(ctx, txn)
	return true
}

// SetShares replaces the proportional sizes of a splitter's children.
// Each share is raised to the policy minimum before renormalizing.
func (m *SplitViewManager) SetShares(ctx context.Context, splitterID entity.NodeID, shares []float64) error {
	n, ok := m.reg.Get(splitterID)
	if !ok || !n.IsSplitter() {
		return fmt.Errorf("set shares on %s: %w", splitterID, entity.ErrNotFound)
	}
	if len(shares) != len(n.Children) {
		return fmt.Errorf("set shares on %s: %d shares for %d children: %w",
			splitterID, len(shares), len(n.Children), entity.ErrInvalidShares)
	}

	clamped, err := clampShares(shares, m.policy.MinShare)
	if err != nil {
		return fmt.Errorf("set shares on %s: %w", splitterID, err)
	}
	oldShares := n.Shares
	n.Shares = clamped

	txn := newLayoutTxn()
	txn.touch(splitterID)
	txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: splitterID, Change: entity.ChangeSharesUpdate})
	m.commit(ctx, txn)

	logging.FromContext(ctx).Debug().
		Str("splitter_id", string(splitterID)).
		Floats64("old_shares", oldShares).
		Floats64("new_shares", n.Shares).
		Msg("splitter shares set")
	return nil
}

// Root returns the root node id.
func (m *SplitViewManager) Root() entity.NodeID {
	return m.reg.Root()
}

// Node returns a copy of the node for id.
func (m *SplitViewManager) Node(id entity.NodeID) (*entity.Node, bool) {
	n, ok := m.reg.Get(id)
	if !ok {
		return nil, false
	}
	return n.Clone(), true
}

// Panes returns the pane ids in visual order.
func (m *SplitViewManager) Panes() []entity.NodeID {
	return m.reg.Panes()
}

// PaneCount returns the number of registered panes.
func (m *SplitViewManager) PaneCount() int {
	return m.reg.PaneCount()
}

// ActivePaneID returns the focus target.
func (m *SplitViewManager) ActivePaneID() entity.NodeID {
	return m.active
}

// Container returns the tab container of paneID.
func (m *SplitViewManager) Container(paneID entity.NodeID) (port.TabContainer, bool) {
	c, ok := m.containers[paneID]
	return c, ok
}

// Validate checks the tree invariants.
func (m *SplitViewManager) Validate() error {
	return m.reg.Validate()
}

func (m *SplitViewManager) newID() entity.NodeID {
	return entity.NodeID(m.idGen())
}

func (m *SplitViewManager) setActive(txn *layoutTxn, paneID entity.NodeID) {
	if paneID == entity.NoNode || m.active == paneID {
		return
	}
	m.active = paneID
	txn.emit(entity.LayoutEvent{Kind: entity.EventPaneActivated, PaneID: paneID})
}

func (m *SplitViewManager) releasePane(txn *layoutTxn, paneID entity.NodeID) {
	m.reg.Release(paneID)
	if c, ok := m.containers[paneID]; ok {
		txn.closeLater(paneID, c)
		delete(m.containers, paneID)
	}
	txn.emit(entity.LayoutEvent{Kind: entity.EventStructureChanged, NodeID: paneID, Change: entity.ChangeNodeRemoved})
}

func (m *SplitViewManager) closeContainer(ctx context.Context, paneID entity.NodeID, c port.TabContainer) {
	if err := c.Close(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("pane_id", string(paneID)).Msg("failed to close tab container")
	}
}

// checkPayload rejects payloads that point at tabs of unknown panes before
// anything is mutated.
func (m *SplitViewManager) checkPayload(payload entity.DropPayload) error {
	if payload.Kind != entity.PayloadTab || payload.SourceTab == nil {
		return nil
	}
	src := payload.SourceTab.PaneID
	if _, ok := m.containers[src]; !ok {
		return fmt.Errorf("%w: source pane %s: %w", entity.ErrPayloadDelivery, src, entity.ErrNotFound)
	}
	return nil
}

func (m *SplitViewManager) deliver(ctx context.Context, target entity.NodeID, payload entity.DropPayload) error {
	if payload.IsZero() {
		return nil
	}
	dst, ok := m.containers[target]
	if !ok {
		return fmt.Errorf("%w: target %s: %w", entity.ErrPayloadDelivery, target, entity.ErrNotFound)
	}

	var err error
	switch payload.Kind {
	case entity.PayloadFile:
		err = dst.OpenFile(ctx, payload.FilePath)
	case entity.PayloadTab:
		src := payload.SourceTab.PaneID
		if src == target {
			return nil
		}
		srcContainer, ok := m.containers[src]
		if !ok {
			return fmt.Errorf("%w: source pane %s: %w", entity.ErrPayloadDelivery, src, entity.ErrNotFound)
		}
		err = srcContainer.TransferTabTo(ctx, dst, payload.SourceTab.Index)
	default:
		err = fmt.Errorf("unknown payload kind %q", payload.Kind)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrPayloadDelivery, err)
	}
	return nil
}

// closeEmptySource closes the pane a tab was dragged out of when it has no
// tabs left.
func (m *SplitViewManager) closeEmptySource(ctx context.Context, payload entity.DropPayload, receiver entity.NodeID) {
	if !m.policy.CloseEmptySource || payload.Kind != entity.PayloadTab || payload.SourceTab == nil {
		return
	}
	src := payload.SourceTab.PaneID
	if src == receiver {
		return
	}
	c, ok := m.containers[src]
	if !ok || c.TabCount() > 0 {
		return
	}
	if _, err := m.ClosePane(ctx, src); err != nil && !errors.Is(err, entity.ErrNotFound) {
		logging.FromContext(ctx).Warn().Err(err).Str("pane_id", string(src)).Msg("failed to close emptied source pane")
	}
}
