package usecase

import (
	"context"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

type hostCommand struct {
	name string
	run  func(ctx context.Context, h port.SplitterHost) error
}

type pendingClose struct {
	paneID    entity.NodeID
	container port.TabContainer
}

// layoutTxn batches the side effects of one mutation. Nothing reaches the
// host or the observers until commit, so they never see a half-built tree.
type layoutTxn struct {
	commands  []hostCommand
	touched   []entity.NodeID
	forgotten map[entity.NodeID]struct{}
	closes    []pendingClose
	events    []entity.LayoutEvent
	wasSplit  bool
}

func newLayoutTxn() *layoutTxn {
	return &layoutTxn{forgotten: make(map[entity.NodeID]struct{})}
}

// beginTxn starts a transaction that reports the return to a single pane.
func (m *SplitViewManager) beginTxn() *layoutTxn {
	txn := newLayoutTxn()
	txn.wasSplit = m.IsSplit()
	return txn
}

func (t *layoutTxn) command(name string, run func(ctx context.Context, h port.SplitterHost) error) {
	t.commands = append(t.commands, hostCommand{name: name, run: run})
}

// touch schedules a geometry pass for splitter.
func (t *layoutTxn) touch(splitter entity.NodeID) {
	for _, id := range t.touched {
		if id == splitter {
			return
		}
	}
	t.touched = append(t.touched, splitter)
}

// forget drops a released splitter from the geometry pass.
func (t *layoutTxn) forget(splitter entity.NodeID) {
	t.forgotten[splitter] = struct{}{}
}

func (t *layoutTxn) closeLater(paneID entity.NodeID, c port.TabContainer) {
	t.closes = append(t.closes, pendingClose{paneID: paneID, container: c})
}

func (t *layoutTxn) emit(event entity.LayoutEvent) {
	t.events = append(t.events, event)
}

// commit validates the registry and flushes the batch: structural commands,
// one ApplyShares per touched splitter, container teardown, then observers.
// A transaction started split that ends with a single pane also emits unsplit.
func (m *SplitViewManager) commit(ctx context.Context, txn *layoutTxn) {
	log := logging.FromContext(ctx)

	if err := m.reg.Validate(); err != nil {
		log.Error().Err(err).Msg("layout invariant broken after mutation")
	}

	for _, cmd := range txn.commands {
		if err := cmd.run(ctx, m.host); err != nil {
			log.Error().Err(err).Str("command", cmd.name).Msg("splitter host command failed")
		}
	}

	for _, id := range txn.touched {
		if _, gone := txn.forgotten[id]; gone {
			continue
		}
		n, ok := m.reg.Get(id)
		if !ok || !n.IsSplitter() {
			continue
		}
		if err := m.host.ApplyShares(ctx, id, append([]float64(nil), n.Shares...)); err != nil {
			log.Error().Err(err).Str("splitter_id", string(id)).Msg("failed to apply shares")
		}
	}

	for _, pc := range txn.closes {
		m.closeContainer(ctx, pc.paneID, pc.container)
	}

	if txn.wasSplit && !m.IsSplit() {
		txn.emit(entity.LayoutEvent{Kind: entity.EventUnsplit, PaneID: m.reg.Root()})
	}
	for _, event := range txn.events {
		for _, obs := range m.observers {
			obs.OnLayoutEvent(ctx, event)
		}
	}
}

// noopHost stands in when the manager runs headless.
type noopHost struct{}

func (noopHost) SetRoot(context.Context, entity.NodeID) error { return nil }

func (noopHost) WrapWithSplitter(context.Context, entity.NodeID, entity.Orientation, []entity.NodeID) error {
	return nil
}

func (noopHost) ReplaceChildSlot(context.Context, entity.NodeID, entity.NodeID, entity.NodeID) error {
	return nil
}

func (noopHost) InsertChild(context.Context, entity.NodeID, int, entity.NodeID) error { return nil }

func (noopHost) RemoveChild(context.Context, entity.NodeID, entity.NodeID) error { return nil }

func (noopHost) ApplyShares(context.Context, entity.NodeID, []float64) error { return nil }
