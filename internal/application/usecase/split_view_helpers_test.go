package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func sequentialIDs() usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
}

var errOpenFailed = errors.New("open failed")

// fakeTabs is an in-memory tab container.
type fakeTabs struct {
	paneID  entity.NodeID
	docs    []string
	current int
	openErr error
	closed  bool
	resets  int
}

func (f *fakeTabs) TabCount() int { return len(f.docs) }

func (f *fakeTabs) CurrentDocument() string {
	if len(f.docs) == 0 {
		return port.UntitledDocument
	}
	return f.docs[f.current]
}

func (f *fakeTabs) OpenFile(_ context.Context, path string) error {
	if f.openErr != nil {
		return f.openErr
	}
	f.docs = append(f.docs, path)
	f.current = len(f.docs) - 1
	return nil
}

func (f *fakeTabs) TransferTabTo(_ context.Context, dst port.TabContainer, index int) error {
	if index < 0 || index >= len(f.docs) {
		return fmt.Errorf("tab %d out of range", index)
	}
	doc := f.docs[index]
	f.docs = append(f.docs[:index], f.docs[index+1:]...)
	if f.current >= len(f.docs) && f.current > 0 {
		f.current--
	}
	target, ok := dst.(*fakeTabs)
	if !ok {
		return fmt.Errorf("unsupported destination %T", dst)
	}
	target.docs = append(target.docs, doc)
	target.current = len(target.docs) - 1
	return nil
}

func (f *fakeTabs) ResetEmpty(context.Context) error {
	f.docs = nil
	f.current = 0
	f.resets++
	return nil
}

func (f *fakeTabs) Close(context.Context) error {
	f.closed = true
	return nil
}

// fakeFactory hands out fakeTabs and remembers them by pane.
type fakeFactory struct {
	created map[entity.NodeID]*fakeTabs
	failFor int // fail the nth creation (1-based), 0 never
	calls   int
	openErr error
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{created: make(map[entity.NodeID]*fakeTabs)}
}

func (f *fakeFactory) NewTabContainer(_ context.Context, paneID entity.NodeID) (port.TabContainer, error) {
	f.calls++
	if f.failFor != 0 && f.calls == f.failFor {
		return nil, errors.New("factory failure")
	}
	tabs := &fakeTabs{paneID: paneID, openErr: f.openErr}
	f.created[paneID] = tabs
	return tabs, nil
}

// recordingHost logs every command it receives.
type recordingHost struct {
	calls  []string
	shares map[entity.NodeID][]float64
}

func newRecordingHost() *recordingHost {
	return &recordingHost{shares: make(map[entity.NodeID][]float64)}
}

func (h *recordingHost) SetRoot(_ context.Context, node entity.NodeID) error {
	h.calls = append(h.calls, fmt.Sprintf("root %s", node))
	return nil
}

func (h *recordingHost) WrapWithSplitter(_ context.Context, s entity.NodeID, o entity.Orientation, children []entity.NodeID) error {
	h.calls = append(h.calls, fmt.Sprintf("wrap %s %s [%s]", s, o, joinIDs(children)))
	return nil
}

func (h *recordingHost) ReplaceChildSlot(_ context.Context, parent, oldChild, newChild entity.NodeID) error {
	h.calls = append(h.calls, fmt.Sprintf("replace %s %s->%s", parent, oldChild, newChild))
	return nil
}

func (h *recordingHost) InsertChild(_ context.Context, parent entity.NodeID, index int, child entity.NodeID) error {
	h.calls = append(h.calls, fmt.Sprintf("insert %s %d %s", parent, index, child))
	return nil
}

func (h *recordingHost) RemoveChild(_ context.Context, parent, child entity.NodeID) error {
	h.calls = append(h.calls, fmt.Sprintf("remove %s %s", parent, child))
	return nil
}

func (h *recordingHost) ApplyShares(_ context.Context, s entity.NodeID, shares []float64) error {
	h.calls = append(h.calls, fmt.Sprintf("shares %s", s))
	h.shares[s] = shares
	return nil
}

func (h *recordingHost) reset() {
	h.calls = nil
}

func joinIDs(ids []entity.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}

// shape renders the tree as H(a,V(b,c)) for structural assertions.
func shape(m *usecase.SplitViewManager, id entity.NodeID) string {
	n, ok := m.Node(id)
	if !ok {
		return "?"
	}
	if n.IsPane() {
		return string(n.ID)
	}
	prefix := "H"
	if n.Orientation == entity.OrientationVertical {
		prefix = "V"
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = shape(m, c)
	}
	return prefix + "(" + strings.Join(parts, ",") + ")"
}

type splitViewFixture struct {
	manager *usecase.SplitViewManager
	tabs    *fakeFactory
	host    *recordingHost
	events  []entity.LayoutEvent
}

func newSplitViewFixture(t *testing.T, policy usecase.LayoutPolicy) *splitViewFixture {
	t.Helper()
	f := &splitViewFixture{tabs: newFakeFactory(), host: newRecordingHost()}
	m, err := usecase.NewSplitViewManager(testContext(), usecase.SplitViewDeps{
		IDGenerator: sequentialIDs(),
		Tabs:        f.tabs,
		Host:        f.host,
		Policy:      policy,
		Observers: []port.LayoutObserver{
			port.LayoutObserverFunc(func(_ context.Context, e entity.LayoutEvent) {
				f.events = append(f.events, e)
			}),
		},
	})
	require.NoError(t, err)
	f.manager = m
	f.host.reset()
	f.events = nil
	return f
}

func (f *splitViewFixture) split(t *testing.T, pane entity.NodeID, zone entity.Zone) entity.NodeID {
	t.Helper()
	id, err := f.manager.SplitPane(testContext(), pane, zone, entity.DropPayload{})
	require.NoError(t, err)
	require.NoError(t, f.manager.Validate())
	return id
}

func (f *splitViewFixture) eventKinds() []entity.LayoutEventKind {
	kinds := make([]entity.LayoutEventKind, 0, len(f.events))
	for _, e := range f.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}
