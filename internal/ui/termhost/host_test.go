package termhost_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
	"github.com/bnema/splitview/internal/ui/termhost"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func sequentialIDs() usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
}

type workspace struct {
	host    *termhost.Host
	manager *usecase.SplitViewManager
}

func newWorkspace(t *testing.T, width, height int) *workspace {
	t.Helper()
	host := termhost.NewHost(width, height)
	m, err := usecase.NewSplitViewManager(testContext(), usecase.SplitViewDeps{
		IDGenerator: sequentialIDs(),
		Tabs:        termhost.TabSetFactory{},
		Host:        host,
		Policy:      usecase.DefaultLayoutPolicy(),
	})
	require.NoError(t, err)
	return &workspace{host: host, manager: m}
}

// describe renders the manager's tree in the same notation as Host.Describe.
func describe(m *usecase.SplitViewManager, id entity.NodeID) string {
	n, ok := m.Node(id)
	if !ok {
		return "?"
	}
	if n.IsPane() {
		return string(id)
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = describe(m, c)
	}
	prefix := "H("
	if n.Orientation == entity.OrientationVertical {
		prefix = "V("
	}
	return prefix + strings.Join(parts, ",") + ")"
}

func (w *workspace) requireMirrored(t *testing.T) {
	t.Helper()
	require.NoError(t, w.manager.Validate())
	assert.Equal(t, describe(w.manager, w.manager.Root()), w.host.Describe())
	assert.ElementsMatch(t, w.manager.Panes(), w.host.Panes())
}

func (w *workspace) requireTiled(t *testing.T) {
	t.Helper()
	vp := w.host.Viewport()
	area := 0.0
	for _, id := range w.host.Panes() {
		r, ok := w.host.Rect(id)
		require.True(t, ok, id)
		require.False(t, r.Empty(), id)
		area += r.W * r.H

		got, _, ok := w.host.PaneAt(r.Center())
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
	assert.Equal(t, vp.W*vp.H, area)
}

func TestHost_MirrorsManagerThroughSplitsAndCloses(t *testing.T) {
	ctx := testContext()
	w := newWorkspace(t, 120, 40)
	root := w.manager.Root()
	w.requireMirrored(t)
	w.requireTiled(t)

	right, err := w.manager.SplitPane(ctx, root, entity.ZoneRight, entity.FilePayload("a.go"))
	require.NoError(t, err)
	w.requireMirrored(t)
	w.requireTiled(t)

	below, err := w.manager.SplitPane(ctx, right, entity.ZoneBottom, entity.FilePayload("b.go"))
	require.NoError(t, err)
	w.requireMirrored(t)
	w.requireTiled(t)

	left, err := w.manager.SplitPane(ctx, root, entity.ZoneLeft, entity.FilePayload("c.go"))
	require.NoError(t, err)
	w.requireMirrored(t)
	w.requireTiled(t)
	assert.Len(t, w.host.Panes(), 4)

	rootNode, _ := w.manager.Node(w.manager.Root())
	shares, ok := w.host.Shares(rootNode.ID)
	require.True(t, ok)
	assert.InDeltaSlice(t, rootNode.Shares, shares, 1e-9)

	_, err = w.manager.ClosePane(ctx, below)
	require.NoError(t, err)
	w.requireMirrored(t)
	w.requireTiled(t)

	_, err = w.manager.ClosePane(ctx, left)
	require.NoError(t, err)
	w.requireMirrored(t)
	w.requireTiled(t)
	assert.Len(t, w.host.Panes(), 2)
}

func TestHost_PrunesCollapsedSplitters(t *testing.T) {
	ctx := testContext()
	w := newWorkspace(t, 80, 24)
	root := w.manager.Root()

	below, err := w.manager.SplitPane(ctx, root, entity.ZoneBottom, entity.DropPayload{})
	require.NoError(t, err)
	splitter := w.manager.Root()
	_, ok := w.host.Shares(splitter)
	require.True(t, ok)

	_, err = w.manager.ClosePane(ctx, below)
	require.NoError(t, err)
	w.requireMirrored(t)

	w.host.Panes() // forces a layout pass
	_, ok = w.host.Shares(splitter)
	assert.False(t, ok)
	assert.Equal(t, string(root), w.host.Describe())
}

func TestHost_SetSharesResizesPanes(t *testing.T) {
	ctx := testContext()
	w := newWorkspace(t, 100, 20)
	root := w.manager.Root()
	right, err := w.manager.SplitPane(ctx, root, entity.ZoneRight, entity.DropPayload{})
	require.NoError(t, err)

	require.NoError(t, w.manager.SetShares(ctx, w.manager.Root(), []float64{0.3, 0.7}))

	leftRect, _ := w.host.Rect(root)
	rightRect, _ := w.host.Rect(right)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 30, H: 20}, leftRect)
	assert.Equal(t, entity.Rect{X: 30, Y: 0, W: 70, H: 20}, rightRect)
}

func TestHost_ResizeRelaysOut(t *testing.T) {
	ctx := testContext()
	w := newWorkspace(t, 80, 24)
	_, err := w.manager.SplitPane(ctx, w.manager.Root(), entity.ZoneTop, entity.DropPayload{})
	require.NoError(t, err)

	w.host.Resize(50, 11)
	w.requireTiled(t)
	for _, id := range w.host.Panes() {
		r, _ := w.host.Rect(id)
		assert.Equal(t, 50.0, r.W)
	}
}

func TestHost_CommandErrors(t *testing.T) {
	ctx := testContext()
	host := termhost.NewHost(10, 10)
	require.NoError(t, host.SetRoot(ctx, "a"))

	assert.Error(t, host.WrapWithSplitter(ctx, "s", entity.OrientationHorizontal, []entity.NodeID{"a"}))
	assert.ErrorIs(t, host.InsertChild(ctx, "missing", 0, "b"), termhost.ErrUnknownNode)
	assert.ErrorIs(t, host.RemoveChild(ctx, "missing", "b"), termhost.ErrUnknownNode)
	assert.ErrorIs(t, host.ReplaceChildSlot(ctx, entity.NoNode, "b", "c"), termhost.ErrUnknownNode)

	require.NoError(t, host.WrapWithSplitter(ctx, "s", entity.OrientationHorizontal, []entity.NodeID{"a", "b"}))
	require.NoError(t, host.ReplaceChildSlot(ctx, entity.NoNode, "a", "s"))
	assert.ErrorIs(t, host.ApplyShares(ctx, "s", []float64{1}), entity.ErrInvalidShares)
	assert.ErrorIs(t, host.RemoveChild(ctx, "s", "zz"), termhost.ErrUnknownNode)
	assert.Equal(t, "H(a,b)", host.Describe())
}

func TestHost_InsertChildClampsIndex(t *testing.T) {
	ctx := testContext()
	host := termhost.NewHost(90, 10)
	require.NoError(t, host.WrapWithSplitter(ctx, "s", entity.OrientationHorizontal, []entity.NodeID{"a", "b"}))
	require.NoError(t, host.SetRoot(ctx, "s"))

	require.NoError(t, host.InsertChild(ctx, "s", 99, "c"))
	require.NoError(t, host.InsertChild(ctx, "s", -3, "d"))
	assert.Equal(t, "H(d,a,b,c)", host.Describe())

	shares, _ := host.Shares("s")
	sum := 0.0
	for _, s := range shares {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestHost_PaneAtOutsideViewport(t *testing.T) {
	host := termhost.NewHost(10, 10)
	require.NoError(t, host.SetRoot(testContext(), "a"))

	_, _, ok := host.PaneAt(entity.Point{X: 10, Y: 5})
	assert.False(t, ok)
	id, r, ok := host.PaneAt(entity.Point{X: 9.5, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, entity.NodeID("a"), id)
	assert.Equal(t, entity.Rect{W: 10, H: 10}, r)
}
