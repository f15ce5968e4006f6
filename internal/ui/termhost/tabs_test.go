package termhost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/ui/termhost"
)

func newTabSet(t *testing.T, pane entity.NodeID, docs ...string) *termhost.TabSet {
	t.Helper()
	c, err := termhost.TabSetFactory{}.NewTabContainer(testContext(), pane)
	require.NoError(t, err)
	ts := c.(*termhost.TabSet)
	for _, d := range docs {
		require.NoError(t, ts.OpenFile(testContext(), d))
	}
	return ts
}

func TestTabSet_EmptyShowsUntitled(t *testing.T) {
	ts := newTabSet(t, "p")
	assert.Equal(t, 0, ts.TabCount())
	assert.Equal(t, -1, ts.CurrentIndex())
	assert.Equal(t, port.UntitledDocument, ts.CurrentDocument())
}

func TestTabSet_OpenFileFocusesExistingTab(t *testing.T) {
	ts := newTabSet(t, "p", "a.go", "b.go")
	assert.Equal(t, 1, ts.CurrentIndex())

	require.NoError(t, ts.OpenFile(testContext(), "a.go"))
	assert.Equal(t, 2, ts.TabCount())
	assert.Equal(t, "a.go", ts.CurrentDocument())

	assert.Error(t, ts.OpenFile(testContext(), "  "))
}

func TestTabSet_TransferTabTo(t *testing.T) {
	ctx := testContext()
	src := newTabSet(t, "src", "a.go", "b.go", "c.go")
	dst := newTabSet(t, "dst", "x.go")

	require.NoError(t, src.TransferTabTo(ctx, dst, 2))
	assert.Equal(t, []string{"a.go", "b.go"}, src.Documents())
	assert.Equal(t, 1, src.CurrentIndex())
	assert.Equal(t, []string{"x.go", "c.go"}, dst.Documents())
	assert.Equal(t, "c.go", dst.CurrentDocument())

	require.NoError(t, src.Select(1))
	require.NoError(t, src.TransferTabTo(ctx, dst, 0))
	assert.Equal(t, "b.go", src.CurrentDocument())

	assert.ErrorIs(t, src.TransferTabTo(ctx, dst, 5), termhost.ErrTabOutOfRange)
}

func TestTabSet_ClosedRejectsWork(t *testing.T) {
	ctx := testContext()
	ts := newTabSet(t, "p", "a.go")
	require.NoError(t, ts.Close(ctx))

	assert.True(t, ts.Closed())
	assert.ErrorIs(t, ts.OpenFile(ctx, "b.go"), termhost.ErrContainerClosed)
	assert.ErrorIs(t, ts.ResetEmpty(ctx), termhost.ErrContainerClosed)
	assert.ErrorIs(t, ts.TransferTabTo(ctx, newTabSet(t, "q"), 0), termhost.ErrContainerClosed)
}

func TestTabSet_ResetEmptyAndSelect(t *testing.T) {
	ctx := testContext()
	ts := newTabSet(t, "p", "a.go", "b.go")
	assert.ErrorIs(t, ts.Select(2), termhost.ErrTabOutOfRange)
	require.NoError(t, ts.Select(0))
	assert.Equal(t, "a.go", ts.CurrentDocument())

	require.NoError(t, ts.ResetEmpty(ctx))
	assert.Equal(t, port.UntitledDocument, ts.CurrentDocument())
}

func TestTabLabel(t *testing.T) {
	assert.Equal(t, "main.go", termhost.TabLabel("/src/cmd/main.go"))
	assert.Equal(t, port.UntitledDocument, termhost.TabLabel(port.UntitledDocument))
}

func TestOverlay_ShowHide(t *testing.T) {
	var o termhost.Overlay
	_, _, ok := o.Target()
	assert.False(t, ok)

	o.Show("p", entity.ZoneLeft, entity.Rect{W: 10, H: 10})
	pane, zone, ok := o.Target()
	assert.True(t, ok)
	assert.Equal(t, entity.NodeID("p"), pane)
	assert.Equal(t, entity.ZoneLeft, zone)

	o.Hide()
	_, _, ok = o.Target()
	assert.False(t, ok)

	var nilOverlay *termhost.Overlay
	_, _, ok = nilOverlay.Target()
	assert.False(t, ok)
}
