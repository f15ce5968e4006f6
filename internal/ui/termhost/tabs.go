package termhost

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

var (
	// ErrContainerClosed is returned by operations on a released TabSet.
	ErrContainerClosed = errors.New("tab container closed")
	// ErrTabOutOfRange is returned when a tab index does not exist.
	ErrTabOutOfRange = errors.New("tab index out of range")
)

// TabSet is an ordered list of open documents. With no documents it shows
// the untitled placeholder.
type TabSet struct {
	paneID  entity.NodeID
	docs    []string
	current int
	closed  bool
}

var _ port.TabContainer = (*TabSet)(nil)

// TabCount returns the number of open tabs.
func (t *TabSet) TabCount() int { return len(t.docs) }

// Documents returns the open documents in tab order.
func (t *TabSet) Documents() []string { return append([]string(nil), t.docs...) }

// CurrentIndex returns the visible tab, or -1 when only the placeholder shows.
func (t *TabSet) CurrentIndex() int {
	if len(t.docs) == 0 {
		return -1
	}
	return t.current
}

// CurrentDocument returns the name of the visible document.
func (t *TabSet) CurrentDocument() string {
	if len(t.docs) == 0 {
		return port.UntitledDocument
	}
	return t.docs[t.current]
}

// Select makes the tab at index current.
func (t *TabSet) Select(index int) error {
	if index < 0 || index >= len(t.docs) {
		return fmt.Errorf("select tab %d of %d: %w", index, len(t.docs), ErrTabOutOfRange)
	}
	t.current = index
	return nil
}

// OpenFile opens path in a new tab, or focuses the tab already showing it.
func (t *TabSet) OpenFile(ctx context.Context, path string) error {
	if t.closed {
		return ErrContainerClosed
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("open: empty path")
	}
	for i, doc := range t.docs {
		if doc == path {
			t.current = i
			return nil
		}
	}
	t.docs = append(t.docs, path)
	t.current = len(t.docs) - 1

	logging.FromContext(ctx).Debug().
		Str("pane_id", string(t.paneID)).
		Str("path", path).
		Msg("document opened")
	return nil
}

// TransferTabTo moves the tab at index into dst, which must be a TabSet.
func (t *TabSet) TransferTabTo(ctx context.Context, dst port.TabContainer, index int) error {
	target, ok := dst.(*TabSet)
	if !ok {
		return fmt.Errorf("transfer to %T: unsupported container", dst)
	}
	if t.closed || target.closed {
		return ErrContainerClosed
	}
	if index < 0 || index >= len(t.docs) {
		return fmt.Errorf("transfer tab %d of %d: %w", index, len(t.docs), ErrTabOutOfRange)
	}

	doc := t.docs[index]
	t.docs = append(t.docs[:index], t.docs[index+1:]...)
	if t.current > index || t.current >= len(t.docs) {
		t.current = max(t.current-1, 0)
	}

	if err := target.OpenFile(ctx, doc); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().
		Str("from_pane", string(t.paneID)).
		Str("to_pane", string(target.paneID)).
		Str("path", doc).
		Msg("tab transferred")
	return nil
}

// ResetEmpty drops every tab.
func (t *TabSet) ResetEmpty(context.Context) error {
	if t.closed {
		return ErrContainerClosed
	}
	t.docs = nil
	t.current = 0
	return nil
}

// Close releases the container.
func (t *TabSet) Close(context.Context) error {
	t.closed = true
	t.docs = nil
	return nil
}

// Closed reports whether Close was called.
func (t *TabSet) Closed() bool { return t.closed }

// TabLabel is the short name shown in a tab title.
func TabLabel(doc string) string {
	if doc == port.UntitledDocument {
		return doc
	}
	return filepath.Base(doc)
}

// TabSetFactory creates TabSets for new panes.
type TabSetFactory struct{}

var _ port.TabContainerFactory = TabSetFactory{}

// NewTabContainer creates an empty TabSet for paneID.
func (TabSetFactory) NewTabContainer(_ context.Context, paneID entity.NodeID) (port.TabContainer, error) {
	return &TabSet{paneID: paneID}, nil
}
