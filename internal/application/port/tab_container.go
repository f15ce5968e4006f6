package port

import (
	"context"

	"github.com/bnema/splitview/internal/domain/entity"
)

// UntitledDocument is the name a tab container shows for its empty document.
const UntitledDocument = "untitled"

// TabContainer is the externally owned tab widget behind a pane.
// The layout engine delegates to it and never inspects tab internals.
type TabContainer interface {
	// TabCount returns the number of open tabs.
	TabCount() int
	// CurrentDocument returns the name of the visible document.
	CurrentDocument() string
	// OpenFile opens path in a new tab and makes it current.
	OpenFile(ctx context.Context, path string) error
	// TransferTabTo moves the tab at index into dst.
	TransferTabTo(ctx context.Context, dst TabContainer, index int) error
	// ResetEmpty drops every tab and shows a single empty untitled document.
	ResetEmpty(ctx context.Context) error
	// Close releases the container once its pane is gone.
	Close(ctx context.Context) error
}

// TabContainerFactory creates the tab container for a new pane.
type TabContainerFactory interface {
	NewTabContainer(ctx context.Context, paneID entity.NodeID) (TabContainer, error)
}
