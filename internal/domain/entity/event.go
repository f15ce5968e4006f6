package entity

// LayoutEventKind identifies a structural-change notification.
type LayoutEventKind string

const (
	EventPaneSplit        LayoutEventKind = "pane_split"
	EventPaneClosed       LayoutEventKind = "pane_closed"
	EventPaneActivated    LayoutEventKind = "pane_activated"
	EventStructureChanged LayoutEventKind = "structure_changed"
	// EventUnsplit follows a mutation that left a split tree with one pane.
	EventUnsplit LayoutEventKind = "unsplit"
)

// StructureChange details what moved in a structure_changed event.
type StructureChange string

const (
	ChangeNodeAdded    StructureChange = "added"
	ChangeNodeRemoved  StructureChange = "removed"
	ChangeReordered    StructureChange = "reordered"
	ChangeSharesUpdate StructureChange = "resized"
)

// LayoutEvent is emitted after a mutation has fully completed.
type LayoutEvent struct {
	Kind LayoutEventKind

	// pane_split: ParentID is the splitter now holding PaneID (the new pane).
	// pane_closed: PaneID is the closed pane, Collapsed is true when it was
	// structurally removed and false when it was reset in place.
	// pane_activated: PaneID is the focus target.
	// structure_changed: NodeID and Change describe the affected node.
	// unsplit: PaneID is the pane that now fills the window.
	ParentID  NodeID
	PaneID    NodeID
	NodeID    NodeID
	Zone      Zone
	Collapsed bool
	Change    StructureChange
}
