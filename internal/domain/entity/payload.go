package entity

// PayloadKind identifies what is being dropped.
type PayloadKind string

const (
	PayloadFile PayloadKind = "file"
	PayloadTab  PayloadKind = "tab"
)

// TabRef points at a tab inside a pane's tab container.
type TabRef struct {
	PaneID NodeID `json:"pane_id"`
	Index  int    `json:"index"`
}

// DropPayload is what a drag carries to its drop target.
type DropPayload struct {
	Kind      PayloadKind `json:"kind"`
	FilePath  string      `json:"file_path,omitempty"`
	SourceTab *TabRef     `json:"source_tab,omitempty"`
}

// FilePayload builds a payload that opens path.
func FilePayload(path string) DropPayload {
	return DropPayload{Kind: PayloadFile, FilePath: path}
}

// TabPayload builds a payload that moves a tab out of paneID.
func TabPayload(paneID NodeID, index int) DropPayload {
	return DropPayload{Kind: PayloadTab, SourceTab: &TabRef{PaneID: paneID, Index: index}}
}

// IsZero reports whether the payload carries nothing to deliver.
func (p DropPayload) IsZero() bool {
	switch p.Kind {
	case PayloadFile:
		return p.FilePath == ""
	case PayloadTab:
		return p.SourceTab == nil
	default:
		return true
	}
}
