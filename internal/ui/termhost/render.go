package termhost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
)

// TabLister exposes what the renderer draws in a pane title row.
type TabLister interface {
	Documents() []string
	CurrentIndex() int
}

// Style holds the colors used to draw panes.
type Style struct {
	Border       lipgloss.Color
	ActiveBorder lipgloss.Color
	DropZone     lipgloss.Color
	Text         lipgloss.Color
	Muted        lipgloss.Color
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
}

// DefaultStyle returns the dark palette.
func DefaultStyle() Style {
	return Style{
		Border:       lipgloss.Color("#333333"),
		ActiveBorder: lipgloss.Color("#4ade80"),
		DropZone:     lipgloss.Color("#fbbf24"),
		Text:         lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#909090"),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0a0a0b")).
			Background(lipgloss.Color("#4ade80")).
			Bold(true),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#909090")),
	}
}

// Renderer draws a Host's layout as a grid of bordered panes.
type Renderer struct {
	Style Style
}

// NewRenderer creates a renderer with the default style.
func NewRenderer() *Renderer {
	return &Renderer{Style: DefaultStyle()}
}

// Render draws every pane of host. tabs resolves a pane's tab list; panes it
// does not know show the untitled placeholder. overlay may be nil.
func (r *Renderer) Render(
	host *Host,
	tabs func(entity.NodeID) (TabLister, bool),
	active entity.NodeID,
	overlay *Overlay,
) string {
	host.layout()
	vp := host.Viewport()
	if vp.Empty() || host.root == entity.NoNode {
		return ""
	}
	dropPane, dropZone, dropping := overlay.Target()
	if !dropping {
		dropPane = entity.NoNode
	}
	return r.renderNode(host, host.root, vp, tabs, active, dropPane, dropZone, make(map[entity.NodeID]bool))
}

func (r *Renderer) renderNode(
	host *Host,
	id entity.NodeID,
	bounds entity.Rect,
	tabs func(entity.NodeID) (TabLister, bool),
	active, dropPane entity.NodeID,
	dropZone entity.Zone,
	seen map[entity.NodeID]bool,
) string {
	box, isSplitter := host.splitters[id]
	if !isSplitter || seen[id] {
		var lister TabLister
		if tabs != nil {
			lister, _ = tabs(id)
		}
		zone := entity.ZoneNone
		if id == dropPane {
			zone = dropZone
		}
		return r.renderPane(bounds, lister, id == active, zone)
	}
	seen[id] = true

	rects := splitRect(bounds, box.orientation, box.shares)
	parts := make([]string, 0, len(rects))
	for i, rect := range rects {
		if rect.W <= 0 || rect.H <= 0 {
			continue
		}
		parts = append(parts, r.renderNode(host, box.children[i], rect, tabs, active, dropPane, dropZone, seen))
	}
	if box.orientation == entity.OrientationVertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) renderPane(bounds entity.Rect, tabs TabLister, active bool, zone entity.Zone) string {
	w, h := int(bounds.W), int(bounds.H)
	if w < 2 || h < 2 {
		return lipgloss.NewStyle().Width(w).Height(h).Render("")
	}
	innerW, innerH := w-2, h-2

	lines := []string{r.titleRow(tabs)}
	switch {
	case zone != entity.ZoneNone:
		lines = append(lines, lipgloss.NewStyle().Foreground(r.Style.DropZone).Render(zoneHint(zone)))
	case tabs != nil && tabs.CurrentIndex() >= 0:
		docs := tabs.Documents()
		lines = append(lines, lipgloss.NewStyle().Foreground(r.Style.Text).Render(docs[tabs.CurrentIndex()]))
	default:
		lines = append(lines, lipgloss.NewStyle().Foreground(r.Style.Muted).Render("empty"))
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	clip := lipgloss.NewStyle().MaxWidth(innerW)
	for i := range lines {
		lines[i] = clip.Render(lines[i])
	}

	border := r.Style.Border
	if active {
		border = r.Style.ActiveBorder
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(innerW).
		Height(innerH).
		MaxHeight(h)

	switch zone {
	case entity.ZoneLeft:
		style = style.BorderLeftForeground(r.Style.DropZone)
	case entity.ZoneRight:
		style = style.BorderRightForeground(r.Style.DropZone)
	case entity.ZoneTop:
		style = style.BorderTopForeground(r.Style.DropZone)
	case entity.ZoneBottom:
		style = style.BorderBottomForeground(r.Style.DropZone)
	case entity.ZoneCenter:
		style = style.BorderForeground(r.Style.DropZone)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) titleRow(tabs TabLister) string {
	docs, current := tabDocuments(tabs)
	var b strings.Builder
	for i, doc := range docs {
		cell := " " + TabLabel(doc) + " "
		if i == current {
			b.WriteString(r.Style.TabActive.Render(cell))
		} else {
			b.WriteString(r.Style.TabInactive.Render(cell))
		}
	}
	return b.String()
}

// TabAt returns the index of the tab whose title lies under point, given the
// pane bounds it was drawn in.
func TabAt(bounds entity.Rect, tabs TabLister, point entity.Point) (int, bool) {
	if tabs == nil || point.Y != bounds.Y+1 {
		return 0, false
	}
	docs := tabs.Documents()
	x := bounds.X + 1
	right := bounds.X + bounds.W - 1
	for i, doc := range docs {
		next := x + float64(lipgloss.Width(TabLabel(doc))+2)
		if point.X >= x && point.X < next && point.X < right {
			return i, true
		}
		x = next
	}
	return 0, false
}

func tabDocuments(tabs TabLister) ([]string, int) {
	if tabs == nil {
		return []string{port.UntitledDocument}, 0
	}
	docs := tabs.Documents()
	if len(docs) == 0 {
		return []string{port.UntitledDocument}, 0
	}
	return docs, tabs.CurrentIndex()
}

func zoneHint(zone entity.Zone) string {
	switch zone {
	case entity.ZoneLeft:
		return "drop: split left"
	case entity.ZoneRight:
		return "drop: split right"
	case entity.ZoneTop:
		return "drop: split up"
	case entity.ZoneBottom:
		return "drop: split down"
	default:
		return "drop: open here"
	}
}
