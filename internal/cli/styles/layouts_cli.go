package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
)

// LayoutsCLIRenderer renders non-interactive output for the layout
// subcommands (e.g. `splitview layout list`, `show`, `delete`).
type LayoutsCLIRenderer struct {
	theme *Theme
}

func NewLayoutsCLIRenderer(theme *Theme) *LayoutsCLIRenderer {
	return &LayoutsCLIRenderer{theme: theme}
}

func (r *LayoutsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

func (r *LayoutsCLIRenderer) RenderList(items []repository.LayoutSummary, current entity.WindowID) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconPane), r.theme.Title.Render("Layouts")))
	b.WriteString("\n\n")
	for _, s := range items {
		b.WriteString(r.renderOne(s, s.WindowID == current))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: use `splitview layout show <window>` to inspect a tree."))
	return b.String()
}

func (r *LayoutsCLIRenderer) renderOne(s repository.LayoutSummary, isCurrent bool) string {
	status := " "
	if isCurrent {
		status = "●"
	}
	panes := r.theme.MutedBadge(fmt.Sprintf("%d panes", s.PaneCount))
	version := r.theme.MutedBadge(fmt.Sprintf("v%d", s.Version))
	updated := r.theme.Subtle.Render(RelativeTime(s.UpdatedAt))

	return fmt.Sprintf("%s %s  %s %s  %s",
		r.theme.Highlight.Render(status),
		r.theme.Highlight.Render(string(s.WindowID)),
		panes,
		version,
		updated,
	)
}

// RenderTree draws a stored layout as an indented tree.
func (r *LayoutsCLIRenderer) RenderTree(snap *entity.LayoutSnapshot) string {
	if snap == nil || snap.Root == nil {
		return r.theme.Subtle.Render("Layout is empty.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		r.theme.Highlight.Render(IconTree),
		r.theme.Title.Render(string(snap.WindowID)),
		r.theme.Subtle.Render(fmt.Sprintf("%d panes, saved %s", snap.CountPanes(), RelativeTime(snap.SavedAt))),
	))
	r.renderNode(&b, snap.Root, snap.ActivePaneID, "", true)
	return strings.TrimRight(b.String(), "\n")
}

func (r *LayoutsCLIRenderer) renderNode(
	b *strings.Builder,
	n *entity.LayoutNodeSnapshot,
	active entity.NodeID,
	prefix string,
	last bool,
) {
	branch, next := "├─ ", "│  "
	if last {
		branch, next = "└─ ", "   "
	}
	b.WriteString(r.theme.Subtle.Render(prefix + branch))

	if n.Type == entity.SnapshotTypeSplitter {
		shares := make([]string, len(n.Shares))
		for i, s := range n.Shares {
			shares[i] = fmt.Sprintf("%.0f%%", s*100)
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			r.theme.Normal.Bold(true).Render(n.Orientation),
			r.theme.Subtle.Render("["+strings.Join(shares, " ")+"]"),
		))
		for i, c := range n.Children {
			r.renderNode(b, c, active, prefix+next, i == len(n.Children)-1)
		}
		return
	}

	doc := "untitled"
	tabs := 0
	if n.TabState != nil {
		if n.TabState.ActiveDocument != "" {
			doc = n.TabState.ActiveDocument
		}
		tabs = n.TabState.TabCount
	}
	label := r.theme.Normal.Render(doc)
	if n.ID == active {
		label = r.theme.Highlight.Render(doc)
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		r.theme.Subtle.Render(string(n.ID)),
		label,
		r.theme.MutedBadge(fmt.Sprintf("%d tabs", tabs)),
	))
}

func (r *LayoutsCLIRenderer) RenderDeleted(windowID entity.WindowID) string {
	return fmt.Sprintf("%s Layout %s deleted.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(string(windowID)),
	)
}

func (r *LayoutsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
