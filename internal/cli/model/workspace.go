// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/zone"
	"github.com/bnema/splitview/internal/logging"
	"github.com/bnema/splitview/internal/ui/termhost"
)

const (
	headerHeight = 1
	statusHeight = 1

	// shareStep is how much grow and shrink move a splitter edge.
	shareStep = 0.05
)

// WorkspaceModel is the Bubble Tea model for the interactive split view.
type WorkspaceModel struct {
	// UI components
	help     help.Model
	keys     styles.WorkspaceKeyMap
	renderer *termhost.Renderer
	theme    *styles.Theme

	// State
	width  int
	height int
	status string
	err    error
	press  *pressState
	events *eventLog

	// Dependencies
	ctx        context.Context
	manager    *usecase.SplitViewManager
	host       *termhost.Host
	overlay    *termhost.Overlay
	drag       *usecase.DragMachine
	snapshotUC *usecase.SnapshotLayoutUseCase
	windowID   entity.WindowID
	autoSave   bool
	startup    *logging.StartupTrace
}

// pressState tracks a left button held down inside the pane area.
type pressState struct {
	origin   entity.Point
	payload  entity.DropPayload
	dragging bool
}

// eventLog keeps the latest layout event for the status bar.
type eventLog struct {
	last  entity.LayoutEvent
	count int
}

func (l *eventLog) record(_ context.Context, ev entity.LayoutEvent) {
	l.last = ev
	l.count++
}

// WorkspaceModelConfig holds the collaborators of the workspace model.
type WorkspaceModelConfig struct {
	Manager    *usecase.SplitViewManager
	Host       *termhost.Host
	Overlay    *termhost.Overlay
	SnapshotUC *usecase.SnapshotLayoutUseCase
	WindowID   entity.WindowID
	AutoSave   bool
	Startup    *logging.StartupTrace
	// ZoneMargin is the drop zone edge band; zero uses the default.
	ZoneMargin float64
}

// NewWorkspaceModel creates the workspace model. Manager and Host must mirror
// each other: the host is the manager's SplitterHost.
func NewWorkspaceModel(ctx context.Context, theme *styles.Theme, cfg WorkspaceModelConfig) (WorkspaceModel, error) {
	if cfg.Manager == nil || cfg.Host == nil {
		return WorkspaceModel{}, errors.New("workspace needs a manager and a host")
	}
	overlay := cfg.Overlay
	if overlay == nil {
		overlay = &termhost.Overlay{}
	}

	drag, err := usecase.NewDragMachine(usecase.DragMachineDeps{
		Geometry: cfg.Host,
		Overlay:  overlay,
		Detector: zone.NewDetector(cfg.ZoneMargin),
		Target:   cfg.Manager,
	})
	if err != nil {
		return WorkspaceModel{}, fmt.Errorf("create drag machine: %w", err)
	}

	events := &eventLog{}
	cfg.Manager.Subscribe(port.LayoutObserverFunc(events.record))

	h := styles.NewStyledHelp(theme)
	return WorkspaceModel{
		help:       h,
		keys:       styles.DefaultWorkspaceKeyMap(),
		renderer:   &termhost.Renderer{Style: theme.PaneStyle()},
		theme:      theme,
		width:      80,
		height:     24,
		events:     events,
		ctx:        ctx,
		manager:    cfg.Manager,
		host:       cfg.Host,
		overlay:    overlay,
		drag:       drag,
		snapshotUC: cfg.SnapshotUC,
		windowID:   cfg.WindowID,
		autoSave:   cfg.AutoSave,
		startup:    cfg.Startup,
	}, nil
}

// Init implements tea.Model.
func (m WorkspaceModel) Init() tea.Cmd {
	return nil
}

// PolicyChangedMsg carries a reloaded layout policy into the event loop.
type PolicyChangedMsg struct {
	Policy usecase.LayoutPolicy
}

// layoutSavedMsg is sent when a layout snapshot has been stored.
type layoutSavedMsg struct {
	panes int
	err   error
}

func (m WorkspaceModel) saveLayout() tea.Msg {
	if m.snapshotUC == nil {
		return layoutSavedMsg{err: errors.New("layout storage not available")}
	}
	snap, err := m.snapshotUC.Execute(m.ctx, m.windowID, m.manager)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to save layout")
		return layoutSavedMsg{err: err}
	}
	return layoutSavedMsg{panes: snap.CountPanes()}
}

// Update implements tea.Model.
func (m WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeHost()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case PolicyChangedMsg:
		m.manager.SetPolicy(msg.Policy)
		m.setStatus("Layout policy reloaded")
		return m, nil

	case layoutSavedMsg:
		if msg.err != nil {
			m.setError(msg.err)
		} else {
			m.setStatus(fmt.Sprintf("Layout saved (%d panes)", msg.panes))
		}
		return m, nil
	}

	return m, nil
}

func (m WorkspaceModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.manager.ActivePaneID()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.autoSave {
			return m, tea.Sequence(m.saveLayout, tea.Quit)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.drag.State() != usecase.DragIdle {
			if _, err := m.drag.Handle(m.ctx, usecase.DragEvent{Phase: usecase.DragCancel}); err != nil {
				m.setError(err)
				return m, nil
			}
			m.setStatus("Drag cancelled")
		}
		m.press = nil
		return m, nil

	case key.Matches(msg, m.keys.SplitRight):
		m.split(active, entity.ZoneRight)
		return m, nil

	case key.Matches(msg, m.keys.SplitDown):
		m.split(active, entity.ZoneBottom)
		return m, nil

	case key.Matches(msg, m.keys.Close):
		removed, err := m.manager.ClosePane(m.ctx, active)
		switch {
		case err != nil:
			m.setError(err)
		case removed:
			m.setStatus(fmt.Sprintf("Closed %s", active))
		default:
			m.setStatus("Last pane reset")
		}
		return m, nil

	case key.Matches(msg, m.keys.CloseOther):
		if n := m.manager.CloseAllSplits(m.ctx); n > 0 {
			m.setStatus(fmt.Sprintf("Closed %d other panes", n))
		} else {
			m.setStatus("No other panes")
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPane):
		m.cyclePane(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPane):
		m.cyclePane(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		if ts, ok := m.tabSet(active); ok && ts.TabCount() > 1 {
			if err := ts.Select((ts.CurrentIndex() + 1) % ts.TabCount()); err != nil {
				m.setError(err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Grow):
		m.resizeActive(shareStep)
		return m, nil

	case key.Matches(msg, m.keys.Shrink):
		m.resizeActive(-shareStep)
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m, m.saveLayout

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeHost()
		return m, nil
	}

	return m, nil
}

func (m WorkspaceModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	point := m.toPaneArea(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.press = m.pressAt(point)

	case tea.MouseActionMotion:
		if m.press == nil || m.press.payload.IsZero() {
			return m, nil
		}
		if !m.press.dragging {
			if _, err := m.drag.Handle(m.ctx, usecase.DragEvent{
				Phase:   usecase.DragStart,
				Pointer: m.press.origin,
				Payload: m.press.payload,
			}); err != nil {
				m.setError(err)
				m.press = nil
				return m, nil
			}
			m.press.dragging = true
		}
		if _, err := m.drag.Handle(m.ctx, usecase.DragEvent{Phase: usecase.DragMove, Pointer: point}); err != nil {
			m.setError(err)
		}

	case tea.MouseActionRelease:
		press := m.press
		m.press = nil
		if press == nil || !press.dragging {
			return m, nil
		}
		res, err := m.drag.Handle(m.ctx, usecase.DragEvent{Phase: usecase.DragRelease, Pointer: point})
		switch {
		case err != nil:
			m.setError(err)
		case res.Outcome == usecase.DragDropped:
			m.setStatus(fmt.Sprintf("Dropped on %s (%s)", res.PaneID, res.Zone))
		default:
			m.setStatus("Drop cancelled")
		}
	}

	return m, nil
}

// pressAt focuses the pane under point. A press on a tab label also selects
// the tab and arms a drag carrying it.
func (m WorkspaceModel) pressAt(point entity.Point) *pressState {
	paneID, bounds, ok := m.host.PaneAt(point)
	if !ok {
		return nil
	}
	m.manager.ActivatePane(m.ctx, paneID)

	ts, ok := m.tabSet(paneID)
	if !ok {
		return &pressState{origin: point}
	}
	idx, ok := termhost.TabAt(bounds, ts, point)
	if !ok {
		return &pressState{origin: point}
	}
	if err := ts.Select(idx); err != nil {
		logging.FromContext(m.ctx).Debug().Err(err).Int("index", idx).Msg("tab select failed")
	}
	return &pressState{origin: point, payload: entity.TabPayload(paneID, idx)}
}

func (m *WorkspaceModel) split(paneID entity.NodeID, z entity.Zone) {
	newID, err := m.manager.SplitPane(m.ctx, paneID, z, entity.DropPayload{})
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Split %s %s into %s", paneID, z, newID))
}

func (m *WorkspaceModel) cyclePane(step int) {
	panes := m.host.Panes()
	if len(panes) < 2 {
		return
	}
	idx := 0
	for i, id := range panes {
		if id == m.manager.ActivePaneID() {
			idx = i
			break
		}
	}
	next := (idx + step + len(panes)) % len(panes)
	m.manager.ActivatePane(m.ctx, panes[next])
}

// resizeActive moves delta of the parent splitter's space from the active
// pane's neighbor to the active pane.
func (m *WorkspaceModel) resizeActive(delta float64) {
	active := m.manager.ActivePaneID()
	node, ok := m.manager.Node(active)
	if !ok || node.IsRoot() {
		m.setStatus("Nothing to resize")
		return
	}
	parent, ok := m.manager.Node(node.Parent)
	if !ok {
		return
	}
	idx := parent.IndexOf(active)
	neighbor := idx + 1
	if neighbor >= len(parent.Children) {
		neighbor = idx - 1
	}

	shares := append([]float64(nil), parent.Shares...)
	shares[idx] += delta
	shares[neighbor] -= delta
	if shares[idx] <= 0 || shares[neighbor] <= 0 {
		m.setStatus("Pane at its size limit")
		return
	}
	if err := m.manager.SetShares(m.ctx, parent.ID, shares); err != nil {
		m.setError(err)
	}
}

func (m *WorkspaceModel) resizeHost() {
	h := m.height - headerHeight - statusHeight - lipgloss.Height(m.help.View(m.keys))
	if h < 0 {
		h = 0
	}
	m.host.Resize(m.width, h)
}

func (m *WorkspaceModel) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *WorkspaceModel) setError(err error) {
	m.err = err
	m.status = ""
}

// toPaneArea converts a terminal cell to pane area coordinates.
func (m WorkspaceModel) toPaneArea(x, y int) entity.Point {
	return entity.Point{X: float64(x), Y: float64(y - headerHeight)}
}

func (m WorkspaceModel) tabSet(paneID entity.NodeID) (*termhost.TabSet, bool) {
	c, ok := m.manager.Container(paneID)
	if !ok {
		return nil, false
	}
	ts, ok := c.(*termhost.TabSet)
	return ts, ok
}

func (m WorkspaceModel) lookupTabs(paneID entity.NodeID) (termhost.TabLister, bool) {
	ts, ok := m.tabSet(paneID)
	if !ok {
		return nil, false
	}
	return ts, true
}

// View implements tea.Model.
func (m WorkspaceModel) View() string {
	defer m.startup.Finish()

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	if body := m.renderer.Render(m.host, m.lookupTabs, m.manager.ActivePaneID(), m.overlay); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m WorkspaceModel) headerView() string {
	title := m.theme.Title.Render(styles.IconPane + " splitview")
	info := m.theme.Subtle.Render(fmt.Sprintf(" %s  %d panes", m.windowID, m.manager.PaneCount()))
	if m.drag.State() != usecase.DragIdle {
		info += m.theme.WarningStyle.Render("  dragging " + dragLabel(m.drag.Payload()))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(title + info)
}

func (m WorkspaceModel) statusView() string {
	line := m.status
	if m.err != nil {
		line = m.theme.ErrorStyle.Render(styles.IconX + " " + m.err.Error())
	} else if line == "" && m.events.count > 0 {
		line = describeEvent(m.events.last)
	}
	return m.theme.StatusBar.Width(m.width).MaxHeight(statusHeight).Render(line)
}

func dragLabel(p entity.DropPayload) string {
	switch p.Kind {
	case entity.PayloadFile:
		return termhost.TabLabel(p.FilePath)
	case entity.PayloadTab:
		if p.SourceTab != nil {
			return fmt.Sprintf("tab %d of %s", p.SourceTab.Index, p.SourceTab.PaneID)
		}
	}
	return string(p.Kind)
}

func describeEvent(ev entity.LayoutEvent) string {
	switch ev.Kind {
	case entity.EventPaneSplit:
		return fmt.Sprintf("%s split %s", ev.PaneID, ev.Zone)
	case entity.EventPaneClosed:
		return fmt.Sprintf("%s closed", ev.PaneID)
	case entity.EventPaneActivated:
		return fmt.Sprintf("%s active", ev.PaneID)
	case entity.EventStructureChanged:
		return fmt.Sprintf("%s %s", ev.NodeID, ev.Change)
	case entity.EventUnsplit:
		return fmt.Sprintf("%s fills the window", ev.PaneID)
	}
	return string(ev.Kind)
}
