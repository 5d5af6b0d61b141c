package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/logging/events"
)

const (
	regionTab     = "tab"
	regionInsert  = "insert"
	regionAddPage = "add"
	regionPanel   = "panel"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	m.refreshRegions()
	switch ev.Action {
	case tea.MouseActionPress:
		return m.handleMousePress(ev)
	case tea.MouseActionMotion:
		m.handleMouseMotion(ev)
	case tea.MouseActionRelease:
		m.handleMouseRelease(ev)
	}
	return nil
}

func (m *Model) handleMousePress(ev tea.MouseMsg) tea.Cmd {
	if tea.MouseEvent(ev).IsWheel() {
		if _, ok := m.regions.HitKind(regionPanel, ev.X, ev.Y); ok {
			var cmd tea.Cmd
			m.panel, cmd = m.panel.Update(ev)
			return cmd
		}
		return nil
	}
	region, ok := m.regions.Hit(ev.X, ev.Y)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonRight:
		if region.Kind == regionTab {
			m.sensor.Cancel()
			return m.openContextMenu(region.ID, ev.X, ev.Y)
		}
	case tea.MouseButtonLeft:
		switch region.Kind {
		case regionTab:
			m.sensor.Press(region.ID, ev.X, ev.Y)
		case regionInsert:
			return m.openPagePrompt(region.ID)
		case regionAddPage:
			return addPageStub
		}
	}
	return nil
}

func (m *Model) handleMouseMotion(ev tea.MouseMsg) {
	if !m.sensor.Pressed() {
		return
	}
	if m.sensor.Move(ev.X, ev.Y) {
		events.Drag.Start(m.sensor.Active(), ev.X, ev.Y)
	}
	m.dragOver = ""
	if m.sensor.Dragging() {
		if region, ok := m.regions.HitKind(regionTab, ev.X, ev.Y); ok {
			m.dragOver = region.ID
		}
	}
}

// handleMouseRelease ends a gesture: a drag reorders, anything shorter is a
// click that selects the pressed tab.
func (m *Model) handleMouseRelease(ev tea.MouseMsg) {
	over := ""
	if region, ok := m.regions.HitKind(regionTab, ev.X, ev.Y); ok {
		over = region.ID
	}
	m.dragOver = ""
	res, ok := m.sensor.Release(over)
	if !ok {
		return
	}
	if !res.Dragged {
		if m.store.SelectTab(res.Active) {
			m.strip.Focus(res.Active)
		}
		return
	}
	if res.Over == "" || res.Over == res.Active {
		events.Drag.Cancel(res.Active)
		return
	}
	events.Drag.Drop(res.Active, res.Over)
	m.store.ReorderTabs(m.store.IndexOf(res.Active), m.store.IndexOf(res.Over))
}
