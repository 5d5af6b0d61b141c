package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/logging"
	"github.com/atomicstack/stepform/internal/menu"
)

var (
	menuUp   = key.NewBinding(key.WithKeys("up", "k", "shift+tab"))
	menuDown = key.NewBinding(key.WithKeys("down", "j", "tab"))
	menuRun  = key.NewBinding(key.WithKeys("enter", " "))
)

// openContextMenu opens the per-tab menu at cell x, y and places it once
// against the current terminal size.
func (m *Model) openContextMenu(target string, x, y int) tea.Cmd {
	cm, err := menu.NewContextMenu(m.store, target, x, y)
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return nil
	}
	if m.mode != ModeMenu {
		m.returnMode = m.mode
	}
	m.contextMenu = cm
	m.mode = ModeMenu
	vw, vh := m.viewportSize()
	cm.Measure(vw, vh)
	return nil
}

func (m *Model) openMenuForFocused() tea.Cmd {
	entry, ok := m.strip.Focused()
	if !ok {
		return nil
	}
	m.renderStrip()
	x, y := 0, stripRow+1
	if region, ok := m.regions.Find(regionTab, entry.ID); ok {
		x = region.Rect.X
		y = region.Rect.Y + region.Rect.H
	}
	return m.openContextMenu(entry.ID, x, y)
}

func (m *Model) closeContextMenu(reason string) {
	if m.contextMenu == nil {
		return
	}
	m.contextMenu.Close(reason)
	m.contextMenu = nil
	m.mode = m.returnMode
	if m.mode == ModeMenu || m.mode == ModeModal {
		m.mode = ModeStrip
	}
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	cm := m.contextMenu
	if cm == nil {
		m.mode = ModeStrip
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.closeContextMenu("escape")
	case key.Matches(msg, menuUp):
		cm.MoveCursor(-1)
	case key.Matches(msg, menuDown):
		cm.MoveCursor(1)
	case key.Matches(msg, menuRun):
		if item, ok := cm.Current(); ok {
			return m.runMenuItem(item)
		}
	default:
		if node, ok := m.registry.ByHint(msg.String()); ok {
			return m.runMenuItem(node.Item)
		}
	}
	return nil
}

// handleMenuMouse treats any press outside the menu as a dismissal.
func (m *Model) handleMenuMouse(ev tea.MouseMsg) tea.Cmd {
	cm := m.contextMenu
	if cm == nil {
		m.mode = ModeStrip
		return nil
	}
	switch ev.Action {
	case tea.MouseActionMotion:
		if item, ok := cm.ItemAt(ev.X, ev.Y); ok {
			cm.SetCursor(item.ID)
		}
	case tea.MouseActionPress:
		if tea.MouseEvent(ev).IsWheel() {
			return nil
		}
		if !cm.Contains(ev.X, ev.Y) {
			m.closeContextMenu("outside")
			return nil
		}
		if item, ok := cm.ItemAt(ev.X, ev.Y); ok && ev.Button == tea.MouseButtonLeft {
			return m.runMenuItem(item)
		}
	}
	return nil
}

// runMenuItem closes the menu and dispatches the item's action on the bus.
func (m *Model) runMenuItem(item menu.Item) tea.Cmd {
	cm := m.contextMenu
	if cm == nil {
		return nil
	}
	ctx := menu.Context{Tabs: m.store, Target: cm.Target}
	m.closeContextMenu("action")
	m.errMsg = ""
	return m.bus.Dispatch(ctx, item)
}
