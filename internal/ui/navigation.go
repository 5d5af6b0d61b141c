package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode == ModePanel {
		return m.handlePanelKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Home):
		if m.strip.MoveFocusHome() {
			events.Tab.Focus(m.strip.Cursor)
		}
	case key.Matches(keyMsg, m.keys.End):
		if m.strip.MoveFocusEnd() {
			events.Tab.Focus(m.strip.Cursor)
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.selectFocused()
	case key.Matches(keyMsg, m.keys.StepNext):
		m.step(1)
	case key.Matches(keyMsg, m.keys.StepPrev):
		m.step(-1)
	case key.Matches(keyMsg, m.keys.MoveLeft):
		m.reorderFocused(-1)
	case key.Matches(keyMsg, m.keys.MoveRight):
		m.reorderFocused(1)
	case key.Matches(keyMsg, m.keys.Menu):
		return m.openMenuForFocused()
	case key.Matches(keyMsg, m.keys.Insert):
		return m.openPagePrompt(m.strip.Target())
	case key.Matches(keyMsg, m.keys.Jump):
		m.startJump()
	case key.Matches(keyMsg, m.keys.Toggle):
		return m.enterPanel()
	case key.Matches(keyMsg, m.keys.Back):
		m.errMsg = ""
		m.forceClearInfo()
	}
	return nil
}

func (m *Model) handlePanelKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return tea.Quit
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Back):
		m.leavePanel()
		return nil
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDn):
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return cmd
	}
	return m.forwardToContent(msg)
}

func (m *Model) moveFocus(delta int) {
	if m.strip.MoveFocus(delta) {
		events.Tab.Focus(m.strip.Cursor)
	}
}

// selectFocused activates the focused tab, falling back to the selected one.
func (m *Model) selectFocused() bool {
	return m.store.SelectTab(m.strip.Target())
}

func (m *Model) step(delta int) {
	var moved bool
	direction := "next"
	if delta < 0 {
		direction = "prev"
		moved = m.store.GoToPrev()
	} else {
		moved = m.store.GoToNext()
	}
	events.Tab.Step(direction, moved)
	m.strip.FocusSelected()
}

func (m *Model) reorderFocused(delta int) bool {
	from := m.strip.Cursor
	return m.store.ReorderTabs(from, from+delta)
}

func (m *Model) enterPanel() tea.Cmd {
	m.mode = ModePanel
	if f, ok := m.store.Selected().Content.(Focuser); ok {
		return f.Focus()
	}
	return nil
}

func (m *Model) leavePanel() {
	if f, ok := m.store.Selected().Content.(Focuser); ok {
		f.Blur()
	}
	m.mode = ModeStrip
	m.strip.FocusSelected()
}

func (m *Model) startJump() {
	m.returnMode = m.mode
	m.strip.StartJump()
	m.mode = ModeJump
	m.filterCursorDirty = true
	events.Jump.Start(m.strip.Cursor)
}
