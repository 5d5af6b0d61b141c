package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/logging/events"
)

// Updater is implemented by content that reacts to input while shown.
type Updater interface {
	Update(tea.Msg) tea.Cmd
}

// Resetter is implemented by content that holds state which is discarded
// when the content is unmounted.
type Resetter interface {
	Reset()
}

// Focuser is implemented by content that takes keyboard focus.
type Focuser interface {
	Focus() tea.Cmd
	Blur()
}

// forwardToContent passes msg to the selected tab's content.
func (m *Model) forwardToContent(msg tea.Msg) tea.Cmd {
	if u, ok := m.store.Selected().Content.(Updater); ok {
		return u.Update(msg)
	}
	return nil
}

// teardown unmounts the content of a tab that is no longer selected. Kept
// mounted content only loses focus.
func (m *Model) teardown(id string) {
	tab, ok := m.store.Tab(id)
	if !ok || tab.Content == nil {
		return
	}
	if f, ok := tab.Content.(Focuser); ok {
		f.Blur()
	}
	if m.mode == ModePanel {
		m.mode = ModeStrip
	}
	if m.keepMounted {
		return
	}
	if r, ok := tab.Content.(Resetter); ok {
		r.Reset()
		events.Content.Reset(id)
	}
}
