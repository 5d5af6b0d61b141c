package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/backend"
	"github.com/atomicstack/stepform/internal/logging"
	"github.com/atomicstack/stepform/internal/logging/events"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent reloads every tab showing the changed file.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.WatchErr != nil {
		m.backendLastErr = res.WatchErr.Error()
		events.Content.WatchError(res.WatchErr)
		return
	}
	m.backendLastErr = ""
	for _, err := range res.Failed {
		logging.Error(err)
	}
	if len(res.Reloaded) > 0 {
		events.Content.Reload(evt.Path, res.Reloaded)
	}
}
