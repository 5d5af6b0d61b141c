package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/logging/events"
	"github.com/atomicstack/stepform/internal/menu"
)

// handleActionResultMsg shows action errors and unavailable notices always,
// plain confirmations only in verbose mode.
func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" && (result.Unavailable || m.verbose) {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}
