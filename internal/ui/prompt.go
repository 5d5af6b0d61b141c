package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/logging/events"
	"github.com/atomicstack/stepform/internal/menu"
)

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

type addPageStubMsg struct{}

// withPrompt centralises the common prompt flow: reset transient status and
// run the provided action. The action can return a promptResult to control
// follow-up behaviour (command to run, informational message, or error).
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		return nil
	}
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

// openPagePrompt asks for a page name to insert after anchor.
func (m *Model) openPagePrompt(anchor string) tea.Cmd {
	label := ""
	if tab, ok := m.store.Tab(anchor); ok {
		label = tab.Label
	}
	return func() tea.Msg {
		return menu.PagePrompt{Anchor: anchor, AnchorLabel: label}
	}
}

func (m *Model) handlePagePromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.PagePrompt)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		m.startPageForm(prompt)
		return promptResult{}
	})
}

func addPageStub() tea.Msg {
	return addPageStubMsg{}
}

func (m *Model) handleAddPageStubMsg(msg tea.Msg) tea.Cmd {
	return m.withPrompt(func() promptResult {
		events.Tab.AddPageStub()
		return promptResult{Info: "Add page is not available yet"}
	})
}
