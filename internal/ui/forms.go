package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/content"
	"github.com/atomicstack/stepform/internal/menu"
	"github.com/atomicstack/stepform/internal/state"
)

func (m *Model) handlePageForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.pageForm == nil {
		m.mode = ModeStrip
		return false, nil
	}
	cmd, done, cancel := m.pageForm.Update(msg)
	if cancel {
		m.closePageForm()
		return true, cmd
	}
	if done {
		name := m.pageForm.Value()
		anchor := m.pageForm.Anchor()
		m.closePageForm()
		m.store.AddTabAfter(anchor, state.NewTab{
			Label:   name,
			Type:    state.PageOther,
			Content: content.NewText(name),
		})
		if m.verbose {
			m.setInfo(fmt.Sprintf("Added %s", name))
		}
		return true, cmd
	}
	return true, cmd
}

func (m *Model) startPageForm(prompt menu.PagePrompt) {
	if m.mode != ModeModal && m.mode != ModeMenu {
		m.returnMode = m.mode
	}
	m.pageForm = menu.NewPageForm(prompt)
	m.mode = ModeModal
}

func (m *Model) closePageForm() {
	m.pageForm = nil
	m.mode = m.returnMode
	if m.mode == ModeModal || m.mode == ModeMenu {
		m.mode = ModeStrip
	}
}

// viewPageForm renders the modal box.
func (m *Model) viewPageForm() string {
	lines := []string{
		styles.ModalTitle.Render(m.pageForm.Title()),
		"",
		m.pageForm.InputView(),
	}
	if err := m.pageForm.Error(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	}
	lines = append(lines, "", styles.Footer.Render(m.pageForm.Help()))
	body := strings.Join(lines, "\n")
	width := 40
	if vw, _ := m.viewportSize(); vw-4 < width {
		width = max(vw-4, 10)
	}
	return styles.Modal.Width(width).Render(body)
}
