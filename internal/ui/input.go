package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/stepform/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.strip.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleJumpKey edits the jump query. Focus follows the best match as the
// query changes; enter selects it and esc puts focus back.
func (m *Model) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	s := m.strip
	before := s.FilterCursorPos()
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		events.Jump.Cancel(s.Filter)
		s.CancelJump()
		m.endJump()
		return nil
	case tea.KeyEnter:
		if entry, ok := s.AcceptJump(); ok {
			m.store.SelectTab(entry.ID)
		}
		m.endJump()
		return nil
	case tea.KeyBackspace:
		if !s.DeleteFilterRuneBackward() {
			return nil
		}
	case tea.KeyCtrlW:
		if !s.DeleteFilterWordBackward() {
			return nil
		}
	case tea.KeyCtrlU:
		if s.Filter == "" {
			return nil
		}
		s.SetFilter("", 0)
	case tea.KeyLeft:
		s.MoveFilterCursorRuneBackward()
		m.noteFilterCursorChange(before)
		return nil
	case tea.KeyRight:
		s.MoveFilterCursorRuneForward()
		m.noteFilterCursorChange(before)
		return nil
	case tea.KeySpace:
		s.InsertFilterText(" ")
	case tea.KeyRunes:
		if !s.InsertFilterText(string(msg.Runes)) {
			return nil
		}
	default:
		return nil
	}
	m.noteFilterCursorChange(before)
	events.Jump.Query(s.Filter, s.Cursor)
	return nil
}

func (m *Model) endJump() {
	m.mode = m.returnMode
	if m.mode == ModeJump {
		m.mode = ModeStrip
	}
	m.filterCursorDirty = true
}

// jumpPrompt renders the jump query with its cursor.
func (m *Model) jumpPrompt() string {
	s := m.strip
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "jump: "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
