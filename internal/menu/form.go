package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/logging/events"
)

// PagePrompt asks the UI to open the new page modal after an anchor tab.
type PagePrompt struct {
	Anchor      string
	AnchorLabel string
}

// PageForm collects the name of a page to insert.
type PageForm struct {
	input       textinput.Model
	anchor      string
	anchorLabel string
	err         string
	title       string
	help        string
}

// NewPageForm opens a focused, empty form for prompt.
func NewPageForm(prompt PagePrompt) *PageForm {
	ti := textinput.New()
	ti.Placeholder = "Page name"
	ti.CharLimit = 64
	ti.Focus()
	title := "Add Page"
	if label := strings.TrimSpace(prompt.AnchorLabel); label != "" {
		title = fmt.Sprintf("Add Page after %s", label)
	}
	events.Modal.Open(prompt.Anchor)
	return &PageForm{
		input:       ti,
		anchor:      prompt.Anchor,
		anchorLabel: prompt.AnchorLabel,
		title:       title,
		help:        "Press Enter to add. Esc to cancel.",
	}
}

// Value is the trimmed page name typed so far.
func (f *PageForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *PageForm) InputView() string { return f.input.View() }
func (f *PageForm) Error() string     { return f.err }
func (f *PageForm) Anchor() string    { return f.anchor }
func (f *PageForm) Title() string     { return f.title }
func (f *PageForm) Help() string      { return f.help }

// Update feeds a message to the form. done reports an accepted name,
// cancel a dismissed modal.
func (f *PageForm) Update(msg tea.Msg) (cmd tea.Cmd, done bool, cancel bool) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			f.err = ""
			return nil, false, false
		}
		switch m.Type {
		case tea.KeyEsc:
			events.Modal.Cancel(f.anchor, events.ModalReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if value == "" {
				f.err = "Page name required"
				events.Modal.Reject(f.anchor, events.ModalReasonEmpty)
				return nil, false, false
			}
			f.err = ""
			events.Modal.Submit(f.anchor, value)
			return nil, true, false
		}
	}

	updated, cmd := f.input.Update(msg)
	f.input = updated
	if f.Value() != "" {
		f.err = ""
	}
	return cmd, false, false
}
