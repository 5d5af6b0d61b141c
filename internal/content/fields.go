package content

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	fieldLabelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	fieldActiveLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	fieldHelpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Fields is a small form of labelled single-line inputs. Its values live in
// the inputs, so they survive only as long as the Fields value does.
type Fields struct {
	title   string
	labels  []string
	inputs  []textinput.Model
	active  int
	focused bool
}

// NewFields builds a form with one input per label.
func NewFields(title string, labels ...string) *Fields {
	f := &Fields{title: title, labels: append([]string(nil), labels...)}
	f.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = strings.ToLower(label)
		ti.CharLimit = 128
		ti.Prompt = ""
		f.inputs[i] = ti
	}
	return f
}

// Values returns the current input values keyed by label.
func (f *Fields) Values() map[string]string {
	out := make(map[string]string, len(f.inputs))
	for i, in := range f.inputs {
		out[f.labels[i]] = in.Value()
	}
	return out
}

// SetValue fills the input for label; unknown labels are ignored.
func (f *Fields) SetValue(label, value string) {
	for i, l := range f.labels {
		if l == label {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

func (f *Fields) Focused() bool { return f.focused }

// Focus gives keyboard input to the active field.
func (f *Fields) Focus() tea.Cmd {
	f.focused = true
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[f.active].Focus()
}

// Blur releases keyboard input.
func (f *Fields) Blur() {
	f.focused = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Reset clears every value, as if the page had been created anew.
func (f *Fields) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.active = 0
	f.focused = false
}

// Update routes key presses to the active field. up/down and enter move
// between fields.
func (f *Fields) Update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		if !f.focused {
			return nil
		}
		switch key.String() {
		case "up", "shift+tab":
			return f.move(-1)
		case "down", "enter":
			return f.move(1)
		}
	}
	var cmd tea.Cmd
	f.inputs[f.active], cmd = f.inputs[f.active].Update(msg)
	return cmd
}

func (f *Fields) move(delta int) tea.Cmd {
	n := len(f.inputs)
	f.inputs[f.active].Blur()
	f.active = (f.active + delta + n) % n
	if !f.focused {
		return nil
	}
	return f.inputs[f.active].Focus()
}

// Render draws one "label: value" row per field.
func (f *Fields) Render(width, height int) string {
	lines := make([]string, 0, len(f.inputs)+3)
	if f.title != "" {
		lines = append(lines, f.title, "")
	}
	labelWidth := 0
	for _, label := range f.labels {
		if w := lipgloss.Width(label); w > labelWidth {
			labelWidth = w
		}
	}
	for i, in := range f.inputs {
		style := fieldLabelStyle
		if f.focused && i == f.active {
			style = fieldActiveLabelStyle
		}
		label := style.Render(padRight(f.labels[i], labelWidth) + " :")
		if width > 0 {
			in.Width = max(1, width-labelWidth-4)
		}
		lines = append(lines, label+" "+in.View())
	}
	if f.focused {
		lines = append(lines, "", fieldHelpStyle.Render("↑/↓ move between fields · tab back to tabs"))
	}
	return clip(strings.Join(lines, "\n"), height)
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
