package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Tab             *lipgloss.Style
	TabActive       *lipgloss.Style
	TabFocused      *lipgloss.Style
	TabDragging     *lipgloss.Style
	TabMatch        *lipgloss.Style
	InsertSlot      *lipgloss.Style
	AddPage         *lipgloss.Style
	MenuItem        *lipgloss.Style
	MenuSelected    *lipgloss.Style
	MenuDanger      *lipgloss.Style
	Modal           *lipgloss.Style
	ModalTitle      *lipgloss.Style
	PanelTitle      *lipgloss.Style
	Error           *lipgloss.Style
	Info            *lipgloss.Style
	Footer          *lipgloss.Style
	FilterPrompt    *lipgloss.Style
	Filter          *lipgloss.Style
	Cursor          *lipgloss.Style
	ScrollIndicator *lipgloss.Style
}

var defaultStyles = Styles{
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	TabActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	TabFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
	),
	TabDragging: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	TabMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	InsertSlot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	AddPage: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
	),
	MenuSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	MenuDanger: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("236")),
	),
	Modal: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	ModalTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	ScrollIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
