package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Home      key.Binding
	End       key.Binding
	Select    key.Binding
	StepPrev  key.Binding
	StepNext  key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Menu      key.Binding
	Insert    key.Binding
	Jump      key.Binding
	Toggle    key.Binding
	Back      key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Select:    key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
		StepPrev:  key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[", "prev step")),
		StepNext:  key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next step")),
		MoveLeft:  key.NewBinding(key.WithKeys("ctrl+left", "<"), key.WithHelp("ctrl+←", "move left")),
		MoveRight: key.NewBinding(key.WithKeys("ctrl+right", ">"), key.WithHelp("ctrl+→", "move right")),
		Menu:      key.NewBinding(key.WithKeys("m", "shift+f10"), key.WithHelp("m", "menu")),
		Insert:    key.NewBinding(key.WithKeys("+", "a"), key.WithHelp("+", "add after")),
		Jump:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "panel")),
		Back:      key.NewBinding(key.WithKeys("esc")),
		ScrollUp:  key.NewBinding(key.WithKeys("pgup")),
		ScrollDn:  key.NewBinding(key.WithKeys("pgdown")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.MoveRight, k.Menu, k.Insert, k.Jump, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Home, k.End, k.Select},
		{k.StepPrev, k.StepNext, k.MoveLeft, k.MoveRight},
		{k.Menu, k.Insert, k.Jump, k.Toggle, k.Quit},
	}
}
