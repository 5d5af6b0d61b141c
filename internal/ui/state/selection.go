package state

// IsSelected reports whether the given id is the selected tab.
func (s *Strip) IsSelected(id string) bool {
	return id != "" && s.Selected == id
}

// SelectedIndex returns the position of the selected tab or -1.
func (s *Strip) SelectedIndex() int {
	return s.IndexOf(s.Selected)
}

// FocusSelected moves focus back onto the selected tab, which is the only
// tab reachable when focus re-enters the strip.
func (s *Strip) FocusSelected() bool {
	idx := s.SelectedIndex()
	if idx < 0 {
		s.clampCursor()
		return false
	}
	s.Cursor = idx
	return true
}

// Target returns the id that activation applies to: the focused tab, or the
// selected tab when focus cannot be resolved.
func (s *Strip) Target() string {
	if entry, ok := s.Focused(); ok {
		return entry.ID
	}
	return s.Selected
}
