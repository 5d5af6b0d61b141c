package state

// MoveFocus moves focus by delta, wrapping at both ends.
func (s *Strip) MoveFocus(delta int) bool {
	n := len(s.Items)
	if n == 0 {
		s.Cursor = 0
		return false
	}
	old := s.Cursor
	s.Cursor = ((s.Cursor+delta)%n + n) % n
	return old != s.Cursor
}

// MoveFocusHome moves focus to the first entry.
func (s *Strip) MoveFocusHome() bool {
	if len(s.Items) == 0 {
		s.Cursor = 0
		return false
	}
	old := s.Cursor
	s.Cursor = 0
	return old != s.Cursor
}

// MoveFocusEnd moves focus to the last entry.
func (s *Strip) MoveFocusEnd() bool {
	n := len(s.Items)
	if n == 0 {
		s.Cursor = 0
		return false
	}
	old := s.Cursor
	s.Cursor = n - 1
	return old != s.Cursor
}

// Focus moves focus to the entry with the given id.
func (s *Strip) Focus(id string) bool {
	idx := s.IndexOf(id)
	if idx < 0 {
		return false
	}
	s.Cursor = idx
	return true
}

// Focused returns the focused entry.
func (s *Strip) Focused() (Entry, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return Entry{}, false
	}
	return s.Items[s.Cursor], true
}

// EnsureCursorVisible adjusts the horizontal offset so the focused entry
// fits in avail cells. widths holds the rendered cell width of each entry.
func (s *Strip) EnsureCursorVisible(widths []int, avail int) {
	s.clampCursor()
	if len(s.Items) == 0 || len(widths) != len(s.Items) || avail <= 0 {
		s.ViewportOffset = 0
		return
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
		return
	}
	for s.ViewportOffset < s.Cursor {
		used := 0
		for i := s.ViewportOffset; i <= s.Cursor; i++ {
			used += widths[i]
		}
		if used <= avail {
			break
		}
		s.ViewportOffset++
	}
}
