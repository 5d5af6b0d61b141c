package state

// Strip tracks keyboard focus and the jump filter over the tab strip.
// Focus is independent of the selected tab.
type Strip struct {
	Items          []Entry
	Selected       string
	Cursor         int
	Filter         string
	FilterCursor   int
	Jumping        bool
	LastCursor     int
	ViewportOffset int
}

// NewStrip constructs a Strip focused on the selected entry.
func NewStrip(entries []Entry, selected string) *Strip {
	s := &Strip{LastCursor: -1}
	s.UpdateItems(entries, selected)
	s.FocusSelected()
	return s
}

// IndexOf returns the index for a given entry identifier.
func (s *Strip) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, entry := range s.Items {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems refreshes the entries. Focus follows the focused entry's id
// when it is still present and is clamped otherwise.
func (s *Strip) UpdateItems(entries []Entry, selected string) {
	focused := ""
	if s.Cursor >= 0 && s.Cursor < len(s.Items) {
		focused = s.Items[s.Cursor].ID
	}
	s.Items = CloneEntries(entries)
	s.Selected = selected
	if idx := s.IndexOf(focused); idx >= 0 {
		s.Cursor = idx
		return
	}
	s.clampCursor()
}

func (s *Strip) clampCursor() {
	if len(s.Items) == 0 {
		s.Cursor = 0
		s.ViewportOffset = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.Items) {
		s.Cursor = len(s.Items) - 1
	}
	if s.ViewportOffset > len(s.Items)-1 {
		s.ViewportOffset = 0
	}
}
