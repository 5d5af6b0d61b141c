package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// StartJump opens the jump filter and remembers the focus to restore on cancel.
func (s *Strip) StartJump() {
	s.Jumping = true
	s.Filter = ""
	s.FilterCursor = 0
	s.LastCursor = s.Cursor
}

// CancelJump closes the jump filter and restores the previous focus.
func (s *Strip) CancelJump() {
	if s.LastCursor >= 0 && s.LastCursor < len(s.Items) {
		s.Cursor = s.LastCursor
	}
	s.endJump()
}

// AcceptJump closes the jump filter keeping the matched focus.
func (s *Strip) AcceptJump() (Entry, bool) {
	entry, ok := s.Focused()
	s.endJump()
	return entry, ok
}

func (s *Strip) endJump() {
	s.Jumping = false
	s.Filter = ""
	s.FilterCursor = 0
	s.LastCursor = -1
}

// SetFilter updates the jump query and moves focus to the best match.
// An empty query returns focus to where the jump started.
func (s *Strip) SetFilter(query string, cursor int) {
	s.Filter = query
	runes := []rune(s.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	s.FilterCursor = cursor
	if strings.TrimSpace(query) == "" {
		if s.LastCursor >= 0 && s.LastCursor < len(s.Items) {
			s.Cursor = s.LastCursor
		}
		return
	}
	if idx := BestMatchIndex(s.Items, query); idx >= 0 {
		s.Cursor = idx
	}
}

// Matches returns the entries matching the current query, keyed by id.
func (s *Strip) Matches() map[string]struct{} {
	if strings.TrimSpace(s.Filter) == "" {
		return nil
	}
	matched := FilterEntries(s.Items, s.Filter)
	out := make(map[string]struct{}, len(matched))
	for _, entry := range matched {
		out[entry.ID] = struct{}{}
	}
	return out
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (s *Strip) FilterCursorPos() int {
	runes := []rune(s.Filter)
	if s.FilterCursor < 0 {
		return 0
	}
	if s.FilterCursor > len(runes) {
		return len(runes)
	}
	return s.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (s *Strip) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	s.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (s *Strip) DeleteFilterRuneBackward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	s.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (s *Strip) DeleteFilterWordBackward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	s.SetFilter(string(updated), i)
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune backward.
func (s *Strip) MoveFilterCursorRuneBackward() bool {
	if s.FilterCursorPos() == 0 {
		return false
	}
	s.FilterCursor = s.FilterCursorPos() - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune forward.
func (s *Strip) MoveFilterCursorRuneForward() bool {
	pos := s.FilterCursorPos()
	if pos >= len([]rune(s.Filter)) {
		return false
	}
	s.FilterCursor = pos + 1
	return true
}

// FilterEntries returns entries matching the supplied query.
func FilterEntries(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneEntries(entries)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(entries))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Entry, 0, len(matches))
		for idx, entry := range entries {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, entry)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.ID), lower) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// BestMatchIndex returns the best index for the query among the entries,
// or -1 when nothing matches.
func BestMatchIndex(entries []Entry, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(entries) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, entry := range entries {
		if strings.EqualFold(entry.Label, trimmed) || strings.EqualFold(entry.ID, trimmed) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Label), lower) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(entries))
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(entries) {
		return -1
	}
	return best.OriginalIndex
}

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Label
	}
	return out
}
