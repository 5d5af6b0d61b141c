package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNoTabs         = errors.New("at least one tab is required")
	ErrEmptyID        = errors.New("tab id must not be empty")
	ErrDuplicateID    = errors.New("duplicate tab id")
	ErrUnknownTab     = errors.New("unknown tab")
	ErrNotImplemented = errors.New("not implemented")
)

// ChangeKind identifies the mutation reported to subscribers.
type ChangeKind int

const (
	ChangeSelect ChangeKind = iota
	ChangeReorder
	ChangeInsert
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSelect:
		return "select"
	case ChangeReorder:
		return "reorder"
	case ChangeInsert:
		return "insert"
	}
	return fmt.Sprintf("change(%d)", int(k))
}

// Change describes a completed mutation. From/To carry indices for reorders
// and the insert position (To) for inserts.
type Change struct {
	Kind ChangeKind
	ID   string
	From int
	To   int
}

// Option customises a Store at construction.
type Option func(*Store)

// WithIDGenerator overrides how ids for inserted tabs are produced.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// Store owns the ordered tab sequence and the selected tab id. It is not
// safe for concurrent use; the UI event loop is its only writer.
type Store struct {
	tabs     []Tab
	selected string
	newID    func() string

	subscribers map[int]func(Change)
	nextSub     int
}

// NewStore validates the initial tabs and selection. An empty initialID
// selects the first tab.
func NewStore(tabs []Tab, initialID string, opts ...Option) (*Store, error) {
	if len(tabs) == 0 {
		return nil, ErrNoTabs
	}
	seen := make(map[string]struct{}, len(tabs))
	for i, tab := range tabs {
		if strings.TrimSpace(tab.ID) == "" {
			return nil, fmt.Errorf("tab %d: %w", i, ErrEmptyID)
		}
		if _, dup := seen[tab.ID]; dup {
			return nil, fmt.Errorf("tab %q: %w", tab.ID, ErrDuplicateID)
		}
		seen[tab.ID] = struct{}{}
	}
	selected := tabs[0].ID
	if initialID != "" {
		if _, ok := seen[initialID]; !ok {
			return nil, fmt.Errorf("initial tab %q: %w", initialID, ErrUnknownTab)
		}
		selected = initialID
	}
	s := &Store{
		tabs:        cloneTabs(tabs),
		selected:    selected,
		newID:       defaultID,
		subscribers: make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func defaultID() string {
	return "tab-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Tabs returns a copy of the current sequence.
func (s *Store) Tabs() []Tab {
	return cloneTabs(s.tabs)
}

func (s *Store) Len() int {
	return len(s.tabs)
}

// Tab looks a tab up by id.
func (s *Store) Tab(id string) (Tab, bool) {
	idx := s.IndexOf(id)
	if idx < 0 {
		return Tab{}, false
	}
	return s.tabs[idx], true
}

// IndexOf returns the position of id, or -1.
func (s *Store) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, tab := range s.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) SelectedID() string {
	return s.selected
}

func (s *Store) SelectedIndex() int {
	return s.IndexOf(s.selected)
}

// Selected returns the selected tab record.
func (s *Store) Selected() Tab {
	tab, _ := s.Tab(s.selected)
	return tab
}

func (s *Store) CanGoPrev() bool {
	return s.SelectedIndex() > 0
}

func (s *Store) CanGoNext() bool {
	return s.SelectedIndex() < len(s.tabs)-1
}

// SelectTab selects id. Unknown ids are ignored and reported as false.
func (s *Store) SelectTab(id string) bool {
	idx := s.IndexOf(id)
	if idx < 0 {
		return false
	}
	if s.selected == id {
		return true
	}
	s.selected = id
	s.notify(Change{Kind: ChangeSelect, ID: id, From: -1, To: idx})
	return true
}

// GoToNext moves the selection one step right. There is no wraparound.
func (s *Store) GoToNext() bool {
	if !s.CanGoNext() {
		return false
	}
	return s.SelectTab(s.tabs[s.SelectedIndex()+1].ID)
}

// GoToPrev moves the selection one step left. There is no wraparound.
func (s *Store) GoToPrev() bool {
	if !s.CanGoPrev() {
		return false
	}
	return s.SelectTab(s.tabs[s.SelectedIndex()-1].ID)
}

// ReorderTabs moves the tab at from to position to. Out of range or equal
// indices leave the sequence untouched. Selection follows the id.
func (s *Store) ReorderTabs(from, to int) bool {
	n := len(s.tabs)
	if from < 0 || to < 0 || from >= n || to >= n || from == to {
		return false
	}
	id := s.tabs[from].ID
	s.tabs = Move(s.tabs, from, to)
	s.notify(Change{Kind: ChangeReorder, ID: id, From: from, To: to})
	return true
}

// AddTabAfter inserts a new tab right after afterID, or at the end when
// afterID is unknown, and returns the generated id. Selection is unchanged.
func (s *Store) AddTabAfter(afterID string, tab NewTab) string {
	id := s.freshID()
	record := Tab{ID: id, Label: tab.Label, Type: tab.Type, Content: tab.Content}
	if record.Type == "" {
		record.Type = PageOther
	}
	pos := len(s.tabs)
	if idx := s.IndexOf(afterID); idx >= 0 {
		pos = idx + 1
	}
	next := make([]Tab, 0, len(s.tabs)+1)
	next = append(next, s.tabs[:pos]...)
	next = append(next, record)
	next = append(next, s.tabs[pos:]...)
	s.tabs = next
	s.notify(Change{Kind: ChangeInsert, ID: id, From: -1, To: pos})
	return id
}

func (s *Store) freshID() string {
	for attempt := 0; ; attempt++ {
		id := s.newID()
		if id != "" && s.IndexOf(id) < 0 {
			return id
		}
		if attempt >= 8 {
			// a generator stuck on used ids falls back to uuids
			s.newID = defaultID
		}
	}
}

// RenameTab is an extension point; it does not mutate yet.
func (s *Store) RenameTab(id, label string) error {
	if s.IndexOf(id) < 0 {
		return fmt.Errorf("rename %q: %w", id, ErrUnknownTab)
	}
	return fmt.Errorf("rename %q: %w", id, ErrNotImplemented)
}

// DuplicateTab is an extension point; it does not mutate yet.
func (s *Store) DuplicateTab(id string) (string, error) {
	if s.IndexOf(id) < 0 {
		return "", fmt.Errorf("duplicate %q: %w", id, ErrUnknownTab)
	}
	return "", fmt.Errorf("duplicate %q: %w", id, ErrNotImplemented)
}

// RemoveTab is an extension point; it does not mutate yet.
func (s *Store) RemoveTab(id string) error {
	if s.IndexOf(id) < 0 {
		return fmt.Errorf("remove %q: %w", id, ErrUnknownTab)
	}
	return fmt.Errorf("remove %q: %w", id, ErrNotImplemented)
}

// Subscribe registers fn for every completed mutation.
func (s *Store) Subscribe(fn func(Change)) func() {
	if fn == nil {
		return func() {}
	}
	if s.subscribers == nil {
		s.subscribers = make(map[int]func(Change))
	}
	key := s.nextSub
	s.nextSub++
	s.subscribers[key] = fn
	return func() { delete(s.subscribers, key) }
}

func (s *Store) notify(change Change) {
	for key := 0; key < s.nextSub; key++ {
		if fn, ok := s.subscribers[key]; ok {
			fn(change)
		}
	}
}
