package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/content"
	"github.com/atomicstack/stepform/internal/pointer"
	"github.com/atomicstack/stepform/internal/state"
)

func newTestStore(t *testing.T, tabs ...state.Tab) *state.Store {
	t.Helper()
	if len(tabs) == 0 {
		tabs = []state.Tab{
			{ID: "a", Label: "Info", Type: state.PageInfo, Content: content.NewText("info page")},
			{ID: "b", Label: "Details", Type: state.PageDetails, Content: content.NewText("details page")},
			{ID: "c", Label: "Other", Type: state.PageOther, Content: content.NewText("other page")},
		}
	}
	store, err := state.NewStore(tabs, "")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func newTestModel(t *testing.T, store *state.Store, opts Options) *Model {
	t.Helper()
	if opts.Width == 0 {
		opts.Width = 120
	}
	if opts.Height == 0 {
		opts.Height = 30
	}
	m, err := NewModel(store, opts)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	return NewHarness(newTestModel(t, newTestStore(t), opts))
}

func tabIDs(s *state.Store) []string {
	out := make([]string, 0, s.Len())
	for _, tab := range s.Tabs() {
		out = append(out, tab.ID)
	}
	return out
}

func regionFor(t *testing.T, m *Model, kind, id string) pointer.Rect {
	t.Helper()
	m.refreshRegions()
	region, ok := m.regions.Find(kind, id)
	if !ok {
		t.Fatalf("no %s region for %q", kind, id)
	}
	return region.Rect
}

func click(h *Harness, x, y int) {
	h.Mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y)
	h.Mouse(tea.MouseActionRelease, tea.MouseButtonNone, x, y)
}

func equalIDs(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
