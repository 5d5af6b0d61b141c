package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textContent string

func (t textContent) Render(int, int) string { return string(t) }

func newTestStore(t *testing.T, ids ...string) *Store {
	t.Helper()
	tabs := make([]Tab, len(ids))
	for i, id := range ids {
		tabs[i] = Tab{ID: id, Label: id, Type: PageInfo, Content: textContent(id)}
	}
	counter := 0
	s, err := NewStore(tabs, "", WithIDGenerator(func() string {
		counter++
		return fmt.Sprintf("new-%d", counter)
	}))
	require.NoError(t, err)
	return s
}

func ids(s *Store) []string {
	out := make([]string, 0, s.Len())
	for _, tab := range s.Tabs() {
		out = append(out, tab.ID)
	}
	return out
}

func TestNewStoreValidation(t *testing.T) {
	_, err := NewStore(nil, "")
	assert.ErrorIs(t, err, ErrNoTabs)

	_, err = NewStore([]Tab{{ID: "a"}, {ID: "a"}}, "")
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = NewStore([]Tab{{ID: " "}}, "")
	assert.ErrorIs(t, err, ErrEmptyID)

	_, err = NewStore([]Tab{{ID: "a"}}, "missing")
	assert.ErrorIs(t, err, ErrUnknownTab)

	s, err := NewStore([]Tab{{ID: "a"}, {ID: "b"}}, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", s.SelectedID())
}

func TestNewStoreDefaultsToFirstTab(t *testing.T) {
	s := newTestStore(t, "a", "b", "c")
	assert.Equal(t, "a", s.SelectedID())
	assert.Equal(t, 0, s.SelectedIndex())
	assert.False(t, s.CanGoPrev())
	assert.True(t, s.CanGoNext())
}

func TestSelectTabIgnoresUnknownIDs(t *testing.T) {
	s := newTestStore(t, "a", "b")
	assert.False(t, s.SelectTab("zzz"))
	assert.Equal(t, "a", s.SelectedID())
	assert.True(t, s.SelectTab("b"))
	assert.Equal(t, "b", s.SelectedID())
}

func TestGoToNextAndPrevStayInBounds(t *testing.T) {
	s := newTestStore(t, "a", "b", "c")
	assert.False(t, s.GoToPrev(), "prev at first tab is a no-op")
	assert.Equal(t, "a", s.SelectedID())

	assert.True(t, s.GoToNext())
	assert.True(t, s.GoToNext())
	assert.Equal(t, "c", s.SelectedID())
	assert.False(t, s.CanGoNext())
	assert.False(t, s.GoToNext(), "next at last tab is a no-op")
	assert.Equal(t, "c", s.SelectedID())

	assert.True(t, s.GoToPrev())
	assert.Equal(t, "b", s.SelectedID())
}

func TestReorderTracksSelectionByID(t *testing.T) {
	s := newTestStore(t, "A", "B", "C")
	require.True(t, s.ReorderTabs(0, 2))
	assert.Equal(t, []string{"B", "C", "A"}, ids(s))
	assert.Equal(t, "A", s.SelectedID())
	assert.Equal(t, 2, s.SelectedIndex())
	assert.False(t, s.CanGoNext())
}

func TestReorderRejectsInvalidIndices(t *testing.T) {
	s := newTestStore(t, "a", "b", "c")
	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {1, 1}} {
		assert.False(t, s.ReorderTabs(pair[0], pair[1]), "pair %v", pair)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids(s))
}

func TestReorderPreservesRelativeOrder(t *testing.T) {
	base := []string{"a", "b", "c", "d", "e"}
	for from := range base {
		for to := range base {
			s := newTestStore(t, base...)
			s.ReorderTabs(from, to)
			got := ids(s)
			require.Len(t, got, len(base))
			assert.Equal(t, base[from], got[to])
			assert.ElementsMatch(t, base, got)

			var rest, gotRest []string
			for i, id := range base {
				if i != from {
					rest = append(rest, id)
				}
			}
			for i, id := range got {
				if i != to {
					gotRest = append(gotRest, id)
				}
			}
			assert.Equal(t, rest, gotRest, "from=%d to=%d", from, to)
		}
	}
}

func TestAddTabAfterInsertsAfterAnchor(t *testing.T) {
	s := newTestStore(t, "a", "b", "c")
	id := s.AddTabAfter("a", NewTab{Label: "Review", Type: PageOther, Content: textContent("Review")})
	assert.Equal(t, "new-1", id)
	assert.Equal(t, []string{"a", "new-1", "b", "c"}, ids(s))
	assert.Equal(t, "a", s.SelectedID(), "insert must not change selection")

	tab, ok := s.Tab(id)
	require.True(t, ok)
	assert.Equal(t, "Review", tab.Label)
	assert.Equal(t, PageOther, tab.Type)
}

func TestAddTabAfterUnknownAnchorAppends(t *testing.T) {
	s := newTestStore(t, "a", "b")
	id := s.AddTabAfter("missing", NewTab{Label: "x"})
	assert.Equal(t, []string{"a", "b", id}, ids(s))
	tab, _ := s.Tab(id)
	assert.Equal(t, PageOther, tab.Type)
}

func TestAddTabAfterSkipsUsedIDs(t *testing.T) {
	s, err := NewStore([]Tab{{ID: "dup"}}, "", WithIDGenerator(func() string { return "dup" }))
	require.NoError(t, err)
	id := s.AddTabAfter("dup", NewTab{Label: "n"})
	assert.NotEqual(t, "dup", id)
	assert.Equal(t, 2, s.Len())
}

func TestDefaultIDsAreUnique(t *testing.T) {
	s, err := NewStore([]Tab{{ID: "a"}}, "")
	require.NoError(t, err)
	seen := map[string]bool{"a": true}
	for i := 0; i < 50; i++ {
		id := s.AddTabAfter("a", NewTab{Label: "n"})
		assert.Regexp(t, `^tab-[0-9a-f]{8}$`, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestExtensionPointsDoNotMutate(t *testing.T) {
	s := newTestStore(t, "a", "b")
	assert.ErrorIs(t, s.RenameTab("a", "x"), ErrNotImplemented)
	_, err := s.DuplicateTab("a")
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.ErrorIs(t, s.RemoveTab("a"), ErrNotImplemented)
	assert.ErrorIs(t, s.RemoveTab("zzz"), ErrUnknownTab)
	assert.Equal(t, []string{"a", "b"}, ids(s))
	tab, _ := s.Tab("a")
	assert.Equal(t, "a", tab.Label)
}

func TestSubscribeReceivesChanges(t *testing.T) {
	s := newTestStore(t, "a", "b", "c")
	var got []Change
	unsubscribe := s.Subscribe(func(c Change) { got = append(got, c) })

	s.SelectTab("b")
	s.SelectTab("b")
	s.ReorderTabs(0, 2)
	id := s.AddTabAfter("c", NewTab{Label: "n"})

	require.Len(t, got, 3)
	assert.Equal(t, Change{Kind: ChangeSelect, ID: "b", From: -1, To: 1}, got[0])
	assert.Equal(t, Change{Kind: ChangeReorder, ID: "a", From: 0, To: 2}, got[1])
	assert.Equal(t, ChangeInsert, got[2].Kind)
	assert.Equal(t, id, got[2].ID)

	unsubscribe()
	s.GoToNext()
	assert.Len(t, got, 3)
}

func TestTabsReturnsCopy(t *testing.T) {
	s := newTestStore(t, "a", "b")
	tabs := s.Tabs()
	tabs[0].Label = "mutated"
	tab, _ := s.Tab("a")
	assert.Equal(t, "a", tab.Label)
}

func TestParsePageType(t *testing.T) {
	cases := map[string]PageType{"info": PageInfo, "Details": PageDetails, "OTHER": PageOther, "": PageOther}
	for in, want := range cases {
		got, err := ParsePageType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParsePageType("bogus")
	assert.Error(t, err)
}
