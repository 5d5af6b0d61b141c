package menu

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/stepform/internal/state"
)

type fakeTabs struct {
	tabs      map[string]state.Tab
	renameErr error
	renameOK  bool
	calls     []string
}

func newFakeTabs(ids ...string) *fakeTabs {
	f := &fakeTabs{tabs: map[string]state.Tab{}}
	for _, id := range ids {
		f.tabs[id] = state.Tab{ID: id, Label: "Label " + id}
	}
	return f
}

func (f *fakeTabs) Tab(id string) (state.Tab, bool) {
	tab, ok := f.tabs[id]
	return tab, ok
}

func (f *fakeTabs) RenameTab(id, label string) error {
	f.calls = append(f.calls, "rename:"+id)
	if f.renameErr != nil || f.renameOK {
		return f.renameErr
	}
	return state.ErrNotImplemented
}

func (f *fakeTabs) DuplicateTab(id string) (string, error) {
	f.calls = append(f.calls, "duplicate:"+id)
	return "", state.ErrNotImplemented
}

func (f *fakeTabs) RemoveTab(id string) error {
	f.calls = append(f.calls, "delete:"+id)
	return state.ErrNotImplemented
}

func TestPlaceKeepsAnchorWhenItFits(t *testing.T) {
	left, top := Place(10, 5, 20, 3, 100, 40)
	assert.Equal(t, 10, left)
	assert.Equal(t, 5, top)
}

func TestPlaceFlipsNearRightAndBottomEdges(t *testing.T) {
	const vw, vh, w, h = 80, 24, 18, 3
	left, top := Place(75, 20, w, h, vw, vh)
	assert.Equal(t, vw-w-PlacementPadding, left)
	assert.LessOrEqual(t, left+w, vw-PlacementPadding)
	assert.Equal(t, 20-h-PlacementPadding, top)
}

func TestPlaceClampsToPadding(t *testing.T) {
	left, top := Place(10, 3, 6, 2, 20, 12)
	assert.Equal(t, PlacementPadding, left)
	assert.Equal(t, PlacementPadding, top)
}

func TestPlaceKeepsMenuOnShortTerminals(t *testing.T) {
	left, top := Place(2, 1, 20, 3, 80, 10)
	assert.Equal(t, 2, left)
	assert.Equal(t, 7, top)
	assert.LessOrEqual(t, top+3, 10)

	left, top = Place(5, 2, 30, 10, 20, 12)
	assert.Equal(t, 0, left, "wider than the viewport pins to the left edge")
	assert.Equal(t, 2, top)
}

func TestActionSuccessIsNotUnavailable(t *testing.T) {
	tabs := newFakeTabs("a")
	tabs.renameOK = true
	res := RenameAction(Context{Tabs: tabs, Target: "a"}, Item{Label: "Rename"})().(ActionResult)
	assert.NoError(t, res.Err)
	assert.False(t, res.Unavailable)
	assert.Equal(t, "Rename done", res.Info)
}

func TestNewContextMenuRequiresStoreAndTarget(t *testing.T) {
	_, err := NewContextMenu(nil, "a", 0, 0)
	assert.ErrorIs(t, err, ErrNoStore)

	_, err = NewContextMenu(newFakeTabs("a"), "zzz", 0, 0)
	assert.ErrorIs(t, err, state.ErrUnknownTab)

	m, err := NewContextMenu(newFakeTabs("a"), "a", 4, 1)
	require.NoError(t, err)
	assert.Equal(t, "Label a", m.TargetLabel)
	assert.False(t, m.Placed())
}

func TestContextMenuMeasureOnce(t *testing.T) {
	m, err := NewContextMenu(newFakeTabs("a"), "a", 70, 2)
	require.NoError(t, err)
	m.Measure(80, 24)
	require.True(t, m.Placed())
	assert.Equal(t, len(m.Items), m.Height())
	assert.LessOrEqual(t, m.Left()+m.Width(), 80-PlacementPadding)
	left := m.Left()

	m.Measure(200, 200)
	assert.Equal(t, left, m.Left(), "placement must not move once measured")

	item, ok := m.ItemAt(m.Left(), m.Top()+1)
	require.True(t, ok)
	assert.Equal(t, ActionDuplicate, item.ID)
	assert.False(t, m.Contains(m.Left()-1, m.Top()))
}

func TestContextMenuCursorWraps(t *testing.T) {
	m, err := NewContextMenu(newFakeTabs("a"), "a", 0, 0)
	require.NoError(t, err)
	m.MoveCursor(-1)
	item, _ := m.Current()
	assert.Equal(t, ActionDelete, item.ID)
	m.MoveCursor(1)
	item, _ = m.Current()
	assert.Equal(t, ActionRename, item.ID)
}

func TestRowsAlignHints(t *testing.T) {
	m, err := NewContextMenu(newFakeTabs("a"), "a", 0, 0)
	require.NoError(t, err)
	rows := m.Rows()
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, len(rows[0]), len(row))
	}
}

func TestActionsReportExtensionPoints(t *testing.T) {
	tabs := newFakeTabs("a")
	ctx := Context{Tabs: tabs, Target: "a"}
	for _, item := range ContextItems() {
		action := ActionHandlers()[item.ID]
		require.NotNil(t, action, item.ID)
		msg := action(ctx, item)()
		res, ok := msg.(ActionResult)
		require.True(t, ok)
		assert.NoError(t, res.Err)
		assert.True(t, res.Unavailable, item.ID)
		assert.Contains(t, res.Info, "not available yet")
	}
	assert.Equal(t, []string{"rename:a", "duplicate:a", "delete:a"}, tabs.calls)
}

func TestActionPassesThroughErrors(t *testing.T) {
	tabs := newFakeTabs("a")
	tabs.renameErr = errors.New("boom")
	res := RenameAction(Context{Tabs: tabs, Target: "a"}, Item{Label: "Rename"})().(ActionResult)
	assert.EqualError(t, res.Err, "boom")

	res = DeleteAction(Context{Target: "a"}, Item{Label: "Delete"})().(ActionResult)
	assert.ErrorIs(t, res.Err, ErrNoStore)
}

func TestRegistryLookup(t *testing.T) {
	reg := BuildRegistry()
	node, ok := reg.Find(ActionDelete)
	require.True(t, ok)
	assert.True(t, node.Item.Danger)
	assert.NotNil(t, node.Action)

	node, ok = reg.ByHint("d")
	require.True(t, ok)
	assert.Equal(t, ActionDuplicate, node.ID)
	assert.Len(t, reg.Items(), 3)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPageFormRejectsBlankNames(t *testing.T) {
	f := NewPageForm(PagePrompt{Anchor: "a", AnchorLabel: "Info"})
	assert.Equal(t, "Add Page after Info", f.Title())
	f.Update(key("space"))
	f.Update(key("space"))
	_, done, cancel := f.Update(key("enter"))
	assert.False(t, done)
	assert.False(t, cancel)
	assert.Equal(t, "Page name required", f.Error())

	for _, r := range "Review" {
		f.Update(key(string(r)))
	}
	assert.Empty(t, f.Error())
	_, done, _ = f.Update(key("enter"))
	assert.True(t, done)
	assert.Equal(t, "Review", f.Value())
}

func TestPageFormEscapeCancels(t *testing.T) {
	f := NewPageForm(PagePrompt{Anchor: "a"})
	_, done, cancel := f.Update(key("esc"))
	assert.False(t, done)
	assert.True(t, cancel)
	assert.Equal(t, "Add Page", f.Title())
}
