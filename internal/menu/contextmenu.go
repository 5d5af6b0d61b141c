package menu

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/stepform/internal/format/table"
	"github.com/atomicstack/stepform/internal/logging/events"
	"github.com/atomicstack/stepform/internal/state"
)

// PlacementPadding is the minimum gap kept between a menu and the viewport edge.
const PlacementPadding = 8

// ErrNoStore is returned when a menu is opened or an action runs without a
// tab store.
var ErrNoStore = errors.New("menu: no tab store")

// ContextMenu is the open per-tab menu anchored at a pointer position.
type ContextMenu struct {
	Target      string
	TargetLabel string
	X, Y        int
	Items       []Item

	cursor int
	left   int
	top    int
	width  int
	height int
	placed bool
}

// NewContextMenu opens a menu for target at the pointer position x, y.
func NewContextMenu(src TabSource, target string, x, y int) (*ContextMenu, error) {
	if src == nil {
		return nil, ErrNoStore
	}
	tab, ok := src.Tab(target)
	if !ok {
		return nil, state.ErrUnknownTab
	}
	events.Menu.Open(target, x, y)
	return &ContextMenu{
		Target:      target,
		TargetLabel: tab.Label,
		X:           x,
		Y:           y,
		Items:       ContextItems(),
		left:        x,
		top:         y,
	}, nil
}

// Place flips a w x h box anchored at x, y so it stays inside a vw x vh
// viewport with PlacementPadding on the right and bottom edges. When the
// viewport is too small for the padding the box is pulled back so its far
// edge stays on screen.
func Place(x, y, w, h, vw, vh int) (left, top int) {
	left, top = x, y
	if x+w+PlacementPadding > vw {
		left = max(PlacementPadding, vw-w-PlacementPadding)
	}
	if y+h+PlacementPadding > vh {
		top = max(PlacementPadding, y-h-PlacementPadding)
	}
	if left+w > vw {
		left = max(0, vw-w)
	}
	if top+h > vh {
		top = max(0, vh-h)
	}
	return left, top
}

// Measure positions the menu once, after its rendered size is known.
// Later calls keep the first placement.
func (m *ContextMenu) Measure(vw, vh int) {
	if m == nil || m.placed {
		return
	}
	rows := m.Rows()
	m.width = 0
	for _, row := range rows {
		m.width = max(m.width, lipgloss.Width(row))
	}
	m.height = len(rows)
	m.left, m.top = Place(m.X, m.Y, m.width, m.height, vw, vh)
	m.placed = true
	events.Menu.Place(m.Target, m.left, m.top)
}

// Placed reports whether Measure has fixed the menu position.
func (m *ContextMenu) Placed() bool { return m.placed }

// Left and Top are the cell of the menu's top-left corner.
func (m *ContextMenu) Left() int { return m.left }
func (m *ContextMenu) Top() int  { return m.top }

// Width and Height are the rendered size recorded by Measure.
func (m *ContextMenu) Width() int  { return m.width }
func (m *ContextMenu) Height() int { return m.height }

// Cursor is the index of the highlighted row.
func (m *ContextMenu) Cursor() int { return m.cursor }

// Contains reports whether the cell x, y lies on the placed menu.
func (m *ContextMenu) Contains(x, y int) bool {
	if m == nil || !m.placed {
		return false
	}
	return x >= m.left && x < m.left+m.width && y >= m.top && y < m.top+m.height
}

// ItemAt maps a cell inside the menu to its row item.
func (m *ContextMenu) ItemAt(x, y int) (Item, bool) {
	if !m.Contains(x, y) {
		return Item{}, false
	}
	idx := y - m.top
	if idx < 0 || idx >= len(m.Items) {
		return Item{}, false
	}
	return m.Items[idx], true
}

// MoveCursor shifts the highlighted row, wrapping at both ends.
func (m *ContextMenu) MoveCursor(delta int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// SetCursor highlights the row of the given item ID.
func (m *ContextMenu) SetCursor(id string) {
	for i, item := range m.Items {
		if item.ID == id {
			m.cursor = i
			return
		}
	}
}

// Current returns the highlighted item.
func (m *ContextMenu) Current() (Item, bool) {
	if m == nil || len(m.Items) == 0 {
		return Item{}, false
	}
	return m.Items[m.cursor], true
}

// Rows returns the menu rows with labels and hints aligned.
func (m *ContextMenu) Rows() []string {
	rows := make([][]string, 0, len(m.Items))
	for _, item := range m.Items {
		rows = append(rows, []string{" " + item.Label, item.Hint + " "})
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
}

// Close records why the menu went away.
func (m *ContextMenu) Close(reason string) {
	if m == nil {
		return
	}
	events.Menu.Close(m.Target, strings.TrimSpace(reason))
}
