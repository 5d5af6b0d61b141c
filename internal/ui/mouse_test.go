package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClickSelectsTab(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	b := regionFor(t, m, regionTab, "b")
	click(h, b.X+1, b.Y)
	if got := m.Store().SelectedID(); got != "b" {
		t.Fatalf("expected click to select b, got %q", got)
	}
	if m.strip.Target() != "b" {
		t.Fatalf("expected click to focus b, got %q", m.strip.Target())
	}
}

func TestDragReordersTabs(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	a := regionFor(t, m, regionTab, "a")
	c := regionFor(t, m, regionTab, "c")

	h.Mouse(tea.MouseActionPress, tea.MouseButtonLeft, a.X+1, a.Y)
	h.Mouse(tea.MouseActionMotion, tea.MouseButtonLeft, c.X+1, c.Y)
	if !m.sensor.Dragging() {
		t.Fatalf("expected drag to be active after moving past the threshold")
	}
	if m.dragOver != "c" {
		t.Fatalf("expected drag to hover c, got %q", m.dragOver)
	}
	h.Mouse(tea.MouseActionRelease, tea.MouseButtonNone, c.X+1, c.Y)

	if got := tabIDs(m.Store()); !equalIDs(got, "b", "c", "a") {
		t.Fatalf("unexpected order after drop: %v", got)
	}
	if got := m.Store().SelectedID(); got != "a" {
		t.Fatalf("expected selection to stay on a, got %q", got)
	}
	if m.sensor.Pressed() {
		t.Fatalf("expected sensor to be idle after drop")
	}
}

func TestShortMovementIsAClick(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	b := regionFor(t, m, regionTab, "b")

	h.Mouse(tea.MouseActionPress, tea.MouseButtonLeft, b.X, b.Y)
	h.Mouse(tea.MouseActionMotion, tea.MouseButtonLeft, b.X+3, b.Y)
	if m.sensor.Dragging() {
		t.Fatalf("expected movement below the threshold not to start a drag")
	}
	h.Mouse(tea.MouseActionRelease, tea.MouseButtonNone, b.X+3, b.Y)
	if got := tabIDs(m.Store()); !equalIDs(got, "a", "b", "c") {
		t.Fatalf("expected order unchanged, got %v", got)
	}
	if got := m.Store().SelectedID(); got != "b" {
		t.Fatalf("expected click to select b, got %q", got)
	}
}

func TestDropOutsideStripIsCancelled(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	a := regionFor(t, m, regionTab, "a")

	h.Mouse(tea.MouseActionPress, tea.MouseButtonLeft, a.X+1, a.Y)
	h.Mouse(tea.MouseActionMotion, tea.MouseButtonLeft, a.X+1, a.Y+10)
	h.Mouse(tea.MouseActionRelease, tea.MouseButtonNone, a.X+1, a.Y+10)
	if got := tabIDs(m.Store()); !equalIDs(got, "a", "b", "c") {
		t.Fatalf("expected order unchanged, got %v", got)
	}
	if got := m.Store().SelectedID(); got != "a" {
		t.Fatalf("expected selection unchanged, got %q", got)
	}
}

func TestAddPageButtonReportsStub(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	add := regionFor(t, m, regionAddPage, "")
	click(h, add.X+2, add.Y)
	if got := m.currentInfo(); got != "Add page is not available yet" {
		t.Fatalf("unexpected info %q", got)
	}
	if m.Store().Len() != 3 {
		t.Fatalf("expected no tab to be added, got %d", m.Store().Len())
	}
}
