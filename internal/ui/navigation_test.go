package ui

import (
	"testing"
)

func TestArrowKeysWrapFocusWithoutSelecting(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()

	h.Key("left")
	if m.strip.Cursor != 2 {
		t.Fatalf("expected left from first tab to wrap to last, got %d", m.strip.Cursor)
	}
	h.Key("right")
	if m.strip.Cursor != 0 {
		t.Fatalf("expected right from last tab to wrap to first, got %d", m.strip.Cursor)
	}
	h.Key("l")
	h.Key("l")
	if m.strip.Cursor != 2 {
		t.Fatalf("expected focus on last tab, got %d", m.strip.Cursor)
	}
	if got := m.Store().SelectedID(); got != "a" {
		t.Fatalf("focus movement must not select, got %q", got)
	}
}

func TestEnterAndSpaceSelectFocusedTab(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()

	h.Key("right")
	h.Key("enter")
	if got := m.Store().SelectedID(); got != "b" {
		t.Fatalf("expected b selected, got %q", got)
	}
	h.Key("right")
	h.Key("space")
	if got := m.Store().SelectedID(); got != "c" {
		t.Fatalf("expected c selected, got %q", got)
	}
}

func TestHomeEndMoveFocus(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("end")
	if m.strip.Cursor != 2 {
		t.Fatalf("expected end to focus last tab, got %d", m.strip.Cursor)
	}
	h.Key("home")
	if m.strip.Cursor != 0 {
		t.Fatalf("expected home to focus first tab, got %d", m.strip.Cursor)
	}
}

func TestStepKeysDoNotWrap(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("[")
	if got := m.Store().SelectedID(); got != "a" {
		t.Fatalf("expected prev on first tab to be a no-op, got %q", got)
	}
	for i := 0; i < 5; i++ {
		h.Key("]")
	}
	if got := m.Store().SelectedID(); got != "c" {
		t.Fatalf("expected next to stop at last tab, got %q", got)
	}
	if m.strip.Cursor != 2 {
		t.Fatalf("expected focus to follow selection, got %d", m.strip.Cursor)
	}
}

func TestCtrlArrowsReorderFocusedTab(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("ctrl+right")
	if got := tabIDs(m.Store()); !equalIDs(got, "b", "a", "c") {
		t.Fatalf("unexpected order %v", got)
	}
	if m.strip.Target() != "a" {
		t.Fatalf("expected focus to stay on a, got %q", m.strip.Target())
	}
	if got := m.Store().SelectedID(); got != "a" {
		t.Fatalf("expected selection to track a, got %q", got)
	}
	h.Key("ctrl+left")
	h.Key("ctrl+left")
	if got := tabIDs(m.Store()); !equalIDs(got, "a", "b", "c") {
		t.Fatalf("expected reorder past the first tab to be ignored, got %v", got)
	}
}

func TestTabTogglesPanelAndReturnsToSelected(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("right")
	h.Key("enter")
	h.Key("right")
	h.Key("tab")
	if m.Mode() != ModePanel {
		t.Fatalf("expected panel mode, got %s", m.Mode())
	}
	h.Key("q")
	if m.Mode() != ModePanel {
		t.Fatalf("expected q to be passed to the panel, got %s", m.Mode())
	}
	h.Key("tab")
	if m.Mode() != ModeStrip {
		t.Fatalf("expected strip mode, got %s", m.Mode())
	}
	if m.strip.Target() != "b" {
		t.Fatalf("expected focus back on the selected tab, got %q", m.strip.Target())
	}
}
