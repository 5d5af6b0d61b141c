package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/stepform/internal/logging/events"
	"github.com/atomicstack/stepform/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a selectable menu entry.
type Item struct {
	ID     string
	Label  string
	Hint   string
	Danger bool
}

// TabSource is the read side of the tab store a menu needs.
type TabSource interface {
	Tab(id string) (state.Tab, bool)
}

// TabEditor is the part of the tab store the context menu actions call.
type TabEditor interface {
	TabSource
	RenameTab(id, label string) error
	DuplicateTab(id string) (string, error)
	RemoveTab(id string) error
}

// Context carries what an action needs to run.
type Context struct {
	Tabs   TabEditor
	Target string
}

// Action runs a menu item against its target tab.
type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
// Unavailable marks results from store operations that do not exist yet.
type ActionResult struct {
	Info        string
	Err         error
	Unavailable bool
}

// Identifiers of the context menu actions.
const (
	ActionRename    = "tab:rename"
	ActionDuplicate = "tab:duplicate"
	ActionDelete    = "tab:delete"
)

// ContextItems returns the entries of the per-tab context menu.
func ContextItems() []Item {
	return []Item{
		{ID: ActionRename, Label: "Rename", Hint: "r"},
		{ID: ActionDuplicate, Label: "Duplicate", Hint: "d"},
		{ID: ActionDelete, Label: "Delete", Hint: "x", Danger: true},
	}
}

// ActionHandlers maps menu item identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		ActionRename:    RenameAction,
		ActionDuplicate: DuplicateAction,
		ActionDelete:    DeleteAction,
	}
}

// RenameAction asks the store to rename the target tab.
func RenameAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		events.Menu.Intent("rename", ctx.Target)
		if ctx.Tabs == nil {
			return ActionResult{Err: ErrNoStore}
		}
		tab, _ := ctx.Tabs.Tab(ctx.Target)
		return resultFor(item, ctx.Tabs.RenameTab(ctx.Target, tab.Label))
	}
}

// DuplicateAction asks the store for a copy of the target tab.
func DuplicateAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		events.Menu.Intent("duplicate", ctx.Target)
		if ctx.Tabs == nil {
			return ActionResult{Err: ErrNoStore}
		}
		id, err := ctx.Tabs.DuplicateTab(ctx.Target)
		if err != nil {
			return resultFor(item, err)
		}
		return ActionResult{Info: fmt.Sprintf("Duplicated as %s", id)}
	}
}

// DeleteAction asks the store to remove the target tab.
func DeleteAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		events.Menu.Intent("delete", ctx.Target)
		if ctx.Tabs == nil {
			return ActionResult{Err: ErrNoStore}
		}
		return resultFor(item, ctx.Tabs.RemoveTab(ctx.Target))
	}
}

func resultFor(item Item, err error) ActionResult {
	switch {
	case err == nil:
		return ActionResult{Info: fmt.Sprintf("%s done", item.Label)}
	case errors.Is(err, state.ErrNotImplemented):
		return ActionResult{Info: fmt.Sprintf("%s is not available yet", strings.TrimSpace(item.Label)), Unavailable: true}
	default:
		return ActionResult{Err: err}
	}
}
