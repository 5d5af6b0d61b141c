package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/logging/events"
	"github.com/atomicstack/stepform/internal/menu"
)

// Bus runs context menu items against the tab they were opened on.
type Bus struct {
	registry *menu.Registry
}

// New returns a bus resolving items through registry.
func New(registry *menu.Registry) *Bus {
	return &Bus{registry: registry}
}

// Dispatch resolves item and wraps its action into a command. Every step is
// traced with the target tab id. Items without an action yield an
// unavailable notice instead of nothing.
func (b *Bus) Dispatch(ctx menu.Context, item menu.Item) tea.Cmd {
	events.Command.Queue(item.ID, ctx.Target)
	var action menu.Action
	if b != nil && b.registry != nil {
		if node, ok := b.registry.Find(item.ID); ok {
			action = node.Action
		}
	}
	if action == nil {
		events.Command.Skip(item.ID, ctx.Target)
		return func() tea.Msg {
			return menu.ActionResult{Info: fmt.Sprintf("%s (no action defined yet)", item.Label), Unavailable: true}
		}
	}
	return func() tea.Msg {
		cmd := action(ctx, item)
		if cmd == nil {
			events.Command.NoOp(item.ID, ctx.Target)
			return nil
		}
		msg := cmd()
		events.Command.Result(item.ID, ctx.Target, Outcome(msg))
		return msg
	}
}

// Outcome classifies an action message for tracing.
func Outcome(msg tea.Msg) string {
	res, ok := msg.(menu.ActionResult)
	switch {
	case !ok:
		return fmt.Sprintf("%T", msg)
	case res.Err != nil:
		return "error"
	case res.Unavailable:
		return "unavailable"
	}
	return "ok"
}
