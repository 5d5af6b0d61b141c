// Package ui contains the Bubble Tea program that renders a tab strip over a
// content panel.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update first offers the message to the active overlay (context menu,
//     new page modal, or jump filter). When no overlay claims it, the message
//     is routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (keys, mouse, resize, action results, watcher events).
//     Messages nobody handles are forwarded to the selected tab's content.
//
// State ownership:
//   - Tabs and the selected id live in a state.Store owned by the caller. The
//     model mutates it only from Update and subscribes to its changes to keep
//     strip focus in step and to tear down content that stops being shown.
//   - Strip focus and the jump query live in internal/ui/state.Strip; focus is
//     separate from selection and wraps at both ends.
//   - Context menu actions run through the internal/ui/command bus.
//
// Pointer input:
//   - Every render records hit regions for tabs, insert slots, the trailing
//     add control and the panel. Presses on tabs arm a pointer.Sensor; a
//     release before the activation distance is a click, a release after it
//     is a drop that reorders.
package ui
