// Package content provides the page bodies shown inside the tab viewport.
// Each type satisfies state.Content; the richer ones also expose the optional
// capabilities the ui package probes for (Update, Focus/Blur, Reset, Reload).
package content

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Text is a static block of text.
type Text struct {
	body string
}

// NewText returns static content showing body.
func NewText(body string) *Text {
	return &Text{body: body}
}

func (t *Text) Body() string { return t.body }

// Render word-wraps the body to width and clips it to height lines.
func (t *Text) Render(width, height int) string {
	return clip(wrap(t.body, width), height)
}

func wrap(body string, width int) string {
	if width <= 0 {
		return body
	}
	return wordwrap.String(body, width)
}

func clip(body string, height int) string {
	if height <= 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	if len(lines) <= height {
		return body
	}
	return strings.Join(lines[:height], "\n")
}
