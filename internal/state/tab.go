package state

import (
	"fmt"
	"strings"
)

// PageType mirrors the page kinds a form step can take.
type PageType string

const (
	PageInfo    PageType = "Info"
	PageDetails PageType = "Details"
	PageOther   PageType = "Other"
)

// ParsePageType resolves a page type name case-insensitively.
func ParsePageType(name string) (PageType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return PageInfo, nil
	case "details", "detail":
		return PageDetails, nil
	case "other", "":
		return PageOther, nil
	}
	return "", fmt.Errorf("unknown page type %q", name)
}

// Content is anything that can draw itself into a width x height cell box.
// The store never looks past this capability.
type Content interface {
	Render(width, height int) string
}

// Tab is one step of the form.
type Tab struct {
	ID      string
	Label   string
	Type    PageType
	Content Content
}

// NewTab carries the caller-supplied part of a tab; the store assigns the id.
type NewTab struct {
	Label   string
	Type    PageType
	Content Content
}

func cloneTabs(tabs []Tab) []Tab {
	if len(tabs) == 0 {
		return nil
	}
	dup := make([]Tab, len(tabs))
	copy(dup, tabs)
	return dup
}
