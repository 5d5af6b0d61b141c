package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/stepform/internal/content"
	"github.com/atomicstack/stepform/internal/state"
	"gopkg.in/yaml.v3"
)

// File mirrors the on-disk layout document.
type File struct {
	Selected string     `yaml:"selected"`
	Tabs     []TabEntry `yaml:"tabs"`
}

// TabEntry describes one tab. Exactly one of Fields, Body or File supplies
// the content; none of them yields an empty text page.
type TabEntry struct {
	ID     string   `yaml:"id"`
	Label  string   `yaml:"label"`
	Type   string   `yaml:"type"`
	Fields []string `yaml:"fields,omitempty"`
	Body   string   `yaml:"body,omitempty"`
	File   string   `yaml:"file,omitempty"`
}

// Layout is a resolved layout ready to seed a store.
type Layout struct {
	Source   string
	Selected string
	Tabs     []state.Tab
	// Files maps absolute content file paths to the tab ids showing them.
	Files map[string][]string
}

var errNoContentSource = errors.New("only one of fields, body or file may be set")

// Load reads a layout file. An empty path yields the built-in default layout.
func Load(path string) (Layout, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	layout, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	layout.Source = path
	return layout, nil
}

// Parse decodes a layout document. Relative content file paths resolve
// against baseDir.
func Parse(data []byte, baseDir string) (Layout, error) {
	var doc File
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Layout{}, fmt.Errorf("decode: %w", err)
	}
	if len(doc.Tabs) == 0 {
		return Layout{}, state.ErrNoTabs
	}
	out := Layout{
		Selected: strings.TrimSpace(doc.Selected),
		Tabs:     make([]state.Tab, 0, len(doc.Tabs)),
		Files:    map[string][]string{},
	}
	for i, entry := range doc.Tabs {
		tab, file, err := entry.resolve(baseDir)
		if err != nil {
			return Layout{}, fmt.Errorf("tab %d: %w", i, err)
		}
		if file != "" {
			out.Files[file] = append(out.Files[file], tab.ID)
		}
		out.Tabs = append(out.Tabs, tab)
	}
	return out, nil
}

func (e TabEntry) resolve(baseDir string) (state.Tab, string, error) {
	id := strings.TrimSpace(e.ID)
	if id == "" {
		return state.Tab{}, "", state.ErrEmptyID
	}
	pageType, err := state.ParsePageType(e.Type)
	if err != nil {
		return state.Tab{}, "", err
	}
	label := strings.TrimSpace(e.Label)
	if label == "" {
		label = id
	}
	sources := 0
	for _, set := range []bool{len(e.Fields) > 0, e.Body != "", e.File != ""} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return state.Tab{}, "", errNoContentSource
	}
	tab := state.Tab{ID: id, Label: label, Type: pageType}
	var file string
	switch {
	case len(e.Fields) > 0:
		tab.Content = content.NewFields(label, e.Fields...)
	case e.File != "":
		file = e.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		if abs, err := filepath.Abs(file); err == nil {
			file = abs
		}
		tab.Content = content.NewFile(file)
	default:
		tab.Content = content.NewText(e.Body)
	}
	return tab, file, nil
}

// Default returns the three-step form used when no layout file is given.
func Default() Layout {
	return Layout{
		Source:   "default",
		Selected: "tab-1",
		Tabs: []state.Tab{
			{ID: "tab-1", Label: "Info", Type: state.PageInfo, Content: content.NewFields("Info", "Name", "Email", "Phone")},
			{ID: "tab-2", Label: "Details", Type: state.PageDetails, Content: content.NewFields("Details", "Address", "City", "Notes")},
			{ID: "tab-3", Label: "Other", Type: state.PageOther, Content: content.NewText("Anything else we should know goes here.")},
		},
		Files: map[string][]string{},
	}
}
