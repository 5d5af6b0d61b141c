package ui

// TablistLabel names the tab list for assistive technology.
const TablistLabel = "Multi Step Form"

// AccessibleNode is one element of the accessibility snapshot.
type AccessibleNode struct {
	Role       string `json:"role"`
	ID         string `json:"id,omitempty"`
	Label      string `json:"label,omitempty"`
	Selected   bool   `json:"selected,omitempty"`
	Controls   string `json:"controls,omitempty"`
	LabelledBy string `json:"labelledBy,omitempty"`
	TabIndex   int    `json:"tabIndex"`
	Hidden     bool   `json:"hidden,omitempty"`
}

// AccessibleTree describes the tab list, its tabs and their panels.
type AccessibleTree struct {
	TabList AccessibleNode   `json:"tablist"`
	Tabs    []AccessibleNode `json:"tabs"`
	Panels  []AccessibleNode `json:"panels"`
}

func TabElementID(id string) string   { return "tab-" + id }
func PanelElementID(id string) string { return "panel-" + id }

// Accessibility returns the current snapshot. Only the selected tab is in the
// tab order. Without keep-mounted only the selected panel exists; with it
// every panel exists and the others are hidden.
func (m *Model) Accessibility() AccessibleTree {
	tabs := m.store.Tabs()
	selected := m.store.SelectedID()
	tree := AccessibleTree{
		TabList: AccessibleNode{Role: "tablist", Label: TablistLabel, TabIndex: -1},
		Tabs:    make([]AccessibleNode, 0, len(tabs)),
	}
	for _, tab := range tabs {
		isSelected := tab.ID == selected
		tabIndex := -1
		if isSelected {
			tabIndex = 0
		}
		tree.Tabs = append(tree.Tabs, AccessibleNode{
			Role:     "tab",
			ID:       TabElementID(tab.ID),
			Label:    tab.Label,
			Selected: isSelected,
			Controls: PanelElementID(tab.ID),
			TabIndex: tabIndex,
		})
		if !isSelected && !m.keepMounted {
			continue
		}
		tree.Panels = append(tree.Panels, AccessibleNode{
			Role:       "tabpanel",
			ID:         PanelElementID(tab.ID),
			Label:      tab.Label,
			LabelledBy: TabElementID(tab.ID),
			TabIndex:   0,
			Hidden:     !isSelected,
		})
	}
	return tree
}
