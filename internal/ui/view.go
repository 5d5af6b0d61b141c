package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/stepform/internal/pointer"
	"github.com/atomicstack/stepform/internal/state"
)

const (
	stripRow          = 0
	panelRow          = 3
	defaultViewWidth  = 80
	defaultViewHeight = 24
	slotText          = " + "
	addPageText       = "  + Add page"
	scrollLeftText    = "‹ "
	scrollRightText   = " ›"
)

var typeIcons = map[state.PageType]string{
	state.PageInfo:    "i",
	state.PageDetails: "≡",
	state.PageOther:   "•",
}

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// viewportSize returns the terminal size, or a default before the first
// resize message arrives.
func (m *Model) viewportSize() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultViewWidth
	}
	if h <= 0 {
		h = defaultViewHeight
	}
	return w, h
}

// View implements tea.Model.
func (m *Model) View() string {
	w, h := m.viewportSize()
	lines := strings.Split(m.viewBase(w, h), "\n")
	switch m.mode {
	case ModeMenu:
		if cm := m.contextMenu; cm != nil {
			lines = overlay(lines, m.renderContextMenu(), cm.Left(), cm.Top())
		}
	case ModeModal:
		if m.pageForm != nil {
			box := m.viewPageForm()
			left := max(0, (w-lipgloss.Width(box))/2)
			top := max(0, (h-lipgloss.Height(box))/2)
			lines = overlay(lines, box, left, top)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewBase(w, h int) string {
	lines := make([]styledLine, 0, h)
	lines = append(lines, styledLine{text: m.refreshRegions(), raw: true})
	lines = append(lines, styledLine{text: strings.Repeat("─", w), style: styles.InsertSlot})
	lines = append(lines, styledLine{text: m.panelTitle(), style: styles.PanelTitle})
	for _, row := range strings.Split(m.renderPanel(w), "\n") {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines, styledLine{text: m.navLine(), raw: true})
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	lines = applyWidth(lines, w)
	for len(lines) < h {
		lines = append(lines, styledLine{})
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	return renderLines(lines)
}

// refreshRegions lays out the strip and the panel and records their hit
// regions. It returns the rendered strip row.
func (m *Model) refreshRegions() string {
	strip := m.renderStrip()
	w, _ := m.viewportSize()
	m.regions.Add(regionPanel, m.store.SelectedID(), pointer.Rect{X: 0, Y: panelRow, W: w, H: m.panelHeight()})
	return strip
}

// renderStrip draws the tab row and records its hit regions.
func (m *Model) renderStrip() string {
	m.regions.Reset()
	tabs := m.store.Tabs()
	w, _ := m.viewportSize()
	slotW := lipgloss.Width(slotText)
	texts := make([]string, len(tabs))
	widths := make([]int, len(tabs))
	for i, tab := range tabs {
		texts[i] = tabText(tab)
		widths[i] = lipgloss.Width(texts[i])
		if i < len(tabs)-1 {
			widths[i] += slotW
		}
	}
	avail := w - lipgloss.Width(addPageText) - lipgloss.Width(scrollLeftText) - lipgloss.Width(scrollRightText)
	m.strip.EnsureCursorVisible(widths, avail)

	var matches map[string]struct{}
	if m.mode == ModeJump {
		matches = m.strip.Matches()
	}
	var b strings.Builder
	x := 0
	start := m.strip.ViewportOffset
	if start > 0 {
		b.WriteString(styles.ScrollIndicator.Render(scrollLeftText))
		x += lipgloss.Width(scrollLeftText)
	}
	limit := x + avail
	for i := start; i < len(tabs); i++ {
		tw := lipgloss.Width(texts[i])
		if i > start && x+tw > limit {
			b.WriteString(styles.ScrollIndicator.Render(scrollRightText))
			x += lipgloss.Width(scrollRightText)
			break
		}
		style := m.tabStyle(tabs[i].ID, i, matches)
		b.WriteString(style.Render(texts[i]))
		m.regions.Add(regionTab, tabs[i].ID, pointer.Rect{X: x, Y: stripRow, W: tw, H: 1})
		x += tw
		if i < len(tabs)-1 {
			b.WriteString(styles.InsertSlot.Render(slotText))
			m.regions.Add(regionInsert, tabs[i].ID, pointer.Rect{X: x, Y: stripRow, W: slotW, H: 1})
			x += slotW
		}
	}
	b.WriteString(styles.AddPage.Render(addPageText))
	m.regions.Add(regionAddPage, "", pointer.Rect{X: x, Y: stripRow, W: lipgloss.Width(addPageText), H: 1})
	return b.String()
}

func tabText(tab state.Tab) string {
	icon, ok := typeIcons[tab.Type]
	if !ok {
		icon = typeIcons[state.PageOther]
	}
	return fmt.Sprintf(" %s %s ", icon, tab.Label)
}

func (m *Model) tabStyle(id string, idx int, matches map[string]struct{}) lipgloss.Style {
	style := *styles.Tab
	if m.strip.IsSelected(id) {
		style = *styles.TabActive
	}
	if m.sensor.Dragging() {
		switch id {
		case m.sensor.Active():
			style = *styles.TabDragging
		case m.dragOver:
			style = style.Reverse(true)
		}
	}
	if _, ok := matches[id]; ok {
		style = style.Foreground(styles.TabMatch.GetForeground())
	}
	if (m.mode == ModeStrip || m.mode == ModeJump) && idx == m.strip.Cursor {
		style = style.Inherit(*styles.TabFocused)
	}
	return style
}

func (m *Model) panelTitle() string {
	tab := m.store.Selected()
	title := fmt.Sprintf("Step %d of %d · %s", m.store.SelectedIndex()+1, m.store.Len(), tab.Label)
	if m.mode == ModePanel {
		title += "  (editing, tab to return)"
	}
	return title
}

// panelHeight is the number of rows left for content after the chrome.
func (m *Model) panelHeight() int {
	_, h := m.viewportSize()
	chrome := panelRow + 2
	if m.showFooter {
		chrome++
	}
	return max(1, h-chrome)
}

// renderPanel shows the selected tab's content in the scrollable viewport.
func (m *Model) renderPanel(w int) string {
	body := ""
	if c := m.store.Selected().Content; c != nil {
		body = c.Render(w, 0)
	}
	m.panel.Width = w
	m.panel.Height = m.panelHeight()
	m.panel.SetContent(body)
	return m.panel.View()
}

func (m *Model) navLine() string {
	prev := "[ prev"
	next := "next ]"
	if m.store.CanGoPrev() {
		prev = styles.Info.Render(prev)
	} else {
		prev = styles.ScrollIndicator.Render(prev)
	}
	if m.store.CanGoNext() {
		next = styles.Info.Render(next)
	} else {
		next = styles.ScrollIndicator.Render(next)
	}
	return prev + "   " + next
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.mode == ModeJump:
		return styledLine{text: m.jumpPrompt(), raw: true}
	case m.errMsg != "":
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.backendLastErr != "":
		return styledLine{text: fmt.Sprintf("Watch: %s", m.backendLastErr), style: styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) renderContextMenu() string {
	cm := m.contextMenu
	rows := cm.Rows()
	out := make([]string, len(rows))
	for i, row := range rows {
		style := styles.MenuItem
		if cm.Items[i].Danger {
			style = styles.MenuDanger
		}
		if i == cm.Cursor() {
			style = styles.MenuSelected
		}
		out[i] = style.Render(row)
	}
	return strings.Join(out, "\n")
}

// overlay draws box over base with its top-left cell at left, top.
func overlay(base []string, box string, left, top int) []string {
	out := append([]string(nil), base...)
	for i, row := range strings.Split(box, "\n") {
		y := top + i
		if y < 0 || y >= len(out) {
			continue
		}
		line := out[y]
		if lw := lipgloss.Width(line); lw < left {
			line += strings.Repeat(" ", left-lw)
		}
		end := left + lipgloss.Width(row)
		tail := ""
		if lipgloss.Width(line) > end {
			tail = ansi.TruncateLeft(line, end, "")
		}
		out[y] = ansi.Truncate(line, left, "") + row + tail
	}
	return out
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
