package ui

import (
	"errors"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/backend"
	"github.com/atomicstack/stepform/internal/data/dispatcher"
	"github.com/atomicstack/stepform/internal/logging/events"
	"github.com/atomicstack/stepform/internal/menu"
	"github.com/atomicstack/stepform/internal/pointer"
	"github.com/atomicstack/stepform/internal/state"
	"github.com/atomicstack/stepform/internal/theme"
	"github.com/atomicstack/stepform/internal/ui/command"
	uistate "github.com/atomicstack/stepform/internal/ui/state"
)

type Mode int

const (
	ModeStrip Mode = iota
	ModePanel
	ModeMenu
	ModeModal
	ModeJump
)

func (m Mode) String() string {
	switch m {
	case ModeStrip:
		return "strip"
	case ModePanel:
		return "panel"
	case ModeMenu:
		return "menu"
	case ModeModal:
		return "modal"
	case ModeJump:
		return "jump"
	}
	return "unknown"
}

// ErrNoStore is returned when a model is built without a tab store.
var ErrNoStore = errors.New("ui: tab store is required")

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the optional settings of a Model.
type Options struct {
	Width       int
	Height      int
	ShowFooter  bool
	KeepMounted bool
	Verbose     bool
	Watcher     *backend.Watcher
	// Files maps watched content paths to the ids of the tabs showing them.
	Files map[string][]string
}

// Model implements the Bubble Tea model for the tab strip and its panel.
type Model struct {
	store       *state.Store
	strip       *uistate.Strip
	unsubscribe func()
	selected    string

	mode        Mode
	returnMode  Mode
	contextMenu *menu.ContextMenu
	pageForm    *menu.PageForm

	sensor   *pointer.Sensor
	regions  pointer.Regions
	dragOver string

	panel viewport.Model
	keys  keyMap
	help  help.Model

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	keepMounted bool
	verbose     bool

	backend        *backend.Watcher
	dispatcher     *dispatcher.Dispatcher
	backendLastErr string

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	registry *menu.Registry
	bus      *command.Bus
}

// NewModel builds the UI around an existing store. The store is shared, not
// copied: every mutation made through the UI lands in it.
func NewModel(store *state.Store, opts Options) (*Model, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	m := &Model{
		store:       store,
		selected:    store.SelectedID(),
		mode:        ModeStrip,
		returnMode:  ModeStrip,
		sensor:      pointer.NewSensor(pointer.DefaultActivationDistance),
		panel:       viewport.New(0, 0),
		keys:        defaultKeyMap(),
		help:        help.New(),
		showFooter:  opts.ShowFooter,
		keepMounted: opts.KeepMounted,
		verbose:     opts.Verbose,
		backend:     opts.Watcher,
		dispatcher:  dispatcher.New(store, opts.Files),
		registry:    menu.BuildRegistry(),
	}
	m.bus = command.New(m.registry)
	m.strip = uistate.NewStrip(entriesFor(store.Tabs()), store.SelectedID())
	m.unsubscribe = store.Subscribe(m.handleStoreChange)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m, nil
}

// Close detaches the model from its store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Mode reports the current interaction mode.
func (m *Model) Mode() Mode { return m.mode }

// Store exposes the tab store the model renders.
func (m *Model) Store() *state.Store { return m.store }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveOverlay(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if cmd := m.forwardToContent(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveOverlay(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeModal:
		switch msg.(type) {
		case tea.KeyMsg:
			return m.handlePageForm(msg)
		case tea.MouseMsg:
			return true, nil
		}
		if m.handlerFor(msg) == nil {
			return m.handlePageForm(msg)
		}
	case ModeMenu:
		switch ev := msg.(type) {
		case tea.KeyMsg:
			return true, m.handleMenuKey(ev)
		case tea.MouseMsg:
			return true, m.handleMenuMouse(ev)
		}
	case ModeJump:
		if ev, ok := msg.(tea.KeyMsg); ok {
			return true, m.handleJumpKey(ev)
		}
	}
	return false, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(menu.PagePrompt{}):   m.handlePagePromptMsg,
		reflect.TypeOf(addPageStubMsg{}):    m.handleAddPageStubMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// handleStoreChange keeps the strip in step with the store and tears down
// content that stops being shown.
func (m *Model) handleStoreChange(change state.Change) {
	m.syncStrip()
	switch change.Kind {
	case state.ChangeSelect:
		events.Tab.Select(change.ID, change.To)
		previous := m.selected
		m.selected = change.ID
		if previous != change.ID {
			m.teardown(previous)
		}
		m.panel.GotoTop()
	case state.ChangeReorder:
		events.Tab.Reorder(change.ID, change.From, change.To)
	case state.ChangeInsert:
		events.Tab.Insert(change.ID, change.To)
	}
}

func (m *Model) syncStrip() {
	m.strip.UpdateItems(entriesFor(m.store.Tabs()), m.store.SelectedID())
}

func entriesFor(tabs []state.Tab) []uistate.Entry {
	entries := make([]uistate.Entry, len(tabs))
	for i, tab := range tabs {
		entries[i] = uistate.Entry{ID: tab.ID, Label: tab.Label}
	}
	return entries
}
