package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/stepform/internal/backend"
	"github.com/atomicstack/stepform/internal/layout"
	"github.com/atomicstack/stepform/internal/logging/events"
	"github.com/atomicstack/stepform/internal/state"
	"github.com/atomicstack/stepform/internal/ui"
)

const watchInterval = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	LayoutPath  string
	Selected    string
	Width       int
	Height      int
	ShowFooter  bool
	KeepMounted bool
	Verbose     bool
}

// Setup holds everything Run needs before the program starts.
type Setup struct {
	Layout  layout.Layout
	Store   *state.Store
	Watcher *backend.Watcher
	Model   *ui.Model
}

// Close releases the watcher and detaches the model.
func (s *Setup) Close() {
	if s.Model != nil {
		s.Model.Close()
	}
	if s.Watcher != nil {
		s.Watcher.Stop()
	}
}

// Prepare loads the layout and builds the store and model for cfg.
func Prepare(cfg Config) (*Setup, error) {
	lay, err := layout.Load(cfg.LayoutPath)
	if err != nil {
		return nil, err
	}
	selected := lay.Selected
	if cfg.Selected != "" {
		selected = cfg.Selected
	}
	store, err := state.NewStore(lay.Tabs, selected)
	if err != nil {
		return nil, fmt.Errorf("build tabs: %w", err)
	}
	events.App.Layout(lay.Source, store.Len())

	setup := &Setup{Layout: lay, Store: store}
	if len(lay.Files) > 0 {
		paths := make([]string, 0, len(lay.Files))
		for path := range lay.Files {
			paths = append(paths, path)
		}
		watcher, err := backend.NewWatcher(paths, watchInterval)
		if err != nil {
			return nil, err
		}
		setup.Watcher = watcher
	}
	model, err := ui.NewModel(store, ui.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		KeepMounted: cfg.KeepMounted,
		Verbose:     cfg.Verbose,
		Watcher:     setup.Watcher,
		Files:       lay.Files,
	})
	if err != nil {
		setup.Close()
		return nil, err
	}
	setup.Model = model
	return setup, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	setup, err := Prepare(cfg)
	if err != nil {
		return err
	}
	return Start(setup)
}

// Start runs the program for a prepared setup and closes it on exit.
func Start(setup *Setup) error {
	defer setup.Close()
	program := tea.NewProgram(setup.Model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
