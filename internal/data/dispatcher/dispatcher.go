package dispatcher

import (
	"fmt"

	"github.com/atomicstack/stepform/internal/backend"
	"github.com/atomicstack/stepform/internal/state"
)

// Reloader is implemented by content backed by a file.
type Reloader interface {
	Reload() error
}

type Result struct {
	Reloaded []string
	Failed   map[string]error
	WatchErr error
}

// Dispatcher routes watcher events to the tabs showing the changed file.
type Dispatcher struct {
	tabs  state.TabReader
	files map[string][]string
}

func New(tabs state.TabReader, files map[string][]string) *Dispatcher {
	return &Dispatcher{tabs: tabs, files: files}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.WatchErr = evt.Err
		return res
	}
	for _, id := range d.files[evt.Path] {
		tab, ok := d.tabs.Tab(id)
		if !ok {
			continue
		}
		r, ok := tab.Content.(Reloader)
		if !ok {
			continue
		}
		if err := r.Reload(); err != nil {
			if res.Failed == nil {
				res.Failed = map[string]error{}
			}
			res.Failed[id] = fmt.Errorf("reload %s: %w", id, err)
			continue
		}
		res.Reloaded = append(res.Reloaded, id)
	}
	return res
}
