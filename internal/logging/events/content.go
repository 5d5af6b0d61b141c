package events

import "github.com/atomicstack/stepform/internal/logging"

type ContentTracer struct{}

var Content = ContentTracer{}

func (ContentTracer) Reset(id string) {
	logging.Trace("content.reset", map[string]interface{}{"id": id})
}

func (ContentTracer) Reload(path string, tabs []string) {
	logging.Trace("content.reload", map[string]interface{}{"path": path, "tabs": tabs})
}

func (ContentTracer) WatchError(err error) {
	if err == nil {
		return
	}
	logging.Trace("content.watch.error", map[string]interface{}{"error": err.Error()})
}
