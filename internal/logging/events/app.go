package events

import "github.com/atomicstack/stepform/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Layout(source string, tabs int) {
	logging.Trace("app.layout", map[string]interface{}{"source": source, "tabs": tabs})
}
