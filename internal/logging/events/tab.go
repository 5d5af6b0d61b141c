package events

import "github.com/atomicstack/stepform/internal/logging"

type TabTracer struct{}

type DragTracer struct{}

var (
	Tab  = TabTracer{}
	Drag = DragTracer{}
)

func (TabTracer) Select(id string, index int) {
	logging.Trace("tab.select", map[string]interface{}{"id": id, "index": index})
}

func (TabTracer) Reorder(id string, from, to int) {
	logging.Trace("tab.reorder", map[string]interface{}{"id": id, "from": from, "to": to})
}

func (TabTracer) Insert(id string, position int) {
	logging.Trace("tab.insert", map[string]interface{}{"id": id, "position": position})
}

func (TabTracer) Focus(index int) {
	logging.Trace("tab.focus", map[string]interface{}{"index": index})
}

func (TabTracer) Step(direction string, moved bool) {
	logging.Trace("tab.step", map[string]interface{}{"direction": direction, "moved": moved})
}

func (TabTracer) AddPageStub() {
	logging.Trace("tab.add-page.stub", nil)
}

func (DragTracer) Start(id string, x, y int) {
	logging.Trace("drag.start", map[string]interface{}{"id": id, "x": x, "y": y})
}

func (DragTracer) Drop(active, over string) {
	logging.Trace("drag.drop", map[string]interface{}{"active": active, "over": over})
}

func (DragTracer) Cancel(active string) {
	logging.Trace("drag.cancel", map[string]interface{}{"active": active})
}
