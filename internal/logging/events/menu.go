package events

import "github.com/atomicstack/stepform/internal/logging"

type MenuTracer struct{}

type ModalTracer struct{}

type modalReason string

const (
	ModalReasonEscape modalReason = "escape"
	ModalReasonEmpty  modalReason = "empty"
)

var (
	Menu  = MenuTracer{}
	Modal = ModalTracer{}
)

func (MenuTracer) Open(target string, x, y int) {
	logging.Trace("menu.open", map[string]interface{}{"target": target, "x": x, "y": y})
}

func (MenuTracer) Place(target string, left, top int) {
	logging.Trace("menu.place", map[string]interface{}{"target": target, "left": left, "top": top})
}

func (MenuTracer) Close(target, reason string) {
	logging.Trace("menu.close", map[string]interface{}{"target": target, "reason": reason})
}

func (MenuTracer) Intent(action, target string) {
	logging.Trace("menu.intent", map[string]interface{}{"action": action, "target": target})
}

func (ModalTracer) Open(anchor string) {
	logging.Trace("modal.open", map[string]interface{}{"anchor": anchor})
}

func (ModalTracer) Submit(anchor, name string) {
	logging.Trace("modal.submit", map[string]interface{}{"anchor": anchor, "name": name})
}

func (ModalTracer) Reject(anchor string, reason modalReason) {
	logging.Trace("modal.reject", map[string]interface{}{"anchor": anchor, "reason": string(reason)})
}

func (ModalTracer) Cancel(anchor string, reason modalReason) {
	logging.Trace("modal.cancel", map[string]interface{}{"anchor": anchor, "reason": string(reason)})
}
