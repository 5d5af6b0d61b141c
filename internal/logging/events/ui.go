package events

import "github.com/atomicstack/stepform/internal/logging"

type JumpTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Jump    = JumpTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (JumpTracer) Start(focus int) {
	logging.Trace("jump.start", map[string]interface{}{"focus": focus})
}

func (JumpTracer) Query(query string, match int) {
	logging.Trace("jump.query", map[string]interface{}{"query": query, "match": match})
}

func (JumpTracer) Cancel(query string) {
	logging.Trace("jump.cancel", map[string]interface{}{"query": query})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, target string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "target": target})
}

func (CommandTracer) Skip(id, target string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "target": target})
}

func (CommandTracer) NoOp(id, target string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "target": target})
}

func (CommandTracer) Result(id, target, outcome string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "target": target, "outcome": outcome})
}
