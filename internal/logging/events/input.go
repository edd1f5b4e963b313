package events

import "github.com/atomicstack/weather-popup/internal/logging"

type InputTracer struct{}

type CommandTracer struct{}

var (
	Input   = InputTracer{}
	Command = CommandTracer{}
)

func (InputTracer) Append(query string) {
	logging.Trace("input.append", map[string]interface{}{"query": query})
}

func (InputTracer) Backspace(query string) {
	logging.Trace("input.backspace", map[string]interface{}{"query": query})
}

func (InputTracer) WordBackspace(query string) {
	logging.Trace("input.word-backspace", map[string]interface{}{"query": query})
}

func (InputTracer) Cursor(pos int) {
	logging.Trace("input.cursor", map[string]interface{}{"cursor": pos})
}

func (InputTracer) CursorWord(pos int) {
	logging.Trace("input.cursor-word", map[string]interface{}{"cursor": pos})
}

func (InputTracer) Focus(target string) {
	logging.Trace("input.focus", map[string]interface{}{"target": target})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
