package events

import "github.com/atomicstack/weather-popup/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}

func (AppTracer) Theme(dark bool) {
	logging.Trace("app.theme", map[string]interface{}{"dark": dark})
}

func (AppTracer) Units(fahrenheit bool) {
	logging.Trace("app.units", map[string]interface{}{"fahrenheit": fahrenheit})
}

func (AppTracer) Export(path string) {
	logging.Trace("app.export", map[string]interface{}{"path": path})
}
