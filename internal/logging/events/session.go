package events

import "github.com/atomicstack/weather-popup/internal/logging"

type SessionTracer struct{}

type GeoTracer struct{}

var (
	Session = SessionTracer{}
	Geo     = GeoTracer{}
)

func (SessionTracer) Fetch(seq uint64, location string) {
	logging.Trace("session.fetch", map[string]interface{}{"seq": seq, "location": location})
}

func (SessionTracer) Loaded(seq uint64, location string) {
	logging.Trace("session.loaded", map[string]interface{}{"seq": seq, "location": location})
}

func (SessionTracer) Stale(seq uint64, location string) {
	logging.Trace("session.stale", map[string]interface{}{"seq": seq, "location": location})
}

func (SessionTracer) Failed(seq uint64, err error) {
	payload := map[string]interface{}{"seq": seq}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("session.failed", payload)
}

func (GeoTracer) Resolved(coords string) {
	logging.Trace("geo.resolved", map[string]interface{}{"coords": coords})
}

func (GeoTracer) Failed(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("geo.failed", payload)
}
