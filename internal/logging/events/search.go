package events

import "github.com/atomicstack/weather-popup/internal/logging"

type SearchTracer struct{}

type SelectionTracer struct{}

var (
	Search    = SearchTracer{}
	Selection = SelectionTracer{}
)

func (SearchTracer) Schedule(seq uint64, text string) {
	logging.Trace("search.schedule", map[string]interface{}{"seq": seq, "text": text})
}

func (SearchTracer) Cancel(seq uint64) {
	logging.Trace("search.cancel", map[string]interface{}{"seq": seq})
}

func (SearchTracer) Fire(seq uint64, text string) {
	logging.Trace("search.fire", map[string]interface{}{"seq": seq, "text": text})
}

func (SearchTracer) Results(seq uint64, count int) {
	logging.Trace("search.results", map[string]interface{}{"seq": seq, "count": count})
}

func (SearchTracer) Stale(seq uint64) {
	logging.Trace("search.stale", map[string]interface{}{"seq": seq})
}

func (SearchTracer) Failed(seq uint64, err error) {
	payload := map[string]interface{}{"seq": seq}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("search.failed", payload)
}

func (SelectionTracer) Navigate(direction string, highlight int) {
	logging.Trace("selection.navigate", map[string]interface{}{"direction": direction, "highlight": highlight})
}

func (SelectionTracer) Commit(source, location string) {
	logging.Trace("selection.commit", map[string]interface{}{"source": source, "location": location})
}

func (SelectionTracer) Dismiss(query string) {
	logging.Trace("selection.dismiss", map[string]interface{}{"query": query})
}
