package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/weather-popup/internal/logging"
	"github.com/atomicstack/weather-popup/internal/logging/events"
	"github.com/atomicstack/weather-popup/internal/ui/command"
	uistate "github.com/atomicstack/weather-popup/internal/ui/state"
	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

type debounceMsg struct {
	ticket uistate.Ticket
}

type searchResultMsg struct {
	seq     uint64
	text    string
	results []weatherapi.Location
	err     error
}

func debounceCmd(quiet time.Duration, ticket uistate.Ticket) tea.Cmd {
	return tea.Tick(quiet, func(time.Time) tea.Msg {
		return debounceMsg{ticket: ticket}
	})
}

func (m *Model) handleDebounceMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(debounceMsg)
	if !ok {
		return nil
	}
	text, ok := m.debouncer.Fire(tick.ticket)
	if !ok {
		return nil
	}
	events.Search.Fire(tick.ticket.Seq, text)
	m.suggestions.FetchStarted()
	return m.searchCmd(tick.ticket.Seq, text)
}

func (m *Model) searchCmd(seq uint64, text string) tea.Cmd {
	service := m.service
	return m.bus.Execute(command.Request{
		ID:    "search",
		Label: text,
		Handler: func(ctx context.Context) tea.Msg {
			if service == nil {
				return searchResultMsg{seq: seq, text: text, err: fmt.Errorf("no weather service configured")}
			}
			results, err := service.SearchLocations(ctx, text)
			return searchResultMsg{seq: seq, text: text, results: results, err: err}
		},
	})
}

// handleSearchResultMsg applies suggestions for the latest search only.
// Failures are logged and shown as an empty list.
func (m *Model) handleSearchResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(searchResultMsg)
	if !ok {
		return nil
	}
	if !m.debouncer.Current(result.seq) {
		events.Search.Stale(result.seq)
		return nil
	}
	if result.err != nil {
		logging.Error(fmt.Errorf("search suggestions for %q: %w", result.text, result.err))
		events.Search.Failed(result.seq, result.err)
		m.suggestions.FetchFailed()
		return nil
	}
	events.Search.Results(result.seq, len(result.results))
	m.suggestions.FetchSucceeded(result.results)
	return nil
}

func (m *Model) cancelSearch() {
	events.Search.Cancel(m.debouncer.Cancel())
}
