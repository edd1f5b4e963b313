package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/weather-popup/internal/logging"
	"github.com/atomicstack/weather-popup/internal/logging/events"
	"github.com/atomicstack/weather-popup/internal/prefs"
	"github.com/atomicstack/weather-popup/internal/ui/command"
	uistate "github.com/atomicstack/weather-popup/internal/ui/state"
	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

type forecastLoadedMsg struct {
	ticket uistate.FetchTicket
	data   *weatherapi.Forecast
	err    error
}

// setLocation makes location the active session location, persists it and
// returns the fetch for it.
func (m *Model) setLocation(location string) tea.Cmd {
	ticket := m.session.SetLocation(location)
	m.selectedDay = 0
	m.persistLocation(location)
	return m.fetchForecast(ticket)
}

func (m *Model) refetch() tea.Cmd {
	ticket, ok := m.session.Refetch()
	if !ok {
		return nil
	}
	return m.fetchForecast(ticket)
}

func (m *Model) fetchForecast(ticket uistate.FetchTicket) tea.Cmd {
	events.Session.Fetch(ticket.Seq, ticket.Location)
	service := m.service
	req := weatherapi.ForecastRequest{
		Query:      ticket.Location,
		Days:       m.opts.Days,
		AirQuality: m.opts.AirQuality,
		Alerts:     m.opts.Alerts,
	}
	return m.bus.Execute(command.Request{
		ID:    "forecast",
		Label: ticket.Location,
		Handler: func(ctx context.Context) tea.Msg {
			if service == nil {
				return forecastLoadedMsg{ticket: ticket, err: fmt.Errorf("no weather service configured")}
			}
			data, err := service.Forecast(ctx, req)
			return forecastLoadedMsg{ticket: ticket, data: data, err: err}
		},
	})
}

func (m *Model) handleForecastLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(forecastLoadedMsg)
	if !ok {
		return nil
	}
	if !m.session.Apply(loaded.ticket, loaded.data, loaded.err, m.now()) {
		events.Session.Stale(loaded.ticket.Seq, loaded.ticket.Location)
		return nil
	}
	if loaded.err != nil {
		logging.Error(fmt.Errorf("forecast for %q: %w", loaded.ticket.Location, loaded.err))
		events.Session.Failed(loaded.ticket.Seq, loaded.err)
		return nil
	}
	events.Session.Loaded(loaded.ticket.Seq, loaded.ticket.Location)
	if days := len(loaded.data.Forecast.Days); m.selectedDay >= days {
		m.selectedDay = 0
	}
	return nil
}

func (m *Model) persistLocation(location string) {
	if err := prefs.SetLocation(m.prefs, location); err != nil {
		logging.Error(err)
		m.errMsg = "Unable to save location"
	}
}

func (m *Model) toggleTheme() {
	m.dark = !m.dark
	m.applyTheme()
	events.App.Theme(m.dark)
	if err := prefs.SetDarkMode(m.prefs, m.dark); err != nil {
		logging.Error(err)
		m.errMsg = "Unable to save theme"
	}
}
