package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/weather-popup/internal/backend"
	"github.com/atomicstack/weather-popup/internal/geo"
	"github.com/atomicstack/weather-popup/internal/logging"
	"github.com/atomicstack/weather-popup/internal/logging/events"
)

func waitForBackendEvent(l *backend.Locator) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-l.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.locator != nil {
		waitCmd := waitForBackendEvent(m.locator)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.locator = nil
	if m.coords == nil && m.geoErr == nil {
		m.geoErr = &geo.Error{Code: geo.CodeUnsupported, Message: "Geolocation not supported"}
	}
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if evt.Kind != backend.KindGeolocation {
		return nil
	}
	if evt.Err != nil {
		m.geoErr = evt.Err
		logging.Error(evt.Err)
		events.Geo.Failed(evt.Err)
		if m.geoRequested {
			m.geoRequested = false
			m.errMsg = "Unable to get your location"
		}
		return nil
	}
	coords, ok := evt.Data.(geo.Coordinates)
	if !ok {
		return nil
	}
	m.coords = &coords
	m.geoErr = nil
	events.Geo.Resolved(coords.String())
	if m.geoRequested {
		m.geoRequested = false
		return m.commit(SourceGeolocation)
	}
	return nil
}

// useMyLocation commits the device position, or waits for the lookup to
// finish when it is still running.
func (m *Model) useMyLocation() tea.Cmd {
	if m.coords != nil {
		return m.commit(SourceGeolocation)
	}
	if m.geoErr != nil {
		m.errMsg = "Location unavailable: " + geoMessage(m.geoErr)
		return nil
	}
	if m.locator == nil {
		m.errMsg = "Location unavailable: Geolocation not supported"
		return nil
	}
	m.geoRequested = true
	m.setInfo("Locating…")
	return nil
}

// locationAvailable mirrors the "Use My Location" button: shown only after a
// successful lookup.
func (m *Model) locationAvailable() bool {
	return m.coords != nil
}

func geoMessage(err error) string {
	var geoErr *geo.Error
	if errors.As(err, &geoErr) {
		return geoErr.Message
	}
	return err.Error()
}
