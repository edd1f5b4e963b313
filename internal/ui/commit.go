package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/weather-popup/internal/logging/events"
	uistate "github.com/atomicstack/weather-popup/internal/ui/state"
)

// Source says how a location was chosen.
type Source int

const (
	SourceSuggestion Source = iota
	SourceFreeText
	SourceGeolocation
)

func (s Source) String() string {
	switch s {
	case SourceSuggestion:
		return "highlighted-suggestion"
	case SourceFreeText:
		return "free-text"
	case SourceGeolocation:
		return "geolocation"
	default:
		return "unknown"
	}
}

// commit resolves the location for source and hands it to the session. It
// is a no-op when the source has nothing to offer.
func (m *Model) commit(source Source) tea.Cmd {
	var resolved string
	switch source {
	case SourceSuggestion:
		loc, ok := m.suggestions.HighlightedCandidate()
		if !ok {
			return nil
		}
		resolved = uistate.ResolvedName(loc)
	case SourceFreeText:
		resolved = m.suggestions.TrimmedQuery()
	case SourceGeolocation:
		if m.coords == nil {
			return nil
		}
		resolved = m.coords.String()
	}
	if resolved == "" {
		return nil
	}
	events.Selection.Commit(source.String(), resolved)
	m.suggestions.ResetQuery()
	m.suggestions.Clear()
	m.cancelSearch()
	m.setFocus(FocusDashboard)
	m.errMsg = ""
	return m.setLocation(resolved)
}
