package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/weather-popup/internal/logging/events"
)

// handleMouseMsg mirrors the dropdown's pointer behaviour: hovering a row
// highlights it and a left click commits it. Clicking the search line focuses
// it and clicking anywhere else blurs it.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Button == tea.MouseButtonWheelUp || ev.Button == tea.MouseButtonWheelDown {
		return nil
	}
	row, onRow := m.suggestionAt(ev.Y)
	switch ev.Action {
	case tea.MouseActionMotion:
		if onRow && m.suggestions.HighlightAt(row) {
			events.Selection.Navigate("hover", row)
		}
		return nil
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return nil
		}
		if onRow {
			m.suggestions.HighlightAt(row)
			return m.commit(SourceSuggestion)
		}
		if ev.Y == promptRow {
			m.setFocus(FocusSearch)
			return nil
		}
		if ev.Y != titleRow && m.focus == FocusSearch {
			m.setFocus(FocusDashboard)
		}
	}
	return nil
}

func (m *Model) suggestionAt(y int) (int, bool) {
	s := m.suggestions
	if !s.Visible || s.Loading || len(s.Candidates) == 0 {
		return 0, false
	}
	idx := y - suggestionFirstRow
	if idx < 0 || idx >= len(s.Candidates) {
		return 0, false
	}
	return idx, true
}
