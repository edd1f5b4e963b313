package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/weather-popup/internal/logging/events"
	uistate "github.com/atomicstack/weather-popup/internal/ui/state"
)

// handleKeyMsg routes keys through three layers: the suggestion dropdown
// (only while it is visible), the search field (only while focused), then
// the global shortcuts.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	if key == "ctrl+c" {
		return m.quitWith("interrupt")
	}
	if m.suggestions.Visible {
		switch key {
		case "up":
			m.navigate(uistate.Previous)
			return nil
		case "down":
			m.navigate(uistate.Next)
			return nil
		}
	}
	switch key {
	case "enter":
		return m.handleEnterKey()
	case "esc":
		return m.handleEscapeKey()
	case "ctrl+r":
		return m.refetch()
	}
	if m.focus == FocusSearch {
		return m.handleSearchKey(keyMsg)
	}
	return m.handleShortcut(key)
}

// handleSearchKey feeds the search field. With shortcuts-while-typing the
// space bar refreshes instead of typing, and the theme/hourly toggles fire
// alongside the typed letter.
func (m *Model) handleSearchKey(keyMsg tea.KeyMsg) tea.Cmd {
	key := keyMsg.String()
	if m.opts.ShortcutsWhileTyping {
		switch key {
		case " ":
			return m.refetch()
		case "t", "h":
			shortcut := m.handleShortcut(key)
			_, typed := m.handleTextInput(keyMsg)
			return tea.Batch(shortcut, typed)
		}
	}
	_, cmd := m.handleTextInput(keyMsg)
	return cmd
}

func (m *Model) handleShortcut(key string) tea.Cmd {
	switch key {
	case "q":
		return m.quitWith("quit")
	case " ":
		return m.refetch()
	case "t":
		m.toggleTheme()
	case "h":
		m.hourly = !m.hourly
	case "u":
		m.fahrenheit = !m.fahrenheit
		events.App.Units(m.fahrenheit)
	case "e":
		return m.exportCmd()
	case "g":
		return m.useMyLocation()
	case "/":
		m.setFocus(FocusSearch)
	case "tab", "right":
		m.moveDay(1)
	case "shift+tab", "left":
		m.moveDay(-1)
	}
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.suggestions.Visible {
		if _, ok := m.suggestions.HighlightedCandidate(); ok {
			return m.commit(SourceSuggestion)
		}
	}
	if m.suggestions.TrimmedQuery() != "" {
		return m.commit(SourceFreeText)
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	events.Selection.Dismiss(m.suggestions.Query)
	m.suggestions.ResetQuery()
	m.suggestions.Clear()
	m.cancelSearch()
	m.setFocus(FocusDashboard)
	m.errMsg = ""
	return nil
}

func (m *Model) navigate(dir uistate.Direction) {
	if m.suggestions.Navigate(dir) {
		events.Selection.Navigate(dir.String(), m.suggestions.Highlighted)
	}
}

func (m *Model) moveDay(delta int) {
	data := m.session.Data
	if data == nil || len(data.Forecast.Days) == 0 {
		return
	}
	day := m.selectedDay + delta
	if day < 0 {
		day = 0
	}
	if last := len(data.Forecast.Days) - 1; day > last {
		day = last
	}
	m.selectedDay = day
}

func (m *Model) quitWith(reason string) tea.Cmd {
	events.App.Exit(reason)
	m.quit = true
	return tea.Quit
}
