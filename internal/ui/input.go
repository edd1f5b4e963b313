package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/weather-popup/internal/logging/events"
)

// handleTextInput applies editing keys to the search query. It reports
// whether the key was consumed and returns the debounce command when the
// query text changed.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	s := m.suggestions
	switch msg.String() {
	case "ctrl+u":
		if !s.DeleteToStart() {
			return true, nil
		}
		events.Input.Backspace(s.Query)
		return true, m.queryChanged()
	case "ctrl+w", "alt+backspace":
		if !s.DeleteWordBackward() {
			return true, nil
		}
		events.Input.WordBackspace(s.Query)
		return true, m.queryChanged()
	case "ctrl+a", "home":
		if s.MoveCursorStart() {
			events.Input.Cursor(s.QueryCursor)
		}
		return true, nil
	case "ctrl+e", "end":
		if s.MoveCursorEnd() {
			events.Input.Cursor(s.QueryCursor)
		}
		return true, nil
	case "alt+b", "ctrl+left":
		if s.MoveCursorWordBackward() {
			events.Input.CursorWord(s.QueryCursor)
		}
		return true, nil
	case "alt+f", "ctrl+right":
		if s.MoveCursorWordForward() {
			events.Input.CursorWord(s.QueryCursor)
		}
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !s.DeleteRuneBackward() {
			return true, nil
		}
		events.Input.Backspace(s.Query)
		return true, m.queryChanged()
	case tea.KeyDelete:
		if !s.DeleteRuneForward() {
			return true, nil
		}
		events.Input.Backspace(s.Query)
		return true, m.queryChanged()
	case tea.KeyLeft:
		if s.MoveCursorRuneBackward() {
			events.Input.Cursor(s.QueryCursor)
		}
		return true, nil
	case tea.KeyRight:
		if s.MoveCursorRuneForward() {
			events.Input.Cursor(s.QueryCursor)
		}
		return true, nil
	case tea.KeySpace:
		return true, m.appendToQuery(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return true, m.appendToQuery(string(msg.Runes))
	}
	return false, nil
}

func (m *Model) appendToQuery(text string) tea.Cmd {
	if !m.suggestions.InsertText(text) {
		return nil
	}
	events.Input.Append(m.suggestions.Query)
	return m.queryChanged()
}

// queryChanged restarts the quiet period for the edited query. Queries too
// short to search clear the dropdown straight away.
func (m *Model) queryChanged() tea.Cmd {
	m.suggestions.Unhighlight()
	m.errMsg = ""
	ticket, ok := m.debouncer.Schedule(m.suggestions.Query)
	if !ok {
		m.suggestions.Clear()
		return nil
	}
	events.Search.Schedule(ticket.Seq, ticket.Text)
	return debounceCmd(m.debouncer.Quiet(), ticket)
}

// searchPrompt renders the search line with its caret.
func (m *Model) searchPrompt() string {
	st := m.styles
	prompt := "⌕ "
	if m.focus == FocusSearch {
		prompt = st.Prompt.Render(prompt)
	} else {
		prompt = st.PromptBlurred.Render(prompt)
	}
	text := m.suggestions.Query
	if text == "" {
		placeholder := "Search for a city or location..."
		if m.focus != FocusSearch {
			return prompt + st.Placeholder.Render(placeholder+"  (press / to search)")
		}
		runes := []rune(placeholder)
		m.queryCursor.TextStyle = st.Placeholder.Copy()
		caret := m.renderCaret(string(runes[0]))
		return prompt + caret + st.Placeholder.Render(string(runes[1:]))
	}
	if m.focus != FocusSearch {
		return prompt + st.Input.Render(text)
	}
	m.queryCursor.TextStyle = st.Input.Copy()
	runes := []rune(text)
	pos := m.suggestions.QueryCursorPos()
	before := st.Input.Render(string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = st.Input.Render(string(runes[pos+1:]))
	}
	return prompt + before + m.renderCaret(caretRune) + after
}

func (m *Model) renderCaret(char string) string {
	if char == "" {
		char = " "
	}
	m.queryCursor.SetChar(char)
	return m.queryCursor.View()
}
