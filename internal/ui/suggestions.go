package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

const (
	noCitiesText      = "No cities found. Try a different search term."
	searchingText     = "Searching cities..."
	suggestionHelpTxt = "Use ↑↓ arrow keys to navigate, Enter to select"
)

func (m *Model) suggestionLines() []styledLine {
	st := m.styles
	s := m.suggestions
	if s.Loading {
		return []styledLine{{text: m.spin.View() + " " + st.Loading.Render(searchingText), raw: true}}
	}
	if len(s.Candidates) == 0 {
		return []styledLine{{text: noCitiesText, style: st.Info}}
	}
	query := s.TrimmedQuery()
	lines := make([]styledLine, 0, len(s.Candidates)+1)
	for i, loc := range s.Candidates {
		lines = append(lines, styledLine{text: m.suggestionRow(loc, query, i == s.Highlighted), raw: true})
	}
	lines = append(lines, styledLine{text: suggestionHelpTxt, style: st.Muted})
	return lines
}

func (m *Model) suggestionRow(loc weatherapi.Location, query string, selected bool) string {
	st := m.styles
	detail := suggestionDetail(loc)
	if selected {
		return st.SelectedSuggestion.Render("› " + loc.Name + "  " + detail)
	}
	return "  " + emphasize(loc.Name, query, st.Suggestion, st.Match) + "  " + st.SuggestionDetail.Render(detail)
}

func suggestionDetail(loc weatherapi.Location) string {
	if loc.Region != "" {
		return loc.Region + ", " + loc.Country
	}
	return loc.Country
}

// emphasize renders the runes of text that fuzzily match query in the match
// style. Text that does not match renders plainly.
func emphasize(text, query string, base, match *lipgloss.Style) string {
	query = strings.TrimSpace(query)
	if query == "" || !fuzzy.MatchNormalizedFold(query, text) {
		return base.Render(text)
	}
	marks := matchPositions(text, query)
	if len(marks) == 0 {
		return base.Render(text)
	}
	var b strings.Builder
	runes := []rune(text)
	start := 0
	for start < len(runes) {
		end := start
		hit := marks[start]
		for end < len(runes) && marks[end] == hit {
			end++
		}
		chunk := string(runes[start:end])
		if hit {
			b.WriteString(match.Render(chunk))
		} else {
			b.WriteString(base.Render(chunk))
		}
		start = end
	}
	return b.String()
}

// matchPositions greedily pairs each query rune with the next equal rune of
// text, ignoring case.
func matchPositions(text, query string) map[int]bool {
	runes := []rune(text)
	marks := make(map[int]bool, len(query))
	i := 0
	for _, q := range query {
		if unicode.IsSpace(q) {
			continue
		}
		found := false
		for i < len(runes) {
			if foldEqual(runes[i], q) {
				marks[i] = true
				i++
				found = true
				break
			}
			i++
		}
		if !found {
			return nil
		}
	}
	return marks
}

func foldEqual(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}
