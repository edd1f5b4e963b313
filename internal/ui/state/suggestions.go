package state

import (
	"fmt"

	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

const (
	// MaxSuggestions caps the stored candidate list; only these are selectable.
	MaxSuggestions = 8
	// NoHighlight marks the absence of a highlighted candidate.
	NoHighlight = -1
	// MinQueryRunes is the shortest trimmed query that triggers a search.
	MinQueryRunes = 2
)

// Direction is a keyboard navigation step through the candidate list.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// Suggestions holds the query being typed and the candidate list it produced.
type Suggestions struct {
	Query       string
	QueryCursor int

	Candidates  []weatherapi.Location
	Highlighted int
	Visible     bool
	Loading     bool
}

// NewSuggestions returns an empty, hidden list.
func NewSuggestions() *Suggestions {
	return &Suggestions{Highlighted: NoHighlight}
}

// FetchStarted marks a search as in flight and shows the dropdown.
func (s *Suggestions) FetchStarted() {
	s.Loading = true
	s.Visible = true
}

// FetchSucceeded replaces the candidates with at most MaxSuggestions entries.
func (s *Suggestions) FetchSucceeded(candidates []weatherapi.Location) {
	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}
	s.Candidates = append([]weatherapi.Location(nil), candidates...)
	s.Loading = false
	s.Highlighted = NoHighlight
	s.Visible = true
}

// FetchFailed empties the list but keeps it visible so the empty state shows.
func (s *Suggestions) FetchFailed() {
	s.Candidates = nil
	s.Loading = false
	s.Highlighted = NoHighlight
	s.Visible = true
}

// Navigate moves the highlight without wrapping. Previous from the first
// candidate removes the highlight. Candidates hidden behind an in-flight
// search cannot be reached.
func (s *Suggestions) Navigate(dir Direction) bool {
	n := len(s.Candidates)
	if n == 0 || s.Loading {
		return false
	}
	old := s.Highlighted
	switch dir {
	case Next:
		if s.Highlighted == NoHighlight {
			s.Highlighted = 0
		} else if s.Highlighted < n-1 {
			s.Highlighted++
		}
	case Previous:
		if s.Highlighted > NoHighlight {
			s.Highlighted--
		}
	}
	return s.Highlighted != old
}

// HighlightAt highlights the candidate under the pointer.
func (s *Suggestions) HighlightAt(index int) bool {
	if s.Loading || index < 0 || index >= len(s.Candidates) || index == s.Highlighted {
		return false
	}
	s.Highlighted = index
	return true
}

// Unhighlight drops the highlight, as when the query is edited.
func (s *Suggestions) Unhighlight() {
	s.Highlighted = NoHighlight
}

// Reveal shows previously fetched candidates again, as when the search field
// regains focus.
func (s *Suggestions) Reveal() bool {
	if s.Visible || len(s.Candidates) == 0 || len([]rune(s.TrimmedQuery())) < MinQueryRunes {
		return false
	}
	s.Visible = true
	return true
}

// Clear resets the list to its empty, hidden state. The query is untouched.
func (s *Suggestions) Clear() {
	s.Candidates = nil
	s.Highlighted = NoHighlight
	s.Visible = false
	s.Loading = false
}

// HighlightedCandidate returns the highlighted candidate, if any. Nothing is
// highlighted while a search is in flight.
func (s *Suggestions) HighlightedCandidate() (weatherapi.Location, bool) {
	if s.Loading || s.Highlighted < 0 || s.Highlighted >= len(s.Candidates) {
		return weatherapi.Location{}, false
	}
	return s.Candidates[s.Highlighted], true
}

// ResolvedName is the "name, region, country" form committed for a candidate.
func ResolvedName(loc weatherapi.Location) string {
	return fmt.Sprintf("%s, %s, %s", loc.Name, loc.Region, loc.Country)
}
