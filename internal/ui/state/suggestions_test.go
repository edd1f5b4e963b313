package state

import (
	"fmt"
	"testing"

	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

func candidates(n int) []weatherapi.Location {
	out := make([]weatherapi.Location, n)
	for i := range out {
		out[i] = weatherapi.Location{
			ID:      i + 1,
			Name:    fmt.Sprintf("City %d", i),
			Region:  "Region",
			Country: "Country",
			Lat:     float64(i),
			Lon:     float64(-i),
		}
	}
	return out
}

func TestFetchLifecycle(t *testing.T) {
	s := NewSuggestions()
	if s.Visible || s.Highlighted != NoHighlight {
		t.Fatalf("expected hidden empty list, got %+v", s)
	}
	s.FetchStarted()
	if !s.Visible || !s.Loading {
		t.Fatalf("expected visible loading list")
	}
	s.FetchSucceeded(candidates(3))
	if s.Loading || !s.Visible || len(s.Candidates) != 3 || s.Highlighted != NoHighlight {
		t.Fatalf("unexpected state after success: %+v", s)
	}
	s.Navigate(Next)
	s.FetchFailed()
	if len(s.Candidates) != 0 || !s.Visible || s.Loading || s.Highlighted != NoHighlight {
		t.Fatalf("unexpected state after failure: %+v", s)
	}
}

func TestFetchSucceededCapsStoredList(t *testing.T) {
	s := NewSuggestions()
	s.FetchSucceeded(candidates(12))
	if len(s.Candidates) != MaxSuggestions {
		t.Fatalf("expected %d candidates, got %d", MaxSuggestions, len(s.Candidates))
	}
	for i := 0; i < 20; i++ {
		s.Navigate(Next)
	}
	if s.Highlighted != MaxSuggestions-1 {
		t.Fatalf("expected highlight clamped to capped list, got %d", s.Highlighted)
	}
}

func TestNavigateNextClampsWithoutWrapping(t *testing.T) {
	for _, n := range []int{1, 3, 8} {
		s := NewSuggestions()
		s.FetchSucceeded(candidates(n))
		for i := 0; i < n+5; i++ {
			s.Navigate(Next)
		}
		if s.Highlighted != n-1 {
			t.Fatalf("n=%d: expected highlight %d, got %d", n, n-1, s.Highlighted)
		}
	}
}

func TestNavigatePreviousDeselects(t *testing.T) {
	s := NewSuggestions()
	s.FetchSucceeded(candidates(2))
	s.Navigate(Next)
	if s.Highlighted != 0 {
		t.Fatalf("expected highlight 0, got %d", s.Highlighted)
	}
	s.Navigate(Previous)
	if s.Highlighted != NoHighlight {
		t.Fatalf("expected no highlight, got %d", s.Highlighted)
	}
	if s.Navigate(Previous) {
		t.Fatalf("expected previous from none to be a no-op")
	}
	if s.Highlighted != NoHighlight {
		t.Fatalf("expected highlight to stay none, got %d", s.Highlighted)
	}
}

func TestNavigateEmptyIsNoOp(t *testing.T) {
	s := NewSuggestions()
	if s.Navigate(Next) || s.Navigate(Previous) {
		t.Fatalf("expected navigation on empty list to do nothing")
	}
	if s.Highlighted != NoHighlight {
		t.Fatalf("expected no highlight, got %d", s.Highlighted)
	}
}

func TestReplacingCandidatesResetsHighlight(t *testing.T) {
	s := NewSuggestions()
	s.FetchSucceeded(candidates(5))
	s.HighlightAt(4)
	s.FetchSucceeded(candidates(2))
	if s.Highlighted != NoHighlight {
		t.Fatalf("expected highlight reset, got %d", s.Highlighted)
	}
	if _, ok := s.HighlightedCandidate(); ok {
		t.Fatalf("expected no highlighted candidate")
	}
}

func TestHighlightAtBounds(t *testing.T) {
	s := NewSuggestions()
	s.FetchSucceeded(candidates(2))
	if s.HighlightAt(2) || s.HighlightAt(-1) {
		t.Fatalf("expected out-of-range highlight to be rejected")
	}
	if !s.HighlightAt(1) {
		t.Fatalf("expected highlight to move")
	}
	loc, ok := s.HighlightedCandidate()
	if !ok || loc.Name != "City 1" {
		t.Fatalf("unexpected highlighted candidate %+v", loc)
	}
}

func TestClearKeepsQuery(t *testing.T) {
	s := NewSuggestions()
	s.InsertText("Lon")
	s.FetchSucceeded(candidates(1))
	s.Clear()
	if s.Visible || s.Loading || len(s.Candidates) != 0 || s.Highlighted != NoHighlight {
		t.Fatalf("expected cleared list, got %+v", s)
	}
	if s.Query != "Lon" {
		t.Fatalf("expected query untouched, got %q", s.Query)
	}
}

func TestRevealRequiresCandidatesAndQuery(t *testing.T) {
	s := NewSuggestions()
	s.InsertText("Lon")
	s.FetchSucceeded(candidates(1))
	s.Visible = false
	if !s.Reveal() || !s.Visible {
		t.Fatalf("expected cached candidates revealed")
	}
	s.Visible = false
	s.ResetQuery()
	s.InsertText("L")
	if s.Reveal() {
		t.Fatalf("expected short query not to reveal")
	}
}

func TestResolvedName(t *testing.T) {
	loc := weatherapi.Location{Name: "London", Region: "England", Country: "UK", Lat: 51.5, Lon: -0.12}
	if got := ResolvedName(loc); got != "London, England, UK" {
		t.Fatalf("unexpected resolved name %q", got)
	}
}

func TestInFlightSearchHidesOldCandidates(t *testing.T) {
	s := NewSuggestions()
	s.FetchSucceeded(candidates(3))
	s.Navigate(Next)
	s.FetchStarted()

	if _, ok := s.HighlightedCandidate(); ok {
		t.Fatalf("expected no highlighted candidate while loading")
	}
	if s.Navigate(Next) || s.Navigate(Previous) {
		t.Fatalf("expected navigation to be ignored while loading")
	}
	if s.HighlightAt(2) {
		t.Fatalf("expected pointer highlight to be ignored while loading")
	}
}
