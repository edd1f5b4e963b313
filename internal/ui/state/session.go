package state

import (
	"time"

	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

// FetchTicket tags a forecast fetch with the location it was issued for.
type FetchTicket struct {
	Seq      uint64
	Location string
}

// Session is the location currently displayed and the state of its forecast.
type Session struct {
	Location  string
	Data      *weatherapi.Forecast
	Loading   bool
	Err       error
	UpdatedAt time.Time

	seq uint64
}

// NewSession returns a session for location without starting a fetch.
func NewSession(location string) *Session {
	return &Session{Location: location}
}

// SetLocation replaces the active location and returns the ticket for the one
// fetch it needs. Results for earlier tickets are discarded by Apply.
func (s *Session) SetLocation(location string) FetchTicket {
	s.Location = location
	return s.start()
}

// Refetch re-issues the fetch for the current location.
func (s *Session) Refetch() (FetchTicket, bool) {
	if s.Location == "" {
		return FetchTicket{}, false
	}
	return s.start(), true
}

func (s *Session) start() FetchTicket {
	s.seq++
	s.Loading = true
	s.Err = nil
	return FetchTicket{Seq: s.seq, Location: s.Location}
}

// Current reports whether t is the latest fetch for the active location.
func (s *Session) Current(t FetchTicket) bool {
	return t.Seq == s.seq && t.Location == s.Location
}

// Apply records the outcome of a fetch. It returns false and leaves the
// session untouched when the ticket has been superseded. Failures keep the
// previously displayed data.
func (s *Session) Apply(t FetchTicket, data *weatherapi.Forecast, err error, now time.Time) bool {
	if !s.Current(t) {
		return false
	}
	s.Loading = false
	if err != nil {
		s.Err = err
		return true
	}
	s.Data = data
	s.Err = nil
	s.UpdatedAt = now
	return true
}

// ErrorMessage is the user-facing text of the last failure.
func (s *Session) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}
