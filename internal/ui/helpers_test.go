package ui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/weather-popup/internal/prefs"
	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

type stubService struct {
	mu          sync.Mutex
	searches    []string
	forecasts   []weatherapi.ForecastRequest
	results     map[string][]weatherapi.Location
	searchErr   error
	forecastErr error
}

func newStubService() *stubService {
	return &stubService{results: map[string][]weatherapi.Location{}}
}

func (s *stubService) SearchLocations(_ context.Context, text string) ([]weatherapi.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches = append(s.searches, text)
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.results[text], nil
}

func (s *stubService) Forecast(_ context.Context, req weatherapi.ForecastRequest) (*weatherapi.Forecast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forecasts = append(s.forecasts, req)
	if s.forecastErr != nil {
		return nil, s.forecastErr
	}
	return sampleForecast(req.Query), nil
}

func (s *stubService) searchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.searches)
}

func (s *stubService) forecastCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forecasts)
}

func (s *stubService) lastForecast() weatherapi.ForecastRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.forecasts) == 0 {
		return weatherapi.ForecastRequest{}
	}
	return s.forecasts[len(s.forecasts)-1]
}

func sampleForecast(name string) *weatherapi.Forecast {
	data := &weatherapi.Forecast{
		Location: weatherapi.Place{Name: name, Region: "Region", Country: "Country", LocalTime: "2024-05-01 14:05"},
		Current: weatherapi.Current{
			LastUpdated: "2024-05-01 14:00",
			TempC:       21.6,
			IsDay:       1,
			Condition:   weatherapi.Condition{Text: "Sunny", Code: 1000},
			WindKPH:     10.1,
			WindDir:     "WSW",
			PressureMB:  1012,
			Humidity:    40,
			FeelsLikeC:  23,
			VisKM:       10,
			UV:          5,
		},
	}
	for i, date := range []string{"2024-05-01", "2024-05-02", "2024-05-03"} {
		data.Forecast.Days = append(data.Forecast.Days, weatherapi.ForecastDay{
			Date: date,
			Day: weatherapi.Day{
				MaxTempC:    25 + float64(i),
				MinTempC:    12,
				AvgHumidity: 50,
				MaxWindKPH:  18.4,
				Condition:   weatherapi.Condition{Text: "Partly cloudy", Code: 1003},
			},
			Astro: weatherapi.Astro{Sunrise: "06:12 AM", Sunset: "07:45 PM"},
			Hour: []weatherapi.Hour{
				{Time: date + " 00:00", TempC: 14, Condition: weatherapi.Condition{Text: "Clear", Code: 1000}, Humidity: 70, WindKPH: 5},
				{Time: date + " 13:00", TempC: 24, IsDay: 1, Condition: weatherapi.Condition{Text: "Sunny", Code: 1000}, Humidity: 35, WindKPH: 12},
			},
		})
	}
	return data
}

var london = weatherapi.Location{Name: "London", Region: "England", Country: "UK", Lat: 51.5, Lon: -0.12}

func testOptions(svc *stubService, store prefs.Store) Options {
	return Options{
		Service:     svc,
		Prefs:       store,
		QuietPeriod: time.Millisecond,
		Days:        5,
		ShowFooter:  true,
		Now:         func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func newTestHarness(t *testing.T, svc *stubService) (*Harness, prefs.Store) {
	t.Helper()
	store := prefs.NewMemoryStore()
	return NewHarness(NewModel(testOptions(svc, store))), store
}

func keyRunes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func keyType(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func mustContain(t *testing.T, view, want string) {
	t.Helper()
	if !strings.Contains(view, want) {
		t.Fatalf("expected view to contain %q, view =\n%s", want, view)
	}
}

func mustNotContain(t *testing.T, view, unwanted string) {
	t.Helper()
	if strings.Contains(view, unwanted) {
		t.Fatalf("expected view not to contain %q, view =\n%s", unwanted, view)
	}
}

// searchFor focuses the search field and pastes text in one key event.
func searchFor(h *Harness, text string) {
	if h.Model().Focus() != FocusSearch {
		h.Send(keyRunes("/"))
	}
	h.Send(keyRunes(text))
}
