package weatherapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
}

func TestSearchLocationsReturnsProviderOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "Lon", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"London","region":"City of London, Greater London","country":"United Kingdom","lat":51.52,"lon":-0.11},
			{"id":2,"name":"Londrina","region":"Parana","country":"Brazil","lat":-23.3,"lon":-51.15}
		]`))
	})

	got, err := client.SearchLocations(context.Background(), "Lon")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "London", got[0].Name)
	assert.Equal(t, "Londrina", got[1].Name)
	assert.InDelta(t, -51.15, got[1].Lon, 0.0001)
}

func TestSearchLocationsNullBodyIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})
	got, err := client.SearchLocations(context.Background(), "zz")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestForecastMapsQueryParameters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/forecast.json", r.URL.Path)
		assert.Equal(t, "Paris", q.Get("q"))
		assert.Equal(t, "14", q.Get("days"))
		assert.Equal(t, "yes", q.Get("aqi"))
		assert.Equal(t, "no", q.Get("alerts"))
		_, _ = w.Write([]byte(`{
			"location":{"name":"Paris","region":"Ile-de-France","country":"France","localtime":"2024-05-01 10:00"},
			"current":{"temp_c":18.5,"condition":{"text":"Sunny","code":1000},"humidity":40,"wind_kph":9.4,"pressure_mb":1016,"air_quality":{"pm2_5":8.1}},
			"forecast":{"forecastday":[{"date":"2024-05-01","day":{"maxtemp_c":21,"mintemp_c":11,"avghumidity":55,"maxwind_kph":14,"condition":{"text":"Sunny","code":1000}},"astro":{"sunrise":"06:40 AM","sunset":"09:10 PM"}}]}
		}`))
	})

	got, err := client.Forecast(context.Background(), ForecastRequest{Query: "Paris", Days: 30, AirQuality: true})
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.Location.Name)
	assert.Equal(t, "Sunny", got.Current.Condition.Text)
	require.NotNil(t, got.Current.AirQuality)
	assert.InDelta(t, 8.1, got.Current.AirQuality.PM25, 0.001)
	require.Len(t, got.Forecast.Days, 1)
	assert.Equal(t, "06:40 AM", got.Forecast.Days[0].Astro.Sunrise)
}

func TestCurrentUsesCurrentEndpoint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current.json", r.URL.Path)
		assert.Equal(t, "no", r.URL.Query().Get("aqi"))
		_, _ = w.Write([]byte(`{"location":{"name":"Oslo","country":"Norway"},"current":{"temp_c":-3}}`))
	})
	got, err := client.Current(context.Background(), "Oslo", false)
	require.NoError(t, err)
	assert.Equal(t, "Oslo", got.Location.Name)
	assert.InDelta(t, -3.0, got.Current.TempC, 0.001)
}

func TestProviderErrorPayloadBecomesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	})

	_, err := client.Forecast(context.Background(), ForecastRequest{Query: "nowhere", Days: 5})
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, 1006, apiErr.Code)
	assert.Equal(t, "No matching location found.", err.Error())
	assert.True(t, IsAPI(err))
	assert.False(t, IsNetwork(err))
}

func TestNonJSONErrorFallsBackToStatusText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})
	_, err := client.SearchLocations(context.Background(), "Lon")
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: Bad Gateway", err.Error())
}

func TestTransportFailureBecomesNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	client := NewClient(Config{BaseURL: base, APIKey: "k"})
	_, err := client.SearchLocations(context.Background(), "Lon")
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.Contains(t, err.Error(), "Network error")
}

func TestClampDays(t *testing.T) {
	assert.Equal(t, 1, ClampDays(0))
	assert.Equal(t, 5, ClampDays(5))
	assert.Equal(t, 14, ClampDays(14))
	assert.Equal(t, 14, ClampDays(15))
}
