package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API Docs: https://www.weatherapi.com/docs/
// Sample request: https://api.weatherapi.com/v1/forecast.json?key=KEY&q=London&days=5&aqi=yes&alerts=yes
const (
	DefaultBaseURL  = "https://api.weatherapi.com/v1"
	MaxForecastDays = 14
)

// Config carries the provider endpoint and credentials.
type Config struct {
	BaseURL string
	APIKey  string
	// MinInterval spaces consecutive requests; zero disables throttling.
	MinInterval time.Duration
	HTTPClient  *http.Client
}

// ForecastRequest maps 1:1 onto the forecast.json query string.
type ForecastRequest struct {
	Query      string
	Days       int
	AirQuality bool
	Alerts     bool
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	throttle   *throttle
}

func NewClient(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		apiKey:     cfg.APIKey,
		throttle:   newThrottle(cfg.MinInterval),
	}
}

// SearchLocations resolves free text into candidate locations, in provider order.
func (c *Client) SearchLocations(ctx context.Context, text string) ([]Location, error) {
	var out []Location
	if err := c.get(ctx, "/search.json", url.Values{"q": {text}}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Location{}
	}
	return out, nil
}

// Forecast fetches current conditions plus a multi-day forecast.
func (c *Client) Forecast(ctx context.Context, req ForecastRequest) (*Forecast, error) {
	params := url.Values{}
	params.Set("q", req.Query)
	params.Set("days", strconv.Itoa(ClampDays(req.Days)))
	params.Set("aqi", yesNo(req.AirQuality))
	params.Set("alerts", yesNo(req.Alerts))
	var out Forecast
	if err := c.get(ctx, "/forecast.json", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Current fetches the current conditions only.
func (c *Client) Current(ctx context.Context, query string, airQuality bool) (*CurrentWeather, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("aqi", yesNo(airQuality))
	var out CurrentWeather
	if err := c.get(ctx, "/current.json", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClampDays bounds a forecast length to what the provider serves.
func ClampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > MaxForecastDays {
		return MaxForecastDays
	}
	return days
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, target interface{}) error {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()

	if err := c.throttle.wait(ctx); err != nil {
		return &NetworkError{Endpoint: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Endpoint: endpoint, Status: resp.StatusCode}
		var envelope errorEnvelope
		if body, readErr := io.ReadAll(resp.Body); readErr == nil && json.Unmarshal(body, &envelope) == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &APIError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Message:  fmt.Sprintf("failed to decode response: %v", err),
		}
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
