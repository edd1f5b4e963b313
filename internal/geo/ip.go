package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// API Docs: https://ip-api.com/docs/api:json
// Sample request: http://ip-api.com/json?fields=status,message,lat,lon,city
const (
	defaultIPURL = "http://ip-api.com/json"
)

// IPProvider approximates the device position from its public IP address.
type IPProvider struct {
	httpClient *http.Client
	baseURL    string
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
}

func NewIPProvider(baseURL string) *IPProvider {
	if baseURL == "" {
		baseURL = defaultIPURL
	}
	return &IPProvider{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

func (p *IPProvider) Locate(ctx context.Context) (Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?fields=status,message,lat,lon,city", nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		code := CodePositionUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			code = CodeTimeout
		}
		return Coordinates{}, &Error{Code: code, Message: err.Error()}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, &Error{Code: CodePositionUnavailable, Message: fmt.Sprintf("lookup returned status %d", resp.StatusCode)}
	}
	var body ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coordinates{}, &Error{Code: CodePositionUnavailable, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	if body.Status != "success" {
		msg := body.Message
		if msg == "" {
			msg = "lookup failed"
		}
		return Coordinates{}, &Error{Code: CodePositionUnavailable, Message: msg}
	}
	return Coordinates{Lat: body.Lat, Lng: body.Lon}, nil
}
