package weatherapi

import (
	"errors"
	"fmt"
)

// NetworkError reports a transport failure before any response was received.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return "Network error: Unable to connect to weather service. Please check your internet connection."
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports a non-2xx response or an error payload from the provider.
type APIError struct {
	Endpoint string
	Status   int
	Code     int
	Message  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// IsNetwork reports whether err wraps a NetworkError.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsAPI reports whether err wraps an APIError.
func IsAPI(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
