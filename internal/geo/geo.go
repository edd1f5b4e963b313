package geo

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// Error codes follow the browser geolocation API numbering; zero means the
// provider is unavailable.
const (
	CodeUnsupported         = 0
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// Coordinates is a device position in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// String renders "lat,lng" without rounding beyond the source precision.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Error is a platform geolocation failure.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("geolocation error %d: %s", e.Code, e.Message)
}

// Provider resolves the current device coordinates.
type Provider interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// Disabled always reports an unsupported provider.
type Disabled struct{}

func (Disabled) Locate(context.Context) (Coordinates, error) {
	return Coordinates{}, &Error{Code: CodeUnsupported, Message: "Geolocation not supported"}
}

// Static returns fixed coordinates.
type Static struct {
	Coordinates Coordinates
}

func (s Static) Locate(context.Context) (Coordinates, error) {
	return s.Coordinates, nil
}

// Once caches the first outcome of the wrapped provider for the session.
type Once struct {
	provider Provider

	once   sync.Once
	coords Coordinates
	err    error
}

func NewOnce(p Provider) *Once {
	if p == nil {
		p = Disabled{}
	}
	return &Once{provider: p}
}

func (o *Once) Locate(ctx context.Context) (Coordinates, error) {
	o.once.Do(func() {
		o.coords, o.err = o.provider.Locate(ctx)
	})
	return o.coords, o.err
}
