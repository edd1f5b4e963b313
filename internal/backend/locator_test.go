package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/weather-popup/internal/geo"
)

type blockingProvider struct{}

func (blockingProvider) Locate(ctx context.Context) (geo.Coordinates, error) {
	<-ctx.Done()
	return geo.Coordinates{}, ctx.Err()
}

func TestLocatorPublishesSingleEvent(t *testing.T) {
	l := NewLocator(geo.Static{Coordinates: geo.Coordinates{Lat: 1.5, Lng: 2.5}}, time.Second)
	defer l.Stop()

	evt, ok := <-l.Events()
	if !ok {
		t.Fatalf("expected an event before close")
	}
	if evt.Kind != KindGeolocation || evt.Err != nil {
		t.Fatalf("unexpected event %+v", evt)
	}
	coords, ok := evt.Data.(geo.Coordinates)
	if !ok || coords.Lat != 1.5 || coords.Lng != 2.5 {
		t.Fatalf("unexpected coordinates %#v", evt.Data)
	}
	if _, ok := <-l.Events(); ok {
		t.Fatalf("expected channel to close after the single event")
	}
}

func TestLocatorReportsProviderError(t *testing.T) {
	l := NewLocator(nil, time.Second)
	defer l.Stop()

	evt := <-l.Events()
	var geoErr *geo.Error
	if !errors.As(evt.Err, &geoErr) {
		t.Fatalf("expected geo.Error, got %v", evt.Err)
	}
	if evt.Data != nil {
		t.Fatalf("expected no data on error, got %#v", evt.Data)
	}
}

func TestLocatorTimeoutSurfacesAsError(t *testing.T) {
	l := NewLocator(blockingProvider{}, 10*time.Millisecond)
	defer l.Stop()

	evt := <-l.Events()
	if !errors.Is(evt.Err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", evt.Err)
	}
}

func TestLocatorStopClosesChannel(t *testing.T) {
	l := NewLocator(blockingProvider{}, 0)
	l.Stop()
	l.Wait()
	for range l.Events() {
	}
}
