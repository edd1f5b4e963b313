package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/weather-popup/internal/geo"
)

// Kind represents the type of data emitted by the backend.
type Kind int

const (
	KindGeolocation Kind = iota
)

// Event conveys resolved data or an error from a background lookup.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Locator resolves the device position once in the background and publishes
// a single event before closing its channel.
type Locator struct {
	provider geo.Provider
	timeout  time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewLocator starts the lookup immediately. A non-positive timeout leaves the
// lookup bounded only by Stop.
func NewLocator(provider geo.Provider, timeout time.Duration) *Locator {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Locator{
		provider: provider,
		timeout:  timeout,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 1),
	}

	l.wg.Add(1)
	go l.locate()

	go func() {
		l.wg.Wait()
		close(l.events)
	}()

	return l
}

// Events returns the channel carrying the lookup outcome.
func (l *Locator) Events() <-chan Event {
	return l.events
}

// Stop cancels an outstanding lookup.
func (l *Locator) Stop() {
	l.cancel()
}

// Wait blocks until the lookup goroutine has exited and the channel is closed.
func (l *Locator) Wait() {
	l.wg.Wait()
}

func (l *Locator) locate() {
	defer l.wg.Done()

	ctx := l.ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	provider := l.provider
	if provider == nil {
		provider = geo.Disabled{}
	}
	coords, err := provider.Locate(ctx)
	evt := Event{Kind: KindGeolocation, Err: err}
	if err == nil {
		evt.Data = coords
	}
	select {
	case <-l.ctx.Done():
	case l.events <- evt:
	}
}
