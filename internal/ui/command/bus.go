package command

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/weather-popup/internal/logging/events"
)

// Handler performs a blocking fetch and converts its outcome into a message.
type Handler func(ctx context.Context) tea.Msg

// Request encapsulates a background fetch.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Bus coordinates the execution of background fetches.
type Bus struct {
	ctx context.Context
}

// New initialises a command bus instance. A nil context means Background.
func New(ctx context.Context) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx}
}

// Execute wraps a handler into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	if req.Handler == nil {
		return nil
	}
	events.Command.Queue(req.ID, req.Label)
	ctx := b.ctx
	return func() tea.Msg {
		msg := req.Handler(ctx)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
