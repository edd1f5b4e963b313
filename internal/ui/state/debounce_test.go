package state

import (
	"testing"
	"time"
)

func TestDebouncerShortTextNeverSchedules(t *testing.T) {
	d := NewDebouncer(0)
	if d.Quiet() != DefaultQuietPeriod {
		t.Fatalf("expected default quiet period, got %v", d.Quiet())
	}
	for _, text := range []string{"", " ", "a", "  b  ", "é"} {
		if _, ok := d.Schedule(text); ok {
			t.Fatalf("expected %q not to schedule", text)
		}
		if d.Pending() {
			t.Fatalf("expected nothing pending after %q", text)
		}
	}
}

func TestDebouncerRapidInputFiresOnceWithFinalText(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var tickets []Ticket
	for _, text := range []string{"Lo", "Lon", "Lond", "London "} {
		ticket, ok := d.Schedule(text)
		if !ok {
			t.Fatalf("expected %q to schedule", text)
		}
		tickets = append(tickets, ticket)
	}
	fired := []string{}
	for _, ticket := range tickets {
		if text, ok := d.Fire(ticket); ok {
			fired = append(fired, text)
		}
	}
	if len(fired) != 1 || fired[0] != "London" {
		t.Fatalf("expected a single fire for the final text, got %v", fired)
	}
	if _, ok := d.Fire(tickets[len(tickets)-1]); ok {
		t.Fatalf("expected a ticket to fire at most once")
	}
}

func TestDebouncerShortTextCancelsPending(t *testing.T) {
	d := NewDebouncer(0)
	ticket, _ := d.Schedule("Par")
	d.Schedule("P")
	if _, ok := d.Fire(ticket); ok {
		t.Fatalf("expected pending search cancelled by short text")
	}
}

func TestDebouncerCancelIsIdempotentAndInvalidatesResults(t *testing.T) {
	d := NewDebouncer(0)
	d.Cancel()
	d.Cancel()
	ticket, _ := d.Schedule("Tokyo")
	if _, ok := d.Fire(ticket); !ok {
		t.Fatalf("expected fire")
	}
	if !d.Current(ticket.Seq) {
		t.Fatalf("expected in-flight result to be current")
	}
	d.Cancel()
	d.Cancel()
	if d.Current(ticket.Seq) {
		t.Fatalf("expected cancelled result to be stale")
	}
}

func TestDebouncerNewInputMakesInFlightResultStale(t *testing.T) {
	d := NewDebouncer(0)
	first, _ := d.Schedule("Ber")
	d.Fire(first)
	d.Schedule("Bern")
	if d.Current(first.Seq) {
		t.Fatalf("expected older result to be stale")
	}
}
