package state

import (
	"strings"
	"time"
)

// DefaultQuietPeriod is how long input must be stable before a search fires.
const DefaultQuietPeriod = 300 * time.Millisecond

// Ticket identifies one scheduled search.
type Ticket struct {
	Seq  uint64
	Text string
}

// Debouncer tracks which scheduled search is current. It owns no timer: the
// caller arms one per ticket and hands it back to Fire when it elapses, so a
// restarted quiet period simply leaves the older ticket stale.
type Debouncer struct {
	quiet   time.Duration
	seq     uint64
	pending bool
}

// NewDebouncer returns a debouncer with the given quiet period.
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet}
}

// Quiet returns the configured quiet period.
func (d *Debouncer) Quiet() time.Duration {
	return d.quiet
}

// Schedule supersedes any pending search with text. It returns false when the
// trimmed text is too short to search, in which case nothing is pending and
// the caller clears the suggestions immediately.
func (d *Debouncer) Schedule(text string) (Ticket, bool) {
	trimmed := strings.TrimSpace(text)
	d.seq++
	if len([]rune(trimmed)) < MinQueryRunes {
		d.pending = false
		return Ticket{}, false
	}
	d.pending = true
	return Ticket{Seq: d.seq, Text: trimmed}, true
}

// Fire reports the text to search for when t is the latest pending ticket.
func (d *Debouncer) Fire(t Ticket) (string, bool) {
	if !d.pending || t.Seq != d.seq {
		return "", false
	}
	d.pending = false
	return t.Text, true
}

// Cancel drops any pending search and invalidates in-flight results. It
// returns the sequence now considered current.
func (d *Debouncer) Cancel() uint64 {
	d.pending = false
	d.seq++
	return d.seq
}

// Pending reports whether a quiet period is running.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Current reports whether a result for seq belongs to the latest scheduling.
func (d *Debouncer) Current(seq uint64) bool {
	return seq == d.seq
}
