// Package eventlog records one immutable JSON line per observation run.
// The log is append-only, best-effort history: readers skip lines that do
// not parse instead of failing.
package eventlog

import "time"

// TimestampFormat is UTC with fixed-width microseconds so that timestamps
// (and the evidence bundle names derived from them) sort lexicographically
// in time order. RFC3339Nano trims trailing zeros and would not.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Event is one run's record. Written once, never mutated.
type Event struct {
	Timestamp string          `json:"timestamp"`
	OverallOK bool            `json:"overall_ok"`
	Status    map[string]bool `json:"status"`
}

// Timestamp renders t for the event log and bundle naming.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}
