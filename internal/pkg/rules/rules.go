// Package rules carries the advisory-warning type shared by the domain
// rule engines, plus the calendar-day arithmetic they all derive
// durations with. A Warning never blocks a write; it rides along with a
// successful result and is surfaced to the caller.
package rules

import "time"

type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Warn(code, message string) *Warning {
	return &Warning{Code: code, Message: message}
}

// DaysBetween counts whole calendar days from one date to another.
// Time-of-day is discarded on both sides, so an overnight interval is one
// day no matter what clock times the inputs carry.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
