package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseInstant parses an RFC3339 instant, the wire format for game
// schedules.
func ParseInstant(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// SameLocalDay reports whether two instants fall on the same calendar day in
// the given location. A nil location means local time.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
