package shift

import (
	"time"
)

// IsFullNightHour reports whether the segment [start, end) lies entirely
// inside the night window [21:00, 06:00). The rule is deliberately
// asymmetric: any overlap with the daytime window [06:00, 21:00), even a
// single minute, classifies the whole segment as day. A segment may
// straddle midnight, so it is split there and each half is tested against
// its own calendar day's daytime window.
func (r Rules) IsFullNightHour(start, end time.Time) bool {
	type span struct{ s, e time.Time }

	midnight := startOfDay(start).AddDate(0, 0, 1)
	var spans []span
	if !end.After(midnight) {
		spans = []span{{start, end}}
	} else {
		spans = []span{{start, midnight}, {midnight, end}}
	}

	for _, sp := range spans {
		day := startOfDay(sp.s)
		dayStart := day.Add(time.Duration(r.NightEndHour) * time.Hour)
		dayEnd := day.Add(time.Duration(r.NightStartHour) * time.Hour)

		interStart := sp.s
		if interStart.Before(dayStart) {
			interStart = dayStart
		}
		interEnd := sp.e
		if interEnd.After(dayEnd) {
			interEnd = dayEnd
		}
		if interEnd.After(interStart) {
			return false // touches the daytime window
		}
	}
	return true
}

// IsFullNightHour applies the default rules.
func IsFullNightHour(start, end time.Time) bool {
	return DefaultRules().IsFullNightHour(start, end)
}

// startOfDay returns midnight of t's calendar day, in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
