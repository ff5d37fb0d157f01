package shift

import (
	"time"

	"github.com/railtime/overtime-engine/interval"
)

// ResolveAccountingDay returns midnight of the calendar day that "owns" the
// shift: the day carrying the largest share of its wall-clock span. Meals
// and breaks are NOT subtracted here; unlike the main engine, attribution
// works on raw presence. Ties keep the earlier day, since days are visited
// chronologically. The resulting day's weekday picks the day type, see
// DayTypeForDate.
func ResolveAccountingDay(start, end time.Time) time.Time {
	bestDay := startOfDay(start)
	bestMinutes := -1

	for cur := startOfDay(start); cur.Before(end); cur = cur.AddDate(0, 0, 1) {
		next := cur.AddDate(0, 0, 1)

		segStart := start
		if segStart.Before(cur) {
			segStart = cur
		}
		segEnd := end
		if segEnd.After(next) {
			segEnd = next
		}

		if mins := interval.MinutesBetween(segStart, segEnd); mins > bestMinutes {
			bestMinutes = mins
			bestDay = cur
		}
	}
	return bestDay
}

// ResolveDayType is the common composition: attribute the shift to its
// accounting day and map that day's weekday to a day type.
func ResolveDayType(start, end time.Time) DayType {
	return DayTypeForDate(ResolveAccountingDay(start, end))
}
