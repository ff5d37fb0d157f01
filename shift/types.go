/*
Package shift implements the overtime time-accounting engine for displaced
shift workers.

PURPOSE:
  Given a shift's start/end, optional meal and rest-break intervals and an
  in-shift cleaning allowance, the engine derives:
  - the moment the daily effective-work target (7h48) is reached, with
    pauses that overlap it pushing it later
  - the amplitude mark (start + 13h, shifted by in-shift cleaning)
  - minute-level overrun and pre-amplitude totals
  - whole overtime hours split into four buckets: day/night x base/premium

KEY CONCEPTS:
  - Effective-duration threshold: 468 minutes of work excluding pauses
  - Amplitude mark: the point after which overtime is always premium rate
  - Base bucket: overtime hours at the standard rate, counted from the
    threshold
  - Premium bucket: overtime hours at the day-type multiplier, counted
    from the amplitude mark
  - Night window: [21:00, 06:00) wall clock; an hour touching daytime at
    all counts as a day hour

DESIGN PRINCIPLES:
  1. Purity: Compute and ResolveAccountingDay are referentially transparent,
     keep no state, perform no I/O and never panic on malformed optionals
  2. Tolerance: degenerate optional intervals are ignored, the cleaning
     allowance is clamped, and the threshold search falls back to its
     48-hour safety window instead of failing

SEE ALSO:
  - interval/: normalize/subtract primitives the engine is built on
  - credit/: turns premium bucket counts into credited amounts
*/
package shift

import (
	"time"

	"github.com/railtime/overtime-engine/interval"
)

// =============================================================================
// DAY TYPE
// =============================================================================

// DayType classifies the accounting day of a shift. It selects the premium
// multiplier and rest-credit grants applied downstream; the engine itself
// only carries it through.
type DayType string

const (
	// DayWeekday is an ordinary working day (multiplier 1.5).
	DayWeekday DayType = "weekday"
	// DaySaturdayRest is a Saturday rest day (multiplier 2).
	DaySaturdayRest DayType = "saturday_rest"
	// DaySundayRest is a Sunday or public-holiday rest day (multiplier 3).
	DaySundayRest DayType = "sunday_rest"
)

// Valid reports whether dt is one of the three known day types.
func (dt DayType) Valid() bool {
	switch dt {
	case DayWeekday, DaySaturdayRest, DaySundayRest:
		return true
	}
	return false
}

// DayTypeForDate maps a calendar day to its labor day type:
// Saturday -> DaySaturdayRest, Sunday -> DaySundayRest, else DayWeekday.
func DayTypeForDate(day time.Time) DayType {
	switch day.Weekday() {
	case time.Saturday:
		return DaySaturdayRest
	case time.Sunday:
		return DaySundayRest
	default:
		return DayWeekday
	}
}

// =============================================================================
// INPUT / RESULT RECORDS
// =============================================================================

// Input is a single shift to account for. Start and End are required; End
// may fall on the next calendar day. All other fields are optional: nil or
// degenerate intervals are treated as absent.
type Input struct {
	Start time.Time
	End   time.Time

	// RestBreak is the single unpaid break, at most one per shift.
	RestBreak *interval.Interval

	// MealNoon and MealEvening are meal intervals. The engine expects fully
	// resolved intervals; defaulting an omitted meal end to start+60min is
	// the caller's concern.
	MealNoon    *interval.Interval
	MealEvening *interval.Interval

	// DayType selects the premium multiplier downstream. The engine does
	// not compute it; use ResolveAccountingDay + DayTypeForDate.
	DayType DayType

	// CleaningMinutes is in-shift housekeeping time in [0, 20]. It counts
	// as worked time, pushes the amplitude mark later, and is excluded from
	// overrun rounding so it can never trigger overtime by itself.
	CleaningMinutes int
}

// Result is the outcome of accounting a single shift.
type Result struct {
	// ThresholdReached is when 468 effective minutes have accumulated.
	ThresholdReached time.Time
	// AmplitudeMark is start + 13h + cleaning allowance.
	AmplitudeMark time.Time

	// OverrunMinutes is effective work between ThresholdReached and shift
	// end with all pauses subtracted. Cleaning time after the threshold is
	// still included here.
	OverrunMinutes int
	// PreThresholdMinutes is effective work between ThresholdReached and
	// AmplitudeMark with only the rest break subtracted.
	PreThresholdMinutes int

	// BaseHourCount is PreThresholdMinutes rounded to whole hours by the
	// minute-only tie-break rule.
	BaseHourCount int
	// TotalOverrunHours is the cleaning-adjusted overrun rounded up to
	// whole hours.
	TotalOverrunHours int

	// Bucket counts. DayBase+NightBase and DayPremium+NightPremium always
	// sum to their respective bucket sizes.
	DayBaseHours      int
	NightBaseHours    int
	DayPremiumHours   int
	NightPremiumHours int
}

// BaseBucketSize returns the number of hours charged at the standard rate.
func (r Result) BaseBucketSize() int { return r.DayBaseHours + r.NightBaseHours }

// PremiumBucketSize returns the number of hours charged at the premium rate.
func (r Result) PremiumBucketSize() int { return r.DayPremiumHours + r.NightPremiumHours }
