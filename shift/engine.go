package shift

import (
	"time"

	"github.com/railtime/overtime-engine/interval"
)

// =============================================================================
// THRESHOLD SEARCH
// =============================================================================

// EffectiveDurationMark returns the moment TargetMinutes of effective work
// have accumulated since start, skipping the given pauses. Pauses are merged
// first, so overlapping meal/break intervals are safe. The search is bounded
// by SearchWindow; if the target is never reached inside it (degenerate
// input, pauses covering everything) the window end is returned rather than
// failing.
func (r Rules) EffectiveDurationMark(start time.Time, pauses []interval.Interval) time.Time {
	windowEnd := start.Add(r.SearchWindow)
	segments := interval.Subtract(start, windowEnd, interval.Normalize(pauses))

	remaining := r.TargetMinutes
	for _, seg := range segments {
		d := seg.Minutes()
		if d >= remaining {
			return seg.Start.Add(time.Duration(remaining) * time.Minute)
		}
		remaining -= d
	}
	return windowEnd
}

// =============================================================================
// MAIN COMPUTATION
// =============================================================================

// Compute accounts a single shift under the rule set. It is pure: identical
// inputs always yield identical results, nothing is mutated, and malformed
// optional intervals are silently treated as absent. Only Start and End are
// hard preconditions; the caller must not invoke Compute without both.
func (r Rules) Compute(in Input) Result {
	cleaning := r.clampCleaning(in.CleaningMinutes)

	// Amplitude is pushed back by in-shift cleaning, never by pauses.
	amplitudeMark := in.Start.Add(r.Amplitude).Add(time.Duration(cleaning) * time.Minute)

	// Cleaning is not a pause: it counts toward the effective-work target.
	pauses := collectPauses(in.MealNoon, in.MealEvening, in.RestBreak)
	var breakOnly []interval.Interval
	if in.RestBreak != nil && in.RestBreak.IsValid() {
		breakOnly = []interval.Interval{*in.RestBreak}
	}

	threshold := r.EffectiveDurationMark(in.Start, pauses)

	// Overrun: effective work from threshold to shift end, all pauses
	// removed. Cleaning time falling after the threshold stays included.
	overrun := interval.TotalMinutes(interval.Subtract(threshold, in.End, pauses))

	// Cleaning is excluded from the rounding input only, never from the
	// raw total: it must not generate overtime by itself.
	overrunForRounding := overrun - cleaning
	if overrunForRounding < 0 {
		overrunForRounding = 0
	}

	// Pre-amplitude window: only the rest break is deducted. Meal time is
	// deliberately counted as available here.
	preThreshold := interval.TotalMinutes(interval.Subtract(threshold, amplitudeMark, breakOnly))

	// Minute-only tie-break: compare the minute remainders, ignoring the
	// hour component entirely. Ties round the base hours up.
	baseHours := preThreshold / 60
	if preThreshold%60 >= overrunForRounding%60 {
		baseHours = ceilHours(preThreshold)
	}

	totalOverrunHours := ceilHours(overrunForRounding)

	baseBucket := baseHours
	if totalOverrunHours < baseBucket {
		baseBucket = totalOverrunHours
	}
	premiumBucket := totalOverrunHours - baseBucket
	if premiumBucket < 0 {
		premiumBucket = 0
	}

	res := Result{
		ThresholdReached:    threshold,
		AmplitudeMark:       amplitudeMark,
		OverrunMinutes:      overrun,
		PreThresholdMinutes: preThreshold,
		BaseHourCount:       baseHours,
		TotalOverrunHours:   totalOverrunHours,
	}

	// Base hours walk consecutive one-hour segments from the threshold.
	cur := threshold
	for i := 0; i < baseBucket; i++ {
		next := cur.Add(time.Hour)
		if r.IsFullNightHour(cur, next) {
			res.NightBaseHours++
		} else {
			res.DayBaseHours++
		}
		cur = next
	}

	// Premium hours walk from the amplitude mark.
	cur = amplitudeMark
	for i := 0; i < premiumBucket; i++ {
		next := cur.Add(time.Hour)
		if r.IsFullNightHour(cur, next) {
			res.NightPremiumHours++
		} else {
			res.DayPremiumHours++
		}
		cur = next
	}

	return res
}

// Compute accounts a shift under the default rules.
func Compute(in Input) Result {
	return DefaultRules().Compute(in)
}

// collectPauses gathers the optional pause intervals that are present and
// valid. Degenerate intervals are dropped here so every downstream step can
// assume well-formed pauses.
func collectPauses(ivs ...*interval.Interval) []interval.Interval {
	var out []interval.Interval
	for _, iv := range ivs {
		if iv != nil && iv.IsValid() {
			out = append(out, *iv)
		}
	}
	return out
}

// ceilHours rounds a minute count up to whole hours; non-positive input
// yields zero.
func ceilHours(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	h := minutes / 60
	if minutes%60 != 0 {
		h++
	}
	return h
}
