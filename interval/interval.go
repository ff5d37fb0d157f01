/*
Package interval provides immutable half-open time interval values and the
set operations the overtime engine is built on.

PURPOSE:
  Breaks, meals and derived work segments are all plain [start, end)
  intervals. Everything above this package reasons in terms of two
  operations:
  - Normalize: sort and coalesce a set of intervals so callers never see
    overlapping pauses
  - Subtract: remove pauses from a base window, yielding the surviving
    work segments

DESIGN PRINCIPLES:
  1. Immutability: operations return new intervals, inputs are never mutated
  2. Tolerance: degenerate intervals (end <= start) are filtered, not errors
  3. Minutes: durations are exchanged as whole rounded minutes, never floats

SEE ALSO:
  - shift/: threshold search and bucket classification built on these
*/
package interval

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Interval is a half-open [Start, End) span of wall-clock time.
// The zero value is degenerate and treated as absent by every operation.
type Interval struct {
	Start time.Time
	End   time.Time
}

// New returns the interval [start, end).
func New(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// IsValid reports whether the interval has strictly positive duration.
func (iv Interval) IsValid() bool {
	return !iv.Start.IsZero() && !iv.End.IsZero() && iv.End.After(iv.Start)
}

// Duration returns End - Start, or zero for degenerate intervals.
func (iv Interval) Duration() time.Duration {
	if !iv.IsValid() {
		return 0
	}
	return iv.End.Sub(iv.Start)
}

// Minutes returns the interval duration in whole minutes, rounded to the
// nearest minute and clamped at zero.
func (iv Interval) Minutes() int {
	return MinutesBetween(iv.Start, iv.End)
}

// Clip restricts the interval to [lo, hi]. The result may be degenerate.
func (iv Interval) Clip(lo, hi time.Time) Interval {
	start, end := iv.Start, iv.End
	if start.Before(lo) {
		start = lo
	}
	if end.After(hi) {
		end = hi
	}
	return Interval{Start: start, End: end}
}

// Overlaps reports whether the two intervals share any positive span.
func (iv Interval) Overlaps(other Interval) bool {
	if !iv.IsValid() || !other.IsValid() {
		return false
	}
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.Start.Format("2006-01-02 15:04"), iv.End.Format("2006-01-02 15:04"))
}

// MinutesBetween returns the number of whole minutes from a to b, rounded
// to the nearest minute. Never negative: b before a counts as zero.
func MinutesBetween(a, b time.Time) int {
	m := math.Round(b.Sub(a).Minutes())
	if m <= 0 {
		return 0
	}
	return int(m)
}

// TotalMinutes sums the rounded minute durations of every interval.
func TotalMinutes(ivs []Interval) int {
	total := 0
	for _, iv := range ivs {
		total += iv.Minutes()
	}
	return total
}

// =============================================================================
// SET OPERATIONS
// =============================================================================

// Normalize filters out degenerate intervals, sorts the rest by start and
// merges any pair that overlaps or touches. The result is an ascending
// sequence of disjoint intervals. The input slice is left untouched.
func Normalize(ivs []Interval) []Interval {
	valid := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if iv.IsValid() {
			valid = append(valid, iv)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i].Start.Before(valid[j].Start) })

	out := []Interval{valid[0]}
	for _, cur := range valid[1:] {
		last := &out[len(out)-1]
		// Touching intervals coalesce too: next start == current end.
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			continue
		}
		out = append(out, cur)
	}
	return out
}

// Subtract removes the given intervals from the base window [baseStart,
// baseEnd) and returns the surviving sub-intervals in order. Removals are
// clipped to the base window first; removals entirely outside it are no-ops.
// Returns nil when the removals cover the whole window, or when the window
// itself is degenerate.
func Subtract(baseStart, baseEnd time.Time, removals []Interval) []Interval {
	if !baseEnd.After(baseStart) {
		return nil
	}

	clipped := make([]Interval, 0, len(removals))
	for _, r := range removals {
		c := r.Clip(baseStart, baseEnd)
		if c.IsValid() {
			clipped = append(clipped, c)
		}
	}
	merged := Normalize(clipped)

	var segs []Interval
	cur := baseStart
	for _, r := range merged {
		if r.Start.After(cur) {
			segs = append(segs, Interval{Start: cur, End: r.Start})
		}
		if r.End.After(cur) {
			cur = r.End
		}
	}
	if cur.Before(baseEnd) {
		segs = append(segs, Interval{Start: cur, End: baseEnd})
	}
	return segs
}
