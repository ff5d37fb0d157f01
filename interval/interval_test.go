package interval_test

import (
	"testing"
	"time"

	"github.com/railtime/overtime-engine/interval"
)

func at(hour, min int) time.Time {
	return time.Date(2024, time.January, 8, hour, min, 0, 0, time.UTC)
}

func iv(startH, startM, endH, endM int) interval.Interval {
	return interval.New(at(startH, startM), at(endH, endM))
}

// =============================================================================
// NORMALIZE
// =============================================================================

func TestNormalize_Empty(t *testing.T) {
	if got := interval.Normalize(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestNormalize_DropsDegenerate(t *testing.T) {
	// GIVEN: one valid interval and one with end == start
	// THEN: only the valid one survives
	got := interval.Normalize([]interval.Interval{
		iv(12, 0, 12, 0),
		iv(9, 0, 10, 0),
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(got))
	}
	if !got[0].Start.Equal(at(9, 0)) || !got[0].End.Equal(at(10, 0)) {
		t.Errorf("unexpected interval %v", got[0])
	}
}

func TestNormalize_MergesOverlapping(t *testing.T) {
	got := interval.Normalize([]interval.Interval{
		iv(9, 0, 11, 0),
		iv(10, 30, 12, 0),
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 merged interval, got %d", len(got))
	}
	if !got[0].End.Equal(at(12, 0)) {
		t.Errorf("expected merged end 12:00, got %v", got[0].End)
	}
}

func TestNormalize_MergesTouching(t *testing.T) {
	// Touching intervals coalesce: [9,10) + [10,11) = [9,11)
	got := interval.Normalize([]interval.Interval{
		iv(10, 0, 11, 0),
		iv(9, 0, 10, 0),
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 merged interval, got %d", len(got))
	}
	if got[0].Minutes() != 120 {
		t.Errorf("expected 120 minutes, got %d", got[0].Minutes())
	}
}

func TestNormalize_KeepsDisjointSorted(t *testing.T) {
	got := interval.Normalize([]interval.Interval{
		iv(14, 0, 15, 0),
		iv(9, 0, 10, 0),
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(got))
	}
	if !got[0].Start.Equal(at(9, 0)) {
		t.Errorf("expected sorted output, first start %v", got[0].Start)
	}
}

func TestNormalize_ContainedIntervalAbsorbed(t *testing.T) {
	got := interval.Normalize([]interval.Interval{
		iv(9, 0, 13, 0),
		iv(10, 0, 11, 0),
	})
	if len(got) != 1 || got[0].Minutes() != 240 {
		t.Errorf("expected single 240-minute interval, got %v", got)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := []interval.Interval{iv(10, 0, 11, 0), iv(9, 0, 10, 30)}
	interval.Normalize(in)
	if !in[0].Start.Equal(at(10, 0)) {
		t.Error("input slice was reordered")
	}
}

// =============================================================================
// SUBTRACT
// =============================================================================

func TestSubtract_NoRemovals_ReturnsBase(t *testing.T) {
	got := interval.Subtract(at(9, 0), at(17, 0), nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(got))
	}
	if !got[0].Start.Equal(at(9, 0)) || !got[0].End.Equal(at(17, 0)) {
		t.Errorf("expected base interval back, got %v", got[0])
	}
}

func TestSubtract_RemovalsOutsideBase_ReturnsBase(t *testing.T) {
	// Removals fully outside the base range leave it unchanged.
	got := interval.Subtract(at(9, 0), at(17, 0), []interval.Interval{
		iv(6, 0, 8, 0),
		iv(18, 0, 20, 0),
	})
	if len(got) != 1 || !got[0].Start.Equal(at(9, 0)) || !got[0].End.Equal(at(17, 0)) {
		t.Errorf("expected base interval back, got %v", got)
	}
}

func TestSubtract_MiddleRemoval_SplitsBase(t *testing.T) {
	got := interval.Subtract(at(9, 0), at(17, 0), []interval.Interval{iv(12, 0, 13, 0)})
	if len(got) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(got))
	}
	if interval.TotalMinutes(got) != 7*60 {
		t.Errorf("expected 420 surviving minutes, got %d", interval.TotalMinutes(got))
	}
}

func TestSubtract_RemovalStraddlingEdges_Clipped(t *testing.T) {
	got := interval.Subtract(at(9, 0), at(17, 0), []interval.Interval{iv(8, 0, 10, 0)})
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(got))
	}
	if !got[0].Start.Equal(at(10, 0)) {
		t.Errorf("expected segment starting 10:00, got %v", got[0])
	}
}

func TestSubtract_FullCoverage_ReturnsEmpty(t *testing.T) {
	got := interval.Subtract(at(9, 0), at(17, 0), []interval.Interval{iv(8, 0, 18, 0)})
	if len(got) != 0 {
		t.Errorf("expected no surviving segments, got %v", got)
	}
}

func TestSubtract_OverlappingRemovals_MergedFirst(t *testing.T) {
	got := interval.Subtract(at(9, 0), at(17, 0), []interval.Interval{
		iv(11, 0, 13, 0),
		iv(12, 0, 14, 0),
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(got))
	}
	if interval.TotalMinutes(got) != 5*60 {
		t.Errorf("expected 300 surviving minutes, got %d", interval.TotalMinutes(got))
	}
}

func TestSubtract_DegenerateBase_ReturnsEmpty(t *testing.T) {
	if got := interval.Subtract(at(9, 0), at(9, 0), nil); got != nil {
		t.Errorf("expected nil for degenerate base, got %v", got)
	}
}

// =============================================================================
// VALUE SEMANTICS
// =============================================================================

func TestInterval_DegenerateIsInvalid(t *testing.T) {
	if iv(9, 0, 9, 0).IsValid() {
		t.Error("zero-duration interval should be invalid")
	}
	if iv(10, 0, 9, 0).IsValid() {
		t.Error("negative-duration interval should be invalid")
	}
	if (interval.Interval{}).IsValid() {
		t.Error("zero value should be invalid")
	}
}

func TestMinutesBetween_RoundsAndClamps(t *testing.T) {
	a := at(9, 0)
	b := a.Add(90*time.Second + 29*time.Second) // 1m59s -> 2
	if got := interval.MinutesBetween(a, b); got != 2 {
		t.Errorf("expected 2 minutes, got %d", got)
	}
	if got := interval.MinutesBetween(b, a); got != 0 {
		t.Errorf("expected 0 for reversed order, got %d", got)
	}
}
