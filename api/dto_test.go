/*
dto_test.go - Unit tests for form-boundary conversions

Tests for:
- Clock parsing and next-day rolling (parseAnchored)
- Meal end defaulting and interval resolution (toInterval)
- Break-duration policy warnings
- Full request resolution (Resolve)
*/
package api

import (
	"strings"
	"testing"
	"time"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(timestampLayout, value)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", value, err)
	}
	return ts
}

// =============================================================================
// CLOCK PARSING
// =============================================================================

func TestParseAnchored(t *testing.T) {
	ref := mustParse(t, "2024-01-08 05:00")

	cases := []struct {
		name  string
		value string
		want  string
	}{
		// GIVEN a full timestamp, THEN it is taken as-is
		{"full timestamp", "2024-01-10 09:30", "2024-01-10 09:30"},
		// GIVEN a clock at or after the reference, THEN it stays same-day
		{"same day clock", "20:30", "2024-01-08 20:30"},
		{"clock equal to reference", "05:00", "2024-01-08 05:00"},
		// GIVEN a clock before the reference, THEN it rolls to the next day
		{"rolls past midnight", "04:00", "2024-01-09 04:00"},
		{"midnight rolls", "00:00", "2024-01-09 00:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseAnchored(tc.value, ref)
			if err != nil {
				t.Fatalf("parseAnchored(%q): %v", tc.value, err)
			}
			if got.Format(timestampLayout) != tc.want {
				t.Errorf("parseAnchored(%q) = %s, want %s", tc.value, got.Format(timestampLayout), tc.want)
			}
		})
	}
}

func TestParseAnchored_Invalid(t *testing.T) {
	ref := mustParse(t, "2024-01-08 05:00")

	for _, value := range []string{"", "530", "25:00", "12:60", "12:", "noon"} {
		if _, err := parseAnchored(value, ref); err == nil {
			t.Errorf("parseAnchored(%q): expected error", value)
		}
	}
}

// =============================================================================
// INTERVAL RESOLUTION
// =============================================================================

func TestToInterval_MealEndDefaultsToOneHour(t *testing.T) {
	// GIVEN a meal with only a start clock
	start := mustParse(t, "2024-01-08 05:00")
	req := ClockIntervalRequest{Start: "11:45"}

	// WHEN resolved as a meal
	iv, err := req.toInterval(start, true)
	if err != nil {
		t.Fatalf("toInterval: %v", err)
	}

	// THEN the end defaults to start plus one hour
	if got := iv.End.Sub(iv.Start); got != time.Hour {
		t.Errorf("default meal duration = %v, want 1h", got)
	}
	if iv.Start.Format(timestampLayout) != "2024-01-08 11:45" {
		t.Errorf("meal start = %s", iv.Start.Format(timestampLayout))
	}
}

func TestToInterval_BreakEndRequired(t *testing.T) {
	// GIVEN a rest break with no end
	start := mustParse(t, "2024-01-08 05:00")
	req := ClockIntervalRequest{Start: "13:00"}

	// WHEN resolved without the meal default
	_, err := req.toInterval(start, false)

	// THEN the omission is an error, not a silent default
	if err == nil {
		t.Fatal("expected error for break without end")
	}
}

func TestToInterval_EveningPauseCrossesMidnight(t *testing.T) {
	// GIVEN an evening meal starting before midnight and ending after
	start := mustParse(t, "2024-01-08 13:00")
	req := ClockIntervalRequest{Start: "23:30", End: "00:15"}

	iv, err := req.toInterval(start, true)
	if err != nil {
		t.Fatalf("toInterval: %v", err)
	}

	// THEN the end lands on the next calendar day
	if iv.End.Day() != 9 {
		t.Errorf("pause end day = %d, want 9", iv.End.Day())
	}
	if got := iv.End.Sub(iv.Start); got != 45*time.Minute {
		t.Errorf("pause duration = %v, want 45m", got)
	}
}

// =============================================================================
// BREAK POLICY
// =============================================================================

func TestBreakPolicyWarnings(t *testing.T) {
	shiftStart := mustParse(t, "2024-01-08 05:00")
	shiftEnd := mustParse(t, "2024-01-08 20:30") // 15h30 span, 25% = 3h52 -> capped at 3h15

	cases := []struct {
		name       string
		breakStart string
		breakEnd   string
		wantSubstr string
	}{
		{"compliant break", "13:00", "15:30", ""},
		{"exactly two hours", "13:00", "15:00", ""},
		{"under the minimum", "13:00", "14:30", "2h minimum"},
		{"over the cap", "12:00", "15:30", "exceeds the allowed maximum of 3h15"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := ClockIntervalRequest{Start: tc.breakStart, End: tc.breakEnd}
			iv, err := req.toInterval(shiftStart, false)
			if err != nil {
				t.Fatalf("toInterval: %v", err)
			}

			warnings := breakPolicyWarnings(iv, shiftStart, shiftEnd)
			if tc.wantSubstr == "" {
				if len(warnings) != 0 {
					t.Fatalf("unexpected warnings: %v", warnings)
				}
				return
			}
			if len(warnings) != 1 || !strings.Contains(warnings[0], tc.wantSubstr) {
				t.Fatalf("warnings = %v, want one containing %q", warnings, tc.wantSubstr)
			}
		})
	}
}

func TestBreakPolicyWarnings_ShareBelowCap(t *testing.T) {
	// GIVEN a short shift where 25% of the span is smaller than 3h15
	shiftStart := mustParse(t, "2024-01-08 08:00")
	shiftEnd := mustParse(t, "2024-01-08 18:00") // 10h span, 25% = 2h30

	req := ClockIntervalRequest{Start: "12:00", End: "15:00"} // 3h break
	iv, err := req.toInterval(shiftStart, false)
	if err != nil {
		t.Fatalf("toInterval: %v", err)
	}

	warnings := breakPolicyWarnings(iv, shiftStart, shiftEnd)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "2h30") {
		t.Fatalf("warnings = %v, want maximum of 2h30 exceeded", warnings)
	}
}

// =============================================================================
// FULL RESOLUTION
// =============================================================================

func TestResolve_FullRequest(t *testing.T) {
	// GIVEN a complete form submission with clock-only pause fields
	req := ComputeShiftRequest{
		Start:       "2024-01-08 06:00",
		End:         "23:45",
		MealNoon:    &ClockIntervalRequest{Start: "11:45", End: "12:45"},
		RestBreak:   &ClockIntervalRequest{Start: "13:00", End: "15:30"},
		MealEvening: &ClockIntervalRequest{Start: "19:00"},
	}

	in, warnings, err := req.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// THEN every pause is anchored to the shift date
	if in.End.Format(timestampLayout) != "2024-01-08 23:45" {
		t.Errorf("end = %s", in.End.Format(timestampLayout))
	}
	if in.MealNoon == nil || in.RestBreak == nil || in.MealEvening == nil {
		t.Fatal("expected all three pauses resolved")
	}
	if in.MealEvening.End.Format(timestampLayout) != "2024-01-08 20:00" {
		t.Errorf("evening meal end = %s, want defaulted 20:00", in.MealEvening.End.Format(timestampLayout))
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestResolve_EndRollsToNextDay(t *testing.T) {
	req := ComputeShiftRequest{Start: "2024-01-06 22:00", End: "06:00"}

	in, _, err := req.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if in.End.Format(timestampLayout) != "2024-01-07 06:00" {
		t.Errorf("end = %s, want rolled to Sunday", in.End.Format(timestampLayout))
	}
}

func TestResolve_RejectsNonPositiveSpan(t *testing.T) {
	req := ComputeShiftRequest{Start: "2024-01-08 05:00", End: "2024-01-08 05:00"}
	if _, _, err := req.Resolve(); err == nil {
		t.Fatal("expected error for zero-length shift")
	}

	req = ComputeShiftRequest{Start: "2024-01-08 05:00", End: "2024-01-07 20:00"}
	if _, _, err := req.Resolve(); err == nil {
		t.Fatal("expected error for end before start")
	}
}
