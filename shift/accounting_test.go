package shift_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/railtime/overtime-engine/shift"
)

func TestResolveAccountingDay_SameDayShift(t *testing.T) {
	day := shift.ResolveAccountingDay(clock(8, 5, 0), clock(8, 20, 30))
	assert.True(t, day.Equal(clock(8, 0, 0)))
}

func TestResolveAccountingDay_NightShiftOwnedByHeavierDay(t *testing.T) {
	// GIVEN: Saturday 22:00 -> Sunday 06:00
	// THEN: Saturday carries 120 minutes, Sunday 360, so Sunday owns it
	day := shift.ResolveAccountingDay(clock(6, 22, 0), clock(7, 6, 0))
	assert.True(t, day.Equal(clock(7, 0, 0)))
	assert.Equal(t, shift.DaySundayRest, shift.DayTypeForDate(day))
}

func TestResolveAccountingDay_TieKeepsEarlierDay(t *testing.T) {
	// 18:00 -> 06:00 splits exactly 360/360; the first day encountered wins.
	day := shift.ResolveAccountingDay(clock(6, 18, 0), clock(7, 6, 0))
	assert.True(t, day.Equal(clock(6, 0, 0)), "tie resolves to the earlier day")
}

func TestResolveAccountingDay_UsesRawPresenceNotEffectiveWork(t *testing.T) {
	// Meals and breaks do not shift attribution: only wall-clock presence
	// counts, so the resolver takes no pause arguments at all. A shift
	// mostly on Sunday stays on Sunday regardless of where pauses fell.
	day := shift.ResolveAccountingDay(clock(6, 23, 0), clock(7, 8, 0))
	assert.True(t, day.Equal(clock(7, 0, 0)))
}

func TestDayTypeForDate_Mapping(t *testing.T) {
	assert.Equal(t, shift.DayWeekday, shift.DayTypeForDate(clock(8, 0, 0)))   // Monday
	assert.Equal(t, shift.DaySaturdayRest, shift.DayTypeForDate(clock(6, 0, 0))) // Saturday
	assert.Equal(t, shift.DaySundayRest, shift.DayTypeForDate(clock(7, 0, 0)))   // Sunday
}

func TestResolveDayType_Composition(t *testing.T) {
	assert.Equal(t, shift.DaySundayRest, shift.ResolveDayType(clock(6, 22, 0), clock(7, 6, 0)))
	assert.Equal(t, shift.DayWeekday, shift.ResolveDayType(clock(8, 5, 0), clock(8, 20, 30)))
}

func TestResolveAccountingDay_MultiDaySpan(t *testing.T) {
	// A degenerate long span still terminates and picks the fullest day.
	start := clock(6, 20, 0)
	end := start.Add(30 * time.Hour) // Sat 20:00 -> Mon 02:00
	day := shift.ResolveAccountingDay(start, end)
	assert.True(t, day.Equal(clock(7, 0, 0)), "Sunday carries the full 24h")
}
