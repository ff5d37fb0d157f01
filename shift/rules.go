package shift

import "time"

// Rules carries the regulation constants the engine computes against.
// DefaultRules returns the canonical values; overriding them is only
// expected from rule-set configuration (see the factory package).
type Rules struct {
	// TargetMinutes is the daily effective-work target (DMJ), 7h48.
	TargetMinutes int

	// Amplitude is the reference span after which overtime is always
	// premium rate, measured from shift start.
	Amplitude time.Duration

	// NightStartHour/NightEndHour bound the wall-clock night window
	// [NightStartHour:00, NightEndHour:00) spanning midnight.
	NightStartHour int
	NightEndHour   int

	// SearchWindow bounds the threshold search. Purely a termination
	// guarantee; realistic shifts reach the target well inside it.
	SearchWindow time.Duration

	// CleaningCapMinutes caps the in-shift cleaning allowance.
	CleaningCapMinutes int
}

// DefaultRules returns the regulation constants: 468-minute target, 13-hour
// amplitude, night window [21:00, 06:00), 48-hour search window, 20-minute
// cleaning cap.
func DefaultRules() Rules {
	return Rules{
		TargetMinutes:      468,
		Amplitude:          13 * time.Hour,
		NightStartHour:     21,
		NightEndHour:       6,
		SearchWindow:       48 * time.Hour,
		CleaningCapMinutes: 20,
	}
}

// clampCleaning bounds a cleaning allowance to [0, CleaningCapMinutes].
func (r Rules) clampCleaning(minutes int) int {
	if minutes < 0 {
		return 0
	}
	if minutes > r.CleaningCapMinutes {
		return r.CleaningCapMinutes
	}
	return minutes
}
