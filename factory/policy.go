/*
Package factory provides JSON to Go rule-set conversion.

PURPOSE:
  Converts a JSON rule-set document into shift.Rules and a credit.Schedule.
  This enables deployments to adjust regulation constants (multipliers,
  night window, effective-work target) without code changes; absent fields
  always fall back to the canonical regulation values.

JSON SCHEMA:
  {
    "target_minutes": 468,
    "amplitude_hours": 13,
    "night_start_hour": 21,
    "night_end_hour": 6,
    "cleaning_cap_minutes": 20,
    "multipliers": {
      "weekday": "1.5",
      "saturday_rest": "2",
      "sunday_rest": "3"
    }
  }

KEY FEATURES:
  - Every field optional; empty document yields the canonical rule set
  - Multipliers are decimal strings, never floats
  - Out-of-range values rejected rather than silently corrected

USAGE:
  rules, schedule, err := factory.ParseRuleSet(jsonStr)
  result := rules.Compute(input)
  credited := schedule.CreditedPremium(dayType, result.PremiumBucketSize())

SEE ALSO:
  - shift/rules.go: Rules definition and canonical defaults
  - credit/credit.go: Schedule definition
*/
package factory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/railtime/overtime-engine/credit"
	"github.com/railtime/overtime-engine/shift"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// RuleSetJSON is the JSON representation of an engine rule set.
type RuleSetJSON struct {
	TargetMinutes      *int              `json:"target_minutes,omitempty"`
	AmplitudeHours     *int              `json:"amplitude_hours,omitempty"`
	NightStartHour     *int              `json:"night_start_hour,omitempty"`
	NightEndHour       *int              `json:"night_end_hour,omitempty"`
	SearchWindowHours  *int              `json:"search_window_hours,omitempty"`
	CleaningCapMinutes *int              `json:"cleaning_cap_minutes,omitempty"`
	Multipliers        map[string]string `json:"multipliers,omitempty"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseRuleSet parses a JSON document into engine rules and a credit
// schedule. An empty object (or empty string) yields the canonical values.
func ParseRuleSet(jsonStr string) (shift.Rules, credit.Schedule, error) {
	rules := shift.DefaultRules()
	schedule := credit.DefaultSchedule()

	if jsonStr == "" {
		return rules, schedule, nil
	}

	var rj RuleSetJSON
	if err := json.Unmarshal([]byte(jsonStr), &rj); err != nil {
		return rules, schedule, fmt.Errorf("failed to parse rule set JSON: %w", err)
	}
	return FromJSON(rj)
}

// FromJSON converts RuleSetJSON into engine rules and a credit schedule.
func FromJSON(rj RuleSetJSON) (shift.Rules, credit.Schedule, error) {
	rules := shift.DefaultRules()
	schedule := credit.DefaultSchedule()

	if rj.TargetMinutes != nil {
		if *rj.TargetMinutes <= 0 {
			return rules, schedule, fmt.Errorf("target_minutes must be positive, got %d", *rj.TargetMinutes)
		}
		rules.TargetMinutes = *rj.TargetMinutes
	}
	if rj.AmplitudeHours != nil {
		if *rj.AmplitudeHours <= 0 {
			return rules, schedule, fmt.Errorf("amplitude_hours must be positive, got %d", *rj.AmplitudeHours)
		}
		rules.Amplitude = time.Duration(*rj.AmplitudeHours) * time.Hour
	}
	if rj.NightStartHour != nil {
		if *rj.NightStartHour < 0 || *rj.NightStartHour > 23 {
			return rules, schedule, fmt.Errorf("night_start_hour out of range: %d", *rj.NightStartHour)
		}
		rules.NightStartHour = *rj.NightStartHour
	}
	if rj.NightEndHour != nil {
		if *rj.NightEndHour < 0 || *rj.NightEndHour > 23 {
			return rules, schedule, fmt.Errorf("night_end_hour out of range: %d", *rj.NightEndHour)
		}
		rules.NightEndHour = *rj.NightEndHour
	}
	if rj.SearchWindowHours != nil {
		if *rj.SearchWindowHours <= 0 {
			return rules, schedule, fmt.Errorf("search_window_hours must be positive, got %d", *rj.SearchWindowHours)
		}
		rules.SearchWindow = time.Duration(*rj.SearchWindowHours) * time.Hour
	}
	if rj.CleaningCapMinutes != nil {
		if *rj.CleaningCapMinutes < 0 {
			return rules, schedule, fmt.Errorf("cleaning_cap_minutes must not be negative, got %d", *rj.CleaningCapMinutes)
		}
		rules.CleaningCapMinutes = *rj.CleaningCapMinutes
	}

	if len(rj.Multipliers) > 0 {
		overrides := map[shift.DayType]decimal.Decimal{
			shift.DayWeekday:      schedule.Multiplier(shift.DayWeekday),
			shift.DaySaturdayRest: schedule.Multiplier(shift.DaySaturdayRest),
			shift.DaySundayRest:   schedule.Multiplier(shift.DaySundayRest),
		}
		for name, raw := range rj.Multipliers {
			dt := shift.DayType(name)
			if !dt.Valid() {
				return rules, schedule, fmt.Errorf("unknown day type %q in multipliers", name)
			}
			m, err := decimal.NewFromString(raw)
			if err != nil {
				return rules, schedule, fmt.Errorf("invalid multiplier for %s: %w", name, err)
			}
			if !m.IsPositive() {
				return rules, schedule, fmt.Errorf("multiplier for %s must be positive, got %s", name, raw)
			}
			overrides[dt] = m
		}
		schedule = credit.NewSchedule(overrides)
	}

	return rules, schedule, nil
}
