/*
Package credit converts overtime bucket counts into credited amounts.

PURPOSE:
  The engine reports whole premium-bucket hours; what a worker is actually
  owed depends on the accounting day's type. This package owns that policy:
  - premium multiplier per day type (weekday 1.5x, Saturday rest 2x,
    Sunday/holiday rest 3x), applied to premium-bucket hours only
  - fixed rest-credit grants for working on a rest day (RCJ day credits,
    RL night-rest credit)

DESIGN PRINCIPLES:
  1. Precision: all credited amounts are decimal.Decimal, never floats.
     1.5 x 3 must be exactly 4.5 on a payslip.
  2. The base bucket is never multiplied: base hours are credited 1:1 and
     the caller displays them as-is.

SEE ALSO:
  - shift/: produces the bucket counts consumed here
  - factory/: parses multiplier overrides from a rule-set document
*/
package credit

import (
	"github.com/shopspring/decimal"
	"github.com/railtime/overtime-engine/shift"
)

// =============================================================================
// SCHEDULE - multiplier per day type
// =============================================================================

// Schedule maps each day type to its premium multiplier.
type Schedule struct {
	multipliers map[shift.DayType]decimal.Decimal
}

// DefaultSchedule returns the regulation multipliers: weekday 1.5,
// Saturday rest 2, Sunday/holiday rest 3.
func DefaultSchedule() Schedule {
	return NewSchedule(map[shift.DayType]decimal.Decimal{
		shift.DayWeekday:      decimal.NewFromFloat(1.5),
		shift.DaySaturdayRest: decimal.NewFromInt(2),
		shift.DaySundayRest:   decimal.NewFromInt(3),
	})
}

// NewSchedule builds a schedule from an explicit multiplier map. Missing
// day types fall back to the weekday multiplier at lookup time.
func NewSchedule(multipliers map[shift.DayType]decimal.Decimal) Schedule {
	m := make(map[shift.DayType]decimal.Decimal, len(multipliers))
	for dt, mult := range multipliers {
		m[dt] = mult
	}
	return Schedule{multipliers: m}
}

// Multiplier returns the premium multiplier for the day type.
func (s Schedule) Multiplier(dt shift.DayType) decimal.Decimal {
	if m, ok := s.multipliers[dt]; ok {
		return m
	}
	return s.multipliers[shift.DayWeekday]
}

// CreditedPremium returns multiplier x premium-bucket hours. Base-bucket
// hours are deliberately not an input: only the premium bucket is
// multiplied.
func (s Schedule) CreditedPremium(dt shift.DayType, premiumHours int) decimal.Decimal {
	if premiumHours <= 0 {
		return decimal.Zero
	}
	return s.Multiplier(dt).Mul(decimal.NewFromInt(int64(premiumHours)))
}

// =============================================================================
// REST-CREDIT GRANTS
// =============================================================================

// GrantUnit names a rest-credit currency.
type GrantUnit string

const (
	// UnitRCJ is a compensating rest-day credit.
	UnitRCJ GrantUnit = "RCJ"
	// UnitRL is a compensating night-rest credit.
	UnitRL GrantUnit = "RL"
)

// Grant is a fixed credit owed for working on a rest day.
type Grant struct {
	Unit   GrantUnit
	Amount decimal.Decimal
}

// RestGrants returns the fixed credits owed for a shift attributed to the
// given day type. Working a Saturday rest day earns 1 RCJ. Working a
// Sunday/holiday rest day earns 1.5 RCJ, raised to 2 when the shift ran
// past its amplitude (any premium hours), plus 1 RL. Weekdays earn none.
func RestGrants(dt shift.DayType, premiumHours int) []Grant {
	switch dt {
	case shift.DaySaturdayRest:
		return []Grant{{Unit: UnitRCJ, Amount: decimal.NewFromInt(1)}}
	case shift.DaySundayRest:
		rcj := decimal.NewFromFloat(1.5)
		if premiumHours > 0 {
			rcj = decimal.NewFromInt(2)
		}
		return []Grant{
			{Unit: UnitRCJ, Amount: rcj},
			{Unit: UnitRL, Amount: decimal.NewFromInt(1)},
		}
	default:
		return nil
	}
}
