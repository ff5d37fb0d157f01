/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication and the form-boundary
  conversions the engine deliberately does not own:
  - parsing "HH:MM" clock fields and anchoring them to the shift date,
    rolling past midnight for next-day shifts
  - defaulting an omitted meal end to start + 60 minutes
  - checking the break-duration policy (2h minimum, 25% of the shift
    capped at 3h15 maximum) and surfacing violations as warnings

NAMING CONVENTION:
  - *Request: request body types from clients
  - *DTO: response types returned to clients

VALIDATION:
  Structural validation (required fields, known day types) uses validator
  struct tags and yields 400s. Break-policy violations are warnings inside
  a 200 response: the engine still computes, the form displays the notice.
  An out-of-range cleaning allowance is not an error either; the engine
  clamps it.

SEE ALSO:
  - handlers.go: uses these types
  - shift/: the engine input/result records these convert to and from
*/
package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/railtime/overtime-engine/credit"
	"github.com/railtime/overtime-engine/interval"
	"github.com/railtime/overtime-engine/shift"
)

const timestampLayout = "2006-01-02 15:04"

// Break-duration policy enforced at the form boundary, not by the engine.
const (
	breakMinimum     = 2 * time.Hour
	breakMaximumCap  = 3*time.Hour + 15*time.Minute
	breakMaxSharePct = 25
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ClockIntervalRequest is a pause delimited by wall-clock times. Fields are
// "HH:MM" anchored to the shift date, or full "2006-01-02 15:04" timestamps.
type ClockIntervalRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end,omitempty"`
}

// ComputeShiftRequest is the form submission for a single shift.
type ComputeShiftRequest struct {
	// Start is a full timestamp; End may be a full timestamp or a bare
	// "HH:MM" that rolls to the next day when it precedes the start.
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`

	RestBreak   *ClockIntervalRequest `json:"rest_break,omitempty"`
	MealNoon    *ClockIntervalRequest `json:"meal_noon,omitempty"`
	MealEvening *ClockIntervalRequest `json:"meal_evening,omitempty"`

	// DayType is one of weekday, saturday_rest, sunday_rest, or auto
	// (default) to resolve it from the accounting day.
	DayType string `json:"day_type,omitempty" validate:"omitempty,oneof=auto weekday saturday_rest sunday_rest"`

	// CleaningMinutes outside [0,20] is clamped by the engine, not rejected.
	CleaningMinutes int `json:"cleaning_minutes,omitempty"`
}

// AccountingDayRequest asks only for shift-to-day attribution.
type AccountingDayRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// GrantDTO is a fixed rest credit owed for the shift.
type GrantDTO struct {
	Unit   string `json:"unit"`
	Amount string `json:"amount"`
}

// ShiftResultDTO is the full accounting outcome for one shift.
type ShiftResultDTO struct {
	ThresholdReached string `json:"threshold_reached"`
	AmplitudeMark    string `json:"amplitude_mark"`

	OverrunMinutes      int `json:"overrun_minutes"`
	PreThresholdMinutes int `json:"pre_threshold_minutes"`
	BaseHourCount       int `json:"base_hour_count"`
	TotalOverrunHours   int `json:"total_overrun_hours"`

	DayBaseHours      int `json:"day_base_hours"`
	NightBaseHours    int `json:"night_base_hours"`
	DayPremiumHours   int `json:"day_premium_hours"`
	NightPremiumHours int `json:"night_premium_hours"`

	AccountingDay     string     `json:"accounting_day"`
	DayType           string     `json:"day_type"`
	PremiumMultiplier string     `json:"premium_multiplier"`
	CreditedPremium   string     `json:"credited_premium"`
	RestGrants        []GrantDTO `json:"rest_grants,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// AccountingDayDTO is the resolver-only response.
type AccountingDayDTO struct {
	AccountingDay string `json:"accounting_day"`
	DayType       string `json:"day_type"`
}

// RulesDTO exposes the active rule set so the form can render thresholds.
type RulesDTO struct {
	TargetMinutes      int               `json:"target_minutes"`
	AmplitudeHours     float64           `json:"amplitude_hours"`
	NightStartHour     int               `json:"night_start_hour"`
	NightEndHour       int               `json:"night_end_hour"`
	CleaningCapMinutes int               `json:"cleaning_cap_minutes"`
	Multipliers        map[string]string `json:"multipliers"`
}

// ScenarioDTO describes a preset demo shift.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ScenarioDetailDTO bundles a preset with its computed outcome.
type ScenarioDetailDTO struct {
	ScenarioDTO
	Request ComputeShiftRequest `json:"request"`
	Result  ShiftResultDTO      `json:"result"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// REQUEST -> ENGINE CONVERSION
// =============================================================================

// Resolve turns the request into a fully-formed engine input plus
// break-policy warnings. Exported because the CLI front shares the same
// clock-parsing and defaulting rules. Returned errors are client errors.
func (req ComputeShiftRequest) Resolve() (shift.Input, []string, error) {
	start, err := time.Parse(timestampLayout, strings.TrimSpace(req.Start))
	if err != nil {
		return shift.Input{}, nil, fmt.Errorf("invalid start: %w", err)
	}

	end, err := parseAnchored(req.End, start)
	if err != nil {
		return shift.Input{}, nil, fmt.Errorf("invalid end: %w", err)
	}
	if !end.After(start) {
		return shift.Input{}, nil, fmt.Errorf("end must be after start")
	}

	in := shift.Input{
		Start:           start,
		End:             end,
		CleaningMinutes: req.CleaningMinutes,
	}

	if req.MealNoon != nil {
		iv, err := req.MealNoon.toInterval(start, true)
		if err != nil {
			return shift.Input{}, nil, fmt.Errorf("invalid meal_noon: %w", err)
		}
		in.MealNoon = iv
	}
	if req.MealEvening != nil {
		iv, err := req.MealEvening.toInterval(start, true)
		if err != nil {
			return shift.Input{}, nil, fmt.Errorf("invalid meal_evening: %w", err)
		}
		in.MealEvening = iv
	}

	var warnings []string
	if req.RestBreak != nil {
		iv, err := req.RestBreak.toInterval(start, false)
		if err != nil {
			return shift.Input{}, nil, fmt.Errorf("invalid rest_break: %w", err)
		}
		in.RestBreak = iv
		warnings = breakPolicyWarnings(iv, start, end)
	}

	return in, warnings, nil
}

// toInterval resolves a clock interval request against the shift start.
// When defaultHour is set and the end is omitted, it defaults to start
// plus one hour (the meal rule).
func (c ClockIntervalRequest) toInterval(shiftStart time.Time, defaultHour bool) (*interval.Interval, error) {
	ivStart, err := parseAnchored(c.Start, shiftStart)
	if err != nil {
		return nil, err
	}

	var ivEnd time.Time
	switch {
	case strings.TrimSpace(c.End) != "":
		ivEnd, err = parseAnchored(c.End, ivStart)
		if err != nil {
			return nil, err
		}
	case defaultHour:
		ivEnd = ivStart.Add(time.Hour)
	default:
		return nil, fmt.Errorf("end is required")
	}

	iv := interval.New(ivStart, ivEnd)
	return &iv, nil
}

// parseAnchored accepts either a full timestamp or a bare "HH:MM". Clock
// values are anchored to the reference date and roll to the next day when
// the wall clock precedes the reference (next-day shift ends, evening
// pauses crossing midnight).
func parseAnchored(value string, reference time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(timestampLayout, value); err == nil {
		return t, nil
	}

	hour, min, err := parseClock(value)
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(reference.Year(), reference.Month(), reference.Day(), hour, min, 0, 0, reference.Location())
	if t.Before(reference) {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

// parseClock parses a "HH:MM" wall-clock string.
func parseClock(value string) (hour, min int, err error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	min, err = strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, min, nil
}

// breakPolicyWarnings checks the rest break against the duration policy:
// at least 2 hours, at most 25% of the shift span capped at 3h15. The
// engine computes either way; these only annotate the response.
func breakPolicyWarnings(br *interval.Interval, shiftStart, shiftEnd time.Time) []string {
	if br == nil || !br.IsValid() {
		return nil
	}

	var warnings []string
	d := br.Duration()
	if d < breakMinimum {
		warnings = append(warnings, fmt.Sprintf(
			"rest break of %s is shorter than the 2h minimum", formatDuration(d)))
	}

	maximum := shiftEnd.Sub(shiftStart) * breakMaxSharePct / 100
	if maximum > breakMaximumCap {
		maximum = breakMaximumCap
	}
	if d > maximum {
		warnings = append(warnings, fmt.Sprintf(
			"rest break of %s exceeds the allowed maximum of %s", formatDuration(d), formatDuration(maximum)))
	}
	return warnings
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02d", h, m)
}

// =============================================================================
// ENGINE -> RESPONSE CONVERSION
// =============================================================================

func (h *Handler) toResultDTO(res shift.Result, dayType shift.DayType, accountingDay time.Time, warnings []string) ShiftResultDTO {
	premium := res.PremiumBucketSize()

	grants := credit.RestGrants(dayType, premium)
	grantDTOs := make([]GrantDTO, len(grants))
	for i, g := range grants {
		grantDTOs[i] = GrantDTO{Unit: string(g.Unit), Amount: g.Amount.String()}
	}

	return ShiftResultDTO{
		ThresholdReached:    res.ThresholdReached.Format(timestampLayout),
		AmplitudeMark:       res.AmplitudeMark.Format(timestampLayout),
		OverrunMinutes:      res.OverrunMinutes,
		PreThresholdMinutes: res.PreThresholdMinutes,
		BaseHourCount:       res.BaseHourCount,
		TotalOverrunHours:   res.TotalOverrunHours,
		DayBaseHours:        res.DayBaseHours,
		NightBaseHours:      res.NightBaseHours,
		DayPremiumHours:     res.DayPremiumHours,
		NightPremiumHours:   res.NightPremiumHours,
		AccountingDay:       accountingDay.Format("2006-01-02"),
		DayType:             string(dayType),
		PremiumMultiplier:   h.Schedule.Multiplier(dayType).String(),
		CreditedPremium:     h.Schedule.CreditedPremium(dayType, premium).String(),
		RestGrants:          grantDTOs,
		Warnings:            warnings,
	}
}
