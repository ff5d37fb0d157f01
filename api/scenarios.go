/*
scenarios.go - Preset demo shifts for testing and demonstrations

PURPOSE:

	Provides pre-built shifts that exercise the interesting corners of the
	engine so the form can offer one-click examples. Scenarios are pure
	data: loading one computes it on the fly, nothing is stored.

AVAILABLE SCENARIOS:

	weekday-long-day:   plain Monday shift running past the threshold
	night-into-sunday:  Saturday night shift attributed to Sunday
	split-with-meals:   both meals plus a rest break
	cleaning-allowance: maximum in-shift cleaning, amplitude pushed back
	short-day:          shift below the effective-work target, no overtime

ADDING NEW SCENARIOS:
 1. Add to the 'scenarios' slice with ID, name, description, request
 2. Nothing else; the detail endpoint computes the outcome on demand

SEE ALSO:
  - handlers.go: writeJSON/writeError helpers
  - dto.go: ComputeShiftRequest / ScenarioDetailDTO
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/railtime/overtime-engine/shift"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

type scenario struct {
	ScenarioDTO
	Request ComputeShiftRequest
}

var scenarios = []scenario{
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "weekday-long-day",
			Name:        "Weekday Long Day",
			Description: "Monday 05:00 to 20:30 without pauses: threshold at 12:48, eight overtime hours",
		},
		Request: ComputeShiftRequest{
			Start: "2024-01-08 05:00",
			End:   "20:30",
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "night-into-sunday",
			Name:        "Night Into Sunday",
			Description: "Saturday 22:00 to Sunday 06:00: the accounting day rolls to Sunday rest",
		},
		Request: ComputeShiftRequest{
			Start: "2024-01-06 22:00",
			End:   "06:00",
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "split-with-meals",
			Name:        "Split Day With Meals",
			Description: "Both meals plus a regulation rest break; only the break moves the base-hours window",
		},
		Request: ComputeShiftRequest{
			Start:     "2024-01-08 06:00",
			End:       "23:45",
			MealNoon:  &ClockIntervalRequest{Start: "11:45", End: "12:45"},
			RestBreak: &ClockIntervalRequest{Start: "13:00", End: "15:30"},
			MealEvening: &ClockIntervalRequest{
				Start: "19:00", // end omitted: defaults to one hour
			},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "cleaning-allowance",
			Name:        "Cleaning Allowance",
			Description: "Maximum 20-minute in-shift cleaning: amplitude pushed back, rounding input reduced",
		},
		Request: ComputeShiftRequest{
			Start:           "2024-01-08 05:00",
			End:             "18:08",
			CleaningMinutes: 20,
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "short-day",
			Name:        "Short Day",
			Description: "Six-hour shift below the effective-work target: no overtime at all",
		},
		Request: ComputeShiftRequest{
			Start: "2024-01-08 08:00",
			End:   "14:00",
		},
	},
}

// =============================================================================
// HANDLERS
// =============================================================================

// ListScenarios returns the preset catalog.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = s.ScenarioDTO
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetScenario returns a preset together with its computed outcome.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, s := range scenarios {
		if s.ID != id {
			continue
		}

		in, warnings, err := s.Request.Resolve()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Scenario is malformed", err)
			return
		}

		day := shift.ResolveAccountingDay(in.Start, in.End)
		dayType := shift.DayTypeForDate(day)
		res := h.Rules.Compute(in)

		writeJSON(w, http.StatusOK, ScenarioDetailDTO{
			ScenarioDTO: s.ScenarioDTO,
			Request:     s.Request,
			Result:      h.toResultDTO(res, dayType, day, warnings),
		})
		return
	}

	writeError(w, http.StatusNotFound, "Unknown scenario", nil)
}
