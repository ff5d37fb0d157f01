/*
handlers.go - HTTP API handlers for the overtime calculator

PURPOSE:
  Exposes the time-accounting engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  POST /api/compute           Account a single shift
  POST /api/accounting-day    Resolve which calendar day owns a shift
  GET  /api/rules             Active rule set and multipliers
  GET  /api/scenarios         Preset demo shifts
  GET  /api/scenarios/{id}    Preset with computed outcome
  GET  /api/healthz           Liveness probe

ARCHITECTURE:
  Handler holds the rule set, the credit schedule and a validator. There
  is no store: every request is a standalone computation, nothing is
  persisted between calls.

ERROR HANDLING:
  - 400: malformed JSON, missing/invalid timestamps, unknown day type
  - 404: unknown scenario
  Break-policy violations are NOT errors; they come back as warnings in
  a 200 response so the form can still draw the result.

SEE ALSO:
  - dto.go: request/response data structures and clock parsing
  - server.go: router setup and middleware
  - shift/: the engine itself
*/
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/railtime/overtime-engine/credit"
	"github.com/railtime/overtime-engine/shift"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Rules    shift.Rules
	Schedule credit.Schedule

	validate *validator.Validate
}

// NewHandler creates a handler computing under the given rule set.
func NewHandler(rules shift.Rules, schedule credit.Schedule) *Handler {
	return &Handler{
		Rules:    rules,
		Schedule: schedule,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// =============================================================================
// COMPUTE
// =============================================================================

// ComputeShift runs the full pipeline: parse and validate the form input,
// resolve the accounting day when the day type is "auto", account the
// shift, attach credited totals and policy warnings.
func (h *Handler) ComputeShift(w http.ResponseWriter, r *http.Request) {
	var req ComputeShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	in, warnings, err := req.Resolve()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift", err)
		return
	}

	accountingDay := shift.ResolveAccountingDay(in.Start, in.End)
	dayType := shift.DayType(req.DayType)
	if !dayType.Valid() {
		dayType = shift.DayTypeForDate(accountingDay)
	}
	in.DayType = dayType

	res := h.Rules.Compute(in)
	writeJSON(w, http.StatusOK, h.toResultDTO(res, dayType, accountingDay, warnings))
}

// =============================================================================
// ACCOUNTING DAY
// =============================================================================

// ResolveAccountingDay attributes a shift to its accounting day without
// running the full computation. The form calls this to preselect the day
// type while the user is still typing.
func (h *Handler) ResolveAccountingDay(w http.ResponseWriter, r *http.Request) {
	var req AccountingDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	probe := ComputeShiftRequest{Start: req.Start, End: req.End}
	in, _, err := probe.Resolve()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift", err)
		return
	}

	day := shift.ResolveAccountingDay(in.Start, in.End)
	writeJSON(w, http.StatusOK, AccountingDayDTO{
		AccountingDay: day.Format("2006-01-02"),
		DayType:       string(shift.DayTypeForDate(day)),
	})
}

// =============================================================================
// RULES
// =============================================================================

// GetRules returns the active rule set so the form can render thresholds
// and multipliers without hardcoding them.
func (h *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RulesDTO{
		TargetMinutes:      h.Rules.TargetMinutes,
		AmplitudeHours:     h.Rules.Amplitude.Hours(),
		NightStartHour:     h.Rules.NightStartHour,
		NightEndHour:       h.Rules.NightEndHour,
		CleaningCapMinutes: h.Rules.CleaningCapMinutes,
		Multipliers: map[string]string{
			string(shift.DayWeekday):      h.Schedule.Multiplier(shift.DayWeekday).String(),
			string(shift.DaySaturdayRest): h.Schedule.Multiplier(shift.DaySaturdayRest).String(),
			string(shift.DaySundayRest):   h.Schedule.Multiplier(shift.DaySundayRest).String(),
		},
	})
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Error = message + ": " + err.Error()
	}
	if status >= http.StatusInternalServerError {
		slog.Error(message, "error", err)
	}
	writeJSON(w, status, resp)
}
