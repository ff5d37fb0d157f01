// shiftcalc computes the overtime entitlement for a single shift from the
// command line, using the same engine and form rules as the server.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/railtime/overtime-engine/api"
	"github.com/railtime/overtime-engine/credit"
	"github.com/railtime/overtime-engine/factory"
	"github.com/railtime/overtime-engine/shift"
)

func main() {
	var (
		startStr    string
		endStr      string
		breakStr    string
		mealNoon    string
		mealEvening string
		dayType     string
		cleaning    int
		rulesFile   string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "shiftcalc",
		Short: "Overtime entitlement calculator for a single shift",
		Long: `Computes the effective-duration threshold, the amplitude mark and the
day/night base/premium overtime buckets for one shift, then prints the
credited totals for the resolved day type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(startStr) == "" || strings.TrimSpace(endStr) == "" {
				return fmt.Errorf("--start and --end are required")
			}

			rules := shift.DefaultRules()
			schedule := credit.DefaultSchedule()
			if rulesFile != "" {
				raw, err := os.ReadFile(rulesFile)
				if err != nil {
					return fmt.Errorf("read rules file: %w", err)
				}
				rules, schedule, err = factory.ParseRuleSet(string(raw))
				if err != nil {
					return err
				}
			}

			req := api.ComputeShiftRequest{
				Start:           startStr,
				End:             endStr,
				DayType:         dayType,
				CleaningMinutes: cleaning,
			}
			var err error
			if req.RestBreak, err = parseRange(breakStr, false); err != nil {
				return fmt.Errorf("invalid --break: %w", err)
			}
			if req.MealNoon, err = parseRange(mealNoon, true); err != nil {
				return fmt.Errorf("invalid --meal-noon: %w", err)
			}
			if req.MealEvening, err = parseRange(mealEvening, true); err != nil {
				return fmt.Errorf("invalid --meal-evening: %w", err)
			}

			in, warnings, err := req.Resolve()
			if err != nil {
				return err
			}

			day := shift.ResolveAccountingDay(in.Start, in.End)
			dt := shift.DayType(dayType)
			if !dt.Valid() {
				dt = shift.DayTypeForDate(day)
			}
			in.DayType = dt

			res := rules.Compute(in)
			if asJSON {
				return printJSON(res, dt, day.Format("2006-01-02"), schedule, warnings)
			}
			printHuman(res, dt, day.Format("2006-01-02"), schedule, warnings)
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", `Shift start "2006-01-02 15:04"`)
	cmd.Flags().StringVar(&endStr, "end", "", `Shift end, full timestamp or HH:MM (rolls to next day)`)
	cmd.Flags().StringVar(&breakStr, "break", "", "Rest break HH:MM-HH:MM")
	cmd.Flags().StringVar(&mealNoon, "meal-noon", "", "Noon meal HH:MM or HH:MM-HH:MM (end defaults to +1h)")
	cmd.Flags().StringVar(&mealEvening, "meal-evening", "", "Evening meal HH:MM or HH:MM-HH:MM")
	cmd.Flags().StringVar(&dayType, "day-type", "auto", "weekday, saturday_rest, sunday_rest or auto")
	cmd.Flags().IntVar(&cleaning, "cleaning", 0, "In-shift cleaning minutes (0-20)")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "Optional JSON rule-set file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Machine-readable output")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseRange turns "HH:MM-HH:MM" (or a bare "HH:MM" when the end may
// default) into a clock interval request. Empty input means absent.
func parseRange(s string, endOptional bool) (*api.ClockIntervalRequest, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		if !endOptional {
			return nil, fmt.Errorf("expected HH:MM-HH:MM, got %q", s)
		}
		return &api.ClockIntervalRequest{Start: parts[0]}, nil
	}
	return &api.ClockIntervalRequest{Start: parts[0], End: parts[1]}, nil
}

func printHuman(res shift.Result, dt shift.DayType, day string, schedule credit.Schedule, warnings []string) {
	fmt.Printf("Accounting day:     %s (%s)\n", day, dt)
	fmt.Printf("Threshold reached:  %s\n", res.ThresholdReached.Format("2006-01-02 15:04"))
	fmt.Printf("Amplitude mark:     %s\n", res.AmplitudeMark.Format("2006-01-02 15:04"))
	fmt.Printf("Overrun minutes:    %d (pre-amplitude %d)\n", res.OverrunMinutes, res.PreThresholdMinutes)
	fmt.Printf("Overtime hours:     %d total, %d base / %d premium\n",
		res.TotalOverrunHours, res.BaseBucketSize(), res.PremiumBucketSize())
	fmt.Printf("  base:    %d day, %d night\n", res.DayBaseHours, res.NightBaseHours)
	fmt.Printf("  premium: %d day, %d night\n", res.DayPremiumHours, res.NightPremiumHours)
	fmt.Printf("Credited premium:   %s (x%s)\n",
		schedule.CreditedPremium(dt, res.PremiumBucketSize()), schedule.Multiplier(dt))

	for _, g := range credit.RestGrants(dt, res.PremiumBucketSize()) {
		fmt.Printf("Rest grant:         %s %s\n", g.Amount, g.Unit)
	}
	for _, w := range warnings {
		fmt.Printf("Warning: %s\n", w)
	}
}

func printJSON(res shift.Result, dt shift.DayType, day string, schedule credit.Schedule, warnings []string) error {
	grants := credit.RestGrants(dt, res.PremiumBucketSize())
	grantOut := make([]map[string]string, len(grants))
	for i, g := range grants {
		grantOut[i] = map[string]string{"unit": string(g.Unit), "amount": g.Amount.String()}
	}

	out := map[string]any{
		"accounting_day":        day,
		"day_type":              string(dt),
		"threshold_reached":     res.ThresholdReached.Format("2006-01-02 15:04"),
		"amplitude_mark":        res.AmplitudeMark.Format("2006-01-02 15:04"),
		"overrun_minutes":       res.OverrunMinutes,
		"pre_threshold_minutes": res.PreThresholdMinutes,
		"base_hour_count":       res.BaseHourCount,
		"total_overrun_hours":   res.TotalOverrunHours,
		"day_base_hours":        res.DayBaseHours,
		"night_base_hours":      res.NightBaseHours,
		"day_premium_hours":     res.DayPremiumHours,
		"night_premium_hours":   res.NightPremiumHours,
		"credited_premium":      schedule.CreditedPremium(dt, res.PremiumBucketSize()).String(),
		"rest_grants":           grantOut,
		"warnings":              warnings,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
