package mission

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// DailyStateContext provides context for the daily insertion guard.
// Populated by the caller with the pre-fetched count of today's daily missions.
type DailyStateContext struct {
	Date              string // YYYY-MM-DD
	ExistingToday     int
	SelectedTemplates int
}

// CanInsertDailyMissions evaluates whether today's daily missions may be persisted.
// Rule: daily missions are inserted at most once per calendar day, gated only by
// the presence of any daily-tagged mission created that day.
func CanInsertDailyMissions(ctx DailyStateContext) GuardResult {
	if ctx.ExistingToday > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("daily missions for %s already exist (%d found)", ctx.Date, ctx.ExistingToday),
		}
	}
	if ctx.SelectedTemplates == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("no daily missions selected for %s", ctx.Date),
		}
	}
	return GuardResult{Allowed: true}
}
