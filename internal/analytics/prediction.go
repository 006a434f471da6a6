package analytics

import (
	"time"

	"github.com/fitlog-cli/fitlog/internal/model"
)

// GoalProgress is the derived on-track assessment for a single goal.
// It is rebuilt from scratch on every analytics pass and never mutated.
type GoalProgress struct {
	Goal          *model.Goal
	OnTrack       bool
	HasDeadline   bool
	RemainingDays int     // valid only when HasDeadline
	ProjectedValue float64 // extrapolated value at the deadline
}

// Predict estimates whether a goal will be met by its deadline.
//
// Goals without a deadline are never behind. Goals already at or above
// target are on track regardless of history. Past the deadline the verdict
// is simply whether the target was reached. Otherwise the observed daily
// rate from the progress history (earliest to latest record) is compared
// against the rate required to close the remaining value in the remaining
// days. With fewer than two records, or a zero-day record span, it falls
// back to comparing completion fraction against the elapsed fraction of the
// goal's planned lifetime.
func Predict(g *model.Goal, records []*model.ProgressRecord, today time.Time) (GoalProgress, error) {
	pct, err := ProgressPercentage(g)
	if err != nil {
		return GoalProgress{}, err
	}

	gp := GoalProgress{
		Goal:           g,
		ProjectedValue: g.CurrentValue,
	}

	remaining, hasDeadline := RemainingDays(g, today)
	if !hasDeadline {
		gp.OnTrack = true
		return gp, nil
	}
	gp.HasDeadline = true
	gp.RemainingDays = remaining

	if g.IsCompleted || g.CurrentValue >= g.TargetValue {
		gp.OnTrack = true
		return gp, nil
	}

	if remaining <= 0 {
		// Deadline has passed: evaluate pass/fail at the wire.
		gp.OnTrack = g.CurrentValue >= g.TargetValue
		return gp, nil
	}

	requiredRate := RemainingValue(g) / float64(remaining)

	if rate, ok := observedRate(records); ok {
		gp.OnTrack = rate >= requiredRate
		gp.ProjectedValue = g.CurrentValue + rate*float64(remaining)
		return gp, nil
	}

	// Too little history for a trend: compare completion fraction against
	// the elapsed fraction of the goal's planned lifetime.
	gp.OnTrack = pct >= elapsedFraction(g, today)
	return gp, nil
}

// observedRate computes the average daily progress rate across the record
// history. It reports false when fewer than two records exist or when all
// records fall on the same day.
func observedRate(records []*model.ProgressRecord) (float64, bool) {
	if len(records) < 2 {
		return 0, false
	}

	earliest, latest := records[0], records[0]
	for _, r := range records[1:] {
		if r.RecordDate.Before(earliest.RecordDate) {
			earliest = r
		}
		if r.RecordDate.After(latest.RecordDate) {
			latest = r
		}
	}

	span := DaysBetween(earliest.RecordDate, latest.RecordDate)
	if span == 0 {
		return 0, false
	}
	return (latest.Value - earliest.Value) / float64(span), true
}

// elapsedFraction returns how much of the goal's creation-to-deadline span
// has passed, clamped to [0, 1].
func elapsedFraction(g *model.Goal, today time.Time) float64 {
	total := DaysBetween(g.CreatedAt, *g.Deadline)
	if total <= 0 {
		return 1
	}
	frac := float64(DaysBetween(g.CreatedAt, today)) / float64(total)
	if frac > 1 {
		frac = 1
	}
	if frac < 0 {
		frac = 0
	}
	return frac
}
