package analytics

import (
	"errors"
	"time"

	"github.com/fitlog-cli/fitlog/internal/model"
)

// ErrInvalidGoalDefinition is returned when a goal's target value is not
// positive. Every percentage and prediction depends on a well-formed target,
// so this is the one input defect that fails loudly instead of degrading.
var ErrInvalidGoalDefinition = errors.New("invalid goal definition: target value must be positive")

// ProgressPercentage returns the goal's completion fraction in [0, 1].
// The raw ratio currentValue/targetValue is clamped at both ends: values
// past the target report 1.0, and regressions below zero report 0.0.
func ProgressPercentage(g *model.Goal) (float64, error) {
	if g.TargetValue <= 0 {
		return 0, ErrInvalidGoalDefinition
	}
	pct := g.CurrentValue / g.TargetValue
	if pct > 1 {
		pct = 1
	}
	if pct < 0 {
		pct = 0
	}
	return pct, nil
}

// RemainingValue returns how much of the target is still outstanding,
// never negative.
func RemainingValue(g *model.Goal) float64 {
	remaining := g.TargetValue - g.CurrentValue
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingDays returns the number of calendar days from today until the
// goal's deadline. The second return value is false when the goal has no
// deadline. A passed deadline yields a negative count; callers treat
// negative as overdue.
func RemainingDays(g *model.Goal, today time.Time) (int, bool) {
	if g.Deadline == nil {
		return 0, false
	}
	return DaysBetween(today, *g.Deadline), true
}
