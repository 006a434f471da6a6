package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlog-cli/fitlog/internal/model"
)

// testGoal builds a minimal goal for analytics tests.
func testGoal(target, current float64) *model.Goal {
	return &model.Goal{
		ID:           "g1",
		Type:         model.GoalTypeHabit,
		Title:        "Run 100 miles",
		TargetValue:  target,
		CurrentValue: current,
		Unit:         "mi",
		CreatedAt:    date(2024, time.January, 1),
		UpdatedAt:    date(2024, time.January, 1),
	}
}

// withDeadline attaches a deadline to a test goal.
func withDeadline(g *model.Goal, deadline time.Time) *model.Goal {
	d := DateOf(deadline)
	g.Deadline = &d
	return g
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name     string
		target   float64
		current  float64
		expected float64
	}{
		{"no progress", 100, 0, 0},
		{"halfway", 100, 50, 0.5},
		{"complete", 100, 100, 1},
		{"clamped above target", 100, 150, 1},
		{"clamped below zero", 100, -10, 0},
		{"fractional values", 42.5, 17, 0.4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pct, err := ProgressPercentage(testGoal(tc.target, tc.current))
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, pct, 1e-9)
		})
	}
}

func TestProgressPercentageInvalidTarget(t *testing.T) {
	for _, target := range []float64{0, -5} {
		_, err := ProgressPercentage(testGoal(target, 10))
		assert.ErrorIs(t, err, ErrInvalidGoalDefinition)
	}
}

func TestRemainingValue(t *testing.T) {
	assert.InDelta(t, 60, RemainingValue(testGoal(100, 40)), 1e-9)
	assert.InDelta(t, 0, RemainingValue(testGoal(100, 100)), 1e-9)
	assert.InDelta(t, 0, RemainingValue(testGoal(100, 120)), 1e-9, "overshoot never goes negative")
}

func TestRemainingDays(t *testing.T) {
	today := date(2024, time.June, 1)

	g := testGoal(100, 10)
	_, ok := RemainingDays(g, today)
	assert.False(t, ok, "no deadline")

	withDeadline(g, date(2024, time.June, 11))
	days, ok := RemainingDays(g, today)
	require.True(t, ok)
	assert.Equal(t, 10, days)

	withDeadline(g, date(2024, time.May, 30))
	days, ok = RemainingDays(g, today)
	require.True(t, ok)
	assert.Equal(t, -2, days, "passed deadline counts negative")
}
