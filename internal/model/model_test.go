package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     string
		expected string
	}{
		{"integer with unit", 5, "km", "5 km"},
		{"fraction with unit", 2.5, "kg", "2.5 kg"},
		{"trims trailing zeros", 2.50, "kg", "2.5 kg"},
		{"two decimals kept", 2.25, "kg", "2.25 kg"},
		{"no unit", 42, "", "42"},
		{"zero", 0, "reps", "0 reps"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatValue(tc.value, tc.unit))
		})
	}
}

func TestKeyGeneration(t *testing.T) {
	assert.Equal(t, "goal:abc", GenerateGoalKey("abc"))
	assert.Equal(t, "workout:xyz", GenerateWorkoutKey("xyz"))
	assert.Equal(t, "progress:g1:r1", GenerateProgressKey("g1", "r1"))
	assert.Equal(t, "progress:g1:", GenerateProgressPrefix("g1"))
}

func TestValidGoalType(t *testing.T) {
	for _, gt := range GoalTypes() {
		assert.True(t, ValidGoalType(string(gt)), string(gt))
	}
	assert.False(t, ValidGoalType("cardio"))
	assert.False(t, ValidGoalType(""))
	assert.False(t, ValidGoalType("Strength"), "types are case sensitive")
}

func TestValidWorkoutType(t *testing.T) {
	for _, wt := range WorkoutTypes() {
		assert.True(t, ValidWorkoutType(string(wt)), string(wt))
	}
	assert.False(t, ValidWorkoutType("pilates"))
	assert.False(t, ValidWorkoutType(""))
}

func TestNewGoal(t *testing.T) {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)

	g := NewGoal("g1", GoalTypeEndurance, "Run 100 miles", 100, "mi", &deadline, now)

	assert.Equal(t, "goal:g1", g.GetKey())
	assert.Equal(t, "g1", g.ID)
	assert.Equal(t, GoalTypeEndurance, g.Type)
	assert.InDelta(t, 100, g.TargetValue, 1e-9)
	assert.Zero(t, g.CurrentValue)
	assert.False(t, g.IsCompleted)
	assert.True(t, g.HasDeadline())
	assert.Equal(t, now, g.CreatedAt)
	assert.Equal(t, now, g.UpdatedAt)

	g = NewGoal("g2", GoalTypeHabit, "Meditate", 30, "days", nil, now)
	assert.False(t, g.HasDeadline())
}

func TestNewProgressRecord(t *testing.T) {
	now := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	r := NewProgressRecord("r1", "g1", day, 42.5, "felt strong", now)

	assert.Equal(t, "progress:g1:r1", r.GetKey())
	assert.Equal(t, "g1", r.GoalID)
	assert.Equal(t, day, r.RecordDate)
	assert.InDelta(t, 42.5, r.Value, 1e-9)
	assert.Equal(t, "felt strong", r.Note)
	assert.Equal(t, now, r.CreatedAt)
}

func TestNewWorkout(t *testing.T) {
	now := time.Date(2024, time.May, 1, 18, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	w := NewWorkout("w1", day, WorkoutTypeRun, 45, "", now)

	assert.Equal(t, "workout:w1", w.GetKey())
	assert.Equal(t, WorkoutTypeRun, w.Type)
	assert.Equal(t, 45, w.DurationMinutes)
	assert.Equal(t, day, w.Date)
}

func TestSetKey(t *testing.T) {
	g := &Goal{}
	g.SetKey("goal:custom")
	assert.Equal(t, "goal:custom", g.GetKey())

	w := &Workout{}
	w.SetKey("workout:custom")
	assert.Equal(t, "workout:custom", w.GetKey())

	r := &ProgressRecord{}
	r.SetKey("progress:g:custom")
	assert.Equal(t, "progress:g:custom", r.GetKey())
}
