package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlog-cli/fitlog/internal/errors"
)

func TestGoalTitle(t *testing.T) {
	assert.NoError(t, GoalTitle("Run 100 miles"))
	assert.Error(t, GoalTitle(""))
	assert.Error(t, GoalTitle("   "))
	assert.NoError(t, GoalTitle(strings.Repeat("a", MaxTitleLength)))
	assert.Error(t, GoalTitle(strings.Repeat("a", MaxTitleLength+1)))
}

func TestGoalType(t *testing.T) {
	for _, s := range []string{"strength", "weight-loss", "endurance", "flexibility", "habit"} {
		assert.NoError(t, GoalType(s), s)
	}

	err := GoalType("cardio")
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))

	ue, ok := errors.AsUserError(err)
	require.True(t, ok)
	assert.Equal(t, "type", ue.Field)
	assert.Equal(t, "cardio", ue.Value)
}

func TestWorkoutType(t *testing.T) {
	for _, s := range []string{"run", "lift", "swim", "bike", "yoga", "other"} {
		assert.NoError(t, WorkoutType(s), s)
	}
	assert.Error(t, WorkoutType("pilates"))
	assert.Error(t, WorkoutType(""))
}

func TestTargetValue(t *testing.T) {
	assert.NoError(t, TargetValue(0.1))
	assert.NoError(t, TargetValue(100))
	assert.Error(t, TargetValue(0))
	assert.Error(t, TargetValue(-5))
}

func TestUnit(t *testing.T) {
	assert.NoError(t, Unit(""))
	assert.NoError(t, Unit("kg"))
	assert.NoError(t, Unit(strings.Repeat("x", MaxUnitLength)))
	assert.Error(t, Unit(strings.Repeat("x", MaxUnitLength+1)))
}

func TestNote(t *testing.T) {
	assert.NoError(t, Note(""))
	assert.NoError(t, Note("felt strong today"))
	assert.NoError(t, Note(strings.Repeat("n", MaxNoteLength)))
	assert.Error(t, Note(strings.Repeat("n", MaxNoteLength+1)))
}

func TestDuration(t *testing.T) {
	assert.NoError(t, Duration(0))
	assert.NoError(t, Duration(45))
	assert.NoError(t, Duration(MaxDurationMinutes))
	assert.Error(t, Duration(-1))
	assert.Error(t, Duration(MaxDurationMinutes+1))
}

func TestNonEmpty(t *testing.T) {
	assert.NoError(t, NonEmpty("goal ID", "abc"))
	assert.Error(t, NonEmpty("goal ID", ""))
	assert.Error(t, NonEmpty("goal ID", "  "))
}
