package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlog-cli/fitlog/internal/model"
)

// record builds a progress record for prediction tests.
func record(goalID string, day time.Time, value float64) *model.ProgressRecord {
	return &model.ProgressRecord{
		ID:         "r-" + day.Format("20060102"),
		GoalID:     goalID,
		RecordDate: DateOf(day),
		Value:      value,
		CreatedAt:  day,
	}
}

func TestPredictNoDeadline(t *testing.T) {
	g := testGoal(100, 5)
	gp, err := Predict(g, nil, date(2024, time.June, 1))
	require.NoError(t, err)

	assert.True(t, gp.OnTrack, "goals without a deadline are never behind")
	assert.False(t, gp.HasDeadline)
}

func TestPredictAtOrAboveTarget(t *testing.T) {
	today := date(2024, time.June, 1)

	g := withDeadline(testGoal(100, 100), date(2024, time.July, 1))
	gp, err := Predict(g, nil, today)
	require.NoError(t, err)
	assert.True(t, gp.OnTrack)

	g = withDeadline(testGoal(100, 130), date(2024, time.July, 1))
	gp, err = Predict(g, nil, today)
	require.NoError(t, err)
	assert.True(t, gp.OnTrack, "overshoot is still on track")
}

func TestPredictPastDeadline(t *testing.T) {
	today := date(2024, time.June, 1)

	g := withDeadline(testGoal(100, 60), date(2024, time.May, 1))
	gp, err := Predict(g, nil, today)
	require.NoError(t, err)
	assert.False(t, gp.OnTrack, "deadline passed short of target")
	assert.True(t, gp.HasDeadline)
	assert.Negative(t, gp.RemainingDays)

	g = withDeadline(testGoal(100, 100), date(2024, time.May, 1))
	gp, err = Predict(g, nil, today)
	require.NoError(t, err)
	assert.True(t, gp.OnTrack, "target reached before evaluation")
}

func TestPredictFromObservedRate(t *testing.T) {
	// 10 units over 10 days observed, 40 remaining over 20 days required.
	today := date(2024, time.June, 11)
	g := withDeadline(testGoal(100, 60), date(2024, time.July, 1))
	g.CreatedAt = date(2024, time.May, 1)

	records := []*model.ProgressRecord{
		record(g.ID, date(2024, time.June, 1), 50),
		record(g.ID, date(2024, time.June, 11), 60),
	}

	gp, err := Predict(g, records, today)
	require.NoError(t, err)

	assert.False(t, gp.OnTrack, "1/day observed against 2/day required")
	assert.Equal(t, 20, gp.RemainingDays)
	assert.InDelta(t, 80, gp.ProjectedValue, 1e-9, "60 now plus 1/day for 20 days")

	// Double the pace and the verdict flips.
	records = []*model.ProgressRecord{
		record(g.ID, date(2024, time.June, 1), 30),
		record(g.ID, date(2024, time.June, 11), 60),
	}
	gp, err = Predict(g, records, today)
	require.NoError(t, err)
	assert.True(t, gp.OnTrack, "3/day observed against 2/day required")
	assert.InDelta(t, 120, gp.ProjectedValue, 1e-9)
}

func TestPredictRecordOrderIrrelevant(t *testing.T) {
	today := date(2024, time.June, 11)
	g := withDeadline(testGoal(100, 60), date(2024, time.July, 1))

	records := []*model.ProgressRecord{
		record(g.ID, date(2024, time.June, 11), 60),
		record(g.ID, date(2024, time.June, 6), 45),
		record(g.ID, date(2024, time.June, 1), 30),
	}

	gp, err := Predict(g, records, today)
	require.NoError(t, err)
	assert.True(t, gp.OnTrack, "rate spans earliest to latest regardless of slice order")
}

func TestPredictFallbackElapsedFraction(t *testing.T) {
	// Not enough history for a trend: compare completion against elapsed time.
	g := withDeadline(testGoal(100, 60), date(2024, time.July, 1))
	g.CreatedAt = date(2024, time.June, 1)
	today := date(2024, time.June, 16) // halfway through the 30-day span

	gp, err := Predict(g, nil, today)
	require.NoError(t, err)
	assert.True(t, gp.OnTrack, "60% done at 50% elapsed")

	g.CurrentValue = 40
	gp, err = Predict(g, nil, today)
	require.NoError(t, err)
	assert.False(t, gp.OnTrack, "40% done at 50% elapsed")
}

func TestPredictSameDayRecordsFallBack(t *testing.T) {
	g := withDeadline(testGoal(100, 60), date(2024, time.July, 1))
	g.CreatedAt = date(2024, time.June, 1)
	today := date(2024, time.June, 16)

	// Two records on the same day give no usable rate.
	records := []*model.ProgressRecord{
		record(g.ID, date(2024, time.June, 10), 30),
		record(g.ID, date(2024, time.June, 10), 60),
	}

	gp, err := Predict(g, records, today)
	require.NoError(t, err)
	assert.True(t, gp.OnTrack, "falls back to elapsed-fraction comparison")
}

func TestPredictInvalidGoal(t *testing.T) {
	g := testGoal(0, 10)
	_, err := Predict(g, nil, date(2024, time.June, 1))
	assert.ErrorIs(t, err, ErrInvalidGoalDefinition)
}
