package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridShape(t *testing.T) {
	// Every month, whatever weekday it starts on, expands to the same shape.
	months := []Month{
		{2024, time.January},  // starts Monday
		{2024, time.February}, // leap february, starts Thursday
		{2024, time.September}, // starts Sunday
		{2024, time.June},     // starts Saturday
		{2023, time.February}, // 28 days
	}

	for _, m := range months {
		t.Run(m.String(), func(t *testing.T) {
			data := BuildMonth(m, nil, time.Time{}, date(2024, time.January, 1))

			require.Len(t, data.Days, GridCells)
			assert.Equal(t, time.Sunday, data.Days[0].Date.Weekday(), "grid starts on Sunday")
			assert.Equal(t, time.Saturday, data.Days[GridCells-1].Date.Weekday(), "grid ends on Saturday")

			for i := 1; i < len(data.Days); i++ {
				assert.Equal(t, 1, DaysBetween(data.Days[i-1].Date, data.Days[i].Date),
					"cells are consecutive days")
			}

			inMonth := 0
			for _, day := range data.Days {
				if day.IsCurrentMonth {
					inMonth++
				}
			}
			assert.Equal(t, m.Days(), inMonth, "every day of the month appears exactly once")
		})
	}
}

func TestBuildMonthPadding(t *testing.T) {
	// September 2024 starts on a Sunday, so there is no leading padding.
	data := BuildMonth(Month{2024, time.September}, nil, time.Time{}, date(2024, time.September, 1))
	assert.Equal(t, date(2024, time.September, 1), data.Days[0].Date)
	assert.True(t, data.Days[0].IsCurrentMonth)

	// May 2024 starts on a Wednesday: three leading April days.
	data = BuildMonth(Month{2024, time.May}, nil, time.Time{}, date(2024, time.May, 1))
	assert.Equal(t, date(2024, time.April, 28), data.Days[0].Date)
	assert.False(t, data.Days[0].IsCurrentMonth)
	assert.Equal(t, date(2024, time.May, 1), data.Days[3].Date)
	assert.True(t, data.Days[3].IsCurrentMonth)
}

func TestBuildMonthWorkoutCounts(t *testing.T) {
	workouts := map[time.Time]int{
		date(2024, time.May, 3):  2,
		date(2024, time.May, 10): 1,
		// Padding day from april carries its count too.
		date(2024, time.April, 29): 1,
	}

	data := BuildMonth(Month{2024, time.May}, workouts, time.Time{}, date(2024, time.May, 15))

	byDate := make(map[time.Time]CalendarDay, len(data.Days))
	for _, day := range data.Days {
		byDate[day.Date] = day
	}

	assert.Equal(t, 2, byDate[date(2024, time.May, 3)].WorkoutCount)
	assert.True(t, byDate[date(2024, time.May, 3)].HasWorkout)
	assert.True(t, byDate[date(2024, time.May, 10)].HasWorkout)
	assert.True(t, byDate[date(2024, time.April, 29)].HasWorkout)
	assert.False(t, byDate[date(2024, time.May, 4)].HasWorkout)
	assert.Zero(t, byDate[date(2024, time.May, 4)].WorkoutCount)
}

func TestBuildMonthTodayMarker(t *testing.T) {
	today := date(2024, time.May, 15)
	data := BuildMonth(Month{2024, time.May}, nil, time.Time{}, today)

	marked := 0
	for _, day := range data.Days {
		if day.IsToday {
			marked++
			assert.Equal(t, today, day.Date)
		}
	}
	assert.Equal(t, 1, marked)

	// Today outside the displayed month marks nothing.
	data = BuildMonth(Month{2024, time.January}, nil, time.Time{}, today)
	for _, day := range data.Days {
		assert.False(t, day.IsToday)
	}
}

func TestBuildMonthSelection(t *testing.T) {
	selected := date(2024, time.May, 20)
	data := BuildMonth(Month{2024, time.May}, nil, selected, date(2024, time.May, 15))

	marked := 0
	for _, day := range data.Days {
		if day.IsSelected {
			marked++
			assert.Equal(t, selected, day.Date)
		}
	}
	assert.Equal(t, 1, marked)

	// The zero time means no selection.
	data = BuildMonth(Month{2024, time.May}, nil, time.Time{}, date(2024, time.May, 15))
	for _, day := range data.Days {
		assert.False(t, day.IsSelected)
	}
}
