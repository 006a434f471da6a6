package analytics

import "time"

// GridCells is the fixed size of a month grid: six full Sunday-to-Saturday
// weeks, including padding days from the adjacent months.
const GridCells = 42

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	Date           time.Time
	WorkoutCount   int
	HasWorkout     bool
	IsToday        bool
	IsSelected     bool
	IsCurrentMonth bool
}

// MonthData is the derived 42-cell grid for one calendar month.
type MonthData struct {
	Month         Month
	Days          []CalendarDay
	WorkoutCounts map[time.Time]int
}

// BuildMonth expands a month into its 6x7 grid. The grid starts on the most
// recent Sunday on or before the 1st and always emits exactly GridCells
// consecutive days, so the first cell is a Sunday and the last a Saturday.
// workoutCounts maps normalized days (DateOf) to the number of workouts that
// day; today and selected are compared by calendar day, never read from the
// clock.
func BuildMonth(m Month, workoutCounts map[time.Time]int, selected, today time.Time) MonthData {
	first := m.First()
	cursor := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]CalendarDay, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		count := workoutCounts[cursor]
		days = append(days, CalendarDay{
			Date:           cursor,
			WorkoutCount:   count,
			HasWorkout:     count > 0,
			IsToday:        SameDay(cursor, today),
			IsSelected:     !selected.IsZero() && SameDay(cursor, selected),
			IsCurrentMonth: m.Contains(cursor),
		})
		cursor = cursor.AddDate(0, 0, 1)
	}

	return MonthData{
		Month:         m,
		Days:          days,
		WorkoutCounts: workoutCounts,
	}
}
