package analytics

import (
	"sort"
	"time"
)

// CurrentStreak returns the length of the consecutive-day workout run ending
// today. It walks backward from today while each day has at least one
// workout. A day without a workout today means the current streak is 0; an
// earlier run does not count as "current".
func CurrentStreak(workoutCounts map[time.Time]int, today time.Time) int {
	streak := 0
	for day := DateOf(today); workoutCounts[day] > 0; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// LongestStreak returns the length of the longest consecutive-day workout
// run anywhere in the history.
func LongestStreak(workoutCounts map[time.Time]int) int {
	if len(workoutCounts) == 0 {
		return 0
	}

	dates := make([]time.Time, 0, len(workoutCounts))
	for d, count := range workoutCounts {
		if count > 0 {
			dates = append(dates, DateOf(d))
		}
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if DaysBetween(dates[i-1], dates[i]) == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}
