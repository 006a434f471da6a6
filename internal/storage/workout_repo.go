package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fitlog-cli/fitlog/internal/analytics"
	"github.com/fitlog-cli/fitlog/internal/model"
)

// WorkoutRepo provides operations for Workout entities.
type WorkoutRepo struct {
	db *DB
}

// NewWorkoutRepo creates a new workout repository.
func NewWorkoutRepo(db *DB) *WorkoutRepo {
	return &WorkoutRepo{db: db}
}

// Create creates a new workout with a time-sortable UUID v7 key.
func (r *WorkoutRepo) Create(workout *model.Workout) error {
	if workout.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		workout.ID = id.String()
	}
	workout.Key = model.GenerateWorkoutKey(workout.ID)
	return r.db.Set(workout)
}

// Get retrieves a workout by ID.
func (r *WorkoutRepo) Get(id string) (*model.Workout, error) {
	workout := &model.Workout{}
	if err := r.db.Get(model.GenerateWorkoutKey(id), workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Delete removes a workout by ID.
func (r *WorkoutRepo) Delete(id string) error {
	return r.db.Delete(model.GenerateWorkoutKey(id))
}

// List retrieves all workouts sorted by date ascending.
func (r *WorkoutRepo) List() ([]*model.Workout, error) {
	workouts, err := GetAllByPrefix(r.db, model.PrefixWorkout+":", func() *model.Workout {
		return &model.Workout{}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Date.Before(workouts[j].Date)
	})
	return workouts, nil
}

// ListByMonth retrieves all workouts within a calendar month, sorted by
// date ascending.
func (r *WorkoutRepo) ListByMonth(month analytics.Month) ([]*model.Workout, error) {
	workouts, err := GetFilteredByPrefix(r.db, model.PrefixWorkout+":", func() *model.Workout {
		return &model.Workout{}
	}, func(w *model.Workout) bool {
		return month.Contains(w.Date)
	}, 0)
	if err != nil {
		return nil, err
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Date.Before(workouts[j].Date)
	})
	return workouts, nil
}

// CountsByDate returns the number of workouts per calendar day, keyed by
// normalized date. This is the snapshot shape the calendar and streak
// calculators consume.
func (r *WorkoutRepo) CountsByDate() (map[time.Time]int, error) {
	workouts, err := GetAllByPrefix(r.db, model.PrefixWorkout+":", func() *model.Workout {
		return &model.Workout{}
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[time.Time]int, len(workouts))
	for _, w := range workouts {
		counts[analytics.DateOf(w.Date)]++
	}
	return counts, nil
}

// Dates returns the distinct calendar days with at least one workout,
// sorted ascending.
func (r *WorkoutRepo) Dates() ([]time.Time, error) {
	counts, err := r.CountsByDate()
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}
