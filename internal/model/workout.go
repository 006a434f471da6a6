package model

import (
	"fmt"
	"time"
)

// WorkoutType represents the kind of workout.
type WorkoutType string

const (
	WorkoutTypeRun   WorkoutType = "run"
	WorkoutTypeLift  WorkoutType = "lift"
	WorkoutTypeSwim  WorkoutType = "swim"
	WorkoutTypeBike  WorkoutType = "bike"
	WorkoutTypeYoga  WorkoutType = "yoga"
	WorkoutTypeOther WorkoutType = "other"
)

// WorkoutTypes returns all valid workout types.
func WorkoutTypes() []WorkoutType {
	return []WorkoutType{
		WorkoutTypeRun,
		WorkoutTypeLift,
		WorkoutTypeSwim,
		WorkoutTypeBike,
		WorkoutTypeYoga,
		WorkoutTypeOther,
	}
}

// ValidWorkoutType returns true if s is a recognized workout type.
func ValidWorkoutType(s string) bool {
	for _, t := range WorkoutTypes() {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Workout represents a single logged workout session. More than one workout
// may fall on the same calendar day.
type Workout struct {
	Key             string      `json:"key"`
	ID              string      `json:"id" validate:"required"`
	Date            time.Time   `json:"date" validate:"required"`
	Type            WorkoutType `json:"type" validate:"required"`
	DurationMinutes int         `json:"duration_minutes,omitempty" validate:"gte=0"`
	Note            string      `json:"note,omitempty" validate:"max=4096"`
	CreatedAt       time.Time   `json:"created_at"`
}

// SetKey sets the database key for this workout.
func (w *Workout) SetKey(key string) {
	w.Key = key
}

// GetKey returns the database key for this workout.
func (w *Workout) GetKey() string {
	return w.Key
}

// GenerateWorkoutKey generates a database key for a workout using its ID.
func GenerateWorkoutKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixWorkout, id)
}

// NewWorkout creates a new workout with the given parameters.
func NewWorkout(id string, date time.Time, workoutType WorkoutType, durationMinutes int, note string, now time.Time) *Workout {
	return &Workout{
		Key:             GenerateWorkoutKey(id),
		ID:              id,
		Date:            date,
		Type:            workoutType,
		DurationMinutes: durationMinutes,
		Note:            note,
		CreatedAt:       now,
	}
}
