// Package validate provides input validation helpers for the FitLog CLI.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/fitlog-cli/fitlog/internal/errors"
	"github.com/fitlog-cli/fitlog/internal/model"
)

const (
	// MaxTitleLength is the maximum length for a goal title.
	MaxTitleLength = 128
	// MaxNoteLength is the maximum length for a note or description.
	MaxNoteLength = 4096
	// MaxUnitLength is the maximum length for a unit label.
	MaxUnitLength = 16
	// MaxDurationMinutes caps a single workout session length.
	MaxDurationMinutes = 24 * 60
)

// GoalTitle validates a goal title.
func GoalTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewUserError("Goal title cannot be empty", "Provide a title for the goal")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserErrorWithField("title", title,
			"Goal title too long",
			"Titles must be 128 characters or fewer")
	}
	return nil
}

// GoalType validates a goal type against the closed set.
func GoalType(s string) error {
	if !model.ValidGoalType(s) {
		return errors.NewUserErrorWithField("type", s,
			"Invalid goal type",
			"Use one of: strength, weight-loss, endurance, flexibility, habit")
	}
	return nil
}

// WorkoutType validates a workout type against the closed set.
func WorkoutType(s string) error {
	if !model.ValidWorkoutType(s) {
		return errors.NewUserErrorWithField("type", s,
			"Invalid workout type",
			"Use one of: run, lift, swim, bike, yoga, other")
	}
	return nil
}

// TargetValue validates a goal target value.
func TargetValue(v float64) error {
	if v <= 0 {
		return errors.NewUserError(
			"Target value must be positive",
			"Provide a target greater than zero, like --target 100")
	}
	return nil
}

// Unit validates a unit label.
func Unit(unit string) error {
	if utf8.RuneCountInString(unit) > MaxUnitLength {
		return errors.NewUserErrorWithField("unit", unit,
			"Unit too long",
			"Units must be 16 characters or fewer")
	}
	return nil
}

// Note validates a note/description.
func Note(note string) error {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return errors.NewUserError(
			"Note too long",
			"Notes must be 4096 characters or fewer")
	}
	return nil
}

// Duration validates a workout duration in minutes.
func Duration(minutes int) error {
	if minutes < 0 {
		return errors.NewUserError(
			"Duration cannot be negative",
			"Provide a duration in minutes, like --duration 45")
	}
	if minutes > MaxDurationMinutes {
		return errors.NewUserError(
			"Duration too long",
			"A single workout cannot exceed 24 hours")
	}
	return nil
}

// NonEmpty validates that a string is not empty.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	return nil
}
