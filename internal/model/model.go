// Package model defines the domain models for FitLog.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// KeyPrefix constants for database key generation.
const (
	PrefixGoal     = "goal"
	PrefixProgress = "progress"
	PrefixWorkout  = "workout"
)

// FormatValue renders a numeric value with its unit, trimming trailing
// zeros ("5 km", "2.5 kg").
func FormatValue(value float64, unit string) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if unit == "" {
		return s
	}
	return fmt.Sprintf("%s %s", s, unit)
}
