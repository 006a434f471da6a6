package model

import (
	"fmt"
	"time"
)

// GoalType represents the category of a fitness goal.
type GoalType string

const (
	GoalTypeStrength    GoalType = "strength"
	GoalTypeWeightLoss  GoalType = "weight-loss"
	GoalTypeEndurance   GoalType = "endurance"
	GoalTypeFlexibility GoalType = "flexibility"
	GoalTypeHabit       GoalType = "habit"
)

// GoalTypes returns all valid goal types.
func GoalTypes() []GoalType {
	return []GoalType{
		GoalTypeStrength,
		GoalTypeWeightLoss,
		GoalTypeEndurance,
		GoalTypeFlexibility,
		GoalTypeHabit,
	}
}

// ValidGoalType returns true if s is a recognized goal type.
func ValidGoalType(s string) bool {
	for _, t := range GoalTypes() {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Goal represents a measurable fitness target, optionally with a deadline.
// Analytics only ever derives values from a goal; it never mutates one.
type Goal struct {
	Key          string     `json:"key"`
	ID           string     `json:"id" validate:"required"`
	Type         GoalType   `json:"type" validate:"required"`
	Title        string     `json:"title" validate:"required,max=128"`
	Description  string     `json:"description,omitempty" validate:"max=4096"`
	TargetValue  float64    `json:"target_value" validate:"required,gt=0"`
	CurrentValue float64    `json:"current_value"`
	Unit         string     `json:"unit,omitempty" validate:"max=16"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	IsCompleted  bool       `json:"is_completed"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SetKey sets the database key for this goal.
func (g *Goal) SetKey(key string) {
	g.Key = key
}

// GetKey returns the database key for this goal.
func (g *Goal) GetKey() string {
	return g.Key
}

// HasDeadline returns true if the goal has a deadline set.
func (g *Goal) HasDeadline() bool {
	return g.Deadline != nil
}

// GenerateGoalKey generates a database key for a goal using its ID.
func GenerateGoalKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixGoal, id)
}

// NewGoal creates a new goal with the given parameters.
func NewGoal(id string, goalType GoalType, title string, targetValue float64, unit string, deadline *time.Time, now time.Time) *Goal {
	return &Goal{
		Key:         GenerateGoalKey(id),
		ID:          id,
		Type:        goalType,
		Title:       title,
		TargetValue: targetValue,
		Unit:        unit,
		Deadline:    deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
