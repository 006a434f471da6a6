package model

import (
	"fmt"
	"time"
)

// ProgressRecord captures a goal's value on a given date. Records are
// historical facts: immutable once created, ordered per goal by RecordDate.
type ProgressRecord struct {
	Key        string    `json:"key"`
	ID         string    `json:"id" validate:"required"`
	GoalID     string    `json:"goal_id" validate:"required"`
	RecordDate time.Time `json:"record_date" validate:"required"`
	Value      float64   `json:"value"`
	Note       string    `json:"note,omitempty" validate:"max=4096"`
	CreatedAt  time.Time `json:"created_at"`
}

// SetKey sets the database key for this record.
func (r *ProgressRecord) SetKey(key string) {
	r.Key = key
}

// GetKey returns the database key for this record.
func (r *ProgressRecord) GetKey() string {
	return r.Key
}

// GenerateProgressKey generates a database key for a progress record.
// The goal ID comes first so a prefix scan yields one goal's history.
func GenerateProgressKey(goalID, id string) string {
	return fmt.Sprintf("%s:%s:%s", PrefixProgress, goalID, id)
}

// GenerateProgressPrefix generates the key prefix covering all records of
// one goal.
func GenerateProgressPrefix(goalID string) string {
	return fmt.Sprintf("%s:%s:", PrefixProgress, goalID)
}

// NewProgressRecord creates a new progress record.
func NewProgressRecord(id, goalID string, recordDate time.Time, value float64, note string, now time.Time) *ProgressRecord {
	return &ProgressRecord{
		Key:        GenerateProgressKey(goalID, id),
		ID:         id,
		GoalID:     goalID,
		RecordDate: recordDate,
		Value:      value,
		Note:       note,
		CreatedAt:  now,
	}
}
