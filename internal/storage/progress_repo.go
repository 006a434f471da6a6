package storage

import (
	"sort"

	"github.com/google/uuid"

	"github.com/fitlog-cli/fitlog/internal/model"
)

// ProgressRepo provides operations for ProgressRecord entities.
type ProgressRepo struct {
	db *DB
}

// NewProgressRepo creates a new progress record repository.
func NewProgressRepo(db *DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// Create stores a new progress record, assigning it a UUID v7 ID if it has
// none. Records are immutable once created; there is no Update.
func (r *ProgressRepo) Create(record *model.ProgressRecord) error {
	if record.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		record.ID = id.String()
	}
	record.Key = model.GenerateProgressKey(record.GoalID, record.ID)
	return r.db.Set(record)
}

// Get retrieves a progress record by goal ID and record ID.
func (r *ProgressRepo) Get(goalID, id string) (*model.ProgressRecord, error) {
	record := &model.ProgressRecord{}
	if err := r.db.Get(model.GenerateProgressKey(goalID, id), record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListByGoal retrieves all progress records for a goal, ordered by record
// date ascending. This is the snapshot shape the prediction engine consumes.
func (r *ProgressRepo) ListByGoal(goalID string) ([]*model.ProgressRecord, error) {
	records, err := GetAllByPrefix(r.db, model.GenerateProgressPrefix(goalID), func() *model.ProgressRecord {
		return &model.ProgressRecord{}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].RecordDate.Before(records[j].RecordDate)
	})
	return records, nil
}

// DeleteByGoal removes all progress records for a goal.
func (r *ProgressRepo) DeleteByGoal(goalID string) error {
	keys, err := r.db.ListByPrefix(model.GenerateProgressPrefix(goalID))
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := r.db.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
