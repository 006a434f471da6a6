package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/fitlog-cli/fitlog/internal/model"
)

// GoalRepo provides operations for Goal entities.
type GoalRepo struct {
	db *DB
}

// NewGoalRepo creates a new goal repository.
func NewGoalRepo(db *DB) *GoalRepo {
	return &GoalRepo{db: db}
}

// Create creates a new goal, assigning it a UUID v7 ID if it has none.
func (r *GoalRepo) Create(goal *model.Goal) error {
	if goal.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		goal.ID = id.String()
	}
	goal.Key = model.GenerateGoalKey(goal.ID)
	return r.db.Set(goal)
}

// Get retrieves a goal by ID.
func (r *GoalRepo) Get(id string) (*model.Goal, error) {
	goal := &model.Goal{}
	if err := r.db.Get(model.GenerateGoalKey(id), goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Update updates an existing goal, bumping its UpdatedAt stamp.
func (r *GoalRepo) Update(goal *model.Goal) error {
	goal.UpdatedAt = time.Now()
	return r.db.Set(goal)
}

// Delete removes a goal by ID.
func (r *GoalRepo) Delete(id string) error {
	return r.db.Delete(model.GenerateGoalKey(id))
}

// List retrieves all goals.
func (r *GoalRepo) List() ([]*model.Goal, error) {
	return GetAllByPrefix(r.db, model.PrefixGoal+":", func() *model.Goal {
		return &model.Goal{}
	})
}

// Exists checks if a goal exists.
func (r *GoalRepo) Exists(id string) (bool, error) {
	return r.db.Exists(model.GenerateGoalKey(id))
}
