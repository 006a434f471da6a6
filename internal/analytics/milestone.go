package analytics

import (
	"fmt"
	"time"

	"github.com/fitlog-cli/fitlog/internal/model"
)

// MilestoneStatus classifies a milestone relative to current progress.
type MilestoneStatus string

const (
	MilestoneCompleted MilestoneStatus = "completed"
	MilestoneCurrent   MilestoneStatus = "current"
	MilestoneUpcoming  MilestoneStatus = "upcoming"
)

// Milestone is a fixed percentage checkpoint along a goal's journey.
// Milestones are derived values, regenerated in full on every pass.
type Milestone struct {
	Title       string
	Description string
	Percentage  int
	TargetValue float64
	Status      MilestoneStatus
	TargetDate  *time.Time // set only when the goal has a deadline
}

// milestonePercentages is the fixed checkpoint ladder.
var milestonePercentages = [4]int{25, 50, 75, 100}

// Milestones derives the four-step checkpoint ladder for a goal, classifying
// each step against current progress. Exactly one milestone is "current"
// unless all are completed; a goal with no progress has 25% as current.
func Milestones(g *model.Goal) ([]Milestone, error) {
	pct, err := ProgressPercentage(g)
	if err != nil {
		return nil, err
	}

	milestones := make([]Milestone, 0, len(milestonePercentages))
	for _, p := range milestonePercentages {
		target := g.TargetValue * float64(p) / 100

		status := MilestoneUpcoming
		switch {
		case pct >= float64(p)/100:
			status = MilestoneCompleted
		case pct >= float64(p-25)/100:
			status = MilestoneCurrent
		}

		m := Milestone{
			Title:       fmt.Sprintf("%d%%", p),
			Description: fmt.Sprintf("Reach %s of %s", model.FormatValue(target, g.Unit), g.Title),
			Percentage:  p,
			TargetValue: target,
			Status:      status,
		}

		if g.Deadline != nil {
			m.TargetDate = milestoneDate(g, p)
		}

		milestones = append(milestones, m)
	}

	return milestones, nil
}

// milestoneDate interpolates the expected date of a checkpoint between the
// goal's creation date and its deadline.
func milestoneDate(g *model.Goal, percentage int) *time.Time {
	total := DaysBetween(g.CreatedAt, *g.Deadline)
	if total < 0 {
		total = 0
	}
	offset := total * percentage / 100
	d := DateOf(g.CreatedAt).AddDate(0, 0, offset)
	return &d
}
