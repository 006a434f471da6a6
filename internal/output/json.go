package output

import (
	"time"

	"github.com/fitlog-cli/fitlog/internal/analytics"
	"github.com/fitlog-cli/fitlog/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ErrorResponse represents an error in JSON output.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	return j.JSON(ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	})
}

// WorkoutOutput represents a workout in JSON output.
type WorkoutOutput struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Note            string `json:"note,omitempty"`
}

// NewWorkoutOutput creates a WorkoutOutput from a Workout.
func NewWorkoutOutput(w *model.Workout) *WorkoutOutput {
	return &WorkoutOutput{
		ID:              w.ID,
		Date:            FormatDate(w.Date),
		Type:            string(w.Type),
		DurationMinutes: w.DurationMinutes,
		Note:            w.Note,
	}
}

// WorkoutsResponse represents a workout list in JSON output.
type WorkoutsResponse struct {
	Workouts []*WorkoutOutput `json:"workouts"`
	Total    int              `json:"total"`
}

// NewWorkoutsResponse creates a WorkoutsResponse from workouts.
func NewWorkoutsResponse(workouts []*model.Workout) WorkoutsResponse {
	out := make([]*WorkoutOutput, len(workouts))
	for i, w := range workouts {
		out[i] = NewWorkoutOutput(w)
	}
	return WorkoutsResponse{Workouts: out, Total: len(workouts)}
}

// GoalOutput represents a goal with its derived analytics in JSON output.
type GoalOutput struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	TargetValue    float64 `json:"target_value"`
	CurrentValue   float64 `json:"current_value"`
	Unit           string  `json:"unit,omitempty"`
	Deadline       string  `json:"deadline,omitempty"`
	IsCompleted    bool    `json:"is_completed"`
	Percentage     float64 `json:"percentage"`
	RemainingValue float64 `json:"remaining_value"`
	OnTrack        bool    `json:"on_track"`
	RemainingDays  *int    `json:"remaining_days,omitempty"`
	ProjectedValue float64 `json:"projected_value"`
}

// NewGoalOutput creates a GoalOutput from a goal and its prediction.
// Percentage is reported on the 0-100 scale.
func NewGoalOutput(g *model.Goal, pct float64, gp analytics.GoalProgress) *GoalOutput {
	out := &GoalOutput{
		ID:             g.ID,
		Type:           string(g.Type),
		Title:          g.Title,
		Description:    g.Description,
		TargetValue:    g.TargetValue,
		CurrentValue:   g.CurrentValue,
		Unit:           g.Unit,
		IsCompleted:    g.IsCompleted,
		Percentage:     pct * 100,
		RemainingValue: analytics.RemainingValue(g),
		OnTrack:        gp.OnTrack,
		ProjectedValue: gp.ProjectedValue,
	}
	if g.Deadline != nil {
		out.Deadline = FormatDate(*g.Deadline)
	}
	if gp.HasDeadline {
		days := gp.RemainingDays
		out.RemainingDays = &days
	}
	return out
}

// GoalsResponse represents a goal list in JSON output.
type GoalsResponse struct {
	Goals []*GoalOutput `json:"goals"`
}

// MilestoneOutput represents a milestone in JSON output.
type MilestoneOutput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Percentage  int     `json:"percentage"`
	TargetValue float64 `json:"target_value"`
	Status      string  `json:"status"`
	TargetDate  string  `json:"target_date,omitempty"`
}

// NewMilestoneOutputs converts milestones for JSON output.
func NewMilestoneOutputs(milestones []analytics.Milestone) []*MilestoneOutput {
	out := make([]*MilestoneOutput, len(milestones))
	for i, m := range milestones {
		mo := &MilestoneOutput{
			Title:       m.Title,
			Description: m.Description,
			Percentage:  m.Percentage,
			TargetValue: m.TargetValue,
			Status:      string(m.Status),
		}
		if m.TargetDate != nil {
			mo.TargetDate = FormatDate(*m.TargetDate)
		}
		out[i] = mo
	}
	return out
}

// StreakResponse represents streak values in JSON output.
type StreakResponse struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

// CalendarDayOutput represents a calendar cell in JSON output.
type CalendarDayOutput struct {
	Date           string `json:"date"`
	WorkoutCount   int    `json:"workout_count"`
	HasWorkout     bool   `json:"has_workout"`
	IsToday        bool   `json:"is_today"`
	IsCurrentMonth bool   `json:"is_current_month"`
}

// CalendarResponse represents a month grid in JSON output.
type CalendarResponse struct {
	Month string               `json:"month"`
	Days  []*CalendarDayOutput `json:"days"`
}

// NewCalendarResponse converts MonthData for JSON output.
func NewCalendarResponse(data analytics.MonthData) CalendarResponse {
	days := make([]*CalendarDayOutput, len(data.Days))
	for i, d := range data.Days {
		days[i] = &CalendarDayOutput{
			Date:           FormatDate(d.Date),
			WorkoutCount:   d.WorkoutCount,
			HasWorkout:     d.HasWorkout,
			IsToday:        d.IsToday,
			IsCurrentMonth: d.IsCurrentMonth,
		}
	}
	return CalendarResponse{Month: data.Month.String(), Days: days}
}

// ProgressRecordOutput represents a progress record in JSON output.
type ProgressRecordOutput struct {
	ID         string  `json:"id"`
	GoalID     string  `json:"goal_id"`
	RecordDate string  `json:"record_date"`
	Value      float64 `json:"value"`
	Note       string  `json:"note,omitempty"`
}

// NewProgressRecordOutputs converts progress records for JSON output.
func NewProgressRecordOutputs(records []*model.ProgressRecord) []*ProgressRecordOutput {
	out := make([]*ProgressRecordOutput, len(records))
	for i, r := range records {
		out[i] = &ProgressRecordOutput{
			ID:         r.ID,
			GoalID:     r.GoalID,
			RecordDate: FormatDate(r.RecordDate),
			Value:      r.Value,
			Note:       r.Note,
		}
	}
	return out
}

// TodayResponse represents the root command summary in JSON output.
type TodayResponse struct {
	Date          string           `json:"date"`
	Workouts      []*WorkoutOutput `json:"workouts"`
	CurrentStreak int              `json:"current_streak"`
}

// NewTodayResponse builds the root summary output.
func NewTodayResponse(today time.Time, workouts []*model.Workout, streak int) TodayResponse {
	out := make([]*WorkoutOutput, len(workouts))
	for i, w := range workouts {
		out[i] = NewWorkoutOutput(w)
	}
	return TodayResponse{
		Date:          FormatDate(today),
		Workouts:      out,
		CurrentStreak: streak,
	}
}
