package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitlog-cli/fitlog/internal/analytics"
	"github.com/fitlog-cli/fitlog/internal/logging"
	"github.com/fitlog-cli/fitlog/internal/model"
	"github.com/fitlog-cli/fitlog/internal/output"
	"github.com/fitlog-cli/fitlog/internal/parser"
	"github.com/fitlog-cli/fitlog/internal/storage"
	"github.com/fitlog-cli/fitlog/internal/validate"
)

// Goal command flags.
var (
	goalAddFlagType        string
	goalAddFlagTarget      float64
	goalAddFlagUnit        string
	goalAddFlagDeadline    string
	goalAddFlagDescription string
)

// goalCmd represents the goal command.
var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"goals", "g"},
	Short:   "Manage fitness goals",
	Long: `Create and manage measurable fitness goals.

Examples:
  fitlog goal add "Run 100 km" --type endurance --target 100 --unit km --deadline 2026-12-31
  fitlog goal list
  fitlog goal show GOAL_ID
  fitlog goal complete GOAL_ID
  fitlog goal delete GOAL_ID`,
	RunE: runGoalList,
}

// goalAddCmd creates a new goal.
var goalAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a new goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalAdd,
}

// goalListCmd lists all goals with progress.
var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all goals with progress",
	RunE:    runGoalList,
}

// goalShowCmd shows one goal in detail: progress, prediction, milestones.
var goalShowCmd = &cobra.Command{
	Use:   "show GOAL_ID",
	Short: "Show a goal's progress, prediction, and milestones",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalShow,
}

// goalCompleteCmd marks a goal completed.
var goalCompleteCmd = &cobra.Command{
	Use:     "complete GOAL_ID",
	Aliases: []string{"done"},
	Short:   "Mark a goal as completed",
	Args:    cobra.ExactArgs(1),
	RunE:    runGoalComplete,
}

// goalDeleteCmd deletes a goal and its progress history.
var goalDeleteCmd = &cobra.Command{
	Use:     "delete GOAL_ID",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a goal and its progress records",
	Args:    cobra.ExactArgs(1),
	RunE:    runGoalDelete,
}

func init() {
	goalAddCmd.Flags().StringVarP(&goalAddFlagType, "type", "t", "habit",
		"Goal type: strength, weight-loss, endurance, flexibility, habit")
	goalAddCmd.Flags().Float64Var(&goalAddFlagTarget, "target", 0,
		"Target value (required, positive)")
	goalAddCmd.Flags().StringVarP(&goalAddFlagUnit, "unit", "u", "",
		"Unit label, like km or kg")
	goalAddCmd.Flags().StringVar(&goalAddFlagDeadline, "deadline", "",
		"Optional deadline (natural language or 2006-01-02)")
	goalAddCmd.Flags().StringVar(&goalAddFlagDescription, "description", "",
		"Optional description")
	goalAddCmd.MarkFlagRequired("target")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalCompleteCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	title := args[0]

	if err := validate.GoalTitle(title); err != nil {
		return err
	}
	if err := validate.GoalType(goalAddFlagType); err != nil {
		return err
	}
	if err := validate.TargetValue(goalAddFlagTarget); err != nil {
		return err
	}
	if err := validate.Unit(goalAddFlagUnit); err != nil {
		return err
	}
	if err := validate.Note(goalAddFlagDescription); err != nil {
		return err
	}

	now := time.Now()

	var deadline *time.Time
	if goalAddFlagDeadline != "" {
		d, err := parser.ParseDate(goalAddFlagDeadline, now)
		if err != nil {
			return err
		}
		deadline = &d
	}

	goal := model.NewGoal("", model.GoalType(goalAddFlagType), title,
		goalAddFlagTarget, goalAddFlagUnit, deadline, now)
	goal.Description = goalAddFlagDescription

	if err := ctx.GoalRepo.Create(goal); err != nil {
		return err
	}

	logging.LogOperation("goal_add", logging.KeyGoalID, goal.ID)

	if ctx.IsJSON() {
		return printGoalJSON(goal, "created")
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Added goal %s (target %s)",
		cli.GoalName(title), model.FormatValue(goal.TargetValue, goal.Unit)))
	cli.Muted("ID: " + goal.ID)
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
	goals, err := ctx.GoalRepo.List()
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(output.GoalsResponse{Goals: []*output.GoalOutput{}})
		}
		cli := ctx.CLIFormatter()
		cli.Muted("No goals set.")
		cli.Muted("Use 'fitlog goal add \"Run 100 km\" --target 100' to add one.")
		return nil
	}

	today := analytics.DateOf(time.Now())
	outputs := make([]*output.GoalOutput, 0, len(goals))
	for _, g := range goals {
		pct, gp, err := assessGoal(g, today)
		if err != nil {
			return err
		}
		outputs = append(outputs, output.NewGoalOutput(g, pct, gp))
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.GoalsResponse{Goals: outputs})
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Goals (%d)", len(goals)))
	cli.Println("")
	for i, g := range goals {
		o := outputs[i]
		bar := output.ProgressBar(o.Percentage, 20)

		status := ""
		switch {
		case g.IsCompleted:
			status = " [DONE]"
		case !o.OnTrack:
			status = " [BEHIND]"
		}

		cli.Printf("%s  %s/%s  %s  %3.0f%%%s\n",
			cli.GoalName(g.Title),
			model.FormatValue(g.CurrentValue, ""),
			model.FormatValue(g.TargetValue, g.Unit),
			bar,
			o.Percentage,
			status)
		cli.Muted("  " + g.ID)
	}
	return nil
}

func runGoalShow(cmd *cobra.Command, args []string) error {
	goal, err := getGoal(args[0])
	if err != nil {
		return err
	}

	today := analytics.DateOf(time.Now())
	pct, gp, err := assessGoal(goal, today)
	if err != nil {
		return err
	}

	milestones, err := analytics.Milestones(goal)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"goal":       output.NewGoalOutput(goal, pct, gp),
			"milestones": output.NewMilestoneOutputs(milestones),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("%s (%s)", goal.Title, goal.Type))
	if goal.Description != "" {
		cli.Muted(goal.Description)
	}
	cli.Println("")

	bar := output.ProgressBar(pct*100, 30)
	cli.Printf("  Progress: %s %.1f%%\n", bar, pct*100)
	cli.Printf("  Current:  %s of %s (%s remaining)\n",
		cli.Value(model.FormatValue(goal.CurrentValue, goal.Unit)),
		model.FormatValue(goal.TargetValue, goal.Unit),
		model.FormatValue(analytics.RemainingValue(goal), goal.Unit))

	if gp.HasDeadline {
		cli.Printf("  Deadline: %s (%s)\n", output.FormatDate(*goal.Deadline), formatRemainingDays(gp.RemainingDays))
		if gp.OnTrack {
			cli.Success("On track")
		} else {
			cli.Warning(fmt.Sprintf("Behind pace; projected %s by the deadline",
				model.FormatValue(gp.ProjectedValue, goal.Unit)))
		}
	} else {
		cli.Muted("  No deadline set.")
	}

	cli.Println("")
	cli.Println("Milestones:")
	for _, m := range milestones {
		marker := " "
		switch m.Status {
		case analytics.MilestoneCompleted:
			marker = "✓"
		case analytics.MilestoneCurrent:
			marker = "→"
		}
		line := fmt.Sprintf("  %s %4s  %s", marker, m.Title, model.FormatValue(m.TargetValue, goal.Unit))
		if m.TargetDate != nil {
			line += "  by " + output.FormatDate(*m.TargetDate)
		}
		if m.Status == analytics.MilestoneUpcoming {
			cli.Muted(line)
		} else {
			cli.Println(line)
		}
	}
	return nil
}

func runGoalComplete(cmd *cobra.Command, args []string) error {
	goal, err := getGoal(args[0])
	if err != nil {
		return err
	}

	goal.IsCompleted = true
	if err := ctx.GoalRepo.Update(goal); err != nil {
		return err
	}

	logging.LogOperation("goal_complete", logging.KeyGoalID, goal.ID)

	if ctx.IsJSON() {
		return printGoalJSON(goal, "completed")
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Completed goal %s", cli.GoalName(goal.Title)))
	return nil
}

func runGoalDelete(cmd *cobra.Command, args []string) error {
	goal, err := getGoal(args[0])
	if err != nil {
		return err
	}

	if err := ctx.ProgressRepo.DeleteByGoal(goal.ID); err != nil {
		return err
	}
	if err := ctx.GoalRepo.Delete(goal.ID); err != nil {
		return err
	}

	logging.LogOperation("goal_delete", logging.KeyGoalID, goal.ID)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{
			"status":  "deleted",
			"goal_id": goal.ID,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Deleted goal %s and its progress records", cli.GoalName(goal.Title)))
	return nil
}

// getGoal fetches a goal by ID, translating missing keys into a friendly
// error.
func getGoal(id string) (*model.Goal, error) {
	goal, err := ctx.GoalRepo.Get(id)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, fmt.Errorf("no goal with ID '%s'", id)
		}
		return nil, err
	}
	return goal, nil
}

// assessGoal computes the completion fraction and on-track prediction for a
// goal from its stored progress history.
func assessGoal(g *model.Goal, today time.Time) (float64, analytics.GoalProgress, error) {
	pct, err := analytics.ProgressPercentage(g)
	if err != nil {
		return 0, analytics.GoalProgress{}, err
	}

	records, err := ctx.ProgressRepo.ListByGoal(g.ID)
	if err != nil {
		return 0, analytics.GoalProgress{}, err
	}

	gp, err := analytics.Predict(g, records, today)
	if err != nil {
		return 0, analytics.GoalProgress{}, err
	}
	return pct, gp, nil
}

func printGoalJSON(goal *model.Goal, status string) error {
	today := analytics.DateOf(time.Now())
	pct, gp, err := assessGoal(goal, today)
	if err != nil {
		return err
	}
	return ctx.Formatter.JSON(map[string]interface{}{
		"status": status,
		"goal":   output.NewGoalOutput(goal, pct, gp),
	})
}

func formatRemainingDays(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "due today"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}
