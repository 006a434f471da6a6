package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitlog-cli/fitlog/internal/logging"
	"github.com/fitlog-cli/fitlog/internal/model"
	"github.com/fitlog-cli/fitlog/internal/output"
	"github.com/fitlog-cli/fitlog/internal/parser"
	"github.com/fitlog-cli/fitlog/internal/validate"
)

// Progress command flags.
var (
	progressAddFlagValue float64
	progressAddFlagDate  string
	progressAddFlagNote  string
)

// progressCmd represents the progress command.
var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"p"},
	Short:   "Record and review goal progress",
	Long: `Record progress toward a goal and review its history.

Each record captures the goal's value on a date; the prediction engine uses
this history to decide whether the goal is on track.

Examples:
  fitlog progress add GOAL_ID --value 42.5
  fitlog progress add GOAL_ID --value 40 --date yesterday
  fitlog progress list GOAL_ID`,
}

// progressAddCmd records a progress value for a goal.
var progressAddCmd = &cobra.Command{
	Use:   "add GOAL_ID",
	Short: "Record a progress value for a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgressAdd,
}

// progressListCmd lists a goal's progress history.
var progressListCmd = &cobra.Command{
	Use:     "list GOAL_ID",
	Aliases: []string{"ls"},
	Short:   "List a goal's progress records",
	Args:    cobra.ExactArgs(1),
	RunE:    runProgressList,
}

func init() {
	progressAddCmd.Flags().Float64VarP(&progressAddFlagValue, "value", "v", 0,
		"Progress value (required)")
	progressAddCmd.Flags().StringVarP(&progressAddFlagDate, "date", "d", "",
		"Record date (defaults to today)")
	progressAddCmd.Flags().StringVarP(&progressAddFlagNote, "note", "n", "",
		"Optional note")
	progressAddCmd.MarkFlagRequired("value")

	progressCmd.AddCommand(progressAddCmd)
	progressCmd.AddCommand(progressListCmd)
	rootCmd.AddCommand(progressCmd)
}

func runProgressAdd(cmd *cobra.Command, args []string) error {
	goal, err := getGoal(args[0])
	if err != nil {
		return err
	}

	if err := validate.Note(progressAddFlagNote); err != nil {
		return err
	}

	now := time.Now()
	date, err := parser.ParseDate(progressAddFlagDate, now)
	if err != nil {
		return err
	}

	record := model.NewProgressRecord("", goal.ID, date, progressAddFlagValue, progressAddFlagNote, now)
	if err := ctx.ProgressRepo.Create(record); err != nil {
		return err
	}

	// The goal carries the latest value; earlier-dated records only extend
	// the history the prediction engine reads.
	latest := true
	records, err := ctx.ProgressRepo.ListByGoal(goal.ID)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.ID != record.ID && r.RecordDate.After(record.RecordDate) {
			latest = false
			break
		}
	}
	if latest {
		goal.CurrentValue = record.Value
		if goal.CurrentValue >= goal.TargetValue {
			goal.IsCompleted = true
		}
		if err := ctx.GoalRepo.Update(goal); err != nil {
			return err
		}
	}

	logging.LogOperation("progress_add",
		logging.KeyGoalID, goal.ID,
		logging.KeyValue, record.Value,
		logging.KeyDate, output.FormatDate(date))

	if ctx.IsJSON() {
		return printGoalJSON(goal, "recorded")
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Recorded %s for %s on %s",
		model.FormatValue(record.Value, goal.Unit),
		cli.GoalName(goal.Title),
		output.FormatDate(date)))
	if goal.IsCompleted {
		cli.Success("Goal reached!")
	}
	return nil
}

func runProgressList(cmd *cobra.Command, args []string) error {
	goal, err := getGoal(args[0])
	if err != nil {
		return err
	}

	records, err := ctx.ProgressRepo.ListByGoal(goal.ID)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"goal_id": goal.ID,
			"records": output.NewProgressRecordOutputs(records),
		})
	}

	cli := ctx.CLIFormatter()
	if len(records) == 0 {
		cli.Muted("No progress recorded yet.")
		cli.Muted("Use 'fitlog progress add " + goal.ID + " --value N' to record some.")
		return nil
	}

	cli.Title(fmt.Sprintf("Progress: %s", goal.Title))
	cli.Println("")
	for _, r := range records {
		note := ""
		if r.Note != "" {
			note = "  " + r.Note
		}
		cli.Printf("  %s  %10s%s\n",
			output.FormatDate(r.RecordDate),
			model.FormatValue(r.Value, goal.Unit),
			note)
	}
	return nil
}
