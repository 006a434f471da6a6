package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitlog-cli/fitlog/internal/logging"
	"github.com/fitlog-cli/fitlog/internal/model"
	"github.com/fitlog-cli/fitlog/internal/output"
	"github.com/fitlog-cli/fitlog/internal/parser"
	"github.com/fitlog-cli/fitlog/internal/storage"
	"github.com/fitlog-cli/fitlog/internal/validate"
)

// Workout command flags.
var (
	workoutLogFlagType     string
	workoutLogFlagDuration int
	workoutLogFlagNote     string
)

// workoutCmd represents the workout command.
var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"workouts", "w"},
	Short:   "Log and manage workouts",
	Long: `Log workouts and review past sessions.

Examples:
  fitlog workout log --type run --duration 45
  fitlog workout log yesterday --type lift --note 'leg day'
  fitlog workout list
  fitlog workout list 2026-07
  fitlog workout delete WORKOUT_ID`,
	RunE: runWorkoutList,
}

// workoutLogCmd logs a new workout.
var workoutLogCmd = &cobra.Command{
	Use:   "log [DATE]",
	Short: "Log a workout",
	Long: `Log a workout, optionally on a past date.

The date accepts natural language: 'yesterday', 'last monday', '3 days ago',
or an explicit date like '2026-07-12'. Defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWorkoutLog,
}

// workoutListCmd lists workouts.
var workoutListCmd = &cobra.Command{
	Use:     "list [MONTH]",
	Aliases: []string{"ls"},
	Short:   "List workouts, optionally for one month",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runWorkoutList,
}

// workoutDeleteCmd deletes a workout.
var workoutDeleteCmd = &cobra.Command{
	Use:     "delete WORKOUT_ID",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE:    runWorkoutDelete,
}

func init() {
	workoutLogCmd.Flags().StringVarP(&workoutLogFlagType, "type", "t", "other",
		"Workout type: run, lift, swim, bike, yoga, other")
	workoutLogCmd.Flags().IntVarP(&workoutLogFlagDuration, "duration", "d", 0,
		"Duration in minutes")
	workoutLogCmd.Flags().StringVarP(&workoutLogFlagNote, "note", "n", "",
		"Optional note")

	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}

func runWorkoutLog(cmd *cobra.Command, args []string) error {
	dateArg := ""
	if len(args) > 0 {
		dateArg = args[0]
	}

	now := time.Now()
	date, err := parser.ParseDate(dateArg, now)
	if err != nil {
		return err
	}

	if err := validate.WorkoutType(workoutLogFlagType); err != nil {
		return err
	}
	if err := validate.Duration(workoutLogFlagDuration); err != nil {
		return err
	}
	if err := validate.Note(workoutLogFlagNote); err != nil {
		return err
	}

	workout := model.NewWorkout("", date, model.WorkoutType(workoutLogFlagType),
		workoutLogFlagDuration, workoutLogFlagNote, now)
	if err := ctx.WorkoutRepo.Create(workout); err != nil {
		return err
	}

	logging.LogOperation("workout_log",
		logging.KeyWorkoutID, workout.ID,
		logging.KeyDate, output.FormatDate(date))

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status":  "logged",
			"workout": output.NewWorkoutOutput(workout),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Logged %s workout on %s", workout.Type, output.FormatDate(date)))
	return nil
}

func runWorkoutList(cmd *cobra.Command, args []string) error {
	var workouts []*model.Workout
	var err error

	if len(args) > 0 {
		month, perr := parser.ParseMonth(args[0], time.Now())
		if perr != nil {
			return perr
		}
		workouts, err = ctx.WorkoutRepo.ListByMonth(month)
	} else {
		workouts, err = ctx.WorkoutRepo.List()
	}
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewWorkoutsResponse(workouts))
	}

	cli := ctx.CLIFormatter()
	if len(workouts) == 0 {
		cli.Muted("No workouts found.")
		cli.Muted("Use 'fitlog workout log --type run' to log one.")
		return nil
	}

	cli.Title(fmt.Sprintf("Workouts (%d)", len(workouts)))
	cli.Println("")
	for _, w := range workouts {
		note := ""
		if w.Note != "" {
			note = "  " + w.Note
		}
		cli.Printf("  %s  %-6s %8s%s\n",
			output.FormatDate(w.Date),
			w.Type,
			output.FormatMinutes(w.DurationMinutes),
			note)
	}
	return nil
}

func runWorkoutDelete(cmd *cobra.Command, args []string) error {
	id := strings.TrimSpace(args[0])

	workout, err := ctx.WorkoutRepo.Get(id)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return fmt.Errorf("no workout with ID '%s'", id)
		}
		return err
	}

	if err := ctx.WorkoutRepo.Delete(id); err != nil {
		return err
	}

	logging.LogOperation("workout_delete", logging.KeyWorkoutID, id)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{
			"status":     "deleted",
			"workout_id": id,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Deleted %s workout from %s", workout.Type, output.FormatDate(workout.Date)))
	return nil
}
