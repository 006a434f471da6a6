package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitlog-cli/fitlog/internal/analytics"
	"github.com/fitlog-cli/fitlog/internal/output"
	"github.com/fitlog-cli/fitlog/internal/parser"
)

// calendarCmd renders a month of workout activity.
var calendarCmd = &cobra.Command{
	Use:     "calendar [MONTH]",
	Aliases: []string{"cal"},
	Short:   "Show the workout calendar for a month",
	Long: `Show a month as a six-week grid with workout activity.

Examples:
  fitlog calendar
  fitlog calendar last
  fitlog calendar 2026-07`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	now := time.Now()

	monthArg := ""
	if len(args) > 0 {
		monthArg = args[0]
	}
	month, err := parser.ParseMonth(monthArg, now)
	if err != nil {
		return err
	}

	counts, err := ctx.WorkoutRepo.CountsByDate()
	if err != nil {
		return err
	}

	data := analytics.BuildMonth(month, counts, time.Time{}, analytics.DateOf(now))

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewCalendarResponse(data))
	}

	cli := ctx.CLIFormatter()
	cli.Title(output.FormatMonth(month.First()))
	cli.Println("")
	cli.Muted(" Su  Mo  Tu  We  Th  Fr  Sa")

	line := ""
	for i, day := range data.Days {
		cell := fmt.Sprintf("%3d", day.Date.Day())
		if day.IsToday {
			cell = "[" + fmt.Sprintf("%d", day.Date.Day()) + "]"
			for len(cell) < 3 {
				cell = " " + cell
			}
		}
		marker := " "
		if day.HasWorkout {
			marker = "*"
			if day.WorkoutCount > 1 {
				marker = fmt.Sprintf("%d", day.WorkoutCount)
			}
		}
		if !day.IsCurrentMonth {
			marker = " "
			cell = "  ·"
		}
		line += cell + marker
		if (i+1)%7 == 0 {
			cli.Println(line)
			line = ""
		}
	}

	cli.Println("")
	cli.Muted("* workout logged; a digit marks multiple workouts that day")
	return nil
}
