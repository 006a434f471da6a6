package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitlog-cli/fitlog/internal/analytics"
	"github.com/fitlog-cli/fitlog/internal/output"
)

// streakCmd shows the current and longest workout streaks.
var streakCmd = &cobra.Command{
	Use:     "streak",
	Aliases: []string{"streaks"},
	Short:   "Show current and longest workout streaks",
	RunE:    runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(cmd *cobra.Command, args []string) error {
	counts, err := ctx.WorkoutRepo.CountsByDate()
	if err != nil {
		return err
	}

	today := analytics.DateOf(time.Now())
	current := analytics.CurrentStreak(counts, today)
	longest := analytics.LongestStreak(counts)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.StreakResponse{
			Current: current,
			Longest: longest,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Workout Streaks")
	cli.Println("")
	cli.Printf("  Current: %s\n", cli.Value(formatDays(current)))
	cli.Printf("  Longest: %s\n", cli.Value(formatDays(longest)))

	if current == 0 && len(counts) > 0 {
		cli.Println("")
		cli.Muted("No workout today yet; log one to keep the streak alive.")
	}
	return nil
}

func formatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
