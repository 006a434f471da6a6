package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fitlog-cli/fitlog/internal/tui"
)

// dashboardCmd launches the interactive TUI dashboard.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the interactive dashboard",
	Long: `Open a full-screen dashboard showing the workout calendar, streaks,
and goal progress. Navigate months with the arrow keys.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.DashboardConfig{
		GoalRepo:     ctx.GoalRepo,
		ProgressRepo: ctx.ProgressRepo,
		WorkoutRepo:  ctx.WorkoutRepo,
	})
}
