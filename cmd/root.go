// Package cmd provides the CLI commands for FitLog.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitlog-cli/fitlog/internal/analytics"
	"github.com/fitlog-cli/fitlog/internal/logging"
	"github.com/fitlog-cli/fitlog/internal/output"
	"github.com/fitlog-cli/fitlog/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "A command-line fitness tracker",
	Long: `FitLog is a command-line fitness tracker: log workouts, set measurable
goals, record progress, and view calendar, streak, and milestone analytics.

Examples:
  fitlog workout log --type run --duration 45
  fitlog workout log yesterday --type lift
  fitlog goal add "Run 100 km" --type endurance --target 100 --unit km --deadline 2026-12-31
  fitlog calendar
  fitlog streak`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		if flagDebug {
			logging.InitDebug()
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show today's summary
		return runToday(cmd, args)
	},
}

// runToday shows today's workouts and the current streak.
func runToday(cmd *cobra.Command, args []string) error {
	today := analytics.DateOf(time.Now())

	workouts, err := ctx.WorkoutRepo.List()
	if err != nil {
		return err
	}

	counts, err := ctx.WorkoutRepo.CountsByDate()
	if err != nil {
		return err
	}
	streak := analytics.CurrentStreak(counts, today)

	todayWorkouts := workouts[:0:0]
	for _, w := range workouts {
		if analytics.SameDay(w.Date, today) {
			todayWorkouts = append(todayWorkouts, w)
		}
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTodayResponse(today, todayWorkouts, streak))
	}

	cli := ctx.CLIFormatter()
	cli.Title("Today: " + output.FormatDateHuman(today))
	cli.Println("")

	if len(todayWorkouts) == 0 {
		cli.Muted("No workouts logged today.")
		cli.Muted("Use 'fitlog workout log --type run' to log one.")
	} else {
		for _, w := range todayWorkouts {
			cli.Printf("  %s  %s\n", w.Type, output.FormatMinutes(w.DurationMinutes))
		}
	}

	cli.Println("")
	cli.Printf("Current streak: %s\n", cli.Value(formatDays(streak)))

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("fitlog %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), runtime.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	}
	os.Exit(1)
}
