// FitLog - a command-line fitness tracker.
package main

import (
	"os"

	"github.com/fitlog-cli/fitlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
