// Command resumectl runs the resume pipeline from the shell and manages the
// job-role catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/telemetry"
)

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Resume insights command line tools",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg = config.Load()
		return telemetry.Init(cfg.LogLevel, "console")
	},
	SilenceUsage: true,
}

var cfg config.Config

func main() {
	defer telemetry.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
