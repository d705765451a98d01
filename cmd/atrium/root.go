package main

import (
	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/api"
	"github.com/atriumhq/atrium/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "atrium",
	Short: "Discovery gateway for digital repositories",
	Long: `Atrium is a discovery gateway that fronts a digital repository's REST
API with stateful browse sessions and submission form coordination.

The gateway provides:
  - Browse sessions over metadata indexes (author, title, date, subject)
  - Drill-down from grouped entries into the items behind a value
  - Shared, keyed pagination state across sessions
  - Submission workspace bootstrap with validated form definitions`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.atrium/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "atrium home directory (default: ~/.atrium)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
