package cli

import (
	"github.com/alanmeadows/prvars/internal/config"
	"github.com/alanmeadows/prvars/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	formatFlag string
	appConfig  *config.Config

	rootCmd = &cobra.Command{
		Use:   "prvars",
		Short: "Extract ENV-block variables from pull request descriptions",
		Long: `prvars scans a text blob (typically a pull request description) for a
fenced ENV block, parses its KEY=VALUE lines, and renders them as json,
env/dotenv, shell exports, or yaml.

The blob comes from the TO_PARSE environment variable, stdin, or the
GitHub API. The result goes to stdout; when GITHUB_OUTPUT is set it is
also appended there as the VARS output variable. Diagnostics go to
stderr only.`,
		Example: `  TO_PARSE="$PR_BODY" prvars
  prvars extract --input - < description.md
  prvars pr alanmeadows/prvars#42 --format shell`,
		RunE: runExtract,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format (overrides OUTPUT_FORMAT)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose)
		appConfig = config.Load()
	}
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(prCmd)
	rootCmd.AddCommand(formatsCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// selectedFormat resolves the output format, flag over environment.
func selectedFormat() string {
	if formatFlag != "" {
		return formatFlag
	}
	return appConfig.OutputFormat
}
