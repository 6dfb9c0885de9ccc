package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alanmeadows/prvars/internal/output"
	"github.com/alanmeadows/prvars/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	inputFlag string

	extractCmd = &cobra.Command{
		Use:   "extract",
		Short: "Extract variables from TO_PARSE or stdin",
		Long: `Extract runs the pipeline over the TO_PARSE environment variable, or
over stdin when --input - is given. An input with no ENV block is
success with the format's empty result, never a failure.`,
		Example: `  TO_PARSE="$PR_BODY" prvars extract --format yaml
  prvars extract --input - < description.md`,
		RunE: runExtract,
	}
)

func init() {
	extractCmd.Flags().StringVarP(&inputFlag, "input", "i", "", `Read the text blob from stdin instead of TO_PARSE (use "-")`)
}

func runExtract(cmd *cobra.Command, args []string) error {
	input := appConfig.ToParse
	if inputFlag == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
	}
	return emit(cmd, input)
}

// emit runs the pipeline over input, prints the result to stdout, and
// mirrors it to the CI output file when one is configured.
func emit(cmd *cobra.Command, input string) error {
	result, err := pipeline.Run(input, selectedFormat())
	if err != nil {
		return err
	}

	if result != "" {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}

	if appConfig.OutputFile != "" {
		if err := output.Append(appConfig.OutputFile, "VARS", result); err != nil {
			return err
		}
		slog.Debug("appended result to output file", "path", appConfig.OutputFile)
	}
	return nil
}
