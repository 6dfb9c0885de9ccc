package cli

import (
	"fmt"

	"github.com/alanmeadows/prvars/internal/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// formatDescriptions maps each selector to a one-line grammar summary.
var formatDescriptions = map[string]string{
	"json":   `single-line object literal: {"KEY":"VALUE",...}`,
	"env":    "one KEY=VALUE line per pair",
	"dotenv": "alias of env",
	"shell":  "one export KEY=VALUE line per pair",
	"yaml":   "one KEY: VALUE line per pair, values quoted when ambiguous",
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported output formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		cellStyle := lipgloss.NewStyle().Padding(0, 1)

		var rows [][]string
		for _, name := range render.Formats() {
			rows = append(rows, []string{name, formatDescriptions[name]})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("FORMAT", "OUTPUT").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})

		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}
