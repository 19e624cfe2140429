package commands

import (
	"github.com/mjeanroy/licnotice/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Print formatted dependency blocks to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recordsPath, _ := cmd.Flags().GetString("records")
			separator, _ := cmd.Flags().GetString("separator")

			return c.app.Format(cmd.Context(), app.FormatOptions{
				RecordsPath: recordsPath,
				Separator:   separator,
			})
		},
	}

	cmd.Flags().StringP("records", "r", "", "Path to the records file (discovered upwards when omitted)")
	cmd.Flags().StringP("separator", "s", "", "Separator between dependency blocks")

	return cmd
}
