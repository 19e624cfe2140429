package commands

import (
	"github.com/mjeanroy/licnotice/internal/app"
	"github.com/mjeanroy/licnotice/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the third-party notices file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recordsPath, _ := cmd.Flags().GetString("records")
			outputPath, _ := cmd.Flags().GetString("output")
			separator, _ := cmd.Flags().GetString("separator")
			templatePath, _ := cmd.Flags().GetString("template")
			includePrivate, _ := cmd.Flags().GetBool("include-private")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Report(cmd.Context(), app.ReportOptions{
				RecordsPath:    recordsPath,
				OutputPath:     outputPath,
				Separator:      separator,
				TemplatePath:   templatePath,
				IncludePrivate: includePrivate,
				Watch:          watch,
			})
		},
	}

	cmd.Flags().StringP("records", "r", "", "Path to the records file (discovered upwards when omitted)")
	cmd.Flags().StringP("output", "o", domain.DefaultNoticePath, "Path of the generated notices file")
	cmd.Flags().StringP("separator", "s", "", "Separator between dependency blocks")
	cmd.Flags().StringP("template", "t", "", "Path to a per-dependency template file")
	cmd.Flags().Bool("include-private", false, "Include private dependencies in the notice")
	cmd.Flags().BoolP("watch", "w", false, "Regenerate the notice when the records file changes")

	return cmd
}
