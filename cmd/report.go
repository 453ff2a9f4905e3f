package cmd

import (
	"github.com/spf13/cobra"

	"github.com/signalnine/plancharts/internal/bench"
	"github.com/signalnine/plancharts/internal/report"
)

var flagReportFormat string

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [domain...]",
		Short: "Print the plotted series for some or all domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := bench.Default()
			if err != nil {
				return err
			}
			domains := tbl.Domains()
			if len(args) > 0 {
				domains = args
			}
			return report.Generate(tbl, domains, flagReportFormat, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&flagReportFormat, "format", "table", "output format (table, markdown, json, dump)")
	return cmd
}
