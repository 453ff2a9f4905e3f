package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/signalnine/plancharts/internal/bench"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List benchmark domains, problems and methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := bench.Default()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Domains:")
			for _, d := range tbl.Domains() {
				problems, err := tbl.Problems(d)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  - %s (%d problems: %s)\n", d, len(problems), strings.Join(problems, ", "))
			}
			fmt.Fprintln(out, "\nMethods:")
			for _, m := range bench.Methods() {
				fmt.Fprintf(out, "  - %s [%s]\n", m.Label(), m.Key())
			}
			return nil
		},
	}
}
