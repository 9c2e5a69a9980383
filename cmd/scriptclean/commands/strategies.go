package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/scriptclean/pkg/cleaner"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available cleaning strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "STRATEGY\tDESCRIPTION")
			for _, s := range cleaner.Strategies() {
				fmt.Fprintf(w, "%s\t%s\n", s, s.Description())
			}
			return w.Flush()
		},
	}
}
