package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/scriptclean/internal/output"
	"github.com/jmylchreest/scriptclean/internal/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				w := output.NewJSONWriter(cmd.OutOrStdout(), true, "  ")
				if err := w.Write(version.Get()); err != nil {
					return err
				}
				return w.Flush()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return err
		},
	}

	cmd.Flags().Bool("json", false, "print version information as JSON")
	return cmd
}
