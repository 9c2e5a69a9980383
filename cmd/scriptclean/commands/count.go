package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/scriptclean/internal/config"
	"github.com/jmylchreest/scriptclean/pkg/cleaner"
)

func newCountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count the words in a script",
		Long: `Count prints the number of whitespace-separated words in the input.
With --cleaned, the words are counted after applying the configured strategy.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromViper(a.v)
			if err != nil {
				return err
			}

			text, _, err := a.readInput(cmd, args, cfg)
			if err != nil {
				return err
			}

			if cleaned, _ := cmd.Flags().GetBool("cleaned"); cleaned {
				strategy := cfg.Strategy
				if cmd.Flags().Changed("strategy") {
					strategy, _ = cmd.Flags().GetString("strategy")
				}
				c, err := cleaner.New(cleaner.Strategy(strategy))
				if err != nil {
					return err
				}
				text = cleaner.Run(c, text).Content
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cleaner.FormatWordCount(cleaner.CountWords(text)))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringP("file", "f", "", "read the script from this file")
	flags.Bool("cleaned", false, "count words after cleaning")
	flags.StringP("strategy", "s", "", "strategy used with --cleaned (default from config)")

	return cmd
}
