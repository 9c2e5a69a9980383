// Package commands implements the CLI commands for scriptclean.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/scriptclean/internal/config"
	"github.com/jmylchreest/scriptclean/internal/export"
	"github.com/jmylchreest/scriptclean/internal/logger"
)

// ExitError carries a specific process exit status.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// app holds per-invocation state shared by the subcommands.
type app struct {
	v         *viper.Viper
	clipboard export.Clipboard
}

// NewRootCmd creates the root command for scriptclean.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{v: viper.New(), clipboard: export.SystemClipboard{}})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scriptclean",
		Short: "Turn marked-up video scripts into clean narration text",
		Long: `Scriptclean removes structural noise from script transcripts:
front-matter metadata, image placeholders, headers, bold markers and
separator lines. It keeps only the words meant to be spoken.

Strategies:
  extract  keep only lines starting with || and re-flow them into paragraphs
  strip    remove known markup and keep all remaining prose

Examples:
  # Extract narration from a script
  scriptclean clean script.md

  # Strip markup and save to a file named after the first line
  scriptclean clean -s strip --save script.md

  # Read from stdin, copy the result to the clipboard
  pbpaste | scriptclean clean --copy

  # Count words in a script
  scriptclean count script.md`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			if err := initConfig(a.v, cfgFile); err != nil {
				return err
			}
			logger.Init(logger.Options{
				Debug:  a.v.GetBool("debug"),
				Quiet:  a.v.GetBool("quiet"),
				JSON:   a.v.GetBool("log_json"),
				Output: cmd.ErrOrStderr(),
			})
			if f := a.v.ConfigFileUsed(); f != "" {
				logger.Debug("config loaded", "file", f)
			}
			return nil
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.scriptclean.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "suppress warnings and summaries")
	flags.Bool("log-json", false, "write logs as JSON")

	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = a.v.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = a.v.BindPFlag("log_json", flags.Lookup("log-json"))

	rootCmd.AddCommand(newCleanCmd(a))
	rootCmd.AddCommand(newCountCmd(a))
	rootCmd.AddCommand(newStrategiesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".scriptclean")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SCRIPTCLEAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Execute runs the root command with signal-aware cancellation.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return NewRootCmd().ExecuteContext(ctx)
}
