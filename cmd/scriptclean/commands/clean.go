package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/scriptclean/internal/config"
	"github.com/jmylchreest/scriptclean/internal/export"
	"github.com/jmylchreest/scriptclean/internal/logger"
	"github.com/jmylchreest/scriptclean/internal/output"
	"github.com/jmylchreest/scriptclean/pkg/cleaner"
)

// report is the structured form of a clean run.
type report struct {
	cleaner.Result `yaml:",inline"`

	Source  string `json:"source" yaml:"source"`
	SavedTo string `json:"saved_to,omitempty" yaml:"saved_to,omitempty"`
}

func newCleanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Clean a script and print the narration text",
		Long: `Clean reads a script from a file argument, --file or stdin and writes
the cleaned text to stdout, --output or a file named after the first line
(--save).

With the extract strategy, a script that has text but no line starting with
|| exits with status 2 so that callers can tell it apart from empty input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClean(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("file", "f", "", "read the script from this file")
	flags.StringP("strategy", "s", string(cleaner.StrategyExtract), "cleaning strategy: extract, strip, noop")
	flags.StringP("output", "o", "", "write the cleaned text to this file")
	flags.Bool("save", false, "save the cleaned text to a file named after its first line")
	flags.String("save-dir", ".", "directory used by --save")
	flags.Bool("copy", false, "copy the cleaned text to the clipboard")
	flags.String("format", string(output.FormatText), "output format: text, json, jsonl, yaml")
	flags.Bool("compact", false, "write JSON reports on a single line")
	flags.Bool("stats", false, "print a word count summary to stderr")
	flags.String("max-input-size", "10MB", "max input size (e.g., 512KB, 10MB, 0=unlimited)")

	_ = a.v.BindPFlag("strategy", flags.Lookup("strategy"))
	_ = a.v.BindPFlag("format", flags.Lookup("format"))
	_ = a.v.BindPFlag("save_dir", flags.Lookup("save-dir"))
	_ = a.v.BindPFlag("stats", flags.Lookup("stats"))
	_ = a.v.BindPFlag("max_input_size", flags.Lookup("max-input-size"))

	return cmd
}

func (a *app) runClean(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "clean command starting", "strategy", cfg.Strategy, "format", cfg.Format)

	c, err := cleaner.New(cleaner.Strategy(cfg.Strategy))
	if err != nil {
		return err
	}

	text, source, err := a.readInput(cmd, args, cfg)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	logger.DebugContext(ctx, "input read", "source", source, "bytes", len(text))

	result := cleaner.Run(c, text)
	if result.Err != nil {
		return fmt.Errorf("%s cleaner failed: %w", c.Name(), result.Err)
	}
	logger.DebugContext(ctx, "cleaned",
		"strategy", result.Strategy,
		"input_words", result.Stats.InputWords,
		"output_words", result.Stats.OutputWords,
		"duration", result.Stats.Duration)

	quiet := a.v.GetBool("quiet")
	rep := &report{Source: source, Result: *result}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := export.WriteFile(path, result.Content); err != nil {
			return err
		}
		rep.SavedTo = path
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		path, err := export.Save(cfg.SaveDir, result.Content)
		switch {
		case errors.Is(err, export.ErrEmptyOutput):
			a.warn(cmd, "No text to save. Check the input and strategy.")
		case err != nil:
			return err
		default:
			rep.SavedTo = path
			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved to %s\n", path)
			}
		}
	}

	if cp, _ := cmd.Flags().GetBool("copy"); cp {
		err := export.Copy(a.clipboard, result.Content)
		switch {
		case errors.Is(err, export.ErrEmptyOutput):
			a.warn(cmd, "No text to copy. Check the input and strategy.")
		case err != nil:
			return err
		case !quiet:
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
		}
	}

	if err := a.writeResult(cmd, cfg, rep); err != nil {
		return err
	}

	if cfg.Stats && !quiet {
		fmt.Fprint(cmd.ErrOrStderr(), renderSummary(result, source))
	}

	for _, w := range result.Warnings {
		if w.Code == cleaner.WarnNoMarkedContent {
			continue
		}
		a.warn(cmd, w.Message)
	}

	if result.HasWarning(cleaner.WarnNoMarkedContent) {
		return &ExitError{
			Code: 2,
			Err:  fmt.Errorf("%w: check that spoken lines start with %s", cleaner.ErrNoMarkedContent, cleaner.ContentMarker),
		}
	}
	return nil
}

// writeResult prints the cleaned text, or the full report for structured formats.
// Text output is skipped when the content went to --output.
func (a *app) writeResult(cmd *cobra.Command, cfg *config.Config, rep *report) error {
	format := output.Format(cfg.Format)
	compact, _ := cmd.Flags().GetBool("compact")
	w, err := output.NewWriter(cmd.OutOrStdout(), format, output.WithPretty(!compact))
	if err != nil {
		return err
	}

	if format.Structured() {
		if err := w.Write(rep); err != nil {
			return err
		}
		return w.Flush()
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" || rep.Content == "" {
		return nil
	}
	if err := w.Write(rep.Content); err != nil {
		return err
	}
	return w.Flush()
}

func (a *app) warn(cmd *cobra.Command, msg string) {
	if a.v.GetBool("quiet") {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", msg)
}

// readInput resolves the input source: a positional file, --file, or stdin.
func (a *app) readInput(cmd *cobra.Command, args []string, cfg *config.Config) (text, source string, err error) {
	limit, err := cfg.MaxInputBytes()
	if err != nil {
		return "", "", err
	}

	path, _ := cmd.Flags().GetString("file")
	if path == "" && len(args) > 0 {
		path = args[0]
	}

	if path == "" || path == "-" {
		text, err = export.ReadInput(cmd.InOrStdin(), limit)
		return text, "stdin", err
	}
	text, err = export.ReadFile(path, limit)
	return text, path, err
}
