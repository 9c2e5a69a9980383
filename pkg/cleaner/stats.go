package cleaner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Warning codes reported by Run.
const (
	WarnEmptyInput      = "empty_input"
	WarnNoMarkedContent = "no_marked_content"
	WarnEmptyOutput     = "empty_output"
)

// Stats captures metrics about what a cleaning run did.
type Stats struct {
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`
	InputWords  int `json:"input_words" yaml:"input_words"`
	OutputWords int `json:"output_words" yaml:"output_words"`

	// Lines is set by the extract strategy.
	Lines *LineCounts `json:"lines,omitempty" yaml:"lines,omitempty"`

	// Passes is set by the strip strategy.
	Passes []PassDelta `json:"passes,omitempty" yaml:"passes,omitempty"`

	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Words: %s -> %s\n", FormatWordCount(s.InputWords), FormatWordCount(s.OutputWords)))
	sb.WriteString(fmt.Sprintf("Size: %s -> %s (%.1f%% reduction)\n",
		humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes)), s.ReductionPercent()))

	if s.Lines != nil {
		sb.WriteString(fmt.Sprintf("Lines: %d content, %d blank, %d discarded\n",
			s.Lines.Content, s.Lines.Blank, s.Lines.Discarded))
		sb.WriteString(fmt.Sprintf("Paragraphs: %d\n", s.Lines.Paragraphs))
	}

	if len(s.Passes) > 0 {
		parts := make([]string, 0, len(s.Passes))
		for _, p := range s.Passes {
			if p.BytesRemoved > 0 {
				parts = append(parts, fmt.Sprintf("%s=%d", p.Name, p.BytesRemoved))
			}
		}
		if len(parts) > 0 {
			sb.WriteString("Removed by pass: " + strings.Join(parts, ", ") + "\n")
		}
	}

	sb.WriteString(fmt.Sprintf("Time: %v\n", s.Duration.Round(time.Microsecond)))
	return sb.String()
}

// Warning is a non-fatal condition the caller should show to the user.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// String returns a formatted warning message.
func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// Result contains the output of a cleaning run.
type Result struct {
	// Content is the cleaned output. On cleaner errors it holds the original input.
	Content string `json:"content" yaml:"content"`

	// Strategy is the name of the cleaner that produced Content.
	Strategy string `json:"strategy" yaml:"strategy"`

	Stats    *Stats    `json:"stats" yaml:"stats"`
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Err is set when the cleaner failed with anything other than ErrNoMarkedContent.
	Err error `json:"-" yaml:"-"`
}

// AddWarning adds a warning to the result.
func (r *Result) AddWarning(code, message string) {
	r.Warnings = append(r.Warnings, Warning{Code: code, Message: message})
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// HasWarning reports whether a warning with the given code was recorded.
func (r *Result) HasWarning(code string) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// Run cleans text with c and reports stats and warnings.
func Run(c Cleaner, text string) *Result {
	start := time.Now()
	result := &Result{
		Strategy: c.Name(),
		Stats: &Stats{
			InputBytes: len(text),
			InputWords: CountWords(text),
		},
	}

	var out string
	var err error
	switch v := c.(type) {
	case *StripCleaner:
		out, result.Stats.Passes = StripTrace(text)
	case *ExtractCleaner:
		var counts LineCounts
		out, counts = ExtractLines(text)
		result.Stats.Lines = &counts
		if out == "" && strings.TrimSpace(text) != "" {
			err = ErrNoMarkedContent
		}
	default:
		out, err = v.Clean(text)
	}

	blankInput := strings.TrimSpace(text) == ""
	switch {
	case errors.Is(err, ErrNoMarkedContent):
		result.AddWarning(WarnNoMarkedContent, "no marked content found; check that spoken lines start with "+ContentMarker)
	case err != nil:
		result.Err = err
		out = text
	case blankInput:
		result.AddWarning(WarnEmptyInput, "input is empty")
	case strings.TrimSpace(out) == "":
		result.AddWarning(WarnEmptyOutput, "cleaning removed all content")
	}

	result.Content = out
	result.Stats.OutputBytes = len(out)
	result.Stats.OutputWords = CountWords(out)
	result.Stats.Duration = time.Since(start)
	return result
}
