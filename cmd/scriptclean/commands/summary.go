package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/scriptclean/pkg/cleaner"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// renderSummary formats the word counts and stats of a run for stderr.
func renderSummary(result *cleaner.Result, source string) string {
	var sb strings.Builder
	s := result.Stats

	sb.WriteString(titleStyle.Render(fmt.Sprintf("=== %s (%s) ===", source, result.Strategy)) + "\n")
	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label) + countStyle.Render(value) + "\n")
	}
	row("Input", cleaner.FormatWordCount(s.InputWords))
	row("Output", cleaner.FormatWordCount(s.OutputWords))
	if s.Lines != nil {
		row("Paragraphs", fmt.Sprintf("%d", s.Lines.Paragraphs))
		row("Discarded", fmt.Sprintf("%d lines", s.Lines.Discarded))
	}
	row("Reduced", fmt.Sprintf("%.1f%%", s.ReductionPercent()))

	for _, w := range result.Warnings {
		sb.WriteString(warnStyle.Render("! "+w.Message) + "\n")
	}
	return sb.String()
}
