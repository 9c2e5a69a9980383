package cleaner

import (
	"strings"
)

// LineCounts summarizes how the extract strategy classified its input lines.
type LineCounts struct {
	Content    int `json:"content" yaml:"content"`
	Blank      int `json:"blank" yaml:"blank"`
	Discarded  int `json:"discarded" yaml:"discarded"`
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`
}

// Extract keeps only lines that start with the content marker and re-flows them
// into paragraphs separated by one blank line. Every other non-blank line is
// dropped.
func Extract(text string) string {
	out, _ := ExtractLines(text)
	return out
}

// ExtractLines behaves like Extract and also reports line classification counts.
func ExtractLines(text string) (string, LineCounts) {
	var counts LineCounts
	if strings.TrimSpace(text) == "" {
		return "", counts
	}

	text = NormalizeLineEndings(text)

	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		paragraphs = append(paragraphs, CollapseWhitespace(strings.Join(current, " ")))
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			counts.Blank++
			flush()
		case strings.HasPrefix(line, ContentMarker):
			content := strings.TrimSpace(line[len(ContentMarker):])
			content = strings.TrimSpace(boldRegex.ReplaceAllString(content, "${1}"))
			if content == "" {
				counts.Discarded++
				continue
			}
			counts.Content++
			current = append(current, content)
		default:
			counts.Discarded++
		}
	}
	flush()

	counts.Paragraphs = len(paragraphs)
	return strings.Join(paragraphs, "\n\n"), counts
}

// ExtractCleaner reconstructs spoken content from marked lines.
type ExtractCleaner struct{}

// NewExtract creates a new extract cleaner.
func NewExtract() *ExtractCleaner {
	return &ExtractCleaner{}
}

// Clean extracts marked content. When the input has text but nothing was
// marked, it returns an empty string and ErrNoMarkedContent.
func (c *ExtractCleaner) Clean(text string) (string, error) {
	out := Extract(text)
	if out == "" && strings.TrimSpace(text) != "" {
		return "", ErrNoMarkedContent
	}
	return out, nil
}

// Name returns the cleaner type.
func (c *ExtractCleaner) Name() string {
	return string(StrategyExtract)
}
