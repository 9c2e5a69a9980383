package cleaner

import (
	"regexp"
	"strings"
)

var (
	metadataRegex      = regexp.MustCompile(`(?m)^---[\s\S]*?---\s*`)
	imageTagRegex      = regexp.MustCompile(`\[image\d+:.*?\]`)
	headerRegex        = regexp.MustCompile(`(?m)^#{1,6}\s+.*$`)
	sectionHeaderRegex = regexp.MustCompile(`(?m)^\*\*[A-Z\s&-]+\*\*$`)
	lineMarkerRegex    = regexp.MustCompile(`(?m)^\|\|\s*`)
	boldRegex          = regexp.MustCompile(`\*\*(.*?)\*\*`)
	ruleRegex          = regexp.MustCompile(`(?m)^[-=]+$`)
	blankRunRegex      = regexp.MustCompile(`\n{3,}`)
)

// Pass is one substitution step of the strip strategy.
type Pass struct {
	Name  string
	Apply func(string) string
}

// stripPasses is the ordered pass list. Later passes rely on earlier ones
// having removed the markup that would confuse them.
var stripPasses = []Pass{
	{"metadata", removeFirst(metadataRegex)},
	{"images", replaceAll(imageTagRegex, "")},
	{"headers", replaceAll(headerRegex, "")},
	{"section_headers", replaceAll(sectionHeaderRegex, "")},
	{"markers", replaceAll(lineMarkerRegex, "")},
	{"bold", replaceAll(boldRegex, "${1}")},
	{"rules", replaceAll(ruleRegex, "")},
	{"blank_lines", replaceAll(blankRunRegex, "\n\n")},
	{"trim", strings.TrimSpace},
}

// StripPasses returns a copy of the ordered strip passes.
func StripPasses() []Pass {
	passes := make([]Pass, len(stripPasses))
	copy(passes, stripPasses)
	return passes
}

func replaceAll(re *regexp.Regexp, repl string) func(string) string {
	return func(s string) string {
		return re.ReplaceAllString(s, repl)
	}
}

// removeFirst deletes only the leftmost match of re.
func removeFirst(re *regexp.Regexp) func(string) string {
	return func(s string) string {
		loc := re.FindStringIndex(s)
		if loc == nil {
			return s
		}
		return s[:loc[0]] + s[loc[1]:]
	}
}

// Strip removes structural markup from a script while keeping the remaining
// prose and its line layout. Line endings are normalized to LF first. Inline spacing left behind by removed image tags
// is not normalized.
func Strip(text string) string {
	text = NormalizeLineEndings(text)
	if strings.TrimSpace(text) == "" {
		return ""
	}
	for _, p := range stripPasses {
		text = p.Apply(text)
	}
	return text
}

// PassDelta records how many bytes a single strip pass removed.
type PassDelta struct {
	Name         string `json:"name" yaml:"name"`
	BytesRemoved int    `json:"bytes_removed" yaml:"bytes_removed"`
}

// StripTrace behaves like Strip and also reports the effect of every pass.
// Bytes dropped by line ending normalization are not attributed to any pass.
func StripTrace(text string) (string, []PassDelta) {
	text = NormalizeLineEndings(text)
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	deltas := make([]PassDelta, 0, len(stripPasses))
	for _, p := range stripPasses {
		before := len(text)
		text = p.Apply(text)
		deltas = append(deltas, PassDelta{Name: p.Name, BytesRemoved: before - len(text)})
	}
	return text, deltas
}

// StripCleaner removes known noise patterns with a fixed sequence of passes.
type StripCleaner struct{}

// NewStrip creates a new strip cleaner.
func NewStrip() *StripCleaner {
	return &StripCleaner{}
}

// Clean strips markup from the input. It never fails.
func (c *StripCleaner) Clean(text string) (string, error) {
	return Strip(text), nil
}

// Name returns the cleaner type.
func (c *StripCleaner) Name() string {
	return string(StrategyStrip)
}
