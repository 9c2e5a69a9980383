// Package cleaner provides interfaces and implementations for cleaning script transcripts.
// Cleaners transform a raw, semi-structured script into plain prose.
package cleaner

import (
	"errors"
	"strings"
)

// ErrNoMarkedContent is returned by the extract cleaner when the input has text
// but no line carries the content marker. Callers should surface it as guidance
// rather than treat it as a failure.
var ErrNoMarkedContent = errors.New("no marked content found")

// ContentMarker prefixes lines that hold spoken/narration content.
const ContentMarker = "||"

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeLineEndings converts CRLF and lone CR line breaks to LF.
func NormalizeLineEndings(text string) string {
	return lineEndings.Replace(text)
}

// Cleaner transforms a script document into a cleaner format.
// Implementations are pure: the same input always yields the same output and no
// state is kept between calls.
type Cleaner interface {
	// Clean transforms the input document.
	// The only error a built-in cleaner returns is ErrNoMarkedContent.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
