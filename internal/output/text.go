package output

import (
	"fmt"
	"io"
	"strings"
)

// TextWriter writes plain text, one item per line block.
// Strings are written verbatim and fmt.Stringer values through String.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// Write prints data followed by a newline unless it already ends with one.
func (w *TextWriter) Write(data any) error {
	var s string
	switch v := data.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w.w, s)
	return err
}

// Flush is a no-op; text is written immediately.
func (w *TextWriter) Flush() error {
	return nil
}
