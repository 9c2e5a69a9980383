// Package export moves cleaned scripts out of the process: files, the clipboard,
// and reading bounded input.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
)

var (
	// ErrEmptyOutput is returned when there is nothing to save or copy.
	ErrEmptyOutput = errors.New("no text to export")

	// ErrInputTooLarge is returned by ReadInput when the limit is exceeded.
	ErrInputTooLarge = errors.New("input too large")
)

// DefaultFilename is used when the first line of the script yields no name.
const DefaultFilename = "clean_script.txt"

const maxNameRunes = 50

// Filename derives a .txt file name from the first line of text: at most 50
// runes, every rune other than an ASCII letter or digit replaced with a single
// underscore, lowercased.
func Filename(text string) string {
	first, _, _ := strings.Cut(text, "\n")
	first = strings.TrimSuffix(first, "\r")
	if first == "" {
		return DefaultFilename
	}

	var sb strings.Builder
	n := 0
	for _, r := range first {
		if n == maxNameRunes {
			break
		}
		n++
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String() + ".txt"
}

// Save writes text to dir under the name derived by Filename and returns the path.
func Save(dir, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("save: %w", ErrEmptyOutput)
	}
	path := filepath.Join(dir, Filename(text))
	if err := WriteFile(path, text); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile writes text to path.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Clipboard is the subset of clipboard access scriptclean needs.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// Copy places text on cb.
func Copy(cb Clipboard, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("copy: %w", ErrEmptyOutput)
	}
	if err := cb.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// ReadInput reads all of r. When limit is positive, inputs longer than limit
// bytes fail with ErrInputTooLarge. Invalid UTF-8 is passed through untouched.
func ReadInput(r io.Reader, limit int64) (string, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return "", fmt.Errorf("%w: exceeds %s", ErrInputTooLarge, humanize.Bytes(uint64(limit)))
	}
	return string(data), nil
}

// ReadFile reads the file at path with the same limit rules as ReadInput.
func ReadFile(path string, limit int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ReadInput(f, limit)
}

