package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple", "Hello World\nsecond line", "hello_world.txt"},
		{"empty", "", DefaultFilename},
		{"empty first line", "\nbody", DefaultFilename},
		{"punctuation", "Tip 1: Do this!", "tip_1__do_this_.txt"},
		{"digits kept", "Episode 42", "episode_42.txt"},
		{"non ascii replaced", "Café", "caf_.txt"},
		{"spaces only", "   ", "___.txt"},
		{"emoji is one underscore", "Hi 👋 there", "hi___there.txt"},
		{"crlf first line", "Intro\r\nbody", "intro.txt"},
		{
			"truncation counts runes not bytes",
			strings.Repeat("é", 60),
			strings.Repeat("_", 50) + ".txt",
		},
		{
			"truncated to 50 characters",
			strings.Repeat("a", 60),
			strings.Repeat("a", 50) + ".txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.text); got != tt.want {
				t.Errorf("Filename(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, "Welcome back\n\nMore text")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if path != filepath.Join(dir, "welcome_back.txt") {
		t.Errorf("Save() path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "Welcome back\n\nMore text" {
		t.Errorf("saved content = %q", string(data))
	}
}

func TestSave_EmptyOutput(t *testing.T) {
	dir := t.TempDir()

	_, err := Save(dir, "  \n ")
	if !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("Save() error = %v, want ErrEmptyOutput", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no files written, got %d", len(entries))
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.txt"), "x")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !strings.Contains(err.Error(), "writing") {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestCopy(t *testing.T) {
	cb := &fakeClipboard{}
	if err := Copy(cb, "spoken text"); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if cb.text != "spoken text" {
		t.Errorf("clipboard = %q", cb.text)
	}
}

func TestCopy_Empty(t *testing.T) {
	cb := &fakeClipboard{}
	if err := Copy(cb, ""); !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("Copy() error = %v, want ErrEmptyOutput", err)
	}
	if cb.text != "" {
		t.Errorf("clipboard should be untouched, got %q", cb.text)
	}
}

func TestCopy_ClipboardError(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no display")}
	err := Copy(cb, "text")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no display") {
		t.Errorf("expected underlying error, got %v", err)
	}
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int64
		wantErr error
	}{
		{"unlimited", strings.Repeat("x", 100), 0, nil},
		{"under limit", "hello", 10, nil},
		{"at limit", "helloworld", 10, nil},
		{"over limit", "hello world", 10, ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadInput(strings.NewReader(tt.input), tt.limit)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ReadInput() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadInput() error = %v", err)
			}
			if got != tt.input {
				t.Errorf("ReadInput() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.md")
	if err := os.WriteFile(path, []byte("|| hi"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, 0)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != "|| hi" {
		t.Errorf("ReadFile() = %q", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.md"), 0); err == nil {
		t.Error("expected error for missing file")
	}
}
