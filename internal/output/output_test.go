package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// Test data structure
type testItem struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type stringerItem struct{}

func (stringerItem) String() string { return "from stringer" }

// --- NewWriter Factory Tests ---

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "*output.TextWriter"},
		{"", "*output.TextWriter"},
		{FormatJSON, "*output.JSONWriter"},
		{FormatJSONL, "*output.JSONLWriter"},
		{FormatYAML, "*output.YAMLWriter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			w, err := NewWriter(&bytes.Buffer{}, tt.format)
			if err != nil {
				t.Fatalf("NewWriter() error = %v", err)
			}
			if got := typeName(w); got != tt.want {
				t.Errorf("NewWriter(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *TextWriter:
		return "*output.TextWriter"
	case *JSONWriter:
		return "*output.JSONWriter"
	case *JSONLWriter:
		return "*output.JSONLWriter"
	case *YAMLWriter:
		return "*output.YAMLWriter"
	default:
		return "unknown"
	}
}

func TestNewWriter_WithPretty(t *testing.T) {
	tests := []struct {
		name   string
		opts   []WriterOption
		indent bool
	}{
		{"default is pretty", nil, true},
		{"pretty", []WriterOption{WithPretty(true)}, true},
		{"compact", []WriterOption{WithPretty(false)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, FormatJSON, tt.opts...)
			if err != nil {
				t.Fatalf("NewWriter() error = %v", err)
			}
			if err := w.Write(testItem{Name: "a", Value: 1}); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush() error = %v", err)
			}

			out := strings.TrimSuffix(buf.String(), "\n")
			if got := strings.Contains(out, "\n  "); got != tt.indent {
				t.Errorf("indented = %v, want %v: %q", got, tt.indent, out)
			}
			if !tt.indent && out != `{"name":"a","value":1}` {
				t.Errorf("compact output = %q", out)
			}
		})
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, Format("xml"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected error containing 'unsupported', got %v", err)
	}
}

func TestFormat_Structured(t *testing.T) {
	if FormatText.Structured() {
		t.Error("text should not be structured")
	}
	for _, f := range []Format{FormatJSON, FormatJSONL, FormatYAML} {
		if !f.Structured() {
			t.Errorf("%s should be structured", f)
		}
	}
}

// --- JSONWriter Tests ---

func TestJSONWriter_SingleItem(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, true, "  ")

	if err := w.Write(testItem{Name: "test", Value: 42}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var got testItem
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a single JSON object: %v\n%s", err, buf.String())
	}
	if got.Name != "test" || got.Value != 42 {
		t.Errorf("got %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  \"name\"") {
		t.Errorf("expected indented output, got %q", buf.String())
	}
}

func TestJSONWriter_MultipleItems(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, false, "")

	_ = w.Write(testItem{Name: "a", Value: 1})
	_ = w.Write(testItem{Name: "b", Value: 2})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var got []testItem
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 items, got %d", len(got))
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("compact output should be a single line, got %q", buf.String())
	}
}

func TestJSONWriter_EmptyFlush(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, true, "  ")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

// --- JSONLWriter Tests ---

func TestJSONLWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONLWriter(buf)

	_ = w.Write(testItem{Name: "a", Value: 1})
	_ = w.Write(testItem{Name: "b", Value: 2})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	for i, line := range lines {
		var item testItem
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}

// --- YAMLWriter Tests ---

func TestYAMLWriter_SingleItem(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)

	_ = w.Write(testItem{Name: "test", Value: 42})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var got testItem
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if got.Name != "test" || got.Value != 42 {
		t.Errorf("got %+v", got)
	}
}

func TestYAMLWriter_MultipleItems(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)

	_ = w.Write(testItem{Name: "a", Value: 1})
	_ = w.Write(testItem{Name: "b", Value: 2})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var got []testItem
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 items, got %d", len(got))
	}
}

// --- TextWriter Tests ---

func TestTextWriter(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"string gets newline", "hello", "hello\n"},
		{"existing newline kept", "hello\n", "hello\n"},
		{"stringer", stringerItem{}, "from stringer\n"},
		{"other values", 42, "42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := NewTextWriter(buf)
			if err := w.Write(tt.data); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
