package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestLocationPlain(t *testing.T) {
	got := Location("dir/file.txt", 12, 3, Options{})
	want := "dir/file.txt:12:3"
	if got != want {
		t.Errorf("Location = %q, want %q", got, want)
	}
}

func TestSnippetCaretAlignment(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		lineOff int
		wantPad int
	}{
		{name: "start of line", line: "hello", lineOff: 0, wantPad: 0},
		{name: "ascii middle", line: "hello", lineOff: 3, wantPad: 3},
		{name: "after wide runes", line: "日本x", lineOff: 6, wantPad: 4},
		{name: "after cyrillic", line: "двa", lineOff: 4, wantPad: 2},
		{name: "offset past end clamps", line: "ab", lineOff: 99, wantPad: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Snippet(&buf, tt.line, tt.lineOff, Options{})

			lines := strings.Split(buf.String(), "\n")
			if len(lines) < 2 {
				t.Fatalf("Snippet wrote %d lines, want 2", len(lines))
			}
			caretLine := lines[1]
			want := strings.Repeat(" ", tt.wantPad) + "^"
			if caretLine != want {
				t.Errorf("caret line = %q, want %q", caretLine, want)
			}
		})
	}
}

func TestSnippetExpandsTabs(t *testing.T) {
	var buf bytes.Buffer
	Snippet(&buf, "\tx", 1, Options{TabWidth: 4})

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "    x" {
		t.Errorf("source line = %q, want tabs expanded to spaces", lines[0])
	}
	if lines[1] != "    ^" {
		t.Errorf("caret line = %q, want caret under x", lines[1])
	}
}
