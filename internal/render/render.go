// Package render prints resolved positions for humans: the
// path:line:col location line and the source line with a caret under the
// target column. Alignment uses terminal display widths, so carets land
// correctly under wide runes and tabs.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Options configures rendering.
type Options struct {
	Color    bool
	TabWidth int // columns per '\t', 0 means 4
}

func (o Options) tabWidth() int {
	if o.TabWidth <= 0 {
		return 4
	}
	return o.TabWidth
}

var (
	locColor   = color.New(color.FgCyan, color.Bold)
	caretColor = color.New(color.FgGreen, color.Bold)
)

// Location formats a path:line:col location, colorized when enabled.
func Location(path string, line, col uint32, opts Options) string {
	loc := fmt.Sprintf("%s:%d:%d", path, line, col)
	if !opts.Color {
		return loc
	}
	return locColor.Sprint(loc)
}

// Snippet writes the source line followed by a caret line pointing at the
// byte at lineOff within it. Tabs are expanded to the configured width in
// both lines so the caret stays aligned.
func Snippet(w io.Writer, lineText string, lineOff int, opts Options) {
	if lineOff > len(lineText) {
		lineOff = len(lineText)
	}

	expanded := expandTabs(lineText, opts.tabWidth())
	fmt.Fprintln(w, expanded)

	// Ширина префикса в терминальных колонках, не в байтах и не в рунах.
	prefix := expandTabs(lineText[:lineOff], opts.tabWidth())
	pad := runewidth.StringWidth(prefix)

	caret := "^"
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintln(w, strings.Repeat(" ", pad)+caret)
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}
