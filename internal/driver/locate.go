// Package driver connects the span library to files on disk: it resolves
// byte offsets to line/column positions, keeps the newline-index cache warm,
// and fans batches of files out across goroutines.
package driver

import (
	"bytes"
	"fmt"
	"sort"

	"spanned/internal/linecache"
	"spanned/internal/srcfile"
	"spanned/span"
)

// Position is a resolved location within one file.
type Position struct {
	Offset    uint32 // запрошенное смещение в байтах
	Line      uint32 // 1-based
	Col       uint32 // 1-based, в выбранных единицах
	LineStart uint32 // byte offset of the first byte of the line
}

// Resolve maps byte offsets within a file to line/column positions. The
// newline index comes from the cache when the content hash matches;
// otherwise it is built by walking the content with the span library and
// stored for next time. utf8Mode selects the column counting unit.
func Resolve(file *srcfile.File, offsets []uint32, utf8Mode bool, cache *linecache.Cache) ([]Position, error) {
	total := uint32(len(file.Content))
	for _, off := range offsets {
		if off > total {
			return nil, fmt.Errorf("%s: offset %d outside file of %d bytes", file.Path, off, total)
		}
	}

	var newlines []uint32
	idx, hit, err := cache.Get(file.Hash)
	if err != nil {
		return nil, fmt.Errorf("%s: cache read failed: %w", file.Path, err)
	}
	if hit && idx.ByteLen == total {
		newlines = idx.Newlines
	} else {
		newlines = newlineIndex(file.Content, utf8Mode)
		if err := cache.Put(file.Hash, total, newlines); err != nil {
			return nil, fmt.Errorf("%s: cache write failed: %w", file.Path, err)
		}
	}

	out := make([]Position, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, fromIndex(newlines, file.Content, off, utf8Mode))
	}
	return out, nil
}

// newlineIndex collects the byte offset of every '\n' by consuming the
// content line by line through the span library.
func newlineIndex(content []byte, utf8Mode bool) []uint32 {
	var out []uint32
	sp := span.New(content, utf8Mode)
	for !sp.Empty() {
		_, rest := sp.TakeWhile(func(b byte) bool { return b != '\n' })
		if rest.Empty() {
			break
		}
		out = append(out, rest.ByteOffset())
		sp = rest.Skip(1)
	}
	return out
}

// fromIndex resolves one offset against a newline index: the line by binary
// search, the column by counting units from the line start.
func fromIndex(newlines []uint32, content []byte, off uint32, utf8Mode bool) Position {
	// k — число переводов строки строго до off.
	k := sort.Search(len(newlines), func(i int) bool { return newlines[i] >= off })
	var lineStart uint32
	if k > 0 {
		lineStart = newlines[k-1] + 1
	}
	return Position{
		Offset:    off,
		Line:      uint32(k) + 1,
		Col:       1 + span.Units(content[lineStart:off], utf8Mode),
		LineStart: lineStart,
	}
}

// LineText returns the text of the line containing p, without the
// terminating newline.
func LineText(content []byte, p Position) string {
	end := p.LineStart
	for end < uint32(len(content)) && content[end] != '\n' {
		end++
	}
	return string(content[p.LineStart:end])
}

// FindOffsets returns the byte offset of every occurrence of needle in
// content, ascending. Occurrences may overlap.
func FindOffsets(content []byte, needle string) []uint32 {
	if needle == "" {
		return nil
	}
	var out []uint32
	from := 0
	for {
		i := bytes.Index(content[from:], []byte(needle))
		if i < 0 {
			return out
		}
		out = append(out, uint32(from+i))
		from += i + 1
	}
}

// Stats summarizes one file in span terms.
type Stats struct {
	Bytes   uint32
	Scalars uint32
	Lines   uint32
}

// Summarize walks the whole file through the span library and reports byte,
// scalar-value, and line counts. A trailing newline does not open a new
// line.
func Summarize(file *srcfile.File) Stats {
	content := file.Content
	if len(content) == 0 {
		return Stats{}
	}
	sp := span.New(content, true)
	end := sp.Skip(sp.Len())

	lines := end.Line()
	if content[len(content)-1] == '\n' {
		lines--
	}
	return Stats{
		Bytes:   uint32(len(content)),
		Scalars: span.Units(content, true),
		Lines:   lines,
	}
}
