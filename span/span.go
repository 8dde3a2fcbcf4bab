package span

import (
	"fmt"

	"fortio.org/safecast"
)

// Text is the set of representations a Span can wrap: string or byte slice,
// including named types based on them. Re-slicing either shares the original
// backing storage, so no Span operation ever copies input bytes.
type Text interface {
	~string | ~[]byte
}

// Span is an immutable value pairing the not-yet-consumed input with the
// position of its first byte in the original input. Consuming operations
// return new spans and leave the receiver untouched, so a backtracking parser
// may hold any number of them at once without synchronization.
type Span[T Text] struct {
	data   T
	line   uint32 // 1-based
	col    uint32 // 1-based, counted in units selected by utf8
	offset uint32 // 0-based byte offset within the original input
	utf8   bool
}

// New wraps the full input and seeds the position at line 1, column 1, byte
// offset 0. handleUTF8 selects the column counting unit: Unicode scalar
// values when true, raw bytes when false. The mode is fixed here and
// inherited by every span derived from this one.
//
// The span borrows data; the original buffer must outlive every span derived
// from it. In UTF-8 mode the input is assumed to be valid UTF-8.
func New[T Text](data T, handleUTF8 bool) Span[T] {
	// Offsets живут в uint32, как и остальные позиции в проекте.
	if _, err := safecast.Conv[uint32](len(data)); err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return Span[T]{
		data:   data,
		line:   1,
		col:    1,
		offset: 0,
		utf8:   handleUTF8,
	}
}

// Line returns the 1-based line number of the first remaining byte.
func (s Span[T]) Line() uint32 {
	return s.line
}

// Col returns the 1-based column of the first remaining byte, counted in the
// configured unit.
func (s Span[T]) Col() uint32 {
	return s.col
}

// ByteOffset returns the 0-based byte offset of the first remaining byte
// within the original input. It is exact in both counting modes.
func (s Span[T]) ByteOffset() uint32 {
	return s.offset
}

// Fragment returns the remaining unconsumed input.
func (s Span[T]) Fragment() T {
	return s.data
}

// UTF8 reports whether columns advance per Unicode scalar value rather than
// per byte.
func (s Span[T]) UTF8() bool {
	return s.utf8
}

// String renders the position and a short preview of the remaining input.
func (s Span[T]) String() string {
	const previewLimit = 16
	preview := s.data
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}
	return fmt.Sprintf("%d:%d+%d %q", s.line, s.col, s.offset, string(preview))
}
