package span

import (
	"fmt"
	"iter"
)

// CompareResult is the outcome of matching the start of remaining input
// against a literal pattern.
type CompareResult uint8

const (
	// CompareEqual means the remaining input begins with the pattern.
	CompareEqual CompareResult = iota
	// CompareIncomplete means the remaining input is a proper prefix of the
	// pattern: more input could still produce a match.
	CompareIncomplete
	// CompareMismatch means the two differ before either runs out.
	CompareMismatch
)

func (r CompareResult) String() string {
	switch r {
	case CompareEqual:
		return "equal"
	case CompareIncomplete:
		return "incomplete"
	case CompareMismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("CompareResult(%d)", uint8(r))
	}
}

// Input is the capability set a combinator framework needs to drive a span
// as its input type: length, forward iteration, slicing by count or
// predicate, and content comparison. S is the concrete span type the slicing
// operations return. Lengths, indices, and split points are always in bytes,
// the native unit of the wrapped representation, regardless of the column
// counting mode.
type Input[S any] interface {
	Len() int
	Empty() bool
	Bytes() iter.Seq2[int, byte]
	Take(n int) S
	Skip(n int) S
	TakeSplit(n int) (before, after S)
	Position(pred func(byte) bool) (int, bool)
	TakeWhile(pred func(byte) bool) (before, after S)
	Compare(lit string) CompareResult
	CompareNoCase(lit string) CompareResult
	Equal(other S) bool
}

var (
	_ Input[Span[string]] = Span[string]{}
	_ Input[Span[[]byte]] = Span[[]byte]{}
)

// Len returns the byte length of the remaining input.
func (s Span[T]) Len() int {
	return len(s.data)
}

// Empty reports whether any input remains.
func (s Span[T]) Empty() bool {
	return len(s.data) == 0
}

// Bytes iterates the remaining input as (index, byte) pairs.
func (s Span[T]) Bytes() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < len(s.data); i++ {
			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}

// Take returns the consumed prefix of n bytes. Its position is the
// receiver's position: the prefix starts where the receiver starts.
func (s Span[T]) Take(n int) Span[T] {
	s.checkSplit(n)
	out := s
	out.data = s.data[:n]
	return out
}

// Skip returns the remainder after consuming n bytes, with the position
// advanced over the consumed prefix.
func (s Span[T]) Skip(n int) Span[T] {
	s.checkSplit(n)
	if n == 0 {
		return s
	}
	out := s
	out.data = s.data[n:]
	out.line, out.col = nextPosition(s.line, s.col, s.data[:n], s.utf8)
	out.offset = s.offset + uint32(n)
	return out
}

// TakeSplit partitions the remaining input at n. The consumed prefix keeps
// the receiver's position, the remainder carries the advanced one; together
// they cover the remaining input exactly.
func (s Span[T]) TakeSplit(n int) (before, after Span[T]) {
	return s.Take(n), s.Skip(n)
}

// checkSplit rejects split points outside the remaining input. Silently
// accepting one would corrupt the byte offset invariant, so misuse faults
// immediately instead.
func (s Span[T]) checkSplit(n int) {
	if n < 0 || n > len(s.data) {
		panic(fmt.Errorf("span: split point %d outside remaining input of %d bytes", n, len(s.data)))
	}
}

// Position returns the index of the first remaining byte matching pred.
func (s Span[T]) Position(pred func(byte) bool) (int, bool) {
	for i := 0; i < len(s.data); i++ {
		if pred(s.data[i]) {
			return i, true
		}
	}
	return 0, false
}

// TakeWhile splits the remaining input where pred first fails. When pred
// holds for every remaining byte, before covers all of it and after is
// empty.
func (s Span[T]) TakeWhile(pred func(byte) bool) (before, after Span[T]) {
	n := len(s.data)
	for i := 0; i < len(s.data); i++ {
		if !pred(s.data[i]) {
			n = i
			break
		}
	}
	return s.TakeSplit(n)
}

// Compare matches the start of the remaining input against lit.
func (s Span[T]) Compare(lit string) CompareResult {
	return s.compare(lit, false)
}

// CompareNoCase is Compare with ASCII letters folded on both sides.
// Non-ASCII bytes are compared verbatim.
func (s Span[T]) CompareNoCase(lit string) CompareResult {
	return s.compare(lit, true)
}

func (s Span[T]) compare(lit string, fold bool) CompareResult {
	n := min(len(s.data), len(lit))
	for i := 0; i < n; i++ {
		a, b := s.data[i], lit[i]
		if fold {
			a, b = foldASCII(a), foldASCII(b)
		}
		if a != b {
			return CompareMismatch
		}
	}
	if len(s.data) < len(lit) {
		return CompareIncomplete
	}
	return CompareEqual
}

func foldASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Equal reports whether two spans hold identical remaining content.
// Position is deliberately ignored; see the package comment.
func (s Span[T]) Equal(other Span[T]) bool {
	if len(s.data) != len(other.data) {
		return false
	}
	// Сравнение через string не копирует: компилятор убирает конверсию.
	return string(s.data) == string(other.data)
}
