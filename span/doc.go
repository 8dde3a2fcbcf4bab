// Package span implements a position-tracked input wrapper for incremental
// parsers. A Span pairs a borrowed view of the remaining input with the
// line, column, and byte offset of its first byte in the original input.
// Invariants:
//   - Fragment() is a re-slice of the original input (no copies).
//   - ByteOffset() + len(Fragment()) equals the original input length.
//   - Line and Col are 1-based; slicing never rewinds ByteOffset.
//   - Every span derived from one New() call shares the same counting mode.
//   - Position updates scan only the newly consumed bytes, so consuming an
//     input left to right costs O(N) overall no matter how many cuts are made.
//   - Equal compares remaining content only, never position. Backtracking
//     frameworks deduplicate parse states by content, so two spans that reach
//     the same remainder by different paths must compare equal.
package span
