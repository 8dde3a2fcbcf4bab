package span

// nextPosition computes the line and column immediately after consumed,
// given the line and column at its start. A single pass counts newlines and
// remembers where the last one sits; columns then restart at 1 after it, or
// extend the incoming column when no newline occurred. Cost is proportional
// to len(consumed), never to input consumed earlier.
func nextPosition[T Text](line, col uint32, consumed T, utf8 bool) (uint32, uint32) {
	var newlines uint32
	last := -1 // индекс последнего '\n' в consumed
	for i := 0; i < len(consumed); i++ {
		if consumed[i] == '\n' {
			newlines++
			last = i
		}
	}
	if newlines == 0 {
		return line, col + Units(consumed, utf8)
	}
	// После перевода строки колонка считается заново с 1.
	return line + newlines, 1 + Units(consumed[last+1:], utf8)
}

// Units returns the number of counting units in data: Unicode scalar values
// when utf8 is true, bytes otherwise. Scalar values are counted by skipping
// UTF-8 continuation bytes, so no decoding takes place and invalid input is
// never rejected here.
func Units[T Text](data T, utf8 bool) uint32 {
	// len(data) влезает в uint32: New() уже проверил длину оригинала.
	if !utf8 {
		return uint32(len(data))
	}
	var n uint32
	for i := 0; i < len(data); i++ {
		if data[i]&0xC0 != 0x80 {
			n++
		}
	}
	return n
}
