package srcfile

import "bytes"

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
	crlf    = []byte("\r\n")
	lf      = []byte("\n")
)

// stripBOM drops a leading UTF-8 byte order mark, reporting whether one was
// present. The returned slice aliases the input.
func stripBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, utf8BOM) {
		return content[len(utf8BOM):], true
	}
	return content, false
}

// normalizeCRLF rewrites every \r\n pair as \n, reporting whether any
// replacement happened. Одиночные \r не трогаем: они не терминаторы строк.
// Content without \r\n is returned as is, without copying.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, lf), true
}
