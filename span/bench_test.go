package span_test

import (
	"strings"
	"testing"

	"spanned/span"
)

func benchWalk(b *testing.B, input string, utf8Mode bool, step int) {
	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for b.Loop() {
		sp := span.New(input, utf8Mode)
		for !sp.Empty() {
			n := step
			if n > sp.Len() {
				n = sp.Len()
			}
			_, sp = sp.TakeSplit(n)
		}
		if sp.ByteOffset() != uint32(len(input)) {
			b.Fatal("walk did not consume the whole input")
		}
	}
}

func BenchmarkWalkASCIIBytes(b *testing.B) {
	benchWalk(b, strings.Repeat("a quick line of ascii text\n", 500), false, 7)
}

func BenchmarkWalkASCIIUTF8(b *testing.B) {
	benchWalk(b, strings.Repeat("a quick line of ascii text\n", 500), true, 7)
}

func BenchmarkWalkCyrillicUTF8(b *testing.B) {
	benchWalk(b, strings.Repeat("строка кириллицы для замера\n", 500), true, 7)
}

func BenchmarkWalkByteAtATime(b *testing.B) {
	benchWalk(b, strings.Repeat("pathological single byte consumption\n", 200), true, 1)
}

func BenchmarkCompare(b *testing.B) {
	sp := span.New("SELECT id, name FROM users WHERE id = 1", false)
	b.ReportAllocs()
	for b.Loop() {
		if sp.CompareNoCase("select") != span.CompareEqual {
			b.Fatal("unexpected compare result")
		}
	}
}
