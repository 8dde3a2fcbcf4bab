package span

import (
	"strings"
	"testing"
)

func TestNewSeedsBasePosition(t *testing.T) {
	sp := New(`{"hello": "world"}`, true)

	if sp.Line() != 1 {
		t.Errorf("Line() = %d, want 1", sp.Line())
	}
	if sp.Col() != 1 {
		t.Errorf("Col() = %d, want 1", sp.Col())
	}
	if sp.ByteOffset() != 0 {
		t.Errorf("ByteOffset() = %d, want 0", sp.ByteOffset())
	}
	if sp.Fragment() != `{"hello": "world"}` {
		t.Errorf("Fragment() = %q, want original input", sp.Fragment())
	}
	if !sp.UTF8() {
		t.Error("UTF8() = false, want true")
	}
}

func TestFragmentSharesBacking(t *testing.T) {
	buf := []byte("abc\ndef")
	sp := New(buf, false)

	_, after := sp.TakeSplit(4)
	frag := after.Fragment()
	if len(frag) != 3 {
		t.Fatalf("len(Fragment()) = %d, want 3", len(frag))
	}

	// Мутация оригинала видна во фрагменте: это re-slice, не копия.
	buf[4] = 'X'
	if frag[0] != 'X' {
		t.Error("Fragment() does not alias the original buffer")
	}
}

func TestEqualComparesContentOnly(t *testing.T) {
	// Две разные дорожки к одному и тому же остатку.
	a := New("xx\nabc", true).Skip(3)
	b := New("abc", true)

	if a.Line() == b.Line() && a.ByteOffset() == b.ByteOffset() {
		t.Fatal("test setup broken: positions should differ")
	}
	if !a.Equal(b) {
		t.Error("spans with identical remaining content must compare equal")
	}
	if !b.Equal(a) {
		t.Error("Equal must be symmetric")
	}
}

func TestEqualDistinguishesContent(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "abc", b: "abc", want: true},
		{name: "both empty", a: "", b: "", want: true},
		{name: "different length", a: "abc", b: "abcd", want: false},
		{name: "same length different bytes", a: "abc", b: "abd", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.a, true).Equal(New(tt.b, true))
			if got != tt.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestModeInheritedBySlices(t *testing.T) {
	sp := New("a\nb\nc", true)
	_, after := sp.TakeSplit(2)
	if !after.UTF8() {
		t.Error("derived span lost the counting mode")
	}
	_, after = after.TakeSplit(2)
	if !after.UTF8() {
		t.Error("second derivation lost the counting mode")
	}
}

func TestStringPreviewTruncates(t *testing.T) {
	long := strings.Repeat("q", 64)
	got := New(long, false).String()
	want := `1:1+0 "qqqqqqqqqqqqqqqq"`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
