package srcfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantChanged bool
	}{
		{name: "no carriage returns", input: "a\nb\n", want: "a\nb\n", wantChanged: false},
		{name: "crlf pairs replaced", input: "a\r\nb\r\n", want: "a\nb\n", wantChanged: true},
		{name: "lone cr preserved", input: "a\rb", want: "a\rb", wantChanged: false},
		{name: "mixed", input: "a\r\nb\rc\n", want: "a\nb\rc\n", wantChanged: true},
		{name: "empty", input: "", want: "", wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestStripBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)

	got, had := stripBOM(withBOM)
	if !had || string(got) != "hello" {
		t.Errorf("stripBOM = %q, %v; want \"hello\", true", got, had)
	}

	got, had = stripBOM([]byte("hello"))
	if had || string(got) != "hello" {
		t.Errorf("stripBOM without BOM = %q, %v; want \"hello\", false", got, had)
	}

	// Усечённый BOM — это обычные байты.
	got, had = stripBOM([]byte{0xEF, 0xBB})
	if had || len(got) != 2 {
		t.Errorf("truncated BOM must pass through, got %q, %v", got, had)
	}
}

func TestLoadNormalizesAndHashes(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "input.txt")

	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("one\r\ntwo\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(f.Content) != "one\ntwo\n" {
		t.Errorf("Content = %q, want normalized \"one\\ntwo\\n\"", f.Content)
	}
	if f.Flags&FlagHadBOM == 0 {
		t.Error("FlagHadBOM not set")
	}
	if f.Flags&FlagHadCRLF == 0 {
		t.Error("FlagHadCRLF not set")
	}
	if f.Flags&FlagVirtual != 0 {
		t.Error("FlagVirtual set for a disk file")
	}

	same := NewVirtual("mem", []byte("one\ntwo\n"))
	if !bytes.Equal(f.Hash[:], same.Hash[:]) {
		t.Error("hash must depend on normalized content only")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("Load of a missing file must fail")
	}
}

func TestNewVirtualSetsFlag(t *testing.T) {
	f := NewVirtual("<stdin>", []byte("x"))
	if f.Flags&FlagVirtual == 0 {
		t.Error("FlagVirtual not set")
	}
	if f.Path != "<stdin>" {
		t.Errorf("Path = %q, want \"<stdin>\"", f.Path)
	}
}
