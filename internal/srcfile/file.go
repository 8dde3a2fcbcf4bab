// Package srcfile loads input files for the CLI: raw bytes plus the
// normalization and identity metadata the rest of the tool needs. The span
// library itself never touches the filesystem.
package srcfile

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// Flags encodes what happened to a file's content on the way in.
type Flags uint8

const (
	// FlagVirtual marks content that did not come from disk (stdin, tests).
	FlagVirtual Flags = 1 << iota
	// FlagHadBOM marks content that arrived with a UTF-8 byte order mark.
	FlagHadBOM
	// FlagHadCRLF marks content whose \r\n terminators were normalized to \n.
	FlagHadCRLF
)

// File is a single loaded input: normalized content plus identity metadata.
// Hash identifies the normalized content, so it doubles as a cache key.
type File struct {
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   Flags
}

// Load reads a file from disk, strips a UTF-8 BOM, and normalizes CRLF line
// terminators. Позиции считаются уже по нормализованному содержимому.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if _, err := safecast.Conv[uint32](len(raw)); err != nil {
		return nil, fmt.Errorf("%s is too large to track: %w", path, err)
	}

	content, flags := normalize(raw)
	return &File{
		Path:    filepath.ToSlash(filepath.Clean(path)),
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}, nil
}

// NewVirtual wraps in-memory content (stdin, tests) as a File, applying the
// same normalization as Load.
func NewVirtual(name string, raw []byte) *File {
	content, flags := normalize(raw)
	return &File{
		Path:    name,
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags | FlagVirtual,
	}
}

func normalize(raw []byte) ([]byte, Flags) {
	var flags Flags
	content, hadBOM := stripBOM(raw)
	if hadBOM {
		flags |= FlagHadBOM
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FlagHadCRLF
	}
	return content, flags
}
