// Package linecache persists newline indexes between runs so that repeated
// lookups in the same file skip the initial span walk. Entries are keyed by
// the sha256 of the normalized content, so a stale path never serves a stale
// index.
package linecache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when the payload layout changes; old entries then read as misses.
const schemaVersion uint16 = 1

// Key identifies cached content: sha256 of the normalized bytes.
type Key = [32]byte

// Index is the cached shape of a file: its byte length and the offsets of
// every '\n' in it, ascending.
type Index struct {
	Schema   uint16
	ByteLen  uint32
	Newlines []uint32
}

// Cache is a disk-backed store of Index values. Safe for concurrent use.
// A nil *Cache is valid and behaves as always-miss.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes the cache under $XDG_CACHE_HOME/<app>, falling back to
// ~/.cache/<app>.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenAt initializes the cache at an explicit directory. Тестам и флагу
// --cache-dir не нужен XDG.
func OpenAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Key) string {
	// Подкаталог "idx" — чтобы каталог кэша можно было чистить выборочно.
	return filepath.Join(c.dir, "idx", hex.EncodeToString(key[:])+".mp")
}

// Put serializes an index to the cache. The write is atomic: a temp file in
// the target directory renamed over the final name.
func (c *Cache) Put(key Key, byteLen uint32, newlines []uint32) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	payload := Index{
		Schema:   schemaVersion,
		ByteLen:  byteLen,
		Newlines: newlines,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads an index from the cache. A missing entry or a schema mismatch is
// a miss, not an error.
func (c *Cache) Get(key Key) (*Index, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	var payload Index
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	if payload.Schema != schemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// Переименовываем каталог и удаляем его целиком.
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
