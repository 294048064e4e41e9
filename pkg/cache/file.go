package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const entryExt = ".json"

// FileCache keeps one JSON envelope per key under a directory, fanned out
// over 256 subdirectories by key hash. It is the CLI's default backend and
// is safe for concurrent renders: entries are replaced by rename.
type FileCache struct {
	dir string
	now func() time.Time
}

// DefaultDir returns $XDG_CACHE_HOME/wireframe, or the platform user cache
// directory when XDG_CACHE_HOME is unset.
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		var err error
		if base, err = os.UserCacheDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(base, "wireframe"), nil
}

// NewFileCache opens a cache rooted at dir, creating the directory.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

// Dir returns the cache root.
func (c *FileCache) Dir() string { return c.dir }

// envelope is the on-disk form of one entry. Key is kept for debugging;
// lookups go by path.
type envelope struct {
	Key     string    `json:"key"`
	Expires time.Time `json:"expires,omitzero"`
	Data    []byte    `json:"data"`
}

func (e envelope) expired(now time.Time) bool {
	return !e.Expires.IsZero() && now.After(e.Expires)
}

func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	e, err := readEnvelope(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	case errors.Is(err, errCorrupt):
		_ = os.Remove(path)
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	if e.expired(c.now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Data, true, nil
}

func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	e := envelope{Key: key, Data: data}
	if ttl > 0 {
		e.Expires = c.now().Add(ttl)
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return writeAtomic(c.path(key), b)
}

func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (c *FileCache) Close() error { return nil }

// Usage summarises the entries on disk. Expired entries are counted in
// Entries too until they are read or pruned.
type Usage struct {
	Entries int
	Expired int
	Bytes   int64
}

func (c *FileCache) Usage() (Usage, error) {
	var u Usage
	now := c.now()
	err := c.walk(func(path string, size int64) error {
		u.Entries++
		u.Bytes += size
		if e, err := readEnvelope(path); err == nil && e.expired(now) {
			u.Expired++
		}
		return nil
	})
	return u, err
}

// Prune deletes expired and unreadable entries and reports how many went.
func (c *FileCache) Prune() (int, error) {
	now := c.now()
	removed := 0
	err := c.walk(func(path string, _ int64) error {
		e, err := readEnvelope(path)
		if err == nil && !e.expired(now) {
			return nil
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		removed++
		return nil
	})
	return removed, err
}

// Clear deletes every entry, keeping the root directory, and reports how
// many entries there were.
func (c *FileCache) Clear() (int, error) {
	u, err := c.Usage()
	if err != nil {
		return 0, err
	}
	children, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, err
	}
	for _, child := range children {
		if err := os.RemoveAll(filepath.Join(c.dir, child.Name())); err != nil {
			return 0, err
		}
	}
	return u.Entries, nil
}

// walk calls fn for every entry file. Temporary files from in-flight writes
// are skipped.
func (c *FileCache) walk(fn func(path string, size int64) error) error {
	return filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), entryExt) || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(path, info.Size())
	})
}

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+entryExt)
}

var errCorrupt = errors.New("corrupt cache entry")

func readEnvelope(path string) (envelope, error) {
	var e envelope
	b, err := os.ReadFile(path)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(b, &e); err != nil {
		return e, fmt.Errorf("%w: %v", errCorrupt, err)
	}
	return e, nil
}

// writeAtomic writes b next to path and renames it into place, so readers
// never see a partial entry.
func writeAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".entry-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

var _ Cache = (*FileCache)(nil)
