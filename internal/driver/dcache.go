package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/morishitter/postcss/internal/observ"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты обработки файлов по ключу из содержимого и
// опций. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	fs  afero.Fs
	dir string
}

// DiskPayload is one cached result.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16 `msgpack:"schema"`

	Path string `msgpack:"path"`
	CSS  string `msgpack:"css"`
	// Map is the separate map JSON, empty for inline or no map.
	Map     string        `msgpack:"map,omitempty"`
	Timings observ.Report `msgpack:"timings"`
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(afero.NewOsFs(), filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir on fsys.
func NewDiskCache(fsys afero.Fs, dir string) (*DiskCache, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{fs: fsys, dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не раздувать один каталог
	return filepath.Join(c.resultsDir(), hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := c.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := afero.TempFile(c.fs, filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = c.fs.Remove(tmp)
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return c.fs.Rename(tmp, p)
}

// Get reads and deserializes a payload. Entries of another schema are
// reported as missing.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := c.fs.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		*out = DiskPayload{}
		return false, nil
	}
	return true, nil
}

// Dir is the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) resultsDir() string { return filepath.Join(c.dir, "results") }

// CacheStats describes what is stored in a DiskCache.
type CacheStats struct {
	Entries int
	Bytes   int64
}

// Stats walks the stored results.
func (c *DiskCache) Stats() (CacheStats, error) {
	var st CacheStats
	if c == nil {
		return st, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	err := afero.Walk(c.fs, c.resultsDir(), func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if !info.IsDir() && filepath.Ext(info.Name()) == ".mp" {
			st.Entries++
			st.Bytes += info.Size()
		}
		return nil
	})
	return st, err
}

// Clear removes every stored result and reports how many there were.
func (c *DiskCache) Clear() (int, error) {
	st, err := c.Stats()
	if err != nil || c == nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fs.RemoveAll(c.resultsDir()); err != nil {
		return 0, err
	}
	return st.Entries, nil
}
