package httpcache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// Disk is a Store holding one file per cached URL. The file content is
// the raw response body; the presence of a file is sufficient for a
// hit. Writes go through a temp file and rename so concurrent readers
// never observe a partial entry.
type Disk struct {
	dir string
}

// NewDisk creates the cache directory if needed and returns a Disk
// store rooted there.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Disk{dir: dir}, nil
}

// Dir returns the cache directory.
func (d *Disk) Dir() string {
	return d.dir
}

func (d *Disk) path(key string) string {
	return filepath.Join(d.dir, fmt.Sprintf("%x", sha256.Sum256([]byte(key))))
}

// Get retrieves the cached body for key.
func (d *Disk) Get(_ context.Context, key string) ([]byte, bool) {
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores body for key with a whole-file replace. A concurrent
// writer of the same key at worst causes a redundant write, never a
// torn entry.
func (d *Disk) Set(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(d.dir, "entry-*")
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("cache set: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache set: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
