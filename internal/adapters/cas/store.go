// Package cas implements the content-addressed snapshot cache.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/prov/internal/core/domain"
	"go.trai.ch/prov/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.SnapshotStore using one file per entry.
//
// Entries are keyed by content hash and written atomically, so concurrent
// invocations sharing a cache directory never observe partial writes and
// identical writers never conflict.
type Store struct {
	dir string
}

// NewStore creates a SnapshotStore rooted at the default cache path.
func NewStore() (*Store, error) {
	return NewStoreAt(domain.DefaultSnapshotCachePath())
}

// NewStoreAt creates a SnapshotStore rooted at the given directory.
func NewStoreAt(dir string) (*Store, error) {
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", cleanDir)
	}
	return &Store{dir: cleanDir}, nil
}

// Get returns the cached bytes for the key.
func (s *Store) Get(key string) ([]byte, error) {
	//nolint:gosec // Path is constructed from the cache dir and a hex key
	data, err := os.ReadFile(s.entryPath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrCacheMiss, "key", key)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key)
	}
	return data, nil
}

// Put stores the bytes under the key using a temp-file-and-rename commit.
// Overwriting an existing entry with identical content is safe.
func (s *Store) Put(key string, data []byte) error {
	if err := s.atomicWrite(s.entryPath(key), data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}
	return nil
}

// Clear removes every cache entry.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), entrySuffix) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "entry", entry.Name())
		}
	}
	return nil
}

const entrySuffix = ".snapshot"

func (s *Store) entryPath(key string) string {
	return filepath.Join(s.dir, key+entrySuffix)
}

func (s *Store) atomicWrite(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(s.dir, "snapshot-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up the temp file on any failure path
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

var _ ports.SnapshotStore = (*Store)(nil)
