// Package filekv is a file-backed document store: one JSON file per key
// under a data directory. It is the default backend and the one used by
// tests; saves are atomic via a temp-file rename.
package filekv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
)

// FileStore persists documents as <key>.json files under dir.
type FileStore struct {
	dir string
}

// New creates the data directory if needed and returns a store over it.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

var _ portsrepo.DocumentStore = (*FileStore)(nil)

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load reads the document stored under key. A missing file is reported as
// absent, not as an error.
func (f *FileStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read document %q: %w", key, err)
	}
	return data, true, nil
}

// Save writes the document under key, replacing any previous value. The
// write goes to a temp file first so a crash never leaves a half-written
// document behind.
func (f *FileStore) Save(ctx context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %q: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %q: %w", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document %q: %w", key, err)
	}
	return nil
}
