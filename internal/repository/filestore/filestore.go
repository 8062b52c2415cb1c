// Package filestore persists collection documents as one JSON file per kind.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/repository"
)

// Store is a repository.Backend writing <dir>/<kind>.json files.
type Store struct {
	dir string
}

// New creates the data directory when needed and returns a Store on it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the file holding kind.
func (s *Store) Path(kind domain.Collection) string {
	return filepath.Join(s.dir, string(kind)+".json")
}

// Load reads the document of kind.
func (s *Store) Load(_ context.Context, kind domain.Collection) ([]byte, error) {
	data, err := os.ReadFile(s.Path(kind))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, repository.ErrNotStored
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", kind, err)
	}
	return data, nil
}

// Save replaces the document of kind. The new content is written to a
// temporary file in the same directory and renamed over the old one, so a
// reader never sees a half-written document.
func (s *Store) Save(_ context.Context, kind domain.Collection, doc []byte) error {
	tmp, err := os.CreateTemp(s.dir, "."+string(kind)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", kind, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", kind, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", kind, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", kind, err)
	}
	if err := os.Rename(tmpName, s.Path(kind)); err != nil {
		return fmt.Errorf("replace %s: %w", kind, err)
	}
	return nil
}

// Close implements repository.Backend.
func (s *Store) Close() error {
	return nil
}
