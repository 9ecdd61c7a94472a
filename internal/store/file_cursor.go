package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileCursorStore keeps the cursor in a single text file.
type FileCursorStore struct {
	path string
}

// NewFileCursorStore returns a cursor store backed by path.
func NewFileCursorStore(path string) *FileCursorStore {
	return &FileCursorStore{path: path}
}

// LoadCursor reads the cursor. A missing file means start of history.
func (f *FileCursorStore) LoadCursor(_ context.Context) (string, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cursor file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// SaveCursor replaces the file contents through a rename so a crash never
// leaves a truncated cursor behind.
func (f *FileCursorStore) SaveCursor(_ context.Context, cursor string) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp cursor file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(cursor); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cursor: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync cursor: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cursor file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace cursor file: %w", err)
	}
	return nil
}
