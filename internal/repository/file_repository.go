package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type fileSnapshotRepository struct {
	dir string
}

// NewFileRepository stores each snapshot as <dir>/<name>.json.
func NewFileRepository(dir string) (Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}

	snapshots := NewFileSnapshotRepository(dir)

	return &repositoryImpl{
		ping: func(_ context.Context) error {
			info, err := os.Stat(dir)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}
			return nil
		},
		snapshot: snapshots,
	}, nil
}

func NewFileSnapshotRepository(dir string) SnapshotRepository {
	return &fileSnapshotRepository{dir: dir}
}

// Path returns the file backing a snapshot.
func (r *fileSnapshotRepository) Path(name string) string {
	return filepath.Join(r.dir, name+".json")
}

// Save writes to a temp file in the same directory and renames it over the
// target so concurrent readers see either the old or the new document.
func (r *fileSnapshotRepository) Save(name string, data []byte) error {
	tmp, err := os.CreateTemp(r.dir, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to chmod snapshot: %w", err)
	}
	if err := os.Rename(tmpName, r.Path(name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

func (r *fileSnapshotRepository) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(r.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}
