package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/learnhub/internal/config"
)

// FileAdapter keeps the payload in a single file. Writes go to a temp file
// in the same directory and are renamed into place, so a crash mid-write
// leaves the previous payload intact.
type FileAdapter struct {
	path string
}

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

func (a *FileAdapter) Load(context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading progress file: %w", err)
	}
	return data, true, nil
}

func (a *FileAdapter) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(a.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating progress directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(a.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp progress file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing progress file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing progress file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing progress file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting progress file mode: %w", err)
	}
	if err := os.Rename(tmpName, a.path); err != nil {
		return fmt.Errorf("replacing progress file: %w", err)
	}
	return nil
}

func (a *FileAdapter) Describe(context.Context) (Info, error) {
	info := Info{Backend: config.BackendFile, Location: a.path}
	st, err := os.Stat(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return info, nil
		}
		return info, fmt.Errorf("stat progress file: %w", err)
	}
	info.Found = true
	info.SizeBytes = int(st.Size())
	info.UpdatedAt = st.ModTime().UTC()
	return info, nil
}

func (a *FileAdapter) Close() error { return nil }
