package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	archiveout "mindspace/internal/modules/archive/port/out"
	apperrors "mindspace/internal/platform/errors"
)

// FileKVStore keeps each key in its own <key>.json file under dir.
type FileKVStore struct {
	dir string
}

func NewFileKVStore(dir string) *FileKVStore {
	return &FileKVStore{dir: dir}
}

var _ archiveout.KVStore = (*FileKVStore)(nil)

func (s *FileKVStore) Dir() string { return s.dir }

func (s *FileKVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return payload, true, nil
}

// Set replaces the file through a rename so readers never see a partial value.
func (s *FileKVStore) Set(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", key, err)
	}
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp for %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func (s *FileKVStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("bad key %q: %w", key, apperrors.ErrInvalidInput)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
