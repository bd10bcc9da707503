package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Samrat25/HireX/internal/common"
)

// File keeps one file per key under a data directory. Writes go through a
// temp file and rename so a crash never leaves a half-written document.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create data directory", err)
	}
	return &File{dir: dir}, nil
}

func (s *File) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, common.NewError(common.CodeInternal, "failed to read key "+key, err)
	}
	return value, nil
}

func (s *File) Set(ctx context.Context, key string, value []byte) error {
	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return common.NewError(common.CodeInternal, "failed to write key "+key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return common.NewError(common.CodeInternal, "failed to write key "+key, err)
	}
	return nil
}

func (s *File) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return common.NewError(common.CodeInternal, "failed to delete key "+key, err)
	}
	return nil
}

func (s *File) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(s.dir, name)
}
