package prefstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// File keeps one file per key under a state directory. Writes go through a
// temp file and rename so a crash never leaves a half-written payload.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &File{dir: dir}, nil
}

func (s *File) Read(_ context.Context, key string) ([]byte, bool) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (s *File) Write(_ context.Context, key string, raw []byte) error {
	p := s.path(key)
	tmp, err := os.CreateTemp(s.dir, ".write-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), p)
}

func (s *File) Remove(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

var fileKeySanitizer = strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")

func (s *File) path(key string) string {
	return filepath.Join(s.dir, fileKeySanitizer.Replace(key)+".json")
}
