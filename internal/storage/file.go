package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dkovalev/todovault/internal/filex"
)

// FileStorage keeps the whole key-value map as a single JSON object on disk.
// Every operation reads the file fresh and every write rewrites it
// wholesale, so two processes sharing the file are last-writer-wins with no
// merge. A malformed file is treated as empty rather than an error; the next
// write replaces it.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) (*FileStorage, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}
	return &FileStorage{path: path}, nil
}

func (s *FileStorage) load() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return map[string]string{}
	}
	return m
}

func (s *FileStorage) save(m map[string]string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}

func (s *FileStorage) Get(ctx context.Context, key string) (string, error) {
	v, ok := s.load()[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *FileStorage) Set(ctx context.Context, key string, value string) error {
	m := s.load()
	m[key] = value
	return s.save(m)
}

func (s *FileStorage) Remove(ctx context.Context, key string) error {
	m := s.load()
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return s.save(m)
}
