package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FileStore keeps preferences inside a JSON settings document. Writes go
// through sjson so sibling keys owned by other features survive.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given settings file
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read implements Store. A missing file or key reads as absent.
func (s *FileStore) Read(key string) (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	res := gjson.GetBytes(data, key)
	if !res.Exists() {
		return "", false
	}
	return res.String(), true
}

// Write implements Store, creating the file and parent directory on first use
func (s *FileStore) Write(key, value string) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		data = []byte("{}")
	}
	data, err = sjson.SetBytes(data, key, value)
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and ephemeral sessions
type MemStore struct {
	values map[string]string
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// Read implements Store
func (s *MemStore) Read(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Write implements Store
func (s *MemStore) Write(key, value string) error {
	s.values[key] = value
	return nil
}
