package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Store loads the active profile record. Implementations are read-only;
// the engine never writes back through a Store.
type Store interface {
	// Load returns the profile record, called once per session.
	Load(ctx context.Context) (*Record, error)
}

// FileStore loads the profile from a JSON document on disk.
type FileStore struct {
	// Path is the location of the profile JSON file.
	Path string
}

// NewFileStore creates a FileStore for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads and decodes the profile document.
func (s *FileStore) Load(ctx context.Context) (*Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("profile: load %s: %w", s.Path, err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("profile: decode %s: %w", s.Path, err)
	}

	return &record, nil
}

// StaticStore wraps an in-memory record, useful for tests and for
// callers that assemble the profile themselves.
type StaticStore struct {
	Record *Record
}

// Load returns the wrapped record.
func (s *StaticStore) Load(ctx context.Context) (*Record, error) {
	if s.Record == nil {
		return nil, fmt.Errorf("profile: static store holds no record")
	}
	return s.Record, nil
}
