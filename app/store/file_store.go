package store

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/trs-1342/rss-hattab/app/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// FileStore keeps the whole post collection in a single JSON file. Every
// operation is a full read or full rewrite; concurrent writers race with
// last-writer-wins semantics and the store does not try to prevent that.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the file at path. The file does
// not have to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full collection. A missing or unparsable file yields an
// empty collection rather than an error, trading corruption visibility for
// availability.
func (s *FileStore) Load() []models.Post {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Post{}
	}

	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return []models.Post{}
	}
	return posts
}

// Save serializes the full collection, replacing whatever the file held.
// Write failures propagate to the caller.
func (s *FileStore) Save(posts []models.Post) error {
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
