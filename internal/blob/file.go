package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FileStore writes objects under Dir. The server exposes Dir at /images/
// so the URLs it returns stay fetchable in development.
type FileStore struct {
	Dir     string
	BaseURL string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(dir, baseURL string) *FileStore {
	return &FileStore{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *FileStore) Put(_ context.Context, key string, data []byte, _ string) error {
	path := filepath.Join(s.Dir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *FileStore) URL(key string) string {
	return s.BaseURL + "/images/" + key
}
