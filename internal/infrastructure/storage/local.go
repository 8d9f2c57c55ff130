package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/danielmek/hotelhub/internal/domain/contract"
)

// LocalStorage stores uploaded files on the local filesystem and serves them
// under a static URL prefix.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage creates the upload directory if needed.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir, baseURL: baseURL}, nil
}

var _ contract.IFileStorage = (*LocalStorage)(nil)

// Save writes the content to disk and returns its public URL.
func (s *LocalStorage) Save(fileName string, content io.Reader) (string, error) {
	// Strip any path components from the client-supplied name.
	fileName = filepath.Base(fileName)
	dst, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", fileName, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", fileName, err)
	}
	return s.baseURL + "/" + fileName, nil
}
