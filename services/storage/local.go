package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalStorage implements StorageService on the local file system, serving
// files under the /images public prefix.
type LocalStorage struct {
	basePath string
	now      func() time.Time
}

// NewLocalStorage creates a LocalStorage instance rooted at basePath,
// creating the directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, now: time.Now}, nil
}

// SaveImage writes the content under a collision-avoiding name built from
// the upload timestamp and the original file name. Any directory components
// in the original name are stripped.
func (s *LocalStorage) SaveImage(ctx context.Context, originalName string, content io.Reader) (string, error) {
	storedName := fmt.Sprintf("%d-%s", s.now().UnixMilli(), filepath.Base(originalName))
	fullPath := filepath.Join(s.basePath, storedName)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("failed to write file content: %w", err)
	}

	return "/images/" + storedName, nil
}

// ImagePath resolves a stored name back to its on-disk path.
func (s *LocalStorage) ImagePath(name string) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.Base(name))
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	return fullPath, nil
}
