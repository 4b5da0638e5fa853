package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStore is the external binary-object store the pipeline depends on.
// Locators are opaque handles; callers must not parse them.
type BlobStore interface {
	Put(ctx context.Context, data []byte, ownerID uint) (string, error)
	Get(ctx context.Context, locator string) ([]byte, error)
	Delete(ctx context.Context, locator string) error
	EnsureRoot() error
}

// diskBlobStore keeps blobs under uploadPath/users/<ownerID>/<uuid>. Objects
// are stored without an extension, so retrieval has to rely on content
// sniffing to recover the format.
type diskBlobStore struct {
	uploadPath string
}

func NewDiskBlobStore(uploadPath string) BlobStore {
	return &diskBlobStore{
		uploadPath: uploadPath,
	}
}

func (s *diskBlobStore) EnsureRoot() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *diskBlobStore) Put(ctx context.Context, data []byte, ownerID uint) (string, error) {
	locator := filepath.Join("users", fmt.Sprintf("%d", ownerID), uuid.New().String())

	fullPath := filepath.Join(s.uploadPath, locator)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create owner directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return locator, nil
}

func (s *diskBlobStore) Get(ctx context.Context, locator string) ([]byte, error) {
	fullPath, err := s.resolve(locator)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

func (s *diskBlobStore) Delete(ctx context.Context, locator string) error {
	fullPath, err := s.resolve(locator)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// resolve rejects locators that would escape the upload root.
func (s *diskBlobStore) resolve(locator string) (string, error) {
	cleaned := filepath.Clean(locator)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid blob locator: %s", locator)
	}

	return filepath.Join(s.uploadPath, cleaned), nil
}
