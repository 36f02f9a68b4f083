package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Object describes a stored blob: the provider-assigned identifier needed for
// deletion and the public location recorded on the owning record.
type Object struct {
	PublicID string
	Location string
}

// BlobStore is the upload gateway shared by every module that carries a PDF
// or image.
type BlobStore interface {
	Upload(folder string, data []byte, ext string) (*Object, error)
	Open(publicID string) (*os.File, error)
	Destroy(publicID string) error
}

// LocalBlobStore persists blobs on disk under a base directory and exposes
// them through the signed download endpoint.
type LocalBlobStore struct {
	baseDir string
	baseURL string
}

// NewLocalBlobStore ensures the base directory exists and returns a handle.
// baseURL is the API prefix the download route is mounted under.
func NewLocalBlobStore(baseDir, baseURL string) (*LocalBlobStore, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &LocalBlobStore{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload writes the buffer under the given logical folder and returns the
// stored object's identifier and location.
func (s *LocalBlobStore) Upload(folder string, data []byte, ext string) (*Object, error) {
	if folder == "" {
		folder = "misc"
	}
	name, err := randomName()
	if err != nil {
		return nil, fmt.Errorf("generate blob name: %w", err)
	}
	publicID := path.Join(folder, name+ext)

	full := s.resolve(publicID)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("prepare blob directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return nil, fmt.Errorf("write blob: %w", err)
	}

	return &Object{
		PublicID: publicID,
		Location: fmt.Sprintf("%s/files/%s", s.baseURL, publicID),
	}, nil
}

// Open returns a read-only handle for the stored blob.
func (s *LocalBlobStore) Open(publicID string) (*os.File, error) {
	file, err := os.Open(s.resolve(publicID))
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return file, nil
}

// Destroy removes a stored blob if present.
func (s *LocalBlobStore) Destroy(publicID string) error {
	if err := os.Remove(s.resolve(publicID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

func (s *LocalBlobStore) resolve(publicID string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(path.Clean("/"+publicID)))
}

// PublicIDFromLocation derives a blob identifier from a stored location URL
// by taking the last two path segments.
func PublicIDFromLocation(location string) string {
	trimmed := strings.TrimRight(location, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return trimmed
	}
	return path.Join(parts[len(parts)-2], parts[len(parts)-1])
}

func randomName() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
