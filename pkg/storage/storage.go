package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"meroprofile/pkg/config"
	"meroprofile/pkg/validate"
)

// Store is a disk-backed object store for uploaded images. Objects live under
// <Dir>/<Bucket>/<prefix>/<name> and are addressed by their bucket-relative
// path both for public URLs and deletion.
type Store struct {
	cfg config.StorageConfig
}

// UploadResult describes a stored object
type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// NewStore creates the store and its bucket directory
func NewStore(cfg *config.StorageConfig) (*Store, error) {
	s := &Store{cfg: *cfg}
	if err := os.MkdirAll(s.Root(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage bucket directory: %w", err)
	}
	return s, nil
}

// Root returns the bucket directory on disk
func (s *Store) Root() string {
	return filepath.Join(s.cfg.Dir, s.cfg.Bucket)
}

// Upload validates and stores one image under prefix, returning its public
// URL. The stored name is collision-resistant: unix-millis timestamp plus a
// random suffix, preserving the original extension.
func (s *Store) Upload(origName, contentType string, size int64, r io.Reader, prefix string) (*UploadResult, error) {
	if err := validate.ImageWith(contentType, size, s.cfg.AllowedTypes, s.cfg.MaxFileSize); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(origName))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	objPath := name
	if prefix != "" {
		cleaned, err := cleanRelative(prefix)
		if err != nil {
			return nil, err
		}
		objPath = path.Join(cleaned, name)
	}

	full := filepath.Join(s.Root(), filepath.FromSlash(objPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage object: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, s.cfg.MaxFileSize+1))
	if err != nil {
		os.Remove(full)
		return nil, fmt.Errorf("failed to write storage object: %w", err)
	}
	if written > s.cfg.MaxFileSize {
		os.Remove(full)
		return nil, fmt.Errorf("file size %d exceeds %d byte limit", written, s.cfg.MaxFileSize)
	}

	return &UploadResult{
		URL:  strings.TrimRight(s.cfg.BaseURL, "/") + "/" + objPath,
		Path: objPath,
	}, nil
}

// Delete removes a previously stored object by its bucket-relative path.
// Best-effort: callers report failures, they do not retry.
func (s *Store) Delete(objPath string) error {
	cleaned, err := cleanRelative(objPath)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.Root(), filepath.FromSlash(cleaned))); err != nil {
		return fmt.Errorf("failed to delete storage object: %w", err)
	}
	return nil
}

// cleanRelative rejects paths that would escape the bucket
func cleanRelative(p string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("invalid storage path %q", p)
	}
	return cleaned, nil
}
