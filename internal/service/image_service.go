package service

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "photochef/internal/errors"
)

// MaxImageSize is the upload size limit in bytes.
const MaxImageSize = 5 << 20 // 5 MiB

var (
	allowedExtensions   = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
	allowedContentTypes = map[string]bool{"image/jpeg": true, "image/png": true}
)

// ImageService validates and persists uploaded images under a per-user
// directory and resolves or deletes them later. Generated filenames are
// random, so concurrent uploads never collide without locking.
type ImageService struct {
	root string // <root>/images/<userID>/<file>
}

// NewImageService creates the store rooted at dir, creating the base
// images directory if needed.
func NewImageService(dir string) (*ImageService, error) {
	if err := os.MkdirAll(filepath.Join(dir, "images"), 0o755); err != nil {
		return nil, fmt.Errorf("create images directory: %w", err)
	}
	return &ImageService{root: dir}, nil
}

// Save validates the upload and writes it under the user's directory,
// returning a URL of the form /images/{userID}/{generatedName}.
func (s *ImageService) Save(filename, contentType string, size int64, r io.Reader, userID uint) (string, error) {
	if r == nil || size == 0 {
		return "", apperrors.ErrNoFile
	}

	// Both the extension and the declared content type must be allowed;
	// neither check alone is sufficient.
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", apperrors.ErrInvalidFileType
	}
	if !allowedContentTypes[strings.ToLower(contentType)] {
		return "", apperrors.ErrInvalidFileType
	}
	if size > MaxImageSize {
		return "", apperrors.ErrFileTooLarge
	}

	userDir := s.userDir(userID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("create user directory: %w", err)
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(userDir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return fmt.Sprintf("/images/%d/%s", userID, name), nil
}

// Delete resolves a stored image URL to its path and removes the file.
func (s *ImageService) Delete(url string) error {
	rel := filepath.FromSlash(strings.TrimPrefix(path.Clean("/"+url), "/"))
	p := filepath.Join(s.root, rel)
	if _, err := os.Stat(p); err != nil {
		return apperrors.ErrImageNotFound
	}
	return os.Remove(p)
}

// DeleteForUser removes a single file from the user's directory by name.
func (s *ImageService) DeleteForUser(userID uint, fileName string) error {
	p := filepath.Join(s.userDir(userID), filepath.Base(fileName))
	if _, err := os.Stat(p); err != nil {
		return apperrors.ErrImageNotFound
	}
	return os.Remove(p)
}

// ListForUser returns the URLs of every file stored for the user. A missing
// directory yields an empty list, not an error.
func (s *ImageService) ListForUser(userID uint) ([]string, error) {
	entries, err := os.ReadDir(s.userDir(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list user images: %w", err)
	}

	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		urls = append(urls, fmt.Sprintf("/images/%d/%s", userID, e.Name()))
	}
	return urls, nil
}

// CleanupOrphans deletes every stored file for the user not present in
// referenced and returns the deleted filenames. Running it again with no
// intervening writes deletes nothing. Best-effort only: it is not isolated
// from concurrent uploads or deletes.
func (s *ImageService) CleanupOrphans(userID uint, referenced []string) ([]string, error) {
	userDir := s.userDir(userID)
	entries, err := os.ReadDir(userDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list user images: %w", err)
	}

	prefix := fmt.Sprintf("/images/%d/", userID)
	keep := make(map[string]bool, len(referenced))
	for _, url := range referenced {
		if strings.Contains(url, prefix) {
			keep[path.Base(url)] = true
		}
	}

	deleted := []string{}
	for _, e := range entries {
		if e.IsDir() || keep[e.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(userDir, e.Name())); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return deleted, fmt.Errorf("delete orphan %s: %w", e.Name(), err)
		}
		deleted = append(deleted, e.Name())
	}
	return deleted, nil
}

// ResolvePath maps a stored image URL for the given user to its on-disk
// path, or "" when the URL is empty or the file is absent.
func (s *ImageService) ResolvePath(userID uint, url string) string {
	if url == "" {
		return ""
	}
	p := filepath.Join(s.userDir(userID), filepath.Base(path.Clean(url)))
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func (s *ImageService) userDir(userID uint) string {
	return filepath.Join(s.root, "images", fmt.Sprintf("%d", userID))
}
