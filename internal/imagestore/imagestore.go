// Package imagestore keeps uploaded product images in a local directory and
// hands out the relative URLs stored on product rows.
package imagestore

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// URLPrefix is the path uploaded images are served under.
const URLPrefix = "/uploads/"

var ErrFileTooLarge = errors.New("file exceeds the maximum upload size")
var ErrInvalidFileType = errors.New("invalid file type, only JPG and PNG are allowed")

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

type Store struct {
	dir      string
	maxBytes int64
}

func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Save validates size and sniffed content type, writes the file under a
// timestamp-prefixed name and returns its relative URL.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if !allowedTypes[http.DetectContentType(head[:n])] {
		return "", ErrInvalidFileType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(header.Filename))
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, s.maxBytes)); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return URLPrefix + name, nil
}

// Remove deletes the file behind a previously returned URL. Unknown or
// already-removed URLs are not an error, so superseded cleanup stays
// idempotent.
func (s *Store) Remove(imageURL string) error {
	name, ok := strings.CutPrefix(imageURL, URLPrefix)
	if !ok || name == "" {
		return nil
	}
	// The stored URL always points to a flat filename inside the directory.
	if name != filepath.Base(name) {
		return fmt.Errorf("refusing to remove %q: not a stored image URL", imageURL)
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "image"
	}
	return name
}
