// Package files implements the storage boundary for submitted documents:
// store under a subject-scoped directory, best-effort delete, and path
// derivation for records that only carry subject and file name.
package files

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that the stored content is already gone. Deleting a
// record stays possible; callers only report the missing content.
var ErrNotFound = errors.New("files: stored content not found")

// Storage stores and deletes submitted document content.
type Storage interface {
	Store(subject, fileName string, r io.Reader) (location string, err error)
	Delete(location string) error
	PathFor(subject, fileName string) string
}

// DiskStorage keeps submissions under baseDir/<subject>/<file name>.
type DiskStorage struct {
	baseDir string
}

// NewDiskStorage builds a DiskStorage rooted at baseDir.
func NewDiskStorage(baseDir string) *DiskStorage {
	if baseDir == "" {
		baseDir = "submissions"
	}
	return &DiskStorage{baseDir: baseDir}
}

// PathFor derives the on-disk location for a subject-scoped file name.
func (d *DiskStorage) PathFor(subject, fileName string) string {
	return filepath.Join(d.baseDir, sanitize(subject), sanitize(fileName))
}

// Store writes the document content and returns its location.
func (d *DiskStorage) Store(subject, fileName string, r io.Reader) (string, error) {
	path := d.PathFor(subject, fileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Delete removes stored content. Missing content maps to ErrNotFound.
func (d *DiskStorage) Delete(location string) error {
	if location == "" {
		return ErrNotFound
	}
	if err := os.Remove(location); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// sanitize keeps names usable as single path elements.
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "unnamed"
	}
	return name
}
