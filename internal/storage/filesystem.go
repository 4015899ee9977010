package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mdcrypt/internal/mdcrypt"
)

// FileSystemStorage implements the Storage interface against a real
// directory tree. File paths are vault-relative and slash-separated;
// conversion to platform paths happens at this boundary only.
type FileSystemStorage struct {
	root string
}

// NewFileSystemStorage creates storage rooted at the given directory.
// The directory must already exist.
func NewFileSystemStorage(root string) (*FileSystemStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving vault root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault root not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault root is not a directory: %s", abs)
	}

	return &FileSystemStorage{root: abs}, nil
}

var _ mdcrypt.Storage = (*FileSystemStorage)(nil)

// Root returns the absolute vault root directory.
func (s *FileSystemStorage) Root() string {
	return s.root
}

// ListFiles walks the vault and enumerates every regular file as a
// vault-relative, slash-separated path. Walk order is lexical.
func (s *FileSystemStorage) ListFiles() ([]*mdcrypt.FileNode, error) {
	var files []*mdcrypt.FileNode

	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", p, err)
		}
		files = append(files, &mdcrypt.FileNode{Path: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking vault: %w", err)
	}
	return files, nil
}

// Read returns the full content of a file as text.
func (s *FileSystemStorage) Read(file *mdcrypt.FileNode) (string, error) {
	data, err := os.ReadFile(s.abs(file.Path))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file.Path, err)
	}
	return string(data), nil
}

// Modify overwrites the content of an existing file.
func (s *FileSystemStorage) Modify(file *mdcrypt.FileNode, content string) error {
	p := s.abs(file.Path)
	if _, err := os.Stat(p); err != nil {
		return fmt.Errorf("stat %s: %w", file.Path, err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", file.Path, err)
	}
	return nil
}

// Rename moves a file to a new vault-relative path. Refuses to
// overwrite an existing destination.
func (s *FileSystemStorage) Rename(file *mdcrypt.FileNode, newPath string) error {
	dest := s.abs(newPath)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("destination already exists: %s", newPath)
	}
	if err := os.Rename(s.abs(file.Path), dest); err != nil {
		return fmt.Errorf("renaming %s to %s: %w", file.Path, newPath, err)
	}
	return nil
}

// abs converts a vault-relative slash path to a platform path under
// the root.
func (s *FileSystemStorage) abs(relPath string) string {
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(relPath, "/")))
}
