package testutil

import (
	"fmt"

	"mdcrypt/internal/mdcrypt"
)

// FaultyStorage wraps a Storage and injects failures for specific
// paths, for exercising per-file error handling without a broken
// backend.
type FaultyStorage struct {
	mdcrypt.Storage

	// FailModify and FailRename name paths whose Modify/Rename call
	// should fail. Modify failures match the file's (new) path at
	// write time; Rename failures match the source path.
	FailModify map[string]bool
	FailRename map[string]bool
	FailRead   map[string]bool
}

// NewFaultyStorage wraps the given storage with no faults configured.
func NewFaultyStorage(inner mdcrypt.Storage) *FaultyStorage {
	return &FaultyStorage{
		Storage:    inner,
		FailModify: make(map[string]bool),
		FailRename: make(map[string]bool),
		FailRead:   make(map[string]bool),
	}
}

func (s *FaultyStorage) Read(file *mdcrypt.FileNode) (string, error) {
	if s.FailRead[file.Path] {
		return "", fmt.Errorf("injected read fault: %s", file.Path)
	}
	return s.Storage.Read(file)
}

func (s *FaultyStorage) Modify(file *mdcrypt.FileNode, content string) error {
	if s.FailModify[file.Path] {
		return fmt.Errorf("injected write fault: %s", file.Path)
	}
	return s.Storage.Modify(file, content)
}

func (s *FaultyStorage) Rename(file *mdcrypt.FileNode, newPath string) error {
	if s.FailRename[file.Path] {
		return fmt.Errorf("injected rename fault: %s", file.Path)
	}
	return s.Storage.Rename(file, newPath)
}
