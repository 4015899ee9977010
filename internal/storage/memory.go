package storage

import (
	"fmt"
	"sync"

	"mdcrypt/internal/mdcrypt"
)

// MemoryStorage is an in-memory implementation of the Storage
// interface. It keeps files in insertion order, making listing order
// deterministic for tests. Safe for concurrent use.
type MemoryStorage struct {
	order   []string
	content map[string]string
	mu      sync.RWMutex
}

// NewMemoryStorage creates an empty in-memory vault.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		content: make(map[string]string),
	}
}

var _ mdcrypt.Storage = (*MemoryStorage)(nil)

// AddFile creates a file with the given content. Overwriting an
// existing path keeps its position in the listing order.
func (m *MemoryStorage) AddFile(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.content[path]; !ok {
		m.order = append(m.order, path)
	}
	m.content[path] = content
}

// ListFiles enumerates every file in insertion order.
func (m *MemoryStorage) ListFiles() ([]*mdcrypt.FileNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]*mdcrypt.FileNode, 0, len(m.order))
	for _, p := range m.order {
		files = append(files, &mdcrypt.FileNode{Path: p})
	}
	return files, nil
}

// Read returns the content of a file.
func (m *MemoryStorage) Read(file *mdcrypt.FileNode) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.content[file.Path]
	if !ok {
		return "", fmt.Errorf("file not found: %s", file.Path)
	}
	return content, nil
}

// Modify overwrites the content of an existing file.
func (m *MemoryStorage) Modify(file *mdcrypt.FileNode, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.content[file.Path]; !ok {
		return fmt.Errorf("file not found: %s", file.Path)
	}
	m.content[file.Path] = content
	return nil
}

// Rename moves a file to a new path, preserving its listing position.
func (m *MemoryStorage) Rename(file *mdcrypt.FileNode, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	content, ok := m.content[file.Path]
	if !ok {
		return fmt.Errorf("file not found: %s", file.Path)
	}
	if _, exists := m.content[newPath]; exists {
		return fmt.Errorf("destination already exists: %s", newPath)
	}

	for i, p := range m.order {
		if p == file.Path {
			m.order[i] = newPath
			break
		}
	}
	delete(m.content, file.Path)
	m.content[newPath] = content
	return nil
}
