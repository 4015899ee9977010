package cache

import (
	"strings"
	"sync"

	"mdcrypt/internal/mdcrypt"
)

// MemoryCache is the in-process session password cache. Entries live
// for the lifetime of the host process and are never persisted. At
// LevelNone the cache is inert: lookups return the empty sentinel and
// stores are dropped. Safe for concurrent use.
type MemoryCache struct {
	level   mdcrypt.CacheLevel
	entries map[string]mdcrypt.PasswordAndHint
	mu      sync.RWMutex
}

// NewMemoryCache creates a session cache at the given trust level.
func NewMemoryCache(level mdcrypt.CacheLevel) *MemoryCache {
	return &MemoryCache{
		level:   level,
		entries: make(map[string]mdcrypt.PasswordAndHint),
	}
}

var _ mdcrypt.PasswordCache = (*MemoryCache)(nil)

// Level returns the configured trust level.
func (c *MemoryCache) Level() mdcrypt.CacheLevel {
	return c.level
}

// Get returns the cached password for path, falling back to the
// nearest ancestor entry. Unrelated paths never match.
func (c *MemoryCache) Get(path string) (mdcrypt.PasswordAndHint, error) {
	if c.level == mdcrypt.LevelNone {
		return mdcrypt.PasswordAndHint{}, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if pwh, ok := c.entries[path]; ok {
		return pwh, nil
	}
	for p := parentPath(path); p != ""; p = parentPath(p) {
		if pwh, ok := c.entries[p]; ok {
			return pwh, nil
		}
	}
	if pwh, ok := c.entries[""]; ok {
		return pwh, nil
	}
	return mdcrypt.PasswordAndHint{}, nil
}

// Put remembers a password against a path.
func (c *MemoryCache) Put(path string, pwh mdcrypt.PasswordAndHint) error {
	if c.level == mdcrypt.LevelNone {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = pwh
	return nil
}

// Clear drops all cached entries.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]mdcrypt.PasswordAndHint)
}

// parentPath returns the directory prefix of a slash path, or "" when
// there is none left.
func parentPath(path string) string {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return ""
	}
	return path[:i]
}
