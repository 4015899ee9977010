package cache

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"mdcrypt/internal/mdcrypt"
)

// passwordFile is the on-disk format of the external password file.
type passwordFile struct {
	Entries []passwordEntry `toml:"entries"`
}

type passwordEntry struct {
	Path     string `toml:"path"`
	Password string `toml:"password"`
	Hint     string `toml:"hint,omitempty"`
}

// ExternalFileCache serves passwords from an externally managed TOML
// file. The resolver never falls back to a prompt at this level, and
// Put is a no-op: the file is owned by the user, not by mdcrypt.
type ExternalFileCache struct {
	entries map[string]mdcrypt.PasswordAndHint
}

// NewExternalFileCache loads the password file at path.
func NewExternalFileCache(path string) (*ExternalFileCache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading password file: %w", err)
	}

	var pf passwordFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing password file %s: %w", path, err)
	}

	entries := make(map[string]mdcrypt.PasswordAndHint, len(pf.Entries))
	for _, e := range pf.Entries {
		entries[strings.Trim(e.Path, "/")] = mdcrypt.PasswordAndHint{
			Password: e.Password,
			Hint:     e.Hint,
		}
	}
	return &ExternalFileCache{entries: entries}, nil
}

var _ mdcrypt.PasswordCache = (*ExternalFileCache)(nil)

// Level returns LevelExternalFile.
func (c *ExternalFileCache) Level() mdcrypt.CacheLevel {
	return mdcrypt.LevelExternalFile
}

// Get returns the entry for path or its nearest ancestor, or the empty
// sentinel when the file has no matching entry.
func (c *ExternalFileCache) Get(path string) (mdcrypt.PasswordAndHint, error) {
	path = strings.Trim(path, "/")
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

// Put is a no-op: the password file is externally managed.
func (c *ExternalFileCache) Put(string, mdcrypt.PasswordAndHint) error {
	return nil
}
