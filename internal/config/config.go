package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for mdcrypt.
type Config struct {
	VaultRoot  string           `toml:"vault_root"`
	LogDir     string           `toml:"log_dir"`
	Extensions ExtensionsConfig `toml:"extensions"`
	Cipher     CipherConfig     `toml:"cipher"`
	Cache      CacheConfig      `toml:"cache"`
	Storage    StorageConfig    `toml:"storage"`
}

// ExtensionsConfig holds the file extension policy.
type ExtensionsConfig struct {
	Plaintext        string   `toml:"plaintext"`         // defaults to "md"
	Encrypted        []string `toml:"encrypted"`         // defaults to ["mdenc", "encrypted"]
	DefaultEncrypted string   `toml:"default_encrypted"` // defaults to "mdenc"
}

// CipherConfig selects the encryption backend.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type CipherConfig struct {
	Type string `toml:"type"` // "age" (default), "aesgcm", or "test"
}

// CacheConfig configures the session password cache.
// This uses a tagged union pattern - the Level field determines which other fields are relevant.
type CacheConfig struct {
	Level        string `toml:"level"`                   // "none", "per-file" (default), or "external-file"
	PasswordFile string `toml:"password_file,omitempty"` // only used for level=external-file
}

// StorageConfig selects the vault storage backend.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type StorageConfig struct {
	Type string `toml:"type"` // "filesystem" (default) or "memory"
}

// NewConfig creates a new Config with the provided vault root and
// default extension, cipher, and cache settings.
func NewConfig(vaultRoot, baseDir string) *Config {
	return &Config{
		VaultRoot: vaultRoot,
		LogDir:    filepath.Join(baseDir, "log"),
		Extensions: ExtensionsConfig{
			Plaintext:        "md",
			Encrypted:        []string{"mdenc", "encrypted"},
			DefaultEncrypted: "mdenc",
		},
		Cipher:  CipherConfig{Type: "age"},
		Cache:   CacheConfig{Level: "per-file"},
		Storage: StorageConfig{Type: "filesystem"},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
// This is an internal helper and should not be exported.
func writeToFile(path string, cfg *Config) error {
	// Ensure the directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
