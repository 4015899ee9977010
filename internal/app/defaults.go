package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Defaults holds the resolved application paths.
type Defaults struct {
	ConfigPath string
	BaseDir    string
	LogDir     string
}

// GetDefaults resolves the application paths. MDCRYPT_CONFIG_PATH and
// MDCRYPT_HOME override the XDG-style defaults ~/.config/mdcrypt.toml
// and ~/.local/share/mdcrypt; the log directory always lives under the
// base directory.
func GetDefaults() (Defaults, error) {
	d := Defaults{
		ConfigPath: os.Getenv("MDCRYPT_CONFIG_PATH"),
		BaseDir:    os.Getenv("MDCRYPT_HOME"),
	}

	if d.ConfigPath == "" || d.BaseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Defaults{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		if d.ConfigPath == "" {
			d.ConfigPath = filepath.Join(homeDir, ".config", "mdcrypt.toml")
		}
		if d.BaseDir == "" {
			d.BaseDir = filepath.Join(homeDir, ".local", "share", "mdcrypt")
		}
	}

	d.LogDir = filepath.Join(d.BaseDir, "log")
	return d, nil
}
