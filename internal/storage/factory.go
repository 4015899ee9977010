package storage

import (
	"fmt"

	"mdcrypt/internal/config"
	"mdcrypt/internal/mdcrypt"
)

// NewStorageFromConfig creates a Storage implementation based on the storage config type.
func NewStorageFromConfig(cfg config.StorageConfig, vaultRoot string) (mdcrypt.Storage, error) {
	switch cfg.Type {
	case "", "filesystem":
		if vaultRoot == "" {
			return nil, fmt.Errorf("filesystem storage requires vault_root to be set")
		}
		return NewFileSystemStorage(vaultRoot)
	case "memory":
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
