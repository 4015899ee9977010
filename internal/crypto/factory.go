package crypto

import (
	"fmt"

	"mdcrypt/internal/config"
	"mdcrypt/internal/mdcrypt"
)

// NewCipherFromConfig creates a Cipher based on the configuration type.
func NewCipherFromConfig(cfg config.CipherConfig) (mdcrypt.Cipher, error) {
	switch cfg.Type {
	case "age", "":
		return NewAgeCipher(), nil
	case "aesgcm":
		return NewAESGCMCipher(), nil
	case "test":
		return NewTestCipher(), nil
	default:
		return nil, fmt.Errorf("unknown cipher type: %q", cfg.Type)
	}
}
