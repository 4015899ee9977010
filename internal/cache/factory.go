package cache

import (
	"fmt"

	"mdcrypt/internal/config"
	"mdcrypt/internal/mdcrypt"
)

// NewCacheFromConfig creates a PasswordCache based on the cache config level.
func NewCacheFromConfig(cfg config.CacheConfig) (mdcrypt.PasswordCache, error) {
	switch mdcrypt.CacheLevel(cfg.Level) {
	case mdcrypt.LevelPerFile, "":
		return NewMemoryCache(mdcrypt.LevelPerFile), nil
	case mdcrypt.LevelNone:
		return NewMemoryCache(mdcrypt.LevelNone), nil
	case mdcrypt.LevelExternalFile:
		if cfg.PasswordFile == "" {
			return nil, fmt.Errorf("external-file cache requires password_file to be set")
		}
		return NewExternalFileCache(cfg.PasswordFile)
	default:
		return nil, fmt.Errorf("unknown cache level: %q", cfg.Level)
	}
}
