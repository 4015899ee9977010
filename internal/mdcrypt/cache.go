package mdcrypt

import "errors"

// ErrNoPassword signals a transform attempted with no password at all,
// typically an external password file with no entry covering the path.
// It is a per-file failure; the batch continues.
var ErrNoPassword = errors.New("no password available for this path")

// CacheLevel configures how the session password cache behaves and
// whether interactive prompting is ever allowed.
type CacheLevel string

const (
	// LevelNone disables caching entirely: lookups return the empty
	// sentinel and stores are dropped, so every batch prompts.
	LevelNone CacheLevel = "none"

	// LevelPerFile remembers the password of every successfully
	// transformed file for the lifetime of the process.
	LevelPerFile CacheLevel = "per-file"

	// LevelExternalFile delegates password management to an externally
	// managed password file. The resolver never prompts at this level.
	LevelExternalFile CacheLevel = "external-file"
)

// PasswordCache is the session-scoped password store shared across
// batches. It lives for the host process and is never persisted across
// restarts. A lookup may be satisfied by an entry for an ancestor path,
// never by an unrelated path.
type PasswordCache interface {
	// Level returns the configured trust level.
	Level() CacheLevel

	// Get returns the cached password for a file or directory path,
	// or the empty sentinel if none is known.
	Get(path string) (PasswordAndHint, error)

	// Put remembers a password against a path. Called once per
	// successfully transformed file, keyed by the file's new path.
	Put(path string, pwh PasswordAndHint) error
}
