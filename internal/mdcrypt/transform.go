package mdcrypt

import (
	"errors"
	"fmt"
)

// Engine performs the per-file transform: read, encrypt or decrypt,
// rename, write, and remember the password against the new path.
type Engine struct {
	storage     Storage
	cipher      Cipher
	codec       EnvelopeCodec
	policy      *ExtensionPolicy
	coordinator *Coordinator
	cache       PasswordCache
	logger      Logger
}

// NewEngine creates an Engine with the provided dependencies.
func NewEngine(storage Storage, cipher Cipher, codec EnvelopeCodec, policy *ExtensionPolicy, coordinator *Coordinator, cache PasswordCache, logger Logger) *Engine {
	return &Engine{
		storage:     storage,
		cipher:      cipher,
		codec:       codec,
		policy:      policy,
		coordinator: coordinator,
		cache:       cache,
		logger:      logger,
	}
}

// TransformOne transforms a single file in the given direction and
// returns the file's new path.
//
// Rename and content write are two separate storage operations with no
// transaction around them. They run back-to-back with nothing observable
// in between under the single-writer model, but if the rename succeeds
// and the write fails the file is left renamed with stale content. That
// failure propagates to the caller; there is no rollback.
//
// Open views on the file are detached before storage is mutated, and
// whenever a detach occurred the file is reopened at its new path on
// every exit path, success or failure.
func (e *Engine) TransformOne(file *FileNode, pwh PasswordAndHint, intent Intent) (newPath string, err error) {
	// An empty password is never a valid key. The external-file cache
	// level reaches here on a lookup miss; the file fails instead of
	// being encrypted under "".
	if pwh.IsEmpty() {
		return "", fmt.Errorf("transforming %s: %w", file.Path, ErrNoPassword)
	}

	content, err := e.storage.Read(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file.Path, err)
	}

	var newText string
	var newExt string
	if intent == Encrypting {
		newText, err = e.encryptText(content, pwh)
		newExt = e.policy.DefaultEncrypted
	} else {
		newText, err = e.decryptText(content, pwh)
		newExt = e.policy.Plaintext
	}
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", intent, file.Path, err)
	}

	target := e.policy.RenamedPath(file, newExt)

	// Detach before any storage mutation so a stale view never reads
	// half-applied state. Reopen runs on every exit path once a detach
	// happened, even when the transform itself fails.
	detached, err := e.coordinator.DetachIfOpen(file)
	if detached {
		defer func() {
			if rerr := e.coordinator.ReopenAfterDetach(target); rerr != nil {
				e.logger.Error("reopen after detach failed", "path", target, "error", rerr)
				if err == nil {
					err = rerr
				}
			}
		}()
	}
	if err != nil {
		return "", err
	}

	if err := e.storage.Rename(file, target); err != nil {
		return "", fmt.Errorf("renaming %s: %w", file.Path, err)
	}
	renamed := &FileNode{Path: target}
	if err := e.storage.Modify(renamed, newText); err != nil {
		// The file is now renamed with stale content. Surfaced, not
		// rolled back.
		return "", fmt.Errorf("writing %s after rename: %w", target, err)
	}

	if cerr := e.cache.Put(target, pwh); cerr != nil {
		e.logger.Warn("caching password failed", "path", target, "error", cerr)
	}

	e.logger.Info("file transformed", "from", file.Path, "to", target, "intent", intent.String())
	return target, nil
}

// encryptText produces the serialized envelope for plaintext content.
func (e *Engine) encryptText(content string, pwh PasswordAndHint) (string, error) {
	env, err := e.cipher.Encrypt(pwh.Password, pwh.Hint, []byte(content))
	if err != nil {
		return "", fmt.Errorf("encrypting content: %w", err)
	}
	text, err := e.codec.Encode(env)
	if err != nil {
		return "", fmt.Errorf("encoding envelope: %w", err)
	}
	return text, nil
}

// decryptText recovers plaintext from serialized envelope text. A
// malformed envelope is reported as a decrypt failure: both mean the
// file cannot be decrypted as-is.
func (e *Engine) decryptText(content string, pwh PasswordAndHint) (string, error) {
	env, err := e.codec.Decode(content)
	if err != nil {
		if errors.Is(err, ErrMalformedEnvelope) {
			return "", fmt.Errorf("%w: %w", ErrDecryptFailed, err)
		}
		return "", fmt.Errorf("decoding envelope: %w", err)
	}

	plaintext, err := e.cipher.Decrypt(env, pwh.Password)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
