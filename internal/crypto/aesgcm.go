package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"mdcrypt/internal/mdcrypt"
)

// Argon2id parameters. Moderate cost: batches derive the key once per
// file, and note files are small.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	keyLen       = 32
	saltLen      = 16
)

// AESGCMCipher implements the Cipher interface with argon2id key
// derivation and AES-256-GCM. Salt and nonce are random per file and
// stored in the envelope.
type AESGCMCipher struct{}

// NewAESGCMCipher creates a new AESGCMCipher.
func NewAESGCMCipher() *AESGCMCipher {
	return &AESGCMCipher{}
}

var _ mdcrypt.Cipher = (*AESGCMCipher)(nil)

// Name identifies this cipher inside envelopes.
func (c *AESGCMCipher) Name() string { return "aes-256-gcm" }

// Encrypt produces an envelope for plaintext under the password.
func (c *AESGCMCipher) Encrypt(password, hint string, plaintext []byte) (*mdcrypt.Envelope, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	return &mdcrypt.Envelope{
		Version:    1,
		Cipher:     c.Name(),
		Hint:       hint,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Decrypt recovers the plaintext from an envelope. GCM authentication
// rejects both a wrong password and tampered ciphertext, surfaced as
// ErrDecryptFailed.
func (c *AESGCMCipher) Decrypt(env *mdcrypt.Envelope, password string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad salt encoding", mdcrypt.ErrDecryptFailed)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: bad nonce encoding", mdcrypt.ErrDecryptFailed)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: bad ciphertext encoding", mdcrypt.ErrDecryptFailed)
	}

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: bad nonce length", mdcrypt.ErrDecryptFailed)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mdcrypt.ErrDecryptFailed, err)
	}
	return plaintext, nil
}

// newGCM derives the AES key from the password and salt and wraps it
// in a GCM AEAD.
func newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, keyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return gcm, nil
}
