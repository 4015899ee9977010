package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"

	"mdcrypt/internal/mdcrypt"
)

// TestCipher is a simple, deterministic cipher for testing. The
// "ciphertext" is the password and plaintext joined with a separator
// and base64-encoded, so encrypted output differs from plaintext while
// being trivially reversible and requiring no real crypto.
type TestCipher struct{}

// NewTestCipher creates a new TestCipher.
func NewTestCipher() *TestCipher {
	return &TestCipher{}
}

var _ mdcrypt.Cipher = (*TestCipher)(nil)

const testSeparator = "\x00"

// Name identifies this cipher inside envelopes.
func (c *TestCipher) Name() string { return "test" }

func (c *TestCipher) Encrypt(password, hint string, plaintext []byte) (*mdcrypt.Envelope, error) {
	payload := password + testSeparator + string(plaintext)
	return &mdcrypt.Envelope{
		Version:    1,
		Cipher:     c.Name(),
		Hint:       hint,
		Ciphertext: base64.StdEncoding.EncodeToString([]byte(payload)),
	}, nil
}

func (c *TestCipher) Decrypt(env *mdcrypt.Envelope, password string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: bad ciphertext encoding", mdcrypt.ErrDecryptFailed)
	}

	stored, plaintext, ok := strings.Cut(string(data), testSeparator)
	if !ok || stored != password {
		return nil, mdcrypt.ErrDecryptFailed
	}
	return []byte(plaintext), nil
}
