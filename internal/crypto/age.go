package crypto

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"filippo.io/age"

	"mdcrypt/internal/mdcrypt"
)

// AgeCipher implements the Cipher interface using filippo.io/age's
// scrypt-based passphrase encryption. age manages its own salt and
// nonce inside the ciphertext framing, so the envelope carries only
// the hint and the base64 ciphertext.
type AgeCipher struct{}

// NewAgeCipher creates a new AgeCipher.
func NewAgeCipher() *AgeCipher {
	return &AgeCipher{}
}

var _ mdcrypt.Cipher = (*AgeCipher)(nil)

// Name identifies this cipher inside envelopes.
func (c *AgeCipher) Name() string { return "age-scrypt" }

// Encrypt produces an envelope for plaintext under the password.
func (c *AgeCipher) Encrypt(password, hint string, plaintext []byte) (*mdcrypt.Envelope, error) {
	recipient, err := age.NewScryptRecipient(password)
	if err != nil {
		return nil, fmt.Errorf("creating scrypt recipient: %w", err)
	}

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return nil, fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("encrypting data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}

	return &mdcrypt.Envelope{
		Version:    1,
		Cipher:     c.Name(),
		Hint:       hint,
		Ciphertext: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// Decrypt recovers the plaintext from an envelope. A wrong password
// surfaces as ErrDecryptFailed.
func (c *AgeCipher) Decrypt(env *mdcrypt.Envelope, password string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: bad ciphertext encoding", mdcrypt.ErrDecryptFailed)
	}

	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return nil, fmt.Errorf("creating scrypt identity: %w", err)
	}

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identity)
	if err != nil {
		// age reports both wrong passphrase and tampered framing here.
		return nil, fmt.Errorf("%w: %v", mdcrypt.ErrDecryptFailed, err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mdcrypt.ErrDecryptFailed, err)
	}
	return plaintext, nil
}
