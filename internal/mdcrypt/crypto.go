package mdcrypt

import "errors"

// ErrDecryptFailed signals a wrong password, tampered ciphertext, or an
// envelope that could not be decoded. Callers distinguish it from other
// failures with errors.Is; it never carries partial plaintext.
var ErrDecryptFailed = errors.New("decryption failed: wrong password or corrupt data")

// ErrMalformedEnvelope signals on-disk text that does not parse as an
// envelope. The transform engine treats it the same as ErrDecryptFailed.
var ErrMalformedEnvelope = errors.New("malformed envelope")

// Envelope is the structured payload written to disk for an encrypted
// document: the ciphertext plus everything decryption needs, and the
// user's hint in the clear. Fields that a cipher does not use (age
// manages its own salt internally, for example) stay empty.
type Envelope struct {
	Version    int    `json:"version"`
	Cipher     string `json:"cipher"`
	Hint       string `json:"hint,omitempty"`
	Salt       string `json:"salt,omitempty"`
	Nonce      string `json:"nonce,omitempty"`
	Ciphertext string `json:"ciphertext"`
}

// Cipher is the symmetric encryption collaborator.
type Cipher interface {
	// Name identifies the cipher inside envelopes it produces.
	Name() string

	// Encrypt produces an envelope for plaintext under the password.
	// The hint is stored in the envelope, not mixed into the key.
	Encrypt(password, hint string, plaintext []byte) (*Envelope, error)

	// Decrypt recovers the plaintext from an envelope. A wrong
	// password or tampered ciphertext returns ErrDecryptFailed, never
	// wrong-but-plausible plaintext.
	Decrypt(env *Envelope, password string) ([]byte, error)
}

// EnvelopeCodec serializes envelopes to and from a file's on-disk text.
// Decode(Encode(e)) == e for every valid envelope; Decode returns
// ErrMalformedEnvelope for text that is not an envelope.
type EnvelopeCodec interface {
	Encode(env *Envelope) (string, error)
	Decode(text string) (*Envelope, error)
}
