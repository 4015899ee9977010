package crypto

import (
	"encoding/json"
	"fmt"
	"strings"

	"mdcrypt/internal/mdcrypt"
)

// JSONCodec serializes envelopes as a single JSON document, the on-disk
// text of an encrypted file.
type JSONCodec struct{}

// NewJSONCodec creates a JSONCodec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

var _ mdcrypt.EnvelopeCodec = (*JSONCodec)(nil)

// Encode serializes an envelope to its on-disk text.
func (c *JSONCodec) Encode(env *mdcrypt.Envelope) (string, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding envelope: %w", err)
	}
	return string(data) + "\n", nil
}

// Decode parses on-disk text back into an envelope. Text that is not a
// JSON envelope, or that lacks ciphertext, returns ErrMalformedEnvelope.
func (c *JSONCodec) Decode(text string) (*mdcrypt.Envelope, error) {
	var env mdcrypt.Envelope
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", mdcrypt.ErrMalformedEnvelope, err)
	}
	if env.Ciphertext == "" {
		return nil, fmt.Errorf("%w: missing ciphertext", mdcrypt.ErrMalformedEnvelope)
	}
	return &env, nil
}
