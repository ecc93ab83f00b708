package pb

import (
	"errors"
	"fmt"

	"darkpool/enc"
)

// FromEnvelope copies an envelope into its wire form.
func FromEnvelope(env *enc.Envelope) *Envelope {
	return &Envelope{
		Sender:     append([]byte(nil), env.Sender[:]...),
		Nonce:      append([]byte(nil), env.Nonce[:]...),
		Ciphertext: env.Ciphertext,
	}
}

// ToEnvelope validates and converts a wire envelope.
func ToEnvelope(m *Envelope) (enc.Envelope, error) {
	var env enc.Envelope
	switch {
	case m == nil:
		return env, errors.New("missing envelope")
	case len(m.Sender) != enc.KeySize:
		return env, fmt.Errorf("envelope sender is %d bytes, want %d", len(m.Sender), enc.KeySize)
	case len(m.Nonce) != enc.NonceSize:
		return env, fmt.Errorf("envelope nonce is %d bytes, want %d", len(m.Nonce), enc.NonceSize)
	case len(m.Ciphertext) < enc.TagSize:
		return env, fmt.Errorf("envelope ciphertext is %d bytes, want at least %d", len(m.Ciphertext), enc.TagSize)
	}
	copy(env.Sender[:], m.Sender)
	copy(env.Nonce[:], m.Nonce)
	env.Ciphertext = append([]byte(nil), m.Ciphertext...)
	return env, nil
}

// ToPublicKey validates and converts a raw x25519 public key.
func ToPublicKey(b []byte) (enc.PublicKey, error) {
	var pk enc.PublicKey
	if len(b) != enc.KeySize {
		return pk, fmt.Errorf("public key is %d bytes, want %d", len(b), enc.KeySize)
	}
	copy(pk[:], b)
	return pk, nil
}
