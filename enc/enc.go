package enc

import (
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the size of every key in this package: x25519 points and
	// scalars, and the derived symmetric keys.
	KeySize = 32
	// NonceSize is the XChaCha20-Poly1305 nonce size.
	NonceSize = chacha20poly1305.NonceSizeX
	// TagSize is the Poly1305 authenticator appended to every ciphertext.
	TagSize = chacha20poly1305.Overhead
)

var (
	// ErrAuth is returned when a container fails authentication: wrong key,
	// tampered ciphertext, or a spliced sender.
	ErrAuth = errors.New("enc: message authentication failed")
	// ErrTruncated is returned when a serialized container is shorter than
	// its fixed prefix plus the authenticator.
	ErrTruncated = errors.New("enc: truncated container")
)

// PublicKey is an x25519 public key.
type PublicKey [KeySize]byte

// PrivateKey is an x25519 scalar.
type PrivateKey [KeySize]byte

// Key is a 32-byte symmetric key.
type Key [KeySize]byte

// Zero overwrites the key material.
func (k *Key) Zero() {
	for i := range k {
		k[i] = 0
	}
}

// Wipe overwrites a plaintext scratch buffer.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Envelope is ciphertext exchanged with a caller. Sender is the x25519
// public key of whichever side sealed it; the other side derives the same
// symmetric key from its own private key and Sender. The sender key is
// also bound into the AEAD as associated data, so an envelope cannot be
// re-attributed without failing authentication.
type Envelope struct {
	Sender     PublicKey
	Nonce      [NonceSize]byte
	Ciphertext []byte
}

const envelopePrefix = KeySize + NonceSize

// MarshalBinary implements encoding.BinaryMarshaler.
func (e *Envelope) MarshalBinary() ([]byte, error) {
	buf := make([]byte, envelopePrefix+len(e.Ciphertext))
	copy(buf, e.Sender[:])
	copy(buf[KeySize:], e.Nonce[:])
	copy(buf[envelopePrefix:], e.Ciphertext)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *Envelope) UnmarshalBinary(b []byte) error {
	if len(b) < envelopePrefix+TagSize {
		return ErrTruncated
	}
	copy(e.Sender[:], b)
	copy(e.Nonce[:], b[KeySize:])
	e.Ciphertext = append([]byte(nil), b[envelopePrefix:]...)
	return nil
}

// Sealed is ciphertext under a symmetric key held only by the cluster. It
// carries no key identity: there is exactly one state key per cluster.
type Sealed struct {
	Nonce      [NonceSize]byte
	Ciphertext []byte
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Sealed) MarshalBinary() ([]byte, error) {
	buf := make([]byte, NonceSize+len(s.Ciphertext))
	copy(buf, s.Nonce[:])
	copy(buf[NonceSize:], s.Ciphertext)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Sealed) UnmarshalBinary(b []byte) error {
	if len(b) < NonceSize+TagSize {
		return ErrTruncated
	}
	copy(s.Nonce[:], b)
	s.Ciphertext = append([]byte(nil), b[NonceSize:]...)
	return nil
}
