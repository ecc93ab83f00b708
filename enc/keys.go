package enc

import (
	"fmt"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/curve25519"
)

// envelopeContext namespaces the blake3 derivation of envelope keys so the
// raw x25519 secret is never used as an AEAD key directly.
const envelopeContext = "darkpool v1 envelope key"

// Keypair is one side of the envelope exchange: a caller identity on the
// client, the collective cluster identity on the server.
type Keypair struct {
	pub  PublicKey
	priv PrivateKey
}

// GenerateKeypair creates a keypair from the given randomness source.
func GenerateKeypair(rand io.Reader) (*Keypair, error) {
	var priv PrivateKey
	if _, err := io.ReadFull(rand, priv[:]); err != nil {
		return nil, fmt.Errorf("read keypair entropy: %w", err)
	}
	return KeypairFromPrivate(priv)
}

// KeypairFromPrivate rebuilds a keypair from a stored scalar.
func KeypairFromPrivate(priv PrivateKey) (*Keypair, error) {
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}
	kp := &Keypair{priv: priv}
	copy(kp.pub[:], pub)
	return kp, nil
}

// Public returns the public half.
func (kp *Keypair) Public() PublicKey { return kp.pub }

// Private returns the scalar, for persistence at the boundary.
func (kp *Keypair) Private() PrivateKey { return kp.priv }

// Shared derives the symmetric envelope key agreed with peer.
func (kp *Keypair) Shared(peer PublicKey) (Key, error) {
	var key Key
	secret, err := curve25519.X25519(kp.priv[:], peer[:])
	if err != nil {
		return key, fmt.Errorf("x25519: %w", err)
	}
	blake3.DeriveKey(envelopeContext, secret, key[:])
	Wipe(secret)
	return key, nil
}

// Close zeros the private scalar. The keypair is useless after closing.
func (kp *Keypair) Close() {
	for i := range kp.priv {
		kp.priv[i] = 0
	}
}

// NewKey creates a random symmetric key.
func NewKey(rand io.Reader) (Key, error) {
	var key Key
	if _, err := io.ReadFull(rand, key[:]); err != nil {
		return key, fmt.Errorf("read key entropy: %w", err)
	}
	return key, nil
}
