package enc

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

func newNonce() (nonce [NonceSize]byte, err error) {
	if _, err = rand.Read(nonce[:]); err != nil {
		err = fmt.Errorf("nonce generation: %w", err)
	}
	return
}

// SealBox encrypts plaintext under key with a fresh nonce.
func SealBox(key *Key, plaintext []byte) (Sealed, error) {
	boxer, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return Sealed{}, fmt.Errorf("aead: %w", err)
	}
	nonce, err := newNonce()
	if err != nil {
		return Sealed{}, err
	}
	return Sealed{
		Nonce:      nonce,
		Ciphertext: boxer.Seal(nil, nonce[:], plaintext, nil),
	}, nil
}

// OpenBox decrypts a Sealed container.
func OpenBox(key *Key, box Sealed) ([]byte, error) {
	boxer, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("aead: %w", err)
	}
	plaintext, err := boxer.Open(nil, box.Nonce[:], box.Ciphertext, nil)
	if err != nil {
		return nil, ErrAuth
	}
	return plaintext, nil
}

// SealTo seals plaintext from kp to the holder of peer's private key. The
// envelope's Sender is kp's public key, bound as associated data.
func (kp *Keypair) SealTo(peer PublicKey, plaintext []byte) (Envelope, error) {
	key, err := kp.Shared(peer)
	if err != nil {
		return Envelope{}, err
	}
	defer key.Zero()

	boxer, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return Envelope{}, fmt.Errorf("aead: %w", err)
	}
	nonce, err := newNonce()
	if err != nil {
		return Envelope{}, err
	}
	sender := kp.Public()
	return Envelope{
		Sender:     sender,
		Nonce:      nonce,
		Ciphertext: boxer.Seal(nil, nonce[:], plaintext, sender[:]),
	}, nil
}

// Open opens an envelope addressed to kp, whoever sealed it. Callers that
// expect a particular peer must check env.Sender themselves.
func (kp *Keypair) Open(env Envelope) ([]byte, error) {
	key, err := kp.Shared(env.Sender)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	boxer, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("aead: %w", err)
	}
	plaintext, err := boxer.Open(nil, env.Nonce[:], env.Ciphertext, env.Sender[:])
	if err != nil {
		return nil, ErrAuth
	}
	return plaintext, nil
}
