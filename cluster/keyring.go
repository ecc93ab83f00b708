package cluster

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"darkpool/enc"
)

// keyFileSize is the x25519 scalar followed by the state key.
const keyFileSize = 2 * enc.KeySize

// Keyring holds the cluster's collective identity and the symmetric key
// the book state is sealed under. Both stay confined to this package.
type Keyring struct {
	id   *enc.Keypair
	book enc.Key
}

// NewKeyring creates a keyring from the given randomness source.
func NewKeyring(random io.Reader) (*Keyring, error) {
	id, err := enc.GenerateKeypair(random)
	if err != nil {
		return nil, fmt.Errorf("generate identity: %w", err)
	}
	key, err := enc.NewKey(random)
	if err != nil {
		return nil, fmt.Errorf("generate state key: %w", err)
	}
	return &Keyring{id: id, book: key}, nil
}

// LoadKeyring reads the key file at path, generating and persisting a
// fresh keyring on first boot.
func LoadKeyring(path string) (*Keyring, error) {
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return generateKeyring(path)
	case err != nil:
		return nil, fmt.Errorf("read key file: %w", err)
	}
	defer enc.Wipe(raw)

	if len(raw) != keyFileSize {
		return nil, fmt.Errorf("key file %s: expected %d bytes, got %d", path, keyFileSize, len(raw))
	}
	var priv enc.PrivateKey
	copy(priv[:], raw[:enc.KeySize])
	id, err := enc.KeypairFromPrivate(priv)
	enc.Wipe(priv[:])
	if err != nil {
		return nil, fmt.Errorf("load identity: %w", err)
	}
	kr := &Keyring{id: id}
	copy(kr.book[:], raw[enc.KeySize:])
	return kr, nil
}

func generateKeyring(path string) (*Keyring, error) {
	kr, err := NewKeyring(rand.Reader)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create key dir: %w", err)
	}

	raw := make([]byte, 0, keyFileSize)
	priv := kr.id.Private()
	raw = append(raw, priv[:]...)
	raw = append(raw, kr.book[:]...)
	enc.Wipe(priv[:])

	err = os.WriteFile(path, raw, 0600)
	enc.Wipe(raw)
	if err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	log.Infof("Generated cluster identity, key file %s", path)
	return kr, nil
}

// Public returns the cluster's collective public key. Callers seal order
// data to it.
func (k *Keyring) Public() enc.PublicKey {
	return k.id.Public()
}

// Close zeros all key material. The keyring is useless after closing.
func (k *Keyring) Close() {
	k.id.Close()
	k.book.Zero()
}
