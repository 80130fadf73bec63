package tibe

import (
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
)

// demKey derives the payload key from the session element m'. Every m' is
// fresh, so each key encrypts exactly one message and a fixed nonce is safe.
func demKey(m *E) ([]byte, error) {
	ikm := gt.ToBytes(m)
	defer wipe(ikm)
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha3.New256, ikm, nil, infoDEM), key); err != nil {
		wipe(key)
		return nil, err
	}
	return key, nil
}

func demSeal(m *E, msg []byte) ([]byte, error) {
	key, err := demKey(m)
	if err != nil {
		return nil, err
	}
	defer wipe(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	return aead.Seal(nil, nonce, msg, nil), nil
}

func demOpen(m *E, c2 []byte) ([]byte, error) {
	key, err := demKey(m)
	if err != nil {
		return nil, err
	}
	defer wipe(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	return aead.Open(nil, nonce, c2, nil)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
