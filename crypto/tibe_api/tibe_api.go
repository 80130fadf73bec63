// Package tibe_api exposes the threshold IBE scheme over opaque byte strings.
package tibe_api

import (
	encoding_json "encoding/json"
	"fmt"

	"github.com/almogdepaz/ursa/crypto/encrypt/tibe"
)

// Envelope carries a ciphertext together with the identity it is addressed to.
type Envelope struct {
	ID         []byte // recipient identity
	Ciphertext []byte // encoded tibe.Ciphertext
}

func EncodeEnvelope(env Envelope) ([]byte, error) {
	envBytes, err := encoding_json.Marshal(env)
	if err != nil {
		return nil, err
	}
	return envBytes, nil
}

func DecodeEnvelope(envBytes []byte) (*Envelope, error) {
	env := new(Envelope)
	err := encoding_json.Unmarshal(envBytes, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tibe.ErrSerialization, err)
	}
	return env, nil
}

func decodePK(pkBytes []byte) (*tibe.SystemPublicKey, error) {
	pk, err := new(tibe.SystemPublicKey).FromBytes(pkBytes)
	if err != nil {
		return nil, err
	}
	if err := pk.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", tibe.ErrSerialization, err)
	}
	return pk, nil
}

// Setup returns the encoded public key, verification key and secret shares.
func Setup(n, k uint32, options ...tibe.Option) (pkBytes []byte, vkBytes []byte, shareBytes [][]byte, err error) {
	pk, vk, shares, err := tibe.Setup(n, k, options...)
	if err != nil {
		return nil, nil, nil, err
	}
	shareBytes = make([][]byte, len(shares))
	for i, share := range shares {
		shareBytes[i] = share.ToBytes()
		share.Wipe()
	}
	return pk.ToBytes(), vk.ToBytes(), shareBytes, nil
}

func ShareKeyGen(pkBytes []byte, j uint32, shareBytes []byte, id []byte, options ...tibe.Option) ([]byte, error) {
	pk, err := decodePK(pkBytes)
	if err != nil {
		return nil, err
	}
	share, err := new(tibe.SecretShare).FromBytes(shareBytes)
	if err != nil {
		return nil, err
	}
	defer share.Wipe()
	key, err := tibe.ShareKeyGen(pk, j, share, id, options...)
	if err != nil {
		return nil, err
	}
	return key.ToBytes(), nil
}

func ShareVerify(pkBytes []byte, vkBytes []byte, id []byte, keyBytes []byte) bool {
	pk, err := decodePK(pkBytes)
	if err != nil {
		return false
	}
	vk, err := tibe.VerificationKeyFromBytes(vkBytes)
	if err != nil {
		return false
	}
	key, err := new(tibe.PartialDecryptionKey).FromBytes(keyBytes)
	if err != nil {
		return false
	}
	return tibe.ShareVerify(pk, vk, id, key)
}

func Combine(pkBytes []byte, vkBytes []byte, id []byte, keyBytes [][]byte, k uint32) ([]byte, error) {
	pk, err := decodePK(pkBytes)
	if err != nil {
		return nil, err
	}
	vk, err := tibe.VerificationKeyFromBytes(vkBytes)
	if err != nil {
		return nil, err
	}
	keys := make([]*tibe.PartialDecryptionKey, len(keyBytes))
	for i := range keyBytes {
		if keys[i], err = new(tibe.PartialDecryptionKey).FromBytes(keyBytes[i]); err != nil {
			return nil, err
		}
	}
	sk, err := tibe.Combine(pk, vk, id, keys, k)
	if err != nil {
		return nil, err
	}
	defer sk.Wipe()
	return sk.ToBytes(), nil
}

func Encrypt(pkBytes []byte, id []byte, msg []byte, options ...tibe.Option) ([]byte, error) {
	pk, err := decodePK(pkBytes)
	if err != nil {
		return nil, err
	}
	ct, err := tibe.Encrypt(pk, id, msg, options...)
	if err != nil {
		return nil, err
	}
	return ct.ToBytes(), nil
}

func ValidateCt(pkBytes []byte, id []byte, ctBytes []byte) bool {
	pk, err := decodePK(pkBytes)
	if err != nil {
		return false
	}
	ct, err := new(tibe.Ciphertext).FromBytes(ctBytes)
	if err != nil {
		return false
	}
	return tibe.ValidateCt(pk, id, ct)
}

// Decrypt reports undecodable ciphertext bytes as tibe.ErrInvalidCiphertext.
func Decrypt(pkBytes []byte, id []byte, keyBytes []byte, ctBytes []byte) ([]byte, error) {
	pk, err := decodePK(pkBytes)
	if err != nil {
		return nil, err
	}
	ct, err := new(tibe.Ciphertext).FromBytes(ctBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tibe.ErrInvalidCiphertext, err)
	}
	if !tibe.ValidateCt(pk, id, ct) {
		return nil, tibe.ErrInvalidCiphertext
	}
	key, err := new(tibe.CombinedPrivateKey).FromBytes(keyBytes)
	if err != nil {
		return nil, err
	}
	defer key.Wipe()
	return tibe.Decrypt(pk, id, key, ct)
}
