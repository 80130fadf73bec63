// Package tibe implements threshold identity-based encryption in the style of
// Boneh-Boyen-Halevi over BLS12-381.
//
// A dealer splits a master secret alpha among n parties with a degree k-1
// polynomial. Any k parties derive partial keys for an identity, which combine
// by Lagrange interpolation in the exponent into the identity's private key.
// Ciphertexts carry a tag bound into a pairing relation so that anyone holding
// the public key can reject malformed ciphertexts before decryption.
package tibe

import (
	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
)

var (
	g1 = NewG1()
	g2 = NewG2()
	gt = NewGT()
)

// Identity is an arbitrary byte string naming a key holder.
type Identity []byte

// SystemPublicKey is (g, g1 = g^alpha, g2, h1, g1Hat = ĝ^alpha, h2).
// g2, h1 and h2 are fixed generators obtained by hashing to G2.
type SystemPublicKey struct {
	G     *PointG1
	G1    *PointG1
	G2    *PointG2
	H1    *PointG2
	G1Hat *PointG2
	H2    *PointG2
}

// SecretShare is g2^f(j) for party j.
type SecretShare struct {
	Index uint32
	Value *PointG2
}

// Wipe overwrites the share value with the point at infinity.
func (s *SecretShare) Wipe() {
	if s == nil || s.Value == nil {
		return
	}
	*s.Value = PointG2{}
}

// VerificationKey holds g^f(j) at position j-1.
type VerificationKey []*PointG1

// Entry returns the verification key of party j, or nil if j is out of range.
func (vk VerificationKey) Entry(j uint32) *PointG1 {
	if j < 1 || uint64(j) > uint64(len(vk)) {
		return nil
	}
	return vk[j-1]
}

// PartialDecryptionKey is party j's contribution (w0, w1) to an identity key.
type PartialDecryptionKey struct {
	Index uint32
	W0    *PointG2
	W1    *PointG1
}

// CombinedPrivateKey is the private key (d0, d1) of an identity.
type CombinedPrivateKey struct {
	D0 *PointG2
	D1 *PointG1
}

func (k *CombinedPrivateKey) Wipe() {
	if k == nil {
		return
	}
	if k.D0 != nil {
		*k.D0 = PointG2{}
	}
	if k.D1 != nil {
		*k.D1 = PointG1{}
	}
}

// Ciphertext is (c1 = g^s, c2 = DEM payload, c3 = F(ID)^s, c4 = W(tag)^s, tag).
type Ciphertext struct {
	C1  *PointG1
	C2  []byte
	C3  *PointG2
	C4  *PointG2
	Tag *Fr
}
