package tibe

import (
	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
)

// ValidateCt is the public validity check of a ciphertext for id:
//
//	tag = H(c1 | c2), e(c1, F(ID)) = e(g, c3), e(c1, W(tag)) = e(g, c4)
//
// It needs only the public key and consumes no randomness.
func ValidateCt(pk *SystemPublicKey, id Identity, ct *Ciphertext) bool {
	if !pk.wellFormed() || ct == nil || ct.Tag == nil {
		return false
	}
	if !g1.IsValid(ct.C1) || !g2.IsValid(ct.C3) || !g2.IsValid(ct.C4) {
		return false
	}
	if !tagScalar(ct.C1, ct.C2).Equal(ct.Tag) {
		return false
	}
	fid := identityPoint(pk, id)
	if !NewPairingEngine().AddPair(ct.C1, fid).AddPairInv(pk.G, ct.C3).Check() {
		return false
	}
	return NewPairingEngine().AddPair(ct.C1, tagPoint(pk, ct.Tag)).AddPairInv(pk.G, ct.C4).Check()
}

// Decrypt validates ct and opens it with the private key of id:
//
//	m' = e(c1, d0) / e(d1, c3)
//
// An invalid ciphertext is rejected before the key is used.
func Decrypt(pk *SystemPublicKey, id Identity, key *CombinedPrivateKey, ct *Ciphertext) ([]byte, error) {
	if !ValidateCt(pk, id, ct) {
		return nil, ErrInvalidCiphertext
	}
	if key == nil || !g2.IsValid(key.D0) || !g1.IsValid(key.D1) {
		return nil, ErrInvalidParameters
	}
	m := NewPairingEngine().AddPair(ct.C1, key.D0).AddPairInv(key.D1, ct.C3).Result()
	defer gt.Wipe(m)
	msg, err := demOpen(m, ct.C2)
	if err != nil {
		return nil, ErrInvalidCiphertext
	}
	return msg, nil
}

// VerifyPrivateKey checks that key is a private key for id:
//
//	e(g, d0) = e(g1, g2) · e(d1, F(ID))
func VerifyPrivateKey(pk *SystemPublicKey, id Identity, key *CombinedPrivateKey) bool {
	if !pk.wellFormed() || key == nil {
		return false
	}
	if !g2.IsValid(key.D0) || !g1.IsValid(key.D1) {
		return false
	}
	return NewPairingEngine().
		AddPair(pk.G, key.D0).
		AddPairInv(pk.G1, pk.G2).
		AddPairInv(key.D1, identityPoint(pk, id)).
		Check()
}
