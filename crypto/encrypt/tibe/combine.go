package tibe

import (
	"fmt"
	"sort"

	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
	poly "github.com/almogdepaz/ursa/crypto/types/poly/bls12381"
)

// Combine interpolates k partial keys in the exponent into the private key of
// id:
//
//	d0 = ∏ w0_j^λ_j, d1 = ∏ w1_j^λ_j, λ_j = ∏_(m≠j) m / (m - j)
//
// Shares are sorted by index and the first k are used. The partial keys are
// not verified; see CombineVerified.
func Combine(pk *SystemPublicKey, vk VerificationKey, id Identity, shares []*PartialDecryptionKey, k uint32) (*CombinedPrivateKey, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidParameters, k)
	}
	seen := make(map[uint32]struct{}, len(shares))
	for _, s := range shares {
		if s == nil || s.W0 == nil || s.W1 == nil {
			return nil, fmt.Errorf("%w: empty partial key", ErrSerialization)
		}
		if _, ok := seen[s.Index]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateShareIndex, s.Index)
		}
		seen[s.Index] = struct{}{}
	}
	if uint64(len(shares)) < uint64(k) {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientShares, len(shares), k)
	}
	for _, s := range shares {
		if vk.Entry(s.Index) == nil {
			return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidShareIndex, s.Index, len(vk))
		}
	}

	sorted := make([]*PartialDecryptionKey, len(shares))
	copy(sorted, shares)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Index < sorted[b].Index })
	sorted = sorted[:k]

	xs := make([]*Fr, k)
	w0s := make([]*PointG2, k)
	w1s := make([]*PointG1, k)
	for i, s := range sorted {
		xs[i] = FrFromUInt32(s.Index)
		w0s[i] = s.W0
		w1s[i] = s.W1
	}
	lambdas, err := poly.LagrangeAtZero(xs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShareIndex, err)
	}
	d0, err := g2.MultiExp(g2.New(), w0s, lambdas)
	if err != nil {
		return nil, err
	}
	d1, err := g1.MultiExp(g1.New(), w1s, lambdas)
	if err != nil {
		return nil, err
	}
	return &CombinedPrivateKey{D0: d0, D1: d1}, nil
}

// CombineVerified runs ShareVerify on every partial key before combining and
// fails with ErrVerificationFailure on the first one that does not verify.
func CombineVerified(pk *SystemPublicKey, vk VerificationKey, id Identity, shares []*PartialDecryptionKey, k uint32) (*CombinedPrivateKey, error) {
	for _, s := range shares {
		if !ShareVerify(pk, vk, id, s) {
			index := uint32(0)
			if s != nil {
				index = s.Index
			}
			return nil, fmt.Errorf("%w: share %d", ErrVerificationFailure, index)
		}
	}
	return Combine(pk, vk, id, shares, k)
}
