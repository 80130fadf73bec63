package tibe

import (
	"fmt"

	"github.com/sirupsen/logrus"

	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
)

// ShareKeyGen derives party j's partial key for id:
//
//	w0 = share · F(ID)^r, w1 = g^r
//
// with a fresh non-zero r that is wiped afterwards.
func ShareKeyGen(pk *SystemPublicKey, j uint32, share *SecretShare, id Identity, options ...Option) (*PartialDecryptionKey, error) {
	args := newArgs(options)
	if share == nil || share.Value == nil || j < 1 || share.Index != j {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShareIndex, j)
	}
	if args.parties != 0 && j > args.parties {
		return nil, fmt.Errorf("%w: %d exceeds %d parties", ErrInvalidShareIndex, j, args.parties)
	}
	if pk == nil || pk.G == nil || pk.G1Hat == nil || pk.H1 == nil {
		return nil, fmt.Errorf("%w: incomplete public key", ErrInvalidParameters)
	}

	r, err := NewFr().Rand(args.rand)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	defer r.Wipe()

	fid := identityPoint(pk, id)
	w0 := g2.MulScalar(g2.New(), fid, r)
	g2.Add(w0, w0, share.Value)
	w1 := g1.MulScalar(g1.New(), pk.G, r)

	args.log.WithFields(logrus.Fields{"index": j, "id_len": len(id)}).Debug("[TIBE] partial key derived")
	return &PartialDecryptionKey{Index: j, W0: w0, W1: w1}, nil
}

// ShareVerify checks a partial key against the verification key:
//
//	e(g, w0) = e(vk_j, g2) · e(w1, F(ID))
//
// It never panics; malformed input is rejected.
func ShareVerify(pk *SystemPublicKey, vk VerificationKey, id Identity, key *PartialDecryptionKey) bool {
	if !pk.wellFormed() || key == nil {
		return false
	}
	vkj := vk.Entry(key.Index)
	if vkj == nil || !g1.IsValid(vkj) {
		return false
	}
	if !g2.IsValid(key.W0) || !g1.IsValid(key.W1) {
		return false
	}
	fid := identityPoint(pk, id)
	return NewPairingEngine().
		AddPair(pk.G, key.W0).
		AddPairInv(vkj, pk.G2).
		AddPairInv(key.W1, fid).
		Check()
}
