package tibe

import (
	"fmt"

	"github.com/sirupsen/logrus"

	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
)

// Encrypt encrypts msg to id:
//
//	c1 = g^s, c2 = DEM(e(g1, g2)^s, msg), c3 = F(ID)^s, c4 = W(tag)^s
//
// where tag = H(c1 | c2) and s is fresh and non-zero.
func Encrypt(pk *SystemPublicKey, id Identity, msg []byte, options ...Option) (*Ciphertext, error) {
	args := newArgs(options)
	if !pk.wellFormed() {
		return nil, fmt.Errorf("%w: public key has invalid points", ErrInvalidParameters)
	}

	s, err := NewFr().Rand(args.rand)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	defer s.Wipe()

	c1 := g1.MulScalar(g1.New(), pk.G, s)
	// m' = e(g1^s, g2) = e(g1, g2)^s
	m := NewPairingEngine().AddPair(g1.MulScalar(g1.New(), pk.G1, s), pk.G2).Result()
	defer gt.Wipe(m)

	c2, err := demSeal(m, msg)
	if err != nil {
		return nil, err
	}
	c3 := g2.MulScalar(g2.New(), identityPoint(pk, id), s)
	tag := tagScalar(c1, c2)
	c4 := g2.MulScalar(g2.New(), tagPoint(pk, tag), s)

	args.log.WithFields(logrus.Fields{"id_len": len(id), "msg_len": len(msg)}).Debug("[TIBE] encrypted")
	return &Ciphertext{C1: c1, C2: c2, C3: c3, C4: c4, Tag: tag}, nil
}
