package tibe

import (
	"fmt"

	"github.com/sirupsen/logrus"

	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
)

// Setup runs the trusted dealer: it samples the master secret alpha, shares it
// with a random polynomial f of degree k-1 and returns the system public key,
// the verification key g^f(j) and the secret shares g2^f(j) for j = 1..n.
//
// alpha, the coefficients of f and every f(j) are wiped before returning.
func Setup(n, k uint32, options ...Option) (*SystemPublicKey, VerificationKey, []*SecretShare, error) {
	args := newArgs(options)
	log := args.log.WithFields(logrus.Fields{"n": n, "k": k})

	if n < 1 || k < 1 || k > n {
		return nil, nil, nil, fmt.Errorf("%w: n=%d k=%d", ErrInvalidParameters, n, k)
	}
	if args.sharing == nil || args.sharing.Modulus() == nil || args.sharing.Modulus().Cmp(Modulus()) != 0 {
		return nil, nil, nil, ErrModulusMismatch
	}
	gens, err := fixed()
	if err != nil {
		return nil, nil, nil, err
	}

	alpha, err := NewFr().Rand(args.rand)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	defer alpha.Wipe()

	f, err := args.sharing.NewPolynomial(alpha, k-1, args.rand)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	defer f.Wipe()

	pk := &SystemPublicKey{
		G:     g1.One(),
		G1:    g1.MulScalar(g1.New(), g1.One(), alpha),
		G2:    g2.Set(g2.New(), gens.g2),
		H1:    g2.Set(g2.New(), gens.h1),
		G1Hat: g2.MulScalar(g2.New(), g2.One(), alpha),
		H2:    g2.Set(g2.New(), gens.h2),
	}

	vk := make(VerificationKey, n)
	shares := make([]*SecretShare, n)
	for j := uint32(1); j <= n; j++ {
		fj := f.Eval(FrFromUInt32(j))
		vk[j-1] = g1.MulScalar(g1.New(), g1.One(), fj)
		shares[j-1] = &SecretShare{
			Index: j,
			Value: g2.MulScalar(g2.New(), gens.g2, fj),
		}
		fj.Wipe()
	}

	log.Debug("[TIBE] setup done")
	return pk, vk, shares, nil
}
