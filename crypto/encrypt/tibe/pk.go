package tibe

import (
	"fmt"

	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
)

func (pk *SystemPublicKey) wellFormed() bool {
	return pk != nil &&
		g1.IsValid(pk.G) && g1.IsValid(pk.G1) &&
		g2.IsValid(pk.G2) && g2.IsValid(pk.H1) &&
		g2.IsValid(pk.G1Hat) && g2.IsValid(pk.H2)
}

// Validate checks that pk is self-consistent: every element is a valid
// non-identity point, g is the G1 generator, g2, h1 and h2 are the fixed
// generators, and g1 and g1Hat share the same exponent.
func (pk *SystemPublicKey) Validate() error {
	if !pk.wellFormed() {
		return fmt.Errorf("%w: public key has invalid points", ErrInvalidParameters)
	}
	if !g1.Equal(pk.G, g1.One()) {
		return fmt.Errorf("%w: g is not the G1 generator", ErrInvalidParameters)
	}
	gens, err := fixed()
	if err != nil {
		return err
	}
	if !g2.Equal(pk.G2, gens.g2) || !g2.Equal(pk.H1, gens.h1) || !g2.Equal(pk.H2, gens.h2) {
		return fmt.Errorf("%w: unexpected fixed generators", ErrInvalidParameters)
	}
	// e(g1, ĝ) = e(g, g1Hat)
	if !NewPairingEngine().AddPair(pk.G1, g2.One()).AddPairInv(pk.G, pk.G1Hat).Check() {
		return fmt.Errorf("%w: g1 and g1Hat disagree", ErrInvalidParameters)
	}
	return nil
}
