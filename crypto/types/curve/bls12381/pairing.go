package bls12381

import (
	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Engine accumulates pairs and evaluates their product with a single final
// exponentiation.
type Engine struct {
	g1 []bls.G1Affine
	g2 []bls.G2Affine
}

func NewPairingEngine() *Engine {
	return &Engine{}
}

// AddPair adds e(p1, p2) to the product. Pairs with an infinity side are
// skipped since they contribute the identity.
func (e *Engine) AddPair(p1 *PointG1, p2 *PointG2) *Engine {
	if p1.IsInfinity() || p2.IsInfinity() {
		return e
	}
	e.g1 = append(e.g1, *p1)
	e.g2 = append(e.g2, *p2)
	return e
}

// AddPairInv adds e(p1, p2)^-1 to the product.
func (e *Engine) AddPairInv(p1 *PointG1, p2 *PointG2) *Engine {
	var n PointG1
	n.Neg(p1)
	return e.AddPair(&n, p2)
}

// Reset drops all accumulated pairs.
func (e *Engine) Reset() *Engine {
	e.g1 = e.g1[:0]
	e.g2 = e.g2[:0]
	return e
}

// Check reports whether the accumulated product equals the identity of GT.
func (e *Engine) Check() bool {
	if len(e.g1) == 0 {
		return true
	}
	ok, err := bls.PairingCheck(e.g1, e.g2)
	return err == nil && ok
}

// Result returns the accumulated product.
func (e *Engine) Result() *E {
	out := new(E)
	if len(e.g1) == 0 {
		out.SetOne()
		return out
	}
	res, err := bls.Pair(e.g1, e.g2)
	if err != nil {
		// only reachable on mismatched slice lengths, which AddPair rules out
		out.SetOne()
		return out
	}
	*out = res
	return out
}
