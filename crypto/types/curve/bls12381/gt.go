package bls12381

import (
	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// E is an element of the target group GT.
type E = bls.GT

// GT is the engine for operations in the target group.
type GT struct{}

func NewGT() *GT {
	return &GT{}
}

// New returns the identity of GT.
func (g *GT) New() *E {
	e := new(E)
	e.SetOne()
	return e
}

func (g *GT) Mul(c, a, b *E) *E {
	c.Mul(a, b)
	return c
}

func (g *GT) Inverse(c, a *E) *E {
	c.Inverse(a)
	return c
}

func (g *GT) Equal(a, b *E) bool {
	return a.Equal(b)
}

func (g *GT) IsOne(a *E) bool {
	return a.IsOne()
}

// ToBytes returns the canonical encoding of a.
func (g *GT) ToBytes(a *E) []byte {
	b := a.Bytes()
	return b[:]
}

// Wipe overwrites a with the identity.
func (g *GT) Wipe(a *E) {
	if a == nil {
		return
	}
	a.SetOne()
}
