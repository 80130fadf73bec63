package bls12381

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const (
	G1CompressedSize = bls.SizeOfG1AffineCompressed
	G2CompressedSize = bls.SizeOfG2AffineCompressed
	GTSize           = bls.SizeOfGT
)

var ErrInvalidPoint = errors.New("invalid point encoding")

// PointG1 is an affine point of G1. The zero value is the point at infinity.
type PointG1 = bls.G1Affine

// G1 is the engine for operations in G1. It holds no state.
type G1 struct{}

func NewG1() *G1 {
	return &G1{}
}

// New returns the point at infinity.
func (g *G1) New() *PointG1 {
	return new(PointG1)
}

func (g *G1) Zero() *PointG1 {
	return new(PointG1)
}

// One returns a fresh copy of the generator.
func (g *G1) One() *PointG1 {
	_, _, g1Aff, _ := bls.Generators()
	return &g1Aff
}

func (g *G1) Set(c, a *PointG1) *PointG1 {
	c.Set(a)
	return c
}

func (g *G1) Add(c, a, b *PointG1) *PointG1 {
	var sum bls.G1Jac
	sum.FromAffine(a)
	sum.AddMixed(b)
	c.FromJacobian(&sum)
	return c
}

func (g *G1) Neg(c, a *PointG1) *PointG1 {
	c.Neg(a)
	return c
}

func (g *G1) Sub(c, a, b *PointG1) *PointG1 {
	var nb PointG1
	nb.Neg(b)
	return g.Add(c, a, &nb)
}

// MulScalar sets c = e·p.
func (g *G1) MulScalar(c, p *PointG1, e *Fr) *PointG1 {
	s := e.Big()
	defer WipeBig(s)
	c.ScalarMultiplication(p, s)
	return c
}

// MultiExp sets c = Σ scalars[i]·points[i].
func (g *G1) MultiExp(c *PointG1, points []*PointG1, scalars []*Fr) (*PointG1, error) {
	if len(points) != len(scalars) {
		return nil, fmt.Errorf("multiexp: %d points but %d scalars", len(points), len(scalars))
	}
	pts := make([]bls.G1Affine, len(points))
	sc := make([]fr.Element, len(scalars))
	defer func() {
		for i := range sc {
			sc[i].SetZero()
		}
	}()
	for i := range points {
		pts[i] = *points[i]
		sc[i] = fr.Element(*scalars[i])
	}
	if _, err := c.MultiExp(pts, sc, ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}
	return c, nil
}

func (g *G1) Equal(a, b *PointG1) bool {
	return a.Equal(b)
}

func (g *G1) IsZero(p *PointG1) bool {
	return p.IsInfinity()
}

// IsValid reports whether p is a non-infinity point of the prime order subgroup.
func (g *G1) IsValid(p *PointG1) bool {
	return p != nil && !p.IsInfinity() && p.IsOnCurve() && p.IsInSubGroup()
}

// ToCompressed returns the 48 byte compressed encoding of p.
func (g *G1) ToCompressed(p *PointG1) []byte {
	b := p.Bytes()
	return b[:]
}

// FromCompressed decodes a compressed point. Non-canonical encodings and points
// outside the prime order subgroup are rejected.
func (g *G1) FromCompressed(in []byte) (*PointG1, error) {
	if len(in) != G1CompressedSize {
		return nil, fmt.Errorf("%w: g1 wants %d bytes, got %d", ErrInvalidPoint, G1CompressedSize, len(in))
	}
	p := new(PointG1)
	n, err := p.SetBytes(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	if n != G1CompressedSize || !bytes.Equal(g.ToCompressed(p), in) {
		return nil, fmt.Errorf("%w: non-canonical g1 encoding", ErrInvalidPoint)
	}
	return p, nil
}
