package bls12381

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	bls "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// PointG2 is an affine point of G2. The zero value is the point at infinity.
type PointG2 = bls.G2Affine

// G2 is the engine for operations in G2. It holds no state.
type G2 struct{}

func NewG2() *G2 {
	return &G2{}
}

func (g *G2) New() *PointG2 {
	return new(PointG2)
}

func (g *G2) Zero() *PointG2 {
	return new(PointG2)
}

// One returns a fresh copy of the generator.
func (g *G2) One() *PointG2 {
	_, _, _, g2Aff := bls.Generators()
	return &g2Aff
}

func (g *G2) Set(c, a *PointG2) *PointG2 {
	c.Set(a)
	return c
}

func (g *G2) Add(c, a, b *PointG2) *PointG2 {
	var sum bls.G2Jac
	sum.FromAffine(a)
	sum.AddMixed(b)
	c.FromJacobian(&sum)
	return c
}

func (g *G2) Neg(c, a *PointG2) *PointG2 {
	c.Neg(a)
	return c
}

func (g *G2) Sub(c, a, b *PointG2) *PointG2 {
	var nb PointG2
	nb.Neg(b)
	return g.Add(c, a, &nb)
}

// MulScalar sets c = e·p.
func (g *G2) MulScalar(c, p *PointG2, e *Fr) *PointG2 {
	s := e.Big()
	defer WipeBig(s)
	c.ScalarMultiplication(p, s)
	return c
}

// MultiExp sets c = Σ scalars[i]·points[i].
func (g *G2) MultiExp(c *PointG2, points []*PointG2, scalars []*Fr) (*PointG2, error) {
	if len(points) != len(scalars) {
		return nil, fmt.Errorf("multiexp: %d points but %d scalars", len(points), len(scalars))
	}
	pts := make([]bls.G2Affine, len(points))
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

func (g *G2) Equal(a, b *PointG2) bool {
	return a.Equal(b)
}

func (g *G2) IsZero(p *PointG2) bool {
	return p.IsInfinity()
}

// IsValid reports whether p is a non-infinity point of the prime order subgroup.
func (g *G2) IsValid(p *PointG2) bool {
	return p != nil && !p.IsInfinity() && p.IsOnCurve() && p.IsInSubGroup()
}

// HashToCurve maps msg to G2 with the RFC 9380 SSWU random-oracle suite under
// the domain separation tag dst.
func (g *G2) HashToCurve(msg, dst []byte) (*PointG2, error) {
	p, err := bls.HashToG2(msg, dst)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ToCompressed returns the 96 byte compressed encoding of p.
func (g *G2) ToCompressed(p *PointG2) []byte {
	b := p.Bytes()
	return b[:]
}

// FromCompressed decodes a compressed point. Non-canonical encodings and points
// outside the prime order subgroup are rejected.
func (g *G2) FromCompressed(in []byte) (*PointG2, error) {
	if len(in) != G2CompressedSize {
		return nil, fmt.Errorf("%w: g2 wants %d bytes, got %d", ErrInvalidPoint, G2CompressedSize, len(in))
	}
	p := new(PointG2)
	n, err := p.SetBytes(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	if n != G2CompressedSize || !bytes.Equal(g.ToCompressed(p), in) {
		return nil, fmt.Errorf("%w: non-canonical g2 encoding", ErrInvalidPoint)
	}
	return p, nil
}
