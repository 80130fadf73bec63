// Package poly implements polynomials in Fr.
package poly

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/polynomial"

	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
)

var ErrInterpolationPoints = errors.New("interpolation points must be distinct and non-zero")

// UVPolynomial represents a uni-variate polynomial. Coefficients are stored
// lowest degree first.
type UVPolynomial struct {
	coeffs polynomial.Polynomial
}

// FromSlice returns a UVPolynomial based on the given coefficients. The
// coefficients are copied.
func FromSlice(coeffs []*Fr) *UVPolynomial {
	p := make(polynomial.Polynomial, len(coeffs))
	for i, coeff := range coeffs {
		if coeff == nil {
			return nil
		}
		p[i] = fr.Element(*coeff)
	}
	return (&UVPolynomial{p}).trim()
}

func One() *UVPolynomial {
	p := make(polynomial.Polynomial, 1)
	p[0].SetOne()
	return &UVPolynomial{p}
}

func Zero() *UVPolynomial {
	return &UVPolynomial{make(polynomial.Polynomial, 1)}
}

func (p *UVPolynomial) IsZero() bool {
	for i := range p.coeffs {
		if !p.coeffs[i].IsZero() {
			return false
		}
	}
	return true
}

// Degree return the degree of UVPolynomial.
func (p *UVPolynomial) Degree() uint32 {
	return uint32(p.coeffs.Degree())
}

// Coefficient returns a copy of the i-th coefficient. It is secret for sharing
// polynomials and the caller is responsible for wiping it.
func (p *UVPolynomial) Coefficient(i int) *Fr {
	c := NewFr()
	if i < len(p.coeffs) {
		*c = Fr(p.coeffs[i])
	}
	return c
}

// Equal checks equality of two polynomials in constant time over their coefficients.
func (p *UVPolynomial) Equal(q *UVPolynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	eq := 1
	for i := range p.coeffs {
		pb := p.coeffs[i].Bytes()
		qb := q.coeffs[i].Bytes()
		eq &= subtle.ConstantTimeCompare(pb[:], qb[:])
	}
	return eq == 1
}

// Eval computes p(x).
func (p *UVPolynomial) Eval(x *Fr) *Fr {
	xe := fr.Element(*x)
	v := p.coeffs.Eval(&xe)
	out := Fr(v)
	return &out
}

func (p *UVPolynomial) trim() *UVPolynomial {
	i := len(p.coeffs) - 1
	for i > 0 && p.coeffs[i].IsZero() {
		i--
	}
	if i < 0 {
		p.coeffs = make(polynomial.Polynomial, 1)
		return p
	}
	p.coeffs = p.coeffs[:i+1]
	return p
}

// Add returns p + q as a new polynomial.
func (p *UVPolynomial) Add(q *UVPolynomial) *UVPolynomial {
	if p == nil || q == nil {
		return nil
	}
	var sum polynomial.Polynomial
	sum.Add(p.coeffs, q.coeffs)
	return (&UVPolynomial{sum}).trim()
}

// MulScalar returns scalar·p as a new polynomial.
func (p *UVPolynomial) MulScalar(scalar *Fr) *UVPolynomial {
	if p == nil || scalar == nil {
		return nil
	}
	coeffs := make(polynomial.Polynomial, len(p.coeffs))
	copy(coeffs, p.coeffs)
	s := fr.Element(*scalar)
	coeffs.ScaleInPlace(&s)
	return (&UVPolynomial{coeffs}).trim()
}

// Wipe zeroes every coefficient in place.
func (p *UVPolynomial) Wipe() {
	if p == nil {
		return
	}
	for i := range p.coeffs {
		p.coeffs[i].SetZero()
	}
}

// String never prints coefficients, they are usually secret.
func (p *UVPolynomial) String() string {
	return fmt.Sprintf("UVPolynomial{degree: %d}", p.Degree())
}

// NewSecretPolynomial creates a new secret sharing polynomial with t coefficients
// (degree t-1) whose constant term is s. A nil s is replaced by a random scalar.
// Randomness is read from r; on failure everything sampled so far is wiped.
func NewSecretPolynomial(t uint32, s *Fr, r io.Reader) (*UVPolynomial, error) {
	if t == 0 {
		return nil, fmt.Errorf("secret polynomial needs at least one coefficient")
	}
	p := &UVPolynomial{make(polynomial.Polynomial, t)}
	if s == nil {
		c, err := NewFr().Rand(r)
		if err != nil {
			p.Wipe()
			return nil, err
		}
		p.coeffs[0] = fr.Element(*c)
		c.Wipe()
	} else {
		p.coeffs[0] = fr.Element(*s)
	}
	for i := uint32(1); i < t; i++ {
		c, err := NewFr().Rand(r)
		if err != nil {
			p.Wipe()
			return nil, err
		}
		p.coeffs[i] = fr.Element(*c)
		c.Wipe()
	}
	return p, nil
}

// LagrangeAtZero returns the coefficients λᵢ with f(0) = Σ λᵢ·f(xᵢ) for any
// polynomial f of degree below len(xs):
//
//	λᵢ = ∏_(j≠i) xⱼ / (xⱼ - xᵢ)
func LagrangeAtZero(xs []*Fr) ([]*Fr, error) {
	for i := range xs {
		if xs[i].IsZero() {
			return nil, ErrInterpolationPoints
		}
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Equal(xs[j]) {
				return nil, ErrInterpolationPoints
			}
		}
	}
	lambdas := make([]*Fr, len(xs))
	for i := range xs {
		num := NewFr().One()
		den := NewFr().One()
		for j := range xs {
			if j == i {
				continue
			}
			num.Mul(num, xs[j])
			den.Mul(den, NewFr().Sub(xs[j], xs[i]))
		}
		lambdas[i] = num.Mul(num, den.Inverse(den))
	}
	return lambdas, nil
}

// InterpolationAndEval evaluates at x the unique polynomial of degree below
// len(xs) through the points (xs[i], ys[i]).
func InterpolationAndEval(x *Fr, xs []*Fr, ys []*Fr) (*Fr, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interpolation: %d abscissas but %d values", len(xs), len(ys))
	}
	// x in xs
	for i := range xs {
		if x.Equal(xs[i]) {
			return NewFr().Set(ys[i]), nil
		}
	}
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Equal(xs[j]) {
				return nil, ErrInterpolationPoints
			}
		}
	}
	eval := NewFr().Zero()
	for i := range xs {
		// ∏_(j≠i) (x - xs[j]) / (xs[i] - xs[j])
		basis := NewFr().One()
		for j := range xs {
			if j != i {
				q := NewFr().Sub(xs[i], xs[j])
				q.Inverse(q)
				basis.Mul(basis, NewFr().Sub(x, xs[j]))
				basis.Mul(basis, q)
			}
		}
		eval.Add(eval, basis.Mul(basis, ys[i]))
	}
	return eval, nil
}

// Shamir hands out secret sharing polynomials over the BLS12-381 scalar field.
type Shamir struct{}

// Modulus returns the order of the field the polynomials live in.
func (Shamir) Modulus() *big.Int {
	return Modulus()
}

// NewPolynomial returns a random polynomial of the given degree with constant term secret.
func (Shamir) NewPolynomial(secret *Fr, degree uint32, r io.Reader) (*UVPolynomial, error) {
	return NewSecretPolynomial(degree+1, secret, r)
}
