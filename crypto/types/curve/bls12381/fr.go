// Package bls12381 exposes the BLS12-381 groups, the pairing and the scalar field
// behind a small engine API. Arithmetic is delegated to gnark-crypto.
package bls12381

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/sha3"
)

// FrByteSize is the length of a canonical scalar encoding.
const FrByteSize = fr.Bytes

// frWideSize bytes are read per sample so that the reduction mod r is statistically uniform.
const frWideSize = 64

var ErrInvalidScalar = errors.New("invalid scalar encoding")

// Fr is an element of the scalar field of BLS12-381.
type Fr fr.Element

func NewFr() *Fr {
	return &Fr{}
}

// Modulus returns the order r of G1, G2 and GT.
func Modulus() *big.Int {
	return fr.Modulus()
}

func FrFromInt(i int) *Fr {
	e := NewFr()
	if i < 0 {
		e.el().SetUint64(uint64(-i))
		e.el().Neg(e.el())
		return e
	}
	e.el().SetUint64(uint64(i))
	return e
}

func FrFromUInt32(i uint32) *Fr {
	e := NewFr()
	e.el().SetUint64(uint64(i))
	return e
}

func (e *Fr) el() *fr.Element {
	return (*fr.Element)(e)
}

// Rand samples a non-zero scalar from r. Read errors are returned as is; callers
// must not retry with another source.
func (e *Fr) Rand(r io.Reader) (*Fr, error) {
	buf := make([]byte, frWideSize)
	defer wipeBytes(buf)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		e.el().SetBytes(buf)
		if !e.IsZero() {
			return e, nil
		}
	}
}

func (e *Fr) Set(a *Fr) *Fr {
	*e = *a
	return e
}

func (e *Fr) Zero() *Fr {
	e.el().SetZero()
	return e
}

func (e *Fr) One() *Fr {
	e.el().SetOne()
	return e
}

func (e *Fr) IsZero() bool {
	return e.el().IsZero()
}

func (e *Fr) IsOne() bool {
	return e.el().IsOne()
}

func (e *Fr) Equal(a *Fr) bool {
	return e.el().Equal(a.el())
}

func (e *Fr) Add(a, b *Fr) *Fr {
	e.el().Add(a.el(), b.el())
	return e
}

func (e *Fr) Sub(a, b *Fr) *Fr {
	e.el().Sub(a.el(), b.el())
	return e
}

func (e *Fr) Mul(a, b *Fr) *Fr {
	e.el().Mul(a.el(), b.el())
	return e
}

func (e *Fr) Neg(a *Fr) *Fr {
	e.el().Neg(a.el())
	return e
}

// Inverse sets e = 1/a. The inverse of zero is zero.
func (e *Fr) Inverse(a *Fr) *Fr {
	e.el().Inverse(a.el())
	return e
}

// ToBytes returns the 32 byte big-endian encoding of e.
func (e *Fr) ToBytes() []byte {
	b := e.el().Bytes()
	return b[:]
}

// FromBytes decodes a canonical 32 byte big-endian scalar.
func (e *Fr) FromBytes(in []byte) (*Fr, error) {
	if len(in) != FrByteSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidScalar, FrByteSize, len(in))
	}
	e.el().SetBytes(in)
	if !bytes.Equal(e.ToBytes(), in) {
		e.Wipe()
		return nil, fmt.Errorf("%w: not reduced mod r", ErrInvalidScalar)
	}
	return e, nil
}

// Big returns e as an integer in [0, r). The caller owns the result and should
// WipeBig it once done if e is secret.
func (e *Fr) Big() *big.Int {
	return e.el().BigInt(new(big.Int))
}

// Wipe overwrites e with zero.
func (e *Fr) Wipe() {
	if e == nil {
		return
	}
	e.el().SetZero()
}

// HashToFr maps msg to a scalar as SHA3-512(dst || msg) reduced mod r.
func HashToFr(dst, msg []byte) *Fr {
	h := sha3.New512()
	h.Write(dst)
	h.Write(msg)
	e := NewFr()
	e.el().SetBytes(h.Sum(nil))
	return e
}

// WipeBig zeroes the limbs backing b.
func WipeBig(b *big.Int) {
	if b == nil {
		return
	}
	words := b.Bits()
	for i := range words {
		words[i] = 0
	}
	b.SetInt64(0)
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
