package bls12381

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestFr_Bytes(t *testing.T) {
	x, err := NewFr().Rand(rand.Reader)
	require.NoError(t, err)
	y, err := NewFr().FromBytes(x.ToBytes())
	require.NoError(t, err)
	assert.True(t, x.Equal(y))

	// r itself is not a canonical encoding
	_, err = NewFr().FromBytes(Modulus().FillBytes(make([]byte, FrByteSize)))
	assert.ErrorIs(t, err, ErrInvalidScalar)

	_, err = NewFr().FromBytes(make([]byte, FrByteSize-1))
	assert.ErrorIs(t, err, ErrInvalidScalar)
}

func TestFr_Rand(t *testing.T) {
	_, err := NewFr().Rand(failingReader{})
	assert.Error(t, err)

	// an all-zero stream only yields zero, which is rejected until the stream ends
	_, err = NewFr().Rand(bytes.NewReader(make([]byte, 3*frWideSize)))
	assert.Error(t, err)
}

func TestFr_Arithmetic(t *testing.T) {
	a := FrFromInt(7)
	b := FrFromInt(-3)
	assert.True(t, NewFr().Add(a, b).Equal(FrFromInt(4)))
	assert.True(t, NewFr().Sub(a, a).IsZero())
	inv := NewFr().Inverse(a)
	assert.True(t, NewFr().Mul(a, inv).IsOne())
	assert.True(t, NewFr().Neg(b).Equal(FrFromUInt32(3)))

	a.Wipe()
	assert.True(t, a.IsZero())
}

func TestHashToFr(t *testing.T) {
	a := HashToFr([]byte("dst-a"), []byte("msg"))
	b := HashToFr([]byte("dst-a"), []byte("msg"))
	c := HashToFr([]byte("dst-b"), []byte("msg"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestG1_Compressed(t *testing.T) {
	g1 := NewG1()
	x, _ := NewFr().Rand(rand.Reader)
	p := g1.MulScalar(g1.New(), g1.One(), x)
	q, err := g1.FromCompressed(g1.ToCompressed(p))
	require.NoError(t, err)
	assert.True(t, g1.Equal(p, q))
	assert.True(t, g1.IsValid(q))
	assert.False(t, g1.IsValid(g1.Zero()))

	_, err = g1.FromCompressed(make([]byte, G1CompressedSize+1))
	assert.ErrorIs(t, err, ErrInvalidPoint)

	junk := bytes.Repeat([]byte{0xff}, G1CompressedSize)
	_, err = g1.FromCompressed(junk)
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestG2_Compressed(t *testing.T) {
	g2 := NewG2()
	x, _ := NewFr().Rand(rand.Reader)
	p := g2.MulScalar(g2.New(), g2.One(), x)
	q, err := g2.FromCompressed(g2.ToCompressed(p))
	require.NoError(t, err)
	assert.True(t, g2.Equal(p, q))

	junk := bytes.Repeat([]byte{0xff}, G2CompressedSize)
	_, err = g2.FromCompressed(junk)
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestG1_AddSub(t *testing.T) {
	g1 := NewG1()
	a := g1.MulScalar(g1.New(), g1.One(), FrFromInt(5))
	b := g1.MulScalar(g1.New(), g1.One(), FrFromInt(3))
	sum := g1.Add(g1.New(), a, b)
	assert.True(t, g1.Equal(sum, g1.MulScalar(g1.New(), g1.One(), FrFromInt(8))))
	diff := g1.Sub(g1.New(), a, a)
	assert.True(t, g1.IsZero(diff))
}

func TestMultiExp(t *testing.T) {
	g1 := NewG1()
	g2 := NewG2()
	scalars := []*Fr{FrFromInt(2), FrFromInt(3), FrFromInt(4)}
	p1 := []*PointG1{g1.One(), g1.One(), g1.One()}
	p2 := []*PointG2{g2.One(), g2.One(), g2.One()}

	r1, err := g1.MultiExp(g1.New(), p1, scalars)
	require.NoError(t, err)
	assert.True(t, g1.Equal(r1, g1.MulScalar(g1.New(), g1.One(), FrFromInt(9))))

	r2, err := g2.MultiExp(g2.New(), p2, scalars)
	require.NoError(t, err)
	assert.True(t, g2.Equal(r2, g2.MulScalar(g2.New(), g2.One(), FrFromInt(9))))

	_, err = g1.MultiExp(g1.New(), p1[:2], scalars)
	assert.Error(t, err)
}

func TestHashToCurve(t *testing.T) {
	g2 := NewG2()
	a, err := g2.HashToCurve([]byte("m"), []byte("DST-A"))
	require.NoError(t, err)
	b, err := g2.HashToCurve([]byte("m"), []byte("DST-A"))
	require.NoError(t, err)
	c, err := g2.HashToCurve([]byte("m"), []byte("DST-B"))
	require.NoError(t, err)
	assert.True(t, g2.Equal(a, b))
	assert.False(t, g2.Equal(a, c))
	assert.True(t, g2.IsValid(a))
}

func TestPairingEngine(t *testing.T) {
	g1 := NewG1()
	g2 := NewG2()
	gt := NewGT()
	x, _ := NewFr().Rand(rand.Reader)
	y, _ := NewFr().Rand(rand.Reader)
	xy := NewFr().Mul(x, y)

	gx := g1.MulScalar(g1.New(), g1.One(), x)
	hy := g2.MulScalar(g2.New(), g2.One(), y)
	gxy := g1.MulScalar(g1.New(), g1.One(), xy)

	assert.True(t, NewPairingEngine().AddPair(gx, hy).AddPairInv(gxy, g2.One()).Check())
	assert.False(t, NewPairingEngine().AddPair(gx, hy).AddPairInv(gx, g2.One()).Check())

	left := NewPairingEngine().AddPair(gx, hy).Result()
	right := NewPairingEngine().AddPair(gxy, g2.One()).Result()
	assert.True(t, gt.Equal(left, right))

	// e(a,b)·e(a,b)^-1 = 1
	inv := gt.Inverse(gt.New(), left)
	assert.True(t, gt.IsOne(gt.Mul(gt.New(), left, inv)))
	assert.Len(t, gt.ToBytes(left), GTSize)

	e := NewPairingEngine().AddPair(gx, hy)
	e.Reset()
	assert.True(t, gt.IsOne(e.Result()))
	assert.True(t, NewPairingEngine().AddPair(g1.Zero(), hy).Check())
}
