package tibe

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/sirupsen/logrus"

	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
	poly "github.com/almogdepaz/ursa/crypto/types/poly/bls12381"
)

// SecretPolynomial is a sharing polynomial handed out by a SharingProvider.
type SecretPolynomial interface {
	Eval(x *Fr) *Fr
	Wipe()
}

// SharingProvider creates sharing polynomials over a prime field. Its modulus
// must be the BLS12-381 group order.
type SharingProvider interface {
	Modulus() *big.Int
	NewPolynomial(secret *Fr, degree uint32, r io.Reader) (SecretPolynomial, error)
}

type shamirProvider struct {
	poly.Shamir
}

func (s shamirProvider) NewPolynomial(secret *Fr, degree uint32, r io.Reader) (SecretPolynomial, error) {
	p, err := s.Shamir.NewPolynomial(secret, degree, r)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NewShamirProvider returns the default provider backed by package poly.
func NewShamirProvider() SharingProvider {
	return shamirProvider{}
}

// Args holds the optional parameters of the scheme operations.
type Args struct {
	rand    io.Reader
	sharing SharingProvider
	log     *logrus.Entry
	parties uint32
}

// Option customizes Args.
type Option func(args *Args)

// WithRandom sets the random source. crypto/rand.Reader is used by default.
func WithRandom(r io.Reader) Option {
	return func(args *Args) {
		args.rand = r
	}
}

// WithSharing replaces the secret sharing provider used by Setup.
func WithSharing(s SharingProvider) Option {
	return func(args *Args) {
		args.sharing = s
	}
}

// WithLogger sets the logger. Nothing is logged by default.
func WithLogger(log *logrus.Entry) Option {
	return func(args *Args) {
		args.log = log
	}
}

// WithParties bounds share indices by n in ShareKeyGen.
func WithParties(n uint32) Option {
	return func(args *Args) {
		args.parties = n
	}
}

func newArgs(options []Option) *Args {
	args := &Args{
		rand:    rand.Reader,
		sharing: NewShamirProvider(),
	}
	for _, option := range options {
		option(args)
	}
	if args.log == nil {
		args.log = discardLogger()
	}
	return args
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
