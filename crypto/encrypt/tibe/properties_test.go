package tibe

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestTIBE_Properties(t *testing.T) {
	s := newScheme(t, 5, 3)
	keys := s.partialKeys(t, alice)
	sk, err := Combine(s.pk, s.vk, alice, keys, s.k)
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("decrypt inverts encrypt", prop.ForAll(
		func(msg []byte) bool {
			ct, err := Encrypt(s.pk, alice, msg)
			if err != nil {
				return false
			}
			decoded, err := new(Ciphertext).FromBytes(ct.ToBytes())
			if err != nil {
				return false
			}
			out, err := Decrypt(s.pk, alice, sk, decoded)
			return err == nil && string(out) == string(msg)
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("honest partial keys verify for any identity", prop.ForAll(
		func(id string, j uint32) bool {
			share := s.shares[j-1]
			key, err := ShareKeyGen(s.pk, j, share, Identity(id))
			if err != nil {
				return false
			}
			return ShareVerify(s.pk, s.vk, Identity(id), key) &&
				!ShareVerify(s.pk, s.vk, Identity(id+"."), key)
		},
		gen.AnyString(),
		gen.UInt32Range(1, 5),
	))

	properties.Property("fewer than k shares never combine", prop.ForAll(
		func(size int) bool {
			_, err := Combine(s.pk, s.vk, alice, keys[:size], s.k)
			return errors.Is(err, ErrInsufficientShares)
		},
		gen.IntRange(0, int(s.k)-1),
	))

	properties.TestingRun(t)
}
