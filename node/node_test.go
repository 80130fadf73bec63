package node

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almogdepaz/ursa/crypto/encrypt/tibe"
)

var alice = tibe.Identity("alice@example.com")

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type system struct {
	pk      *tibe.SystemPublicKey
	vk      tibe.VerificationKey
	parties []*Party
}

func newSystem(t *testing.T, n, k uint32) *system {
	t.Helper()
	pk, vk, shares, err := tibe.Setup(n, k)
	require.NoError(t, err)
	parties := make([]*Party, n)
	for i, share := range shares {
		parties[i] = NewParty(pk, share, n, testLogger())
	}
	return &system{pk: pk, vk: vk, parties: parties}
}

func requesters(parties ...Requester) []Requester {
	return parties
}

// silent never answers before the request is cancelled.
type silent struct {
	index uint32
}

func (s *silent) Index() uint32 {
	return s.index
}

func (s *silent) PartialKey(ctx context.Context, _ tibe.Identity) (*tibe.PartialDecryptionKey, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// lying answers with a key derived for another identity.
type lying struct {
	*Party
}

func (l *lying) PartialKey(ctx context.Context, _ tibe.Identity) (*tibe.PartialDecryptionKey, error) {
	return l.Party.PartialKey(ctx, tibe.Identity("mallory"))
}

// impostor answers with another party's key.
type impostor struct {
	index uint32
	real  *Party
}

func (i *impostor) Index() uint32 {
	return i.index
}

func (i *impostor) PartialKey(ctx context.Context, id tibe.Identity) (*tibe.PartialDecryptionKey, error) {
	return i.real.PartialKey(ctx, id)
}

type broken struct {
	index uint32
}

func (b *broken) Index() uint32 {
	return b.index
}

func (b *broken) PartialKey(context.Context, tibe.Identity) (*tibe.PartialDecryptionKey, error) {
	return nil, errors.New("disk on fire")
}

func TestCombiner_Honest(t *testing.T) {
	sys := newSystem(t, 5, 3)
	combiner := NewCombiner(sys.pk, sys.vk, 3, testLogger())
	rs := make([]Requester, len(sys.parties))
	for i, p := range sys.parties {
		rs[i] = p
	}

	sk, indices, err := combiner.Extract(context.Background(), alice, rs)
	require.NoError(t, err)
	assert.Len(t, indices, 3)
	assert.True(t, tibe.VerifyPrivateKey(sys.pk, alice, sk))

	ct, err := tibe.Encrypt(sys.pk, alice, []byte("hello-world"))
	require.NoError(t, err)
	msg, err := tibe.Decrypt(sys.pk, alice, sk, ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello-world"), msg)
}

func TestCombiner_ToleratesFaults(t *testing.T) {
	sys := newSystem(t, 5, 3)
	combiner := NewCombiner(sys.pk, sys.vk, 3, testLogger())
	rs := requesters(
		&silent{index: 1},
		&lying{Party: sys.parties[1]},
		sys.parties[2],
		sys.parties[3],
		sys.parties[4],
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sk, indices, err := combiner.Extract(ctx, alice, rs)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 4, 5}, indices)
	assert.True(t, tibe.VerifyPrivateKey(sys.pk, alice, sk))
}

func TestCombiner_InsufficientShares(t *testing.T) {
	sys := newSystem(t, 4, 3)
	combiner := NewCombiner(sys.pk, sys.vk, 3, testLogger())
	rs := requesters(
		sys.parties[0],
		&broken{index: 2},
		&impostor{index: 3, real: sys.parties[0]},
		&lying{Party: sys.parties[3]},
	)

	_, _, err := combiner.Extract(context.Background(), alice, rs)
	assert.ErrorIs(t, err, tibe.ErrInsufficientShares)
	assert.ErrorIs(t, err, tibe.ErrVerificationFailure)
}

func TestCombiner_Duplicates(t *testing.T) {
	sys := newSystem(t, 3, 2)
	combiner := NewCombiner(sys.pk, sys.vk, 2, testLogger())
	rs := requesters(sys.parties[0], sys.parties[0])

	_, _, err := combiner.Extract(context.Background(), alice, rs)
	assert.ErrorIs(t, err, tibe.ErrInsufficientShares)
	assert.ErrorIs(t, err, tibe.ErrDuplicateShareIndex)
}

func TestCombiner_Cancelled(t *testing.T) {
	sys := newSystem(t, 3, 2)
	combiner := NewCombiner(sys.pk, sys.vk, 2, testLogger())
	rs := requesters(sys.parties[0], &silent{index: 2}, &silent{index: 3})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := combiner.Extract(ctx, alice, rs)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParty_Stop(t *testing.T) {
	sys := newSystem(t, 2, 1)
	party := sys.parties[0]
	assert.Equal(t, uint32(1), party.Index())

	key, err := party.PartialKey(context.Background(), alice)
	require.NoError(t, err)
	assert.True(t, tibe.ShareVerify(sys.pk, sys.vk, alice, key))

	party.Stop()
	party.Stop()
	_, err = party.PartialKey(context.Background(), alice)
	assert.ErrorIs(t, err, ErrStopped)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sys.parties[1].PartialKey(ctx, alice)
	assert.ErrorIs(t, err, context.Canceled)
}
