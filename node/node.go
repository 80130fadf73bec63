// Package node runs the parties of a threshold IBE system and collects their
// partial keys.
package node

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/almogdepaz/ursa/crypto/encrypt/tibe"
)

var ErrStopped = errors.New("party stopped")

// Requester serves partial keys for one share index.
type Requester interface {
	Index() uint32
	PartialKey(ctx context.Context, id tibe.Identity) (*tibe.PartialDecryptionKey, error)
}

// Party owns one secret share and derives partial keys with it.
type Party struct {
	index   uint32
	parties uint32
	pk      *tibe.SystemPublicKey
	log     *logrus.Entry

	lock  sync.Mutex
	share *tibe.SecretShare
}

// NewParty takes ownership of share. n bounds the share index.
func NewParty(pk *tibe.SystemPublicKey, share *tibe.SecretShare, n uint32, log *logrus.Entry) *Party {
	return &Party{
		index:   share.Index,
		parties: n,
		pk:      pk,
		share:   share,
		log:     log.WithField("party", share.Index),
	}
}

func (p *Party) Index() uint32 {
	return p.index
}

func (p *Party) PartialKey(ctx context.Context, id tibe.Identity) (*tibe.PartialDecryptionKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.share == nil {
		return nil, ErrStopped
	}
	key, err := tibe.ShareKeyGen(p.pk, p.index, p.share, id, tibe.WithParties(p.parties), tibe.WithLogger(p.log))
	if err != nil {
		p.log.WithError(err).Warn("[Party] partial key failed")
		return nil, err
	}
	return key, nil
}

// Stop wipes the share. Later requests fail with ErrStopped.
func (p *Party) Stop() {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.share == nil {
		return
	}
	p.share.Wipe()
	p.share = nil
	p.log.Debug("[Party] stopped")
}
