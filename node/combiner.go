package node

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/almogdepaz/ursa/crypto/encrypt/tibe"
)

// Combiner collects partial keys from parties and combines the first k that verify.
type Combiner struct {
	pk  *tibe.SystemPublicKey
	vk  tibe.VerificationKey
	k   uint32
	log *logrus.Entry
}

func NewCombiner(pk *tibe.SystemPublicKey, vk tibe.VerificationKey, k uint32, log *logrus.Entry) *Combiner {
	return &Combiner{pk: pk, vk: vk, k: k, log: log.WithField("role", "combiner")}
}

type response struct {
	index uint32
	key   *tibe.PartialDecryptionKey
	err   error
}

// Extract asks every party for its partial key of id concurrently. Responses
// are verified as they arrive; once k verified keys are in, outstanding
// requests are cancelled and the combined key is returned with the indices it
// was built from, in ascending order.
func (c *Combiner) Extract(ctx context.Context, id tibe.Identity, parties []Requester) (*tibe.CombinedPrivateKey, []uint32, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// buffered so that late responders never block once we return
	results := make(chan response, len(parties))
	var wg sync.WaitGroup
	for _, party := range parties {
		wg.Add(1)
		go func(r Requester) {
			defer wg.Done()
			key, err := r.PartialKey(ctx, id)
			results <- response{index: r.Index(), key: key, err: err}
		}(party)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	verified := make([]*tibe.PartialDecryptionKey, 0, c.k)
	seen := make(map[uint32]struct{}, c.k)
	var failures []error
	for {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		case res, ok := <-results:
			if !ok {
				// silent parties return once the caller's context ends
				if err := ctx.Err(); err != nil {
					return nil, nil, err
				}
				err := fmt.Errorf("%w: %d of %d partial keys verified", tibe.ErrInsufficientShares, len(verified), c.k)
				if len(failures) > 0 {
					err = fmt.Errorf("%w: %w", err, errors.Join(failures...))
				}
				return nil, nil, err
			}
			if err := c.check(id, res, seen); err != nil {
				c.log.WithError(err).WithField("party", res.index).Warn("[Combiner] rejected response")
				failures = append(failures, err)
				continue
			}
			seen[res.index] = struct{}{}
			verified = append(verified, res.key)
			if uint32(len(verified)) < c.k {
				continue
			}
			cancel()
			sk, err := tibe.Combine(c.pk, c.vk, id, verified, c.k)
			if err != nil {
				return nil, nil, err
			}
			indices := make([]uint32, len(verified))
			for i, key := range verified {
				indices[i] = key.Index
			}
			sort.Slice(indices, func(a, b int) bool { return indices[a] < indices[b] })
			c.log.WithField("indices", indices).Info("[Combiner] identity key combined")
			return sk, indices, nil
		}
	}
}

func (c *Combiner) check(id tibe.Identity, res response, seen map[uint32]struct{}) error {
	if res.err != nil {
		return fmt.Errorf("party %d: %w", res.index, res.err)
	}
	if res.key == nil || res.key.Index != res.index {
		return fmt.Errorf("party %d: %w: index mismatch", res.index, tibe.ErrVerificationFailure)
	}
	if _, ok := seen[res.index]; ok {
		return fmt.Errorf("party %d: %w", res.index, tibe.ErrDuplicateShareIndex)
	}
	if !tibe.ShareVerify(c.pk, c.vk, id, res.key) {
		return fmt.Errorf("party %d: %w", res.index, tibe.ErrVerificationFailure)
	}
	return nil
}
