package tibe

import (
	"encoding/binary"
	"fmt"
	"sync"

	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
)

var (
	dstIdentity   = []byte("URSA-TIBE-V1-ID")
	dstTag        = []byte("URSA-TIBE-V1-TAG")
	dstGenerators = []byte("URSA-TIBE-V1_BLS12381G2_XMD:SHA-256_SSWU_RO_")
	infoDEM       = []byte("URSA-TIBE-V1-DEM")
)

type fixedGenerators struct {
	g2, h1, h2 *PointG2
	err        error
}

var (
	generatorsOnce sync.Once
	generators     fixedGenerators
)

// fixed returns the generators g2, h1 and h2. They are derived once by hashing
// fixed labels to G2, so their discrete logarithms are unknown.
func fixed() (*fixedGenerators, error) {
	generatorsOnce.Do(func() {
		for _, gen := range []struct {
			label string
			out   **PointG2
		}{
			{"g2", &generators.g2},
			{"h1", &generators.h1},
			{"h2", &generators.h2},
		} {
			p, err := g2.HashToCurve([]byte(gen.label), dstGenerators)
			if err != nil {
				generators.err = fmt.Errorf("derive generator %s: %w", gen.label, err)
				return
			}
			*gen.out = p
		}
	})
	if generators.err != nil {
		return nil, generators.err
	}
	return &generators, nil
}

// identityScalar is u = SHA3-512(dst | id) mod r.
func identityScalar(id Identity) *Fr {
	return HashToFr(dstIdentity, id)
}

// identityPoint is F(ID) = g1Hat^u · h1.
func identityPoint(pk *SystemPublicKey, id Identity) *PointG2 {
	u := identityScalar(id)
	f := g2.MulScalar(g2.New(), pk.G1Hat, u)
	return g2.Add(f, f, pk.H1)
}

// tagScalar binds c1 and c2: SHA3-512(dst | c1 | len(c2) | c2) mod r.
func tagScalar(c1 *PointG1, c2 []byte) *Fr {
	msg := make([]byte, 0, G1CompressedSize+4+len(c2))
	msg = append(msg, g1.ToCompressed(c1)...)
	msg = binary.BigEndian.AppendUint32(msg, uint32(len(c2)))
	msg = append(msg, c2...)
	return HashToFr(dstTag, msg)
}

// tagPoint is W(tag) = g1Hat^tag · h2.
func tagPoint(pk *SystemPublicKey, tag *Fr) *PointG2 {
	w := g2.MulScalar(g2.New(), pk.G1Hat, tag)
	return g2.Add(w, w, pk.H2)
}
