package tibe

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	. "github.com/almogdepaz/ursa/crypto/types/curve/bls12381"
)

const (
	PublicKeySize         = 2*G1CompressedSize + 4*G2CompressedSize
	SecretShareSize       = 4 + G2CompressedSize
	PartialKeySize        = 4 + G2CompressedSize + G1CompressedSize
	CombinedKeySize       = G2CompressedSize + G1CompressedSize
	VerificationEntrySize = G1CompressedSize
	// CiphertextOverhead is the ciphertext size minus the length of c2.
	CiphertextOverhead = G1CompressedSize + 4 + 2*G2CompressedSize + FrByteSize
)

func readG1(buffer *bytes.Reader) (*PointG1, error) {
	buf := make([]byte, G1CompressedSize)
	if _, err := io.ReadFull(buffer, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	p, err := g1.FromCompressed(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return p, nil
}

func readG2(buffer *bytes.Reader) (*PointG2, error) {
	buf := make([]byte, G2CompressedSize)
	if _, err := io.ReadFull(buffer, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	p, err := g2.FromCompressed(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return p, nil
}

func readUint32(buffer *bytes.Reader) (uint32, error) {
	var v uint32
	if err := binary.Read(buffer, binary.BigEndian, &v); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return v, nil
}

func expectEOF(buffer *bytes.Reader) error {
	if buffer.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrSerialization, buffer.Len())
	}
	return nil
}

// ToBytes encodes pk as g | g1 | g2 | h1 | g1Hat | h2.
func (pk *SystemPublicKey) ToBytes() []byte {
	buffer := new(bytes.Buffer)
	buffer.Write(g1.ToCompressed(pk.G))
	buffer.Write(g1.ToCompressed(pk.G1))
	buffer.Write(g2.ToCompressed(pk.G2))
	buffer.Write(g2.ToCompressed(pk.H1))
	buffer.Write(g2.ToCompressed(pk.G1Hat))
	buffer.Write(g2.ToCompressed(pk.H2))
	return buffer.Bytes()
}

func (pk *SystemPublicKey) FromBytes(data []byte) (*SystemPublicKey, error) {
	if len(data) != PublicKeySize {
		return nil, fmt.Errorf("%w: public key wants %d bytes, got %d", ErrSerialization, PublicKeySize, len(data))
	}
	buffer := bytes.NewReader(data)
	var err error
	if pk.G, err = readG1(buffer); err != nil {
		return nil, err
	}
	if pk.G1, err = readG1(buffer); err != nil {
		return nil, err
	}
	for _, p := range []**PointG2{&pk.G2, &pk.H1, &pk.G1Hat, &pk.H2} {
		if *p, err = readG2(buffer); err != nil {
			return nil, err
		}
	}
	return pk, expectEOF(buffer)
}

// ToBytes encodes the share as index (uint32 big-endian) | value.
func (s *SecretShare) ToBytes() []byte {
	buffer := new(bytes.Buffer)
	binary.Write(buffer, binary.BigEndian, s.Index)
	buffer.Write(g2.ToCompressed(s.Value))
	return buffer.Bytes()
}

func (s *SecretShare) FromBytes(data []byte) (*SecretShare, error) {
	if len(data) != SecretShareSize {
		return nil, fmt.Errorf("%w: secret share wants %d bytes, got %d", ErrSerialization, SecretShareSize, len(data))
	}
	buffer := bytes.NewReader(data)
	var err error
	if s.Index, err = readUint32(buffer); err != nil {
		return nil, err
	}
	if s.Value, err = readG2(buffer); err != nil {
		return nil, err
	}
	return s, expectEOF(buffer)
}

// ToBytes concatenates the entries in index order.
func (vk VerificationKey) ToBytes() []byte {
	buffer := new(bytes.Buffer)
	for _, p := range vk {
		buffer.Write(g1.ToCompressed(p))
	}
	return buffer.Bytes()
}

func VerificationKeyFromBytes(data []byte) (VerificationKey, error) {
	if len(data) == 0 || len(data)%VerificationEntrySize != 0 {
		return nil, fmt.Errorf("%w: verification key length %d", ErrSerialization, len(data))
	}
	buffer := bytes.NewReader(data)
	vk := make(VerificationKey, len(data)/VerificationEntrySize)
	for i := range vk {
		p, err := readG1(buffer)
		if err != nil {
			return nil, err
		}
		vk[i] = p
	}
	return vk, expectEOF(buffer)
}

// ToBytes encodes the partial key as index | w0 | w1.
func (k *PartialDecryptionKey) ToBytes() []byte {
	buffer := new(bytes.Buffer)
	binary.Write(buffer, binary.BigEndian, k.Index)
	buffer.Write(g2.ToCompressed(k.W0))
	buffer.Write(g1.ToCompressed(k.W1))
	return buffer.Bytes()
}

func (k *PartialDecryptionKey) FromBytes(data []byte) (*PartialDecryptionKey, error) {
	if len(data) != PartialKeySize {
		return nil, fmt.Errorf("%w: partial key wants %d bytes, got %d", ErrSerialization, PartialKeySize, len(data))
	}
	buffer := bytes.NewReader(data)
	var err error
	if k.Index, err = readUint32(buffer); err != nil {
		return nil, err
	}
	if k.W0, err = readG2(buffer); err != nil {
		return nil, err
	}
	if k.W1, err = readG1(buffer); err != nil {
		return nil, err
	}
	return k, expectEOF(buffer)
}

// ToBytes encodes the key as d0 | d1.
func (k *CombinedPrivateKey) ToBytes() []byte {
	buffer := new(bytes.Buffer)
	buffer.Write(g2.ToCompressed(k.D0))
	buffer.Write(g1.ToCompressed(k.D1))
	return buffer.Bytes()
}

func (k *CombinedPrivateKey) FromBytes(data []byte) (*CombinedPrivateKey, error) {
	if len(data) != CombinedKeySize {
		return nil, fmt.Errorf("%w: private key wants %d bytes, got %d", ErrSerialization, CombinedKeySize, len(data))
	}
	buffer := bytes.NewReader(data)
	var err error
	if k.D0, err = readG2(buffer); err != nil {
		return nil, err
	}
	if k.D1, err = readG1(buffer); err != nil {
		return nil, err
	}
	return k, expectEOF(buffer)
}

// ToBytes encodes the ciphertext as c1 | len(c2) | c2 | c3 | c4 | tag.
func (c *Ciphertext) ToBytes() []byte {
	buffer := new(bytes.Buffer)
	buffer.Write(g1.ToCompressed(c.C1))
	binary.Write(buffer, binary.BigEndian, uint32(len(c.C2)))
	buffer.Write(c.C2)
	buffer.Write(g2.ToCompressed(c.C3))
	buffer.Write(g2.ToCompressed(c.C4))
	buffer.Write(c.Tag.ToBytes())
	return buffer.Bytes()
}

func (c *Ciphertext) FromBytes(data []byte) (*Ciphertext, error) {
	if len(data) < CiphertextOverhead {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrSerialization)
	}
	buffer := bytes.NewReader(data)
	var err error
	if c.C1, err = readG1(buffer); err != nil {
		return nil, err
	}
	n, err := readUint32(buffer)
	if err != nil {
		return nil, err
	}
	if uint64(n) != uint64(len(data)-CiphertextOverhead) {
		return nil, fmt.Errorf("%w: payload length %d does not match ciphertext size", ErrSerialization, n)
	}
	c.C2 = make([]byte, n)
	if _, err = io.ReadFull(buffer, c.C2); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if c.C3, err = readG2(buffer); err != nil {
		return nil, err
	}
	if c.C4, err = readG2(buffer); err != nil {
		return nil, err
	}
	tag := make([]byte, FrByteSize)
	if _, err = io.ReadFull(buffer, tag); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if c.Tag, err = NewFr().FromBytes(tag); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return c, expectEOF(buffer)
}
