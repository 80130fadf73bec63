package tibe_api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almogdepaz/ursa/crypto/encrypt/tibe"
)

func TestTIBE_Bytes(t *testing.T) {
	n, k := uint32(5), uint32(3)
	id := []byte("alice@example.com")
	pkBytes, vkBytes, shareBytes, err := Setup(n, k)
	require.NoError(t, err)
	require.Len(t, shareBytes, int(n))

	keyBytes := make([][]byte, 0, n)
	for j := uint32(1); j <= n; j++ {
		key, err := ShareKeyGen(pkBytes, j, shareBytes[j-1], id)
		require.NoError(t, err)
		assert.True(t, ShareVerify(pkBytes, vkBytes, id, key))
		assert.False(t, ShareVerify(pkBytes, vkBytes, []byte("mallory"), key))
		keyBytes = append(keyBytes, key)
	}

	skBytes, err := Combine(pkBytes, vkBytes, id, keyBytes[2:], k)
	require.NoError(t, err)

	ctBytes, err := Encrypt(pkBytes, id, []byte("hello-world"))
	require.NoError(t, err)
	assert.True(t, ValidateCt(pkBytes, id, ctBytes))

	msg, err := Decrypt(pkBytes, id, skBytes, ctBytes)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello-world"), msg)

	_, err = Combine(pkBytes, vkBytes, id, keyBytes[:2], k)
	assert.ErrorIs(t, err, tibe.ErrInsufficientShares)
}

func TestTIBE_BytesMalformed(t *testing.T) {
	id := []byte("bob")
	pkBytes, vkBytes, shareBytes, err := Setup(2, 1)
	require.NoError(t, err)

	_, err = ShareKeyGen(pkBytes[1:], 1, shareBytes[0], id)
	assert.ErrorIs(t, err, tibe.ErrSerialization)
	_, err = ShareKeyGen(pkBytes, 1, shareBytes[0][:10], id)
	assert.ErrorIs(t, err, tibe.ErrSerialization)
	assert.False(t, ShareVerify(pkBytes, vkBytes, id, []byte{1, 2, 3}))

	_, err = Combine(pkBytes, vkBytes[:7], id, nil, 1)
	assert.ErrorIs(t, err, tibe.ErrSerialization)
	_, err = Combine(pkBytes, vkBytes, id, [][]byte{{0}}, 1)
	assert.ErrorIs(t, err, tibe.ErrSerialization)

	assert.False(t, ValidateCt(pkBytes, id, []byte("garbage")))
	_, err = Decrypt(pkBytes, id, nil, []byte("garbage"))
	assert.ErrorIs(t, err, tibe.ErrInvalidCiphertext)

	// a public key whose g1Hat belongs to another system
	otherPk, _, _, err := Setup(2, 1)
	require.NoError(t, err)
	forged := append(append([]byte(nil), pkBytes[:2*48+2*96]...), otherPk[2*48+2*96:]...)
	_, err = Encrypt(forged, id, []byte("x"))
	assert.ErrorIs(t, err, tibe.ErrSerialization)
}

func TestEnvelope(t *testing.T) {
	pkBytes, _, _, err := Setup(1, 1)
	require.NoError(t, err)
	ct, err := Encrypt(pkBytes, []byte("carol"), []byte("payload"))
	require.NoError(t, err)

	envBytes, err := EncodeEnvelope(Envelope{ID: []byte("carol"), Ciphertext: ct})
	require.NoError(t, err)
	env, err := DecodeEnvelope(envBytes)
	require.NoError(t, err)
	assert.Equal(t, []byte("carol"), env.ID)
	assert.True(t, ValidateCt(pkBytes, env.ID, env.Ciphertext))

	_, err = DecodeEnvelope([]byte("{"))
	assert.ErrorIs(t, err, tibe.ErrSerialization)
}
