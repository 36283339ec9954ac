package aes

import (
	"testing"

	"github.com/kdravlev/blockcipher/bitword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandKeyAES128Fingerprint(t *testing.T) {
	key := []byte{
		0x2B, 0x7E, 0x15, 0x16, 0x28, 0xAE, 0xD2, 0xA6,
		0xAB, 0xF7, 0x15, 0x88, 0x09, 0xCF, 0x4F, 0x3C,
	}

	roundKeys, err := expandKey(key, 4, 10)
	require.NoError(t, err)
	require.Len(t, roundKeys, 11)

	assertWord := func(w bitword.BitWord, want uint32) {
		t.Helper()
		assert.Equal(t, want, uint32(w))
	}

	assertWord(roundKeys[0][0], 0x2B7E1516)
	assertWord(roundKeys[0][1], 0x28AED2A6)
	assertWord(roundKeys[0][2], 0xABF71588)
	assertWord(roundKeys[0][3], 0x09CF4F3C)

	assertWord(roundKeys[1][0], 0xA0FAFE17)
	assertWord(roundKeys[1][1], 0x88542CB1)
	assertWord(roundKeys[1][2], 0x23A33939)
	assertWord(roundKeys[1][3], 0x2A6C7605)

	assertWord(roundKeys[10][0], 0xD014F9A8)
	assertWord(roundKeys[10][1], 0xC9EE2589)
	assertWord(roundKeys[10][2], 0xE13F0CC8)
	assertWord(roundKeys[10][3], 0xB6630CA6)
}

func TestExpandKeyDeterministic(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}

	a, err := expandKey(key, 8, 14)
	require.NoError(t, err)
	b, err := expandKey(key, 8, 14)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExpandKeyInvalidSize(t *testing.T) {
	_, err := expandKey([]byte{0x01, 0x02}, 4, 10)
	assert.Error(t, err)
}
