package bitword_test

import (
	"testing"

	"github.com/kdravlev/blockcipher/bitword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLen(t *testing.T) {
	tests := []struct {
		w    bitword.BitWord
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{0xFF, 8},
		{0x100, 9},
		{bitword.BitWord(1) << 63, 64},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bitword.Len(tt.w), "Len(0x%X)", uint64(tt.w))
	}
}

func TestOnes(t *testing.T) {
	got, err := bitword.Ones(4)
	require.NoError(t, err)
	assert.Equal(t, bitword.BitWord(0x0F), got)

	got, err = bitword.Ones(64)
	require.NoError(t, err)
	assert.Equal(t, bitword.BitWord(^uint64(0)), got)

	_, err = bitword.Ones(65)
	assert.Error(t, err)
}

func TestSplitConcatenateRoundTrip(t *testing.T) {
	for m := 1; m <= 32; m++ {
		mask, err := bitword.Ones(2 * m)
		require.NoError(t, err)

		w := bitword.BitWord(0x1234567890ABCDEF) & mask
		hi, lo, err := bitword.Split(w, m)
		require.NoError(t, err)

		got, err := bitword.Concatenate(hi, lo, m)
		require.NoError(t, err)
		assert.Equal(t, w, got, "m=%d", m)
	}
}

func TestSplitOutOfRange(t *testing.T) {
	_, _, err := bitword.Split(bitword.BitWord(0xFFFF), 4)
	assert.Error(t, err)
}

func TestRotateLeftRoundTrip(t *testing.T) {
	w := bitword.BitWord(0b1011)
	for k := 0; k <= 28; k++ {
		rotated, err := bitword.RotateLeft(w, k, 28)
		require.NoError(t, err)

		back, err := bitword.RotateLeft(rotated, 28-k, 28)
		require.NoError(t, err)
		assert.Equal(t, w, back, "k=%d", k)
	}
}

func TestPermuteBitsIdentity(t *testing.T) {
	w := bitword.BitWord(0b10110101)
	table := bitword.Table{1, 2, 3, 4, 5, 6, 7, 8}

	got, err := bitword.PermuteBits(w, 8, table)
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestPermuteBitsReversal(t *testing.T) {
	w := bitword.BitWord(0b10110100)
	table := bitword.Table{8, 7, 6, 5, 4, 3, 2, 1}

	got, err := bitword.PermuteBits(w, 8, table)
	require.NoError(t, err)
	assert.Equal(t, bitword.BitWord(0b00101101), got)
}

func TestPermuteBitsOutOfRange(t *testing.T) {
	_, err := bitword.PermuteBits(bitword.BitWord(0xFF), 8, bitword.Table{9})
	assert.Error(t, err)
}

func TestSubstituteBytes(t *testing.T) {
	sbox := make([]byte, 256)
	for i := range sbox {
		sbox[i] = byte(255 - i)
	}

	w := bitword.BitWord(0x0102)
	got, err := bitword.SubstituteBytes(w, 2, sbox)
	require.NoError(t, err)
	assert.Equal(t, bitword.BitWord(0xFEFD), got)
}

func TestBytesRoundTrip(t *testing.T) {
	w := bitword.BitWord(0x0123456789ABCDEF)
	assert.Equal(t, w, bitword.FromBytes8(bitword.ToBytes8(w)))

	w32 := bitword.BitWord(0xDEADBEEF)
	assert.Equal(t, w32, bitword.FromBytes4(bitword.ToBytes4(w32)))
}

func TestUint16sAndUint32sRoundTrip(t *testing.T) {
	w := bitword.BitWord(0x0102030405060708)
	assert.Equal(t, w, bitword.FromUint16s4(bitword.ToUint16s4(w)))
	assert.Equal(t, w, bitword.FromUint32s2(bitword.ToUint32s2(w)))
}

func TestLogicalOps(t *testing.T) {
	a := bitword.BitWord(0b1100)
	b := bitword.BitWord(0b1010)

	assert.Equal(t, bitword.BitWord(0b1000), bitword.And(a, b))
	assert.Equal(t, bitword.BitWord(0b1110), bitword.Or(a, b))
	assert.Equal(t, bitword.BitWord(0b0110), bitword.Xor(a, b))
}

func TestShifts(t *testing.T) {
	w := bitword.BitWord(1)

	left, err := bitword.ShiftLeft(w, 4)
	require.NoError(t, err)
	assert.Equal(t, bitword.BitWord(16), left)

	right, err := bitword.ShiftRight(left, 4)
	require.NoError(t, err)
	assert.Equal(t, w, right)

	_, err = bitword.ShiftLeft(w, 64)
	assert.Error(t, err)
}
