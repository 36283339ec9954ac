package tables_test

import (
	"testing"

	"github.com/kdravlev/blockcipher/bitword"
	"github.com/kdravlev/blockcipher/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSBoxesAreMutualInverses(t *testing.T) {
	for x := 0; x < 256; x++ {
		got := tables.INV_SBOX[tables.SBOX[x]]
		assert.Equal(t, byte(x), got, "INV_SBOX[SBOX[0x%02X]]", x)
	}
}

func TestIPFPAreMutualInverses(t *testing.T) {
	w := bitword.BitWord(0x0123456789ABCDEF)

	ip, err := bitword.PermuteBits(w, 64, tables.InitialPermutation)
	require.NoError(t, err)
	fp, err := bitword.PermuteBits(ip, 64, tables.FinalPermutation)
	require.NoError(t, err)
	assert.Equal(t, w, fp, "FP(IP(w)) = w")

	fpFirst, err := bitword.PermuteBits(w, 64, tables.FinalPermutation)
	require.NoError(t, err)
	ipAfter, err := bitword.PermuteBits(fpFirst, 64, tables.InitialPermutation)
	require.NoError(t, err)
	assert.Equal(t, w, ipAfter, "IP(FP(w)) = w")
}

func TestDESSBoxesMatchFIPS46(t *testing.T) {
	// S1(0b011011) should select row (0,1)=01=1, column 1101=13 -> 5
	group := bitword.BitWord(0b011011)
	assert.Equal(t, byte(5), tables.SBoxes[0][group])
}
