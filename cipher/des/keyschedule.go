// Package des implements the DES block cipher: a 16-round Feistel
// network keyed by a PC-1/PC-2 key schedule, built entirely out of
// bitword operations. Grounded on the teacher's cipher/des package,
// rebuilt over the BitWord primitive instead of raw byte slices.
package des

import (
	"github.com/kdravlev/blockcipher/bitword"
	"github.com/kdravlev/blockcipher/errors"
	"github.com/kdravlev/blockcipher/tables"
)

const (
	keySize    = 8
	numRounds  = 16
	halfWidth  = 28
	subkeySize = 48
)

// expandKey runs the DES key schedule: PC-1 reduces the 64-bit key to a
// (C0, D0) pair, each round rotates both halves per the fixed shift
// schedule, and PC-2 reduces the rotated pair to a 48-bit round subkey.
func expandKey(key []byte) ([16]bitword.BitWord, error) {
	var roundKeys [16]bitword.BitWord

	if len(key) != keySize {
		return roundKeys, errors.ErrInvalidKeySize
	}

	var kb [8]byte
	copy(kb[:], key)
	keyWord := bitword.FromBytes8(kb)

	permuted, err := bitword.PermuteBits(keyWord, 64, tables.PC1)
	if err != nil {
		return roundKeys, errors.Annotate(err, "des: PC-1 failed: %w")
	}

	c, d, err := bitword.Split(permuted, halfWidth)
	if err != nil {
		return roundKeys, errors.Annotate(err, "des: splitting PC-1 output failed: %w")
	}

	for i := 0; i < numRounds; i++ {
		c, err = bitword.RotateLeft(c, tables.KeyShifts[i], halfWidth)
		if err != nil {
			return roundKeys, err
		}
		d, err = bitword.RotateLeft(d, tables.KeyShifts[i], halfWidth)
		if err != nil {
			return roundKeys, err
		}

		cd, err := bitword.Concatenate(c, d, halfWidth)
		if err != nil {
			return roundKeys, err
		}

		roundKeys[i], err = bitword.PermuteBits(cd, 56, tables.PC2)
		if err != nil {
			return roundKeys, errors.Annotate(err, "des: PC-2 failed: %w")
		}
	}

	return roundKeys, nil
}
