package aes

import (
	"github.com/kdravlev/blockcipher/bitword"
	"github.com/kdravlev/blockcipher/errors"
	"github.com/kdravlev/blockcipher/tables"
)

// roundKey is one 128-bit round key, stored as the four 32-bit column
// words the AES state itself uses.
type roundKey [4]bitword.BitWord

// expandKey runs the FIPS 197 §5.2 key expansion for the given Nk (words
// in the user key) and Nr (rounds), producing Nr+1 round keys. It is the
// single routine parameterised by (Nk, Nr) spec §9 recommends in place
// of the teacher's three separate size-specific key-schedule types.
func expandKey(key []byte, nk, nr int) ([]roundKey, error) {
	if len(key) != nk*4 {
		return nil, errors.ErrInvalidKeySize
	}

	totalWords := 4 * (nr + 1)
	w := make([]bitword.BitWord, totalWords)

	for i := 0; i < nk; i++ {
		var b [4]byte
		copy(b[:], key[4*i:4*i+4])
		w[i] = bitword.FromBytes4(b)
	}

	for i := nk; i < totalWords; i++ {
		t := w[i-1]

		switch {
		case i%nk == 0:
			rotated, err := bitword.RotateLeft(t, 8, 32)
			if err != nil {
				return nil, err
			}
			subbed, err := bitword.SubstituteBytes(rotated, 4, tables.SBOX[:])
			if err != nil {
				return nil, err
			}
			rc := bitword.BitWord(tables.Rcon[i/nk]) << 24
			t = bitword.Xor(subbed, rc)
		case nk > 6 && i%nk == 4:
			subbed, err := bitword.SubstituteBytes(t, 4, tables.SBOX[:])
			if err != nil {
				return nil, err
			}
			t = subbed
		}

		w[i] = bitword.Xor(w[i-nk], t)
	}

	roundKeys := make([]roundKey, nr+1)
	for r := 0; r <= nr; r++ {
		copy(roundKeys[r][:], w[4*r:4*r+4])
	}
	return roundKeys, nil
}
