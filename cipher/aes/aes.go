// Package aes implements the AES block cipher (FIPS 197) in its three
// standard key sizes, as an Nr-round substitution-permutation network
// over GF(2^8). Grounded on the teacher's cipher/rijndael package,
// generalized to a single (Nk, Nr)-parameterised key schedule that fully
// implements AES-192 and AES-256 rather than stubbing them.
package aes

import (
	"github.com/kdravlev/blockcipher/bitword"
	"github.com/kdravlev/blockcipher/errors"
	mathgf "github.com/kdravlev/blockcipher/math"
	"github.com/kdravlev/blockcipher/tables"
)

const blockSize = 16

// KeySize128, KeySize192, KeySize256 are the three key sizes AES
// supports, in bytes.
const (
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)

// AES is a keyed AES cipher instance with its round keys already
// expanded. Construct one with New128, New192, or New256.
type AES struct {
	nr        int
	roundKeys []roundKey
}

// New128 builds an AES-128 cipher (Nr=10) from a 16-byte key.
func New128(key []byte) (*AES, error) { return newAES(key, 4, 10) }

// New192 builds an AES-192 cipher (Nr=12) from a 24-byte key.
func New192(key []byte) (*AES, error) { return newAES(key, 6, 12) }

// New256 builds an AES-256 cipher (Nr=14) from a 32-byte key.
func New256(key []byte) (*AES, error) { return newAES(key, 8, 14) }

func newAES(key []byte, nk, nr int) (*AES, error) {
	roundKeys, err := expandKey(key, nk, nr)
	if err != nil {
		return nil, errors.Annotate(err, "aes: key expansion failed: %w")
	}

	return &AES{nr: nr, roundKeys: roundKeys}, nil
}

// BlockSize returns 16, the AES block size in bytes.
func (a *AES) BlockSize() int { return blockSize }

// Encrypt runs the standard AES encryption pipeline: an initial
// AddRoundKey, Nr-1 full rounds of SubBytes/ShiftRows/MixColumns/
// AddRoundKey, and a final round that omits MixColumns.
func (a *AES) Encrypt(block []byte) ([]byte, error) {
	state, err := loadState(block)
	if err != nil {
		return nil, err
	}

	state = addRoundKey(state, a.roundKeys[0])
	for r := 1; r < a.nr; r++ {
		state, err = subBytes(state, tables.SBOX[:])
		if err != nil {
			return nil, err
		}
		state = shiftRows(state)
		state = mixColumns(state, tables.MixColumnMatrix)
		state = addRoundKey(state, a.roundKeys[r])
	}

	state, err = subBytes(state, tables.SBOX[:])
	if err != nil {
		return nil, err
	}
	state = shiftRows(state)
	state = addRoundKey(state, a.roundKeys[a.nr])

	return storeState(state), nil
}

// Decrypt runs the straight inverse cipher: the mirror image of Encrypt
// with every step replaced by its inverse and round keys consumed in
// reverse order (spec §4.6 — the equivalent inverse cipher is not used).
func (a *AES) Decrypt(block []byte) ([]byte, error) {
	state, err := loadState(block)
	if err != nil {
		return nil, err
	}

	state = addRoundKey(state, a.roundKeys[a.nr])
	state = invShiftRows(state)
	state, err = subBytes(state, tables.INV_SBOX[:])
	if err != nil {
		return nil, err
	}

	for r := a.nr - 1; r >= 1; r-- {
		state = addRoundKey(state, a.roundKeys[r])
		state = mixColumns(state, tables.InvMixColumnMatrix)
		state = invShiftRows(state)
		state, err = subBytes(state, tables.INV_SBOX[:])
		if err != nil {
			return nil, err
		}
	}

	state = addRoundKey(state, a.roundKeys[0])
	return storeState(state), nil
}

// state is the 4x4 AES byte matrix, held as four 32-bit column words per
// spec §3: byte b[r][c] is the r-th byte (counted from the MSB) of
// word[c].
type state [4]bitword.BitWord

func loadState(block []byte) (state, error) {
	if len(block) != blockSize {
		return state{}, errors.ErrInvalidBlockSize
	}
	var s state
	for c := 0; c < 4; c++ {
		var b [4]byte
		copy(b[:], block[4*c:4*c+4])
		s[c] = bitword.FromBytes4(b)
	}
	return s, nil
}

func storeState(s state) []byte {
	out := make([]byte, blockSize)
	for c := 0; c < 4; c++ {
		b := bitword.ToBytes4(s[c])
		copy(out[4*c:4*c+4], b[:])
	}
	return out
}

func addRoundKey(s state, rk roundKey) state {
	var out state
	for c := 0; c < 4; c++ {
		out[c] = bitword.Xor(s[c], rk[c])
	}
	return out
}

func subBytes(s state, sbox []byte) (state, error) {
	var out state
	for c := 0; c < 4; c++ {
		w, err := bitword.SubstituteBytes(s[c], 4, sbox)
		if err != nil {
			return state{}, err
		}
		out[c] = w
	}
	return out, nil
}

// toMatrix spells out the state as rows x columns of bytes, row 0 first.
func toMatrix(s state) [4][4]byte {
	var m [4][4]byte
	for c := 0; c < 4; c++ {
		b := bitword.ToBytes4(s[c])
		for r := 0; r < 4; r++ {
			m[r][c] = b[r]
		}
	}
	return m
}

func fromMatrix(m [4][4]byte) state {
	var s state
	for c := 0; c < 4; c++ {
		var b [4]byte
		for r := 0; r < 4; r++ {
			b[r] = m[r][c]
		}
		s[c] = bitword.FromBytes4(b)
	}
	return s
}

// shiftRows rotates row r of the state left by r bytes.
func shiftRows(s state) state {
	m := toMatrix(s)
	var out [4][4]byte
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[r][(c+r)%4]
		}
	}
	return fromMatrix(out)
}

// invShiftRows rotates row r of the state right by r bytes.
func invShiftRows(s state) state {
	m := toMatrix(s)
	var out [4][4]byte
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[r][(c-r+4)%4]
		}
	}
	return fromMatrix(out)
}

// mixColumns replaces each column with matrix * column over GF(2^8).
func mixColumns(s state, matrix [4][4]byte) state {
	var out state
	for c := 0; c < 4; c++ {
		col := bitword.ToBytes4(s[c])
		var mixed [4]byte
		for i := 0; i < 4; i++ {
			var v byte
			for j := 0; j < 4; j++ {
				p, _ := mathgf.GF256Mul(matrix[i][j], col[j], tables.AESModulus)
				v = mathgf.GF256Add(v, p)
			}
			mixed[i] = v
		}
		out[c] = bitword.FromBytes4(mixed)
	}
	return out
}
