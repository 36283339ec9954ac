// Package bitword implements BitWord, the 64-bit bit-manipulation
// primitive every cipher layer in this toolkit is built on.
//
// A BitWord is a plain uint64 carrying no length of its own: most
// operations take the logical length (the number of significant bits,
// counted from the low end) as an explicit parameter instead of storing
// it inside the value. Keeping length explicit avoids a runtime size
// check on every arithmetic operation and lets the same BitWord flow
// through a 28-bit rotate, a 48-bit round key, and a 64-bit block
// without a wrapper type for each width.
package bitword

import (
	"encoding/binary"

	"github.com/kdravlev/blockcipher/errors"
)

// BitWord is an opaque carrier for up to 64 bits of data.
type BitWord uint64

// Zero returns the all-zero word.
func Zero() BitWord { return 0 }

// One returns the word with value 1.
func One() BitWord { return 1 }

// Ones returns the word with its low n bits set. n must be in [0,64].
func Ones(n int) (BitWord, error) {
	if n < 0 || n > 64 {
		return 0, errors.ErrInvalidWordLength
	}
	if n == 64 {
		return BitWord(^uint64(0)), nil
	}
	return BitWord(uint64(1)<<uint(n) - 1), nil
}

// Len returns the index of the highest set bit plus one, or 1 when w is
// zero (zero is conventionally treated as a one-bit word).
func Len(w BitWord) int {
	n := 0
	v := uint64(w)
	for v != 0 {
		v >>= 1
		n++
	}
	if n == 0 {
		return 1
	}
	return n
}

// And returns the bitwise AND of a and b.
func And(a, b BitWord) BitWord { return a & b }

// Or returns the bitwise OR of a and b.
func Or(a, b BitWord) BitWord { return a | b }

// Xor returns the bitwise XOR of a and b.
func Xor(a, b BitWord) BitWord { return a ^ b }

// Not returns the bitwise complement of w.
func Not(w BitWord) BitWord { return ^w }

// ShiftLeft shifts w left by k bits. k must be in [0,64).
func ShiftLeft(w BitWord, k int) (BitWord, error) {
	if k < 0 || k >= 64 {
		return 0, errors.ErrInvalidWordLength
	}
	return w << uint(k), nil
}

// ShiftRight shifts w right by k bits. k must be in [0,64).
func ShiftRight(w BitWord, k int) (BitWord, error) {
	if k < 0 || k >= 64 {
		return 0, errors.ErrInvalidWordLength
	}
	return w >> uint(k), nil
}

// Split partitions a 2m-bit logical word w into (hi, lo), each m bits
// wide. 1 <= m <= 32 and Len(w) <= 2m.
func Split(w BitWord, m int) (hi, lo BitWord, err error) {
	if m < 1 || m > 32 {
		return 0, 0, errors.ErrInvalidWordLength
	}
	if Len(w) > 2*m {
		return 0, 0, errors.ErrInvalidWordLength
	}

	mask, err := Ones(m)
	if err != nil {
		return 0, 0, err
	}

	lo = w & mask
	hi = (w >> uint(m)) & mask
	return hi, lo, nil
}

// Concatenate produces hi<<m | lo. Both hi and lo must fit in m bits,
// and 1 <= m <= 32.
func Concatenate(hi, lo BitWord, m int) (BitWord, error) {
	if m < 1 || m > 32 {
		return 0, errors.ErrInvalidWordLength
	}

	mask, err := Ones(m)
	if err != nil {
		return 0, err
	}
	if hi&^mask != 0 || lo&^mask != 0 {
		return 0, errors.ErrInvalidWordLength
	}

	return (hi << uint(m)) | lo, nil
}

// RotateLeft cyclically rotates w, considered as an n-bit word, left by
// k positions. n <= 64, k <= n, Len(w) <= n.
func RotateLeft(w BitWord, k, n int) (BitWord, error) {
	if n < 0 || n > 64 || k < 0 || k > n {
		return 0, errors.ErrInvalidWordLength
	}
	if Len(w) > n {
		return 0, errors.ErrInvalidWordLength
	}
	if n == 0 || k == 0 || k == n {
		mask, err := Ones(n)
		if err != nil {
			return 0, err
		}
		return w & mask, nil
	}

	mask, err := Ones(n)
	if err != nil {
		return 0, err
	}

	v := uint64(w) & uint64(mask)
	rotated := ((v << uint(k)) | (v >> uint(n-k))) & uint64(mask)
	return BitWord(rotated), nil
}

// Table is a dense, output-indexed permutation: entry i holds the
// 1-based input bit position (counted from the most-significant end of
// the wordLen-bit input, so 1 is its top bit) that becomes output bit
// len(table)-1-i (0-based, counted from the low end).
type Table []int

// PermuteBits applies table to w, a wordLen-bit word. Entries must be in
// [1, wordLen] and len(table) must be <= 64.
func PermuteBits(w BitWord, wordLen int, table Table) (BitWord, error) {
	if wordLen < 0 || wordLen > 64 || len(table) > 64 {
		return 0, errors.ErrInvalidPermutationTable
	}

	var out uint64
	n := len(table)
	for i, pos := range table {
		if pos < 1 || pos > wordLen {
			return 0, errors.ErrInvalidPermutationTable
		}
		bit := (uint64(w) >> uint(wordLen-pos)) & 1
		out |= bit << uint(n-1-i)
	}

	return BitWord(out), nil
}

// SubstituteBytes treats the low byteCount bytes of w, in big-endian
// order, as independent indices into sbox and replaces each with
// sbox[byte]. byteCount must be <= 8 and 8*byteCount must be >= Len(w).
func SubstituteBytes(w BitWord, byteCount int, sbox []byte) (BitWord, error) {
	if byteCount < 0 || byteCount > 8 || 8*byteCount < Len(w) {
		return 0, errors.ErrInvalidWordLength
	}
	if len(sbox) != 256 {
		return 0, errors.ErrInvalidWordLength
	}

	var out uint64
	for i := 0; i < byteCount; i++ {
		shift := uint(8 * (byteCount - 1 - i))
		b := byte(uint64(w) >> shift)
		out |= uint64(sbox[b]) << shift
	}

	return BitWord(out), nil
}

// ToBytes4 encodes the low 32 bits of w as 4 big-endian bytes.
func ToBytes4(w BitWord) [4]byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], uint32(w))
	return out
}

// FromBytes4 decodes 4 big-endian bytes into a BitWord.
func FromBytes4(b [4]byte) BitWord {
	return BitWord(binary.BigEndian.Uint32(b[:]))
}

// ToBytes8 encodes w as 8 big-endian bytes.
func ToBytes8(w BitWord) [8]byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], uint64(w))
	return out
}

// FromBytes8 decodes 8 big-endian bytes into a BitWord.
func FromBytes8(b [8]byte) BitWord {
	return BitWord(binary.BigEndian.Uint64(b[:]))
}

// ToUint16s4 splits w into four big-endian uint16 elements, most
// significant first.
func ToUint16s4(w BitWord) [4]uint16 {
	b := ToBytes8(w)
	return [4]uint16{
		binary.BigEndian.Uint16(b[0:2]),
		binary.BigEndian.Uint16(b[2:4]),
		binary.BigEndian.Uint16(b[4:6]),
		binary.BigEndian.Uint16(b[6:8]),
	}
}

// FromUint16s4 packs four big-endian uint16 elements, most significant
// first, into a BitWord.
func FromUint16s4(v [4]uint16) BitWord {
	var b [8]byte
	binary.BigEndian.PutUint16(b[0:2], v[0])
	binary.BigEndian.PutUint16(b[2:4], v[1])
	binary.BigEndian.PutUint16(b[4:6], v[2])
	binary.BigEndian.PutUint16(b[6:8], v[3])
	return FromBytes8(b)
}

// ToUint32s2 splits w into two big-endian uint32 elements, most
// significant first.
func ToUint32s2(w BitWord) [2]uint32 {
	b := ToBytes8(w)
	return [2]uint32{
		binary.BigEndian.Uint32(b[0:4]),
		binary.BigEndian.Uint32(b[4:8]),
	}
}

// FromUint32s2 packs two big-endian uint32 elements, most significant
// first, into a BitWord.
func FromUint32s2(v [2]uint32) BitWord {
	var b [8]byte
	binary.BigEndian.PutUint32(b[0:4], v[0])
	binary.BigEndian.PutUint32(b[4:8], v[1])
	return FromBytes8(b)
}
