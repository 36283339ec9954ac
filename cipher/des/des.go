package des

import (
	"github.com/kdravlev/blockcipher/bitword"
	"github.com/kdravlev/blockcipher/errors"
	"github.com/kdravlev/blockcipher/tables"
)

const blockSize = 8

// DES is a keyed DES cipher instance with its 16 round subkeys already
// expanded.
type DES struct {
	roundKeys [16]bitword.BitWord
}

// New builds a DES cipher from an 8-byte key. Parity bits in positions
// 8, 16, …, 64 of the key are ignored by PC-1 and do not affect the
// round keys (spec §8).
func New(key []byte) (*DES, error) {
	roundKeys, err := expandKey(key)
	if err != nil {
		return nil, err
	}
	return &DES{roundKeys: roundKeys}, nil
}

// BlockSize returns 8, the DES block size in bytes.
func (d *DES) BlockSize() int { return blockSize }

// Encrypt applies IP, 16 Feistel rounds under K1..K16, then FP.
func (d *DES) Encrypt(block []byte) ([]byte, error) {
	return d.crypt(block, d.roundKeys[:])
}

// Decrypt applies IP, 16 Feistel rounds under K16..K1, then FP.
func (d *DES) Decrypt(block []byte) ([]byte, error) {
	var reversed [16]bitword.BitWord
	for i, k := range d.roundKeys {
		reversed[15-i] = k
	}
	return d.crypt(block, reversed[:])
}

func (d *DES) crypt(block []byte, keys []bitword.BitWord) ([]byte, error) {
	if len(block) != blockSize {
		return nil, errors.ErrInvalidBlockSize
	}

	var bb [8]byte
	copy(bb[:], block)
	w := bitword.FromBytes8(bb)

	w, err := bitword.PermuteBits(w, 64, tables.InitialPermutation)
	if err != nil {
		return nil, errors.Annotate(err, "des: IP failed: %w")
	}

	for _, k := range keys {
		w, err = feistelRound(w, k)
		if err != nil {
			return nil, err
		}
	}

	// DES skips the halves swap after the 16th round: FP expects
	// R16||L16, not the L16||R16 that 16 uniform Feistel rounds leave
	// behind. Undo the last swap before permuting.
	l, r, err := bitword.Split(w, 32)
	if err != nil {
		return nil, errors.Annotate(err, "des: pre-FP split failed: %w")
	}
	w, err = bitword.Concatenate(r, l, 32)
	if err != nil {
		return nil, errors.Annotate(err, "des: pre-FP swap failed: %w")
	}

	w, err = bitword.PermuteBits(w, 64, tables.FinalPermutation)
	if err != nil {
		return nil, errors.Annotate(err, "des: FP failed: %w")
	}

	out := bitword.ToBytes8(w)
	return out[:], nil
}

// feistelRound maps (L, R) -> (R, L ^ f(R, K)), encoded as
// concatenate(newL, newR, 32) per spec §4.3, where newL = R and
// newR = L ^ f(R, K).
func feistelRound(w, key bitword.BitWord) (bitword.BitWord, error) {
	l, r, err := bitword.Split(w, 32)
	if err != nil {
		return 0, err
	}

	fval, err := feistelF(r, key)
	if err != nil {
		return 0, err
	}

	rPrime := bitword.Xor(l, fval)
	return bitword.Concatenate(r, rPrime, 32)
}

// feistelF implements f(R, K) = P(S(E(R) ^ K)).
func feistelF(r, key bitword.BitWord) (bitword.BitWord, error) {
	expanded, err := bitword.PermuteBits(r, 32, tables.ExpansionTable)
	if err != nil {
		return 0, errors.Annotate(err, "des: E-box failed: %w")
	}

	xored := bitword.Xor(expanded, key)

	var sOut bitword.BitWord
	for i := 0; i < 8; i++ {
		shift := uint(42 - 6*i)
		group := (xored >> shift) & 0x3F
		nibble := bitword.BitWord(tables.SBoxes[i][group])
		sOut |= nibble << uint(28-4*i)
	}

	return bitword.PermuteBits(sOut, 32, tables.PPermutation)
}
