// Package tripledes implements Triple-DES as a trivial sequential
// composition of three independently-keyed DES instances: spec §4.4
// mandates E·E·E under three independent 64-bit subkeys, not the
// 2-key encrypt-decrypt-encrypt (EDE) variant the teacher's own
// cipher/tripledes package used.
package tripledes

import (
	"github.com/kdravlev/blockcipher/cipher/des"
	"github.com/kdravlev/blockcipher/errors"
)

const (
	blockSize = 8
	keySize   = 24 // three independent 8-byte DES keys
)

// TripleDES is three DES instances composed in encrypt/decrypt order.
type TripleDES struct {
	d0, d1, d2 *des.DES
}

// New builds a Triple-DES cipher from a 24-byte key: the first 8 bytes
// key d0, the next 8 key d1, the last 8 key d2.
func New(key []byte) (*TripleDES, error) {
	if len(key) != keySize {
		return nil, errors.ErrInvalidKeySize
	}

	d0, err := des.New(key[0:8])
	if err != nil {
		return nil, errors.Annotate(err, "tripledes: building d0 failed: %w")
	}
	d1, err := des.New(key[8:16])
	if err != nil {
		return nil, errors.Annotate(err, "tripledes: building d1 failed: %w")
	}
	d2, err := des.New(key[16:24])
	if err != nil {
		return nil, errors.Annotate(err, "tripledes: building d2 failed: %w")
	}

	return &TripleDES{d0: d0, d1: d1, d2: d2}, nil
}

// BlockSize returns 8, the Triple-DES block size in bytes.
func (t *TripleDES) BlockSize() int { return blockSize }

// Encrypt computes d2.Encrypt(d1.Encrypt(d0.Encrypt(block))).
func (t *TripleDES) Encrypt(block []byte) ([]byte, error) {
	b, err := t.d0.Encrypt(block)
	if err != nil {
		return nil, err
	}
	b, err = t.d1.Encrypt(b)
	if err != nil {
		return nil, err
	}
	return t.d2.Encrypt(b)
}

// Decrypt computes d0.Decrypt(d1.Decrypt(d2.Decrypt(block))).
func (t *TripleDES) Decrypt(block []byte) ([]byte, error) {
	b, err := t.d2.Decrypt(block)
	if err != nil {
		return nil, err
	}
	b, err = t.d1.Decrypt(b)
	if err != nil {
		return nil, err
	}
	return t.d0.Decrypt(b)
}
