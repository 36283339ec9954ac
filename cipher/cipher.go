// Package cipher defines the shared contract every block cipher in this
// toolkit implements. It carries no algorithmic content of its own: DES,
// Triple-DES, and AES each satisfy Cipher independently, built from the
// bitword primitive.
package cipher

// Cipher is a keyed block permutation and its inverse. A Cipher's round
// keys are expanded once, at construction; Encrypt and Decrypt are then
// pure functions of the key schedule, safe to call concurrently from any
// number of goroutines (spec §5: no I/O, no shared mutable state, no
// cancellation points).
type Cipher interface {
	// Encrypt transforms one plaintext block into one ciphertext block
	// of the same length.
	Encrypt(block []byte) ([]byte, error)

	// Decrypt transforms one ciphertext block into one plaintext block
	// of the same length.
	Decrypt(block []byte) ([]byte, error)

	// BlockSize reports the fixed block size, in bytes, this cipher
	// operates on.
	BlockSize() int
}

// KeyScheduler expands raw key bytes into an ordered sequence of round
// keys. Expansion is deterministic: the same key bytes always yield
// bit-identical round keys (spec §8).
type KeyScheduler interface {
	ExpandKey(key []byte) ([][]byte, error)
}
