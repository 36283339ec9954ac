// Package errors represents some useful helpers for error-handling improvement.
package errors

import "fmt"

// ConstError is just a simple string error.
type ConstError string

// type check
var _ error = (*ConstError)(nil)

// Error implements [error] interface for ConstError.
func (e ConstError) Error() string {
	return string(e)
}

// Annotate wraps err with message unless err is nil.
func Annotate(err error, format string, args ...any) (annotated error) {
	if err == nil {
		return err
	}

	return fmt.Errorf(format, append(args, err)...)
}

// Sentinel errors returned by the bit-word primitive and the block
// ciphers built on it.  Every one of these is a precondition violation:
// the caller supplied inconsistent lengths, a malformed table, or key
// material of the wrong size.  None of them is recoverable by the core
// itself — the operation that triggered it is simply aborted.
const (
	// ErrInvalidWordLength is returned when a BitWord operation is asked
	// to treat a value as having a logical length that its content does
	// not fit in, or a length parameter falls outside its valid range.
	ErrInvalidWordLength = ConstError("bitword: invalid word length")

	// ErrInvalidPermutationTable is returned when a permutation table is
	// malformed: an entry out of range, or a table longer than 64 bits.
	ErrInvalidPermutationTable = ConstError("bitword: invalid permutation table")

	// ErrInvalidKeySize is returned when key material does not match the
	// size a cipher requires.
	ErrInvalidKeySize = ConstError("cipher: invalid key size")

	// ErrInvalidBlockSize is returned when a block does not match a
	// cipher's fixed block size.
	ErrInvalidBlockSize = ConstError("cipher: invalid block size")

	// ErrInvalidAlgorithm is returned by the strategy layer when an
	// algorithm tag is not one of the closed set the toolkit supports.
	ErrInvalidAlgorithm = ConstError("strategy: unknown algorithm")

	// ErrInvalidKeyFile is returned by the key-file collaborator when a
	// key file's length is not a multiple of 8 bytes or does not match
	// the key size the selected algorithm requires.
	ErrInvalidKeyFile = ConstError("keyfile: invalid key file size")
)
