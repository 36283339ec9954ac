// Package strategy dispatches the closed set of algorithm tags the CLI
// collaborator accepts ({des, tdes, aes128, aes192, aes256}) onto concrete
// cipher.Cipher constructors, per spec §6's "Cipher construction" contract.
package strategy

import (
	v "github.com/asaskevich/govalidator"

	"github.com/kdravlev/blockcipher/cipher"
	"github.com/kdravlev/blockcipher/cipher/aes"
	"github.com/kdravlev/blockcipher/cipher/des"
	"github.com/kdravlev/blockcipher/cipher/tripledes"
	blkerrors "github.com/kdravlev/blockcipher/errors"
)

// Algorithm is one of the closed set of algorithm tags the toolkit
// recognizes from the CLI collaborator.
type Algorithm string

const (
	DES       Algorithm = "des"
	TripleDES Algorithm = "tdes"
	AES128    Algorithm = "aes128"
	AES192    Algorithm = "aes192"
	AES256    Algorithm = "aes256"
)

// names is the closed set of valid tags, in CLI-facing order.
var names = []string{
	string(DES), string(TripleDES), string(AES128), string(AES192), string(AES256),
}

// Names returns the closed set of algorithm tags the CLI collaborator
// accepts.
func Names() []string {
	return append([]string(nil), names...)
}

// Valid reports whether a is one of the recognized algorithm tags.
func (a Algorithm) Valid() bool {
	return v.IsIn(string(a), names...)
}

// KeySize returns the exact key length, in bytes, a requires.
func (a Algorithm) KeySize() int {
	switch a {
	case DES:
		return 8
	case TripleDES:
		return 24
	case AES128:
		return aes.KeySize128
	case AES192:
		return aes.KeySize192
	case AES256:
		return aes.KeySize256
	default:
		return 0
	}
}

// BlockSize returns the block size, in bytes, a's cipher operates on.
func (a Algorithm) BlockSize() int {
	switch a {
	case DES, TripleDES:
		return 8
	default:
		return 16
	}
}

// Request describes a cipher-construction request: an algorithm tag plus
// the raw key bytes to build it from. New does not run govalidator
// struct validation on its tags.
type Request struct {
	Algorithm Algorithm `valid:"required"`
	Key       []byte    `valid:"required"`
}

// New builds the cipher.Cipher named by req.Algorithm from req.Key. Key
// bytes are interpreted big-endian, per spec §6.
func New(req Request) (cipher.Cipher, error) {
	if !req.Algorithm.Valid() {
		return nil, blkerrors.Annotate(blkerrors.ErrInvalidAlgorithm, "strategy: tag %q: %w", req.Algorithm)
	}

	if len(req.Key) != req.Algorithm.KeySize() {
		return nil, blkerrors.Annotate(blkerrors.ErrInvalidKeySize,
			"strategy: %s wants %d key bytes, got %d: %w",
			req.Algorithm, req.Algorithm.KeySize(), len(req.Key))
	}

	switch req.Algorithm {
	case DES:
		return des.New(req.Key)
	case TripleDES:
		return tripledes.New(req.Key)
	case AES128:
		return aes.New128(req.Key)
	case AES192:
		return aes.New192(req.Key)
	case AES256:
		return aes.New256(req.Key)
	default:
		return nil, blkerrors.ErrInvalidAlgorithm
	}
}
