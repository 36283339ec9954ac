// Package keyfile is the key-file collaborator described in spec §6: key
// files are flat concatenations of chunkio.ChunkSize-byte chunks, and a
// mis-sized file is rejected here, before the bytes ever reach a cipher
// constructor.
package keyfile

import (
	"fmt"
	"os"

	blkerrors "github.com/kdravlev/blockcipher/errors"
	"github.com/kdravlev/blockcipher/internal/chunkio"
	"github.com/kdravlev/blockcipher/internal/strategy"
)

// Read loads the key file at path and validates it against algo's
// required key size.
func Read(path string, algo strategy.Algorithm) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keyfile: read %s: %w", path, err)
	}

	if len(data)%chunkio.ChunkSize != 0 {
		return nil, blkerrors.Annotate(blkerrors.ErrInvalidKeyFile,
			"keyfile: %s is %d bytes, not a multiple of %d: %w", path, len(data), chunkio.ChunkSize)
	}

	if len(data) != algo.KeySize() {
		return nil, blkerrors.Annotate(blkerrors.ErrInvalidKeyFile,
			"keyfile: %s holds %d key bytes, %s wants %d: %w", path, len(data), algo, algo.KeySize())
	}

	return data, nil
}

// Write writes key to path. Key files carry raw key bytes only, owner
// read/write permissions, matching the sensitivity of their content.
func Write(path string, key []byte) error {
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return fmt.Errorf("keyfile: write %s: %w", path, err)
	}
	return nil
}
