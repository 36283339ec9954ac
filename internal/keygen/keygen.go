// Package keygen generates fresh key material for the "generate-key" CLI
// subcommand.
package keygen

import (
	"crypto/rand"
	"fmt"

	"github.com/kdravlev/blockcipher/internal/strategy"
)

// Generate returns algo.KeySize() fresh random bytes read from
// crypto/rand, suitable as key material for algo.
func Generate(algo strategy.Algorithm) ([]byte, error) {
	if !algo.Valid() {
		return nil, fmt.Errorf("keygen: unknown algorithm %q", algo)
	}

	key := make([]byte, algo.KeySize())
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("keygen: %w", err)
	}
	return key, nil
}
