package keygen_test

import (
	"testing"

	"github.com/kdravlev/blockcipher/internal/keygen"
	"github.com/kdravlev/blockcipher/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSizes(t *testing.T) {
	for _, algo := range []strategy.Algorithm{
		strategy.DES, strategy.TripleDES, strategy.AES128, strategy.AES192, strategy.AES256,
	} {
		key, err := keygen.Generate(algo)
		require.NoError(t, err)
		assert.Len(t, key, algo.KeySize())
	}
}

func TestGenerateUnknownAlgorithm(t *testing.T) {
	_, err := keygen.Generate(strategy.Algorithm("rot13"))
	assert.Error(t, err)
}

func TestGenerateIsRandom(t *testing.T) {
	a, err := keygen.Generate(strategy.AES256)
	require.NoError(t, err)
	b, err := keygen.Generate(strategy.AES256)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
