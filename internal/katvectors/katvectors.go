// Package katvectors loads the known-answer test vectors for des,
// tripledes and aes from a single YAML fixture. This package's own tests
// run the fixture through all three ciphers; the cipher packages' tests
// carry their own literal copies of the same vectors.
package katvectors

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Vector is one known-answer case: a key, a plaintext block and the
// ciphertext block it must encrypt to.
type Vector struct {
	Key        string `yaml:"key"`
	Plaintext  string `yaml:"plaintext"`
	Ciphertext string `yaml:"ciphertext"`
}

// Set groups the known-answer vectors by algorithm.
type Set struct {
	DES       []Vector `yaml:"des"`
	TripleDES []Vector `yaml:"tripledes"`
	AES128    []Vector `yaml:"aes128"`
	AES192    []Vector `yaml:"aes192"`
	AES256    []Vector `yaml:"aes256"`
}

// Bytes hex-decodes the three fields of a Vector.
func (v Vector) Bytes() (key, plaintext, ciphertext []byte, err error) {
	key, err = hex.DecodeString(v.Key)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("katvectors: decode key: %w", err)
	}
	plaintext, err = hex.DecodeString(v.Plaintext)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("katvectors: decode plaintext: %w", err)
	}
	ciphertext, err = hex.DecodeString(v.Ciphertext)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("katvectors: decode ciphertext: %w", err)
	}
	return key, plaintext, ciphertext, nil
}

// Load reads and parses testdata/vectors.yaml. The fixture path is
// resolved relative to this source file rather than the caller's working
// directory, so Load works the same whether it's called from this
// package's own tests or from another package's test binary.
func Load() (*Set, error) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("katvectors: cannot locate source file")
	}
	path := filepath.Join(filepath.Dir(thisFile), "testdata", "vectors.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("katvectors: read %s: %w", path, err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("katvectors: parse %s: %w", path, err)
	}
	return &set, nil
}
