// Package sampling provides deterministic generation of random scalars and
// sample points, used by the randomized tests and benchmarks of this module.
package sampling

import (
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of pseudo-random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG deterministically generates a sequence of pseudo-random bytes
// from a key, using the blake2b XOF. Two KeyedPRNG instances created with
// the same key produce the same stream, which makes randomized tests
// reproducible.
//
// KeyedPRNG is not safe for concurrent use: interleaved reads from multiple
// goroutines make the consumed sequence non-deterministic.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key. A nil key is
// treated as an empty key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	var err error
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG. The key can be passed
// to NewKeyedPRNG to reproduce the same stream.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read fills p with pseudo-random bytes.
func (prng *KeyedPRNG) Read(p []byte) (n int, err error) {
	return prng.xof.Read(p)
}

// Reset rewinds the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
