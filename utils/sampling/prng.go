// Package sampling provides pseudo-random number generation, including a
// keyed PRNG producing a deterministic byte stream for reproducible runs.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by crypto/rand, safe for concurrent use.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with random bytes from crypto/rand.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG generates a deterministic sequence of random bytes from a key
// using the blake2b XOF. Two KeyedPRNG instances built from the same key
// produce the same byte stream, which is what makes benchmark runs
// reproducible from a seed.
// WARNING: KeyedPRNG should NOT be shared between threads; the resulting
// stream would not be deterministic for a given key.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// NewSeededPRNG creates a KeyedPRNG keyed by the 8 big-endian bytes of seed.
func NewSeededPRNG(seed uint64) (*KeyedPRNG, error) {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seed)
	return NewKeyedPRNG(key)
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with NewKeyedPRNG to instantiate
// a new PRNG that will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Uint64 returns the next 8 bytes of the stream as a big-endian uint64.
func (prng *KeyedPRNG) Uint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.xof.Read(b); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b)
}

// Float64 returns the next value of the stream as a float64 in [0, 1).
func (prng *KeyedPRNG) Float64() float64 {
	return float64(prng.Uint64()>>11) / (1 << 53)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
