// Package random provides the randomness sources injected into the
// simulation engines.
//
// Every engine method that needs randomness takes a Source explicitly.
// A run is reproducible from its root seed: New(seed) always yields the
// same stream, and Split derives independent child streams so that
// concurrent simulations stay deterministic.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is the subset of *rand.Rand used by the engines.
type Source interface {
	IntN(n int) int
	Float64() float64
	Uint64() uint64
	Shuffle(n int, swap func(i, j int))
}

// streamIncrement decorrelates the two PCG words derived from one seed.
const streamIncrement = 0x9e3779b97f4a7c15

// New returns a deterministic PCG stream for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^streamIncrement))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// SplitSeeds draws n child seeds from src. Streams built from them with
// New share no state with each other or with src.
func SplitSeeds(src Source, n int) []uint64 {
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = src.Uint64()
	}
	return seeds
}
