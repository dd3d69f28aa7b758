package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source is the random source identifiers are drawn from.
type Source interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSeededSource returns a reproducible source. The PCG sequence is fixed
// by the seed and does not depend on the platform.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// NewSystemSource returns a source backed by the operating system's random
// number generator. Its output differs on every run.
func NewSystemSource() Source {
	return rand.New(systemSource{})
}

type systemSource struct{}

func (systemSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error since Go 1.24.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
