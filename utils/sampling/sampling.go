package sampling

import (
	"encoding/binary"
)

// RandUint64 reads a uniform uint64 from the PRNG.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 reads a uniform float64 in [min, max) from the PRNG.
func RandFloat64(prng PRNG, min, max float64) float64 {
	f := float64(RandUint64(prng)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// RandComplex128 reads a random complex with real and imaginary parts in
// [min, max) from the PRNG.
func RandComplex128(prng PRNG, min, max float64) complex128 {
	return complex(RandFloat64(prng, min, max), RandFloat64(prng, min, max))
}

// RandFloat64Slice fills a new slice of length n with uniform float64 values
// in [min, max).
func RandFloat64Slice(prng PRNG, n int, min, max float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = RandFloat64(prng, min, max)
	}
	return s
}
