package tealeaf

import "math/rand"

// NoiseSource produces the deterministic 0/1 stream that seeds the initial
// field. Implementations must yield the identical sequence for the identical
// seed on every platform.
type NoiseSource interface {
	// Bits returns the next n bits of the stream, each 0 or 1.
	Bits(n int) []uint8
}

// randNoise is the default NoiseSource, backed by the stable Go 1 stream of
// math/rand. One instance is one stream; a fresh pipeline run gets a fresh
// instance so runs never observe each other's position.
type randNoise struct {
	rng *rand.Rand
}

// NewNoise returns the default NoiseSource for a 32-bit seed.
func NewNoise(seed uint32) NoiseSource {
	return &randNoise{rng: rand.New(rand.NewSource(int64(seed)))}
}

func (s *randNoise) Bits(n int) []uint8 {
	if n <= 0 {
		return nil
	}

	bits := make([]uint8, n)
	for i := range bits {
		bits[i] = uint8(s.rng.Intn(2))
	}

	return bits
}

// SeedFromString derives the 32-bit seed for a request-identifying string by
// summing its byte values with unsigned wraparound.
func SeedFromString(s string) uint32 {
	var seed uint32
	for i := 0; i < len(s); i++ {
		seed += uint32(s[i])
	}

	return seed
}
