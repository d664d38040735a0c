package renderer

import "math/rand"

// PixelSeed derives an independent seed for one pixel from the render seed,
// so pixels can be sampled in any order or on any goroutine with identical results.
func PixelSeed(seed int64, pixelIndex int) int64 {
	return int64(splitmix64(uint64(seed) ^ (uint64(pixelIndex) * 0x9E3779B97F4A7C15)))
}

// splitmix64 is a fast 64-bit mixing function with good avalanche behavior
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// pixelSource is a splitmix64 generator. It is cheap to reseed, which the
// parallel path does once per pixel.
type pixelSource struct {
	state uint64
}

// newPixelRandom creates a reseedable random generator for per-pixel sampling
func newPixelRandom() *rand.Rand {
	return rand.New(&pixelSource{})
}

func (s *pixelSource) Seed(seed int64) {
	s.state = uint64(seed)
}

func (s *pixelSource) Uint64() uint64 {
	z := splitmix64(s.state)
	s.state += 0x9E3779B97F4A7C15
	return z
}

func (s *pixelSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
