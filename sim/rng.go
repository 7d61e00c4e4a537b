package sim

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalSource is a seedable stream of standard-normal draws backed by a
// PCG generator. It is the single randomness entry point for every
// process: injecting one pins the whole simulation, reseeding it replays
// the stream. Not safe for concurrent use.
type NormalSource struct {
	pcg  *rand.PCG
	dist distuv.Normal
}

// NewNormalSource returns a source seeded with seed, or with time entropy
// when seed is zero.
func NewNormalSource(seed int64) *NormalSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pcg := rand.NewPCG(uint64(seed), uint64(seed))
	return &NormalSource{
		pcg:  pcg,
		dist: distuv.Normal{Mu: 0, Sigma: 1, Src: pcg},
	}
}

// Reseed resets the stream so subsequent draws match those of a fresh
// source built with the same seed.
func (s *NormalSource) Reseed(seed int64) {
	s.pcg.Seed(uint64(seed), uint64(seed))
}

// Draw returns one standard-normal variate.
func (s *NormalSource) Draw() float64 {
	return s.dist.Rand()
}

// FillMatrix fills m with standard-normal variates in row-major order,
// the order a flat draw of the same grid would consume.
func (s *NormalSource) FillMatrix(m Matrix) {
	for i := range m {
		row := m[i]
		for j := range row {
			row[j] = s.dist.Rand()
		}
	}
}

// Source exposes the underlying uniform generator for samplers that take
// one directly. Draws through it advance the same stream Draw advances.
func (s *NormalSource) Source() rand.Source {
	return s.pcg
}

// DeriveSeed maps a base seed and a stream index to a decorrelated child
// seed via the SplitMix64 finalizer. Children of the same base with
// distinct indexes give independent streams; the result is never zero, so
// a derived seed always reseeds deterministically.
func DeriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 0x9e3779b97f4a7c15
	}
	return int64(x)
}
