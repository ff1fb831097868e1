package graphmodel

import (
	"fmt"
	"math/rand/v2"
)

// splitMix64Seeds expands a single 64-bit seed into the two 64-bit words
// math/rand/v2's PCG source requires, using the SplitMix64 mixing step.
// Documented here so an independent implementation can reproduce the exact
// same stream from the same seed.
func splitMix64Seeds(seed uint64) (uint64, uint64) {
	next := func() uint64 {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	return next(), next()
}

// ErdosRenyi builds a deterministic G(n, p) random graph: n vertices with
// ids 0..n-1, and for each unordered pair (i,j) with i<j in ascending
// order, an edge is added with probability p using a seeded Bernoulli
// draw. Fails with ErrInvalidProbability if p is outside [0,1].
func ErdosRenyi(n int, p float64, seed uint64) (*Graph, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}

	g := NewGraph()
	for i := 0; i < n; i++ {
		if _, err := g.AddNode(uint32(i)); err != nil {
			return nil, err
		}
	}

	s1, s2 := splitMix64Seeds(seed)
	rng := rand.New(rand.NewPCG(s1, s2))

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err := g.AddEdge(uint32(i), uint32(j)); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
