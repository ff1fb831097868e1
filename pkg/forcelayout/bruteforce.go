package forcelayout

import (
	"github.com/dd0wney/forcelayout/pkg/geometry"
	"github.com/dd0wney/forcelayout/pkg/graphmodel"
)

// BruteForce is the exact O(|V|^2) repulsive strategy: every unordered pair
// of nodes repels every other, enumerated in ascending (i,j) index order
// for determinism.
type BruteForce struct{}

// NewBruteForce returns the exact pairwise repulsive strategy.
func NewBruteForce() *BruteForce {
	return &BruteForce{}
}

// ComputeRepulsive implements RepulsiveStrategy.
func (BruteForce) ComputeRepulsive(nodes []*graphmodel.Node, k float64) {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			delta, d := epsGuardedDelta(nodes[i].Position(), nodes[j].Position())
			magnitude := k * k / (d * d)
			f := delta.Scale(magnitude)
			nodes[i].AddDisplacement(f)
			nodes[j].AddDisplacement(f.Scale(-1))
		}
	}
}

// epsGuardedDelta returns p-q and its length, clamping the length (and
// substituting a fixed delta) whenever the pair is closer than
// epsDistance, per the shared epsilon guard.
func epsGuardedDelta(p, q geometry.Vector) (geometry.Vector, float64) {
	delta := p.Sub(q)
	d := delta.Length()
	if d < epsDistance {
		return geometry.Vector{X: epsDistance, Y: 0}, epsDistance
	}
	return delta, d
}
