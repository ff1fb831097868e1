package forcelayout

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/dd0wney/forcelayout/pkg/geometry"
	"github.com/dd0wney/forcelayout/pkg/graphmodel"
)

// LayoutEngine owns the Fruchterman-Reingold simulation state: frame size,
// the scaling constant C, the derived optimal distance k, the cooling
// schedule (T, alpha, T_min), the last recorded kinetic energy, and the
// repulsive strategy in use. The engine exclusively owns its strategy; the
// strategy is swappable at runtime.
type LayoutEngine struct {
	w, h float64
	c    float64
	k    float64

	temperature float64
	alpha       float64
	tMin        float64

	lastKineticEnergy float64

	strategy RepulsiveStrategy
}

// New constructs an engine for a W x H frame with scaling constant c. The
// default repulsive strategy is BruteForce; call SetStrategy to switch to
// BarnesHut. Returns ErrNonPositiveExtent if W or H is not strictly
// positive.
func New(w, h, c float64) (*LayoutEngine, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got W=%v H=%v", ErrNonPositiveExtent, w, h)
	}
	if c == 0 {
		c = 1.0
	}
	return &LayoutEngine{
		w:        w,
		h:        h,
		c:        c,
		alpha:    0.95,
		tMin:     defaultTMin,
		strategy: NewBruteForce(),
	}, nil
}

// SetStrategy swaps the repulsive strategy.
func (e *LayoutEngine) SetStrategy(s RepulsiveStrategy) {
	e.strategy = s
}

// SetCoolingRate sets alpha, the per-step geometric cooling factor.
func (e *LayoutEngine) SetCoolingRate(alpha float64) {
	e.alpha = alpha
}

// SetTemperature overrides the current temperature (e.g. to restart
// annealing).
func (e *LayoutEngine) SetTemperature(t float64) {
	e.temperature = t
}

// SetTemperatureFloor overrides T_min.
func (e *LayoutEngine) SetTemperatureFloor(tMin float64) {
	e.tMin = tMin
}

// Temperature returns the current annealing temperature.
func (e *LayoutEngine) Temperature() float64 {
	return e.temperature
}

// KineticEnergy returns the unnormalized sum of clamped displacement
// magnitudes applied during the last completed step.
func (e *LayoutEngine) KineticEnergy() float64 {
	return e.lastKineticEnergy
}

// OptimalDistance returns k, the target inter-node spacing derived at
// Initialize time.
func (e *LayoutEngine) OptimalDistance() float64 {
	return e.k
}

// splitMix64Seeds expands a single 64-bit seed into the two words
// math/rand/v2's PCG source needs, via the SplitMix64 mixing step. Kept in
// step with graphmodel's Erdos-Renyi seeding so a fixed seed reproduces the
// same stream in either package.
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

// Initialize derives k, seeds node positions uniformly at random within the
// frame and resets the recorded kinetic energy to zero; the temperature,
// cooling rate and floor are left as they are. seed selects the PRNG state deterministically;
// pass a value drawn from a nondeterministic source (e.g. time-derived) for
// a nondeterministic run.
func (e *LayoutEngine) Initialize(g *graphmodel.Graph, seed uint64) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return ErrEmptyGraph
	}

	area := e.w * e.h
	e.k = e.c * math.Sqrt(area/float64(len(nodes)))

	s1, s2 := splitMix64Seeds(seed)
	rng := rand.New(rand.NewPCG(s1, s2))

	for _, n := range nodes {
		x := rng.Float64() * e.w
		y := rng.Float64() * e.h
		n.SetPosition(geometry.Vector{X: x, Y: y})
	}

	e.lastKineticEnergy = 0
	return nil
}

// Step runs one Fruchterman-Reingold iteration: reset displacements,
// compute repulsion, compute attraction along edges, apply and clamp
// displacements, record kinetic energy, then cool. On failure (a
// non-finite intermediate), node positions are left exactly as they were
// at the start of the call.
func (e *LayoutEngine) Step(g *graphmodel.Graph) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return ErrEmptyGraph
	}

	for _, n := range nodes {
		n.ResetDisplacement()
	}

	e.strategy.ComputeRepulsive(nodes, e.k)

	for _, edge := range g.Edges() {
		u, err := g.NodeByID(edge.Source)
		if err != nil {
			return err
		}
		v, err := g.NodeByID(edge.Target)
		if err != nil {
			return err
		}
		if u == v {
			continue // self-loops are unreachable in this graph model
		}

		delta := u.Position().Sub(v.Position())
		d := delta.Length()
		if d < epsDistance {
			continue
		}
		magnitude := d * d / e.k
		force := delta.Scale(magnitude / d)

		u.AddDisplacement(force.Scale(-1))
		v.AddDisplacement(force)
	}

	newPositions := make([]geometry.Vector, len(nodes))
	energy := 0.0
	tPre := e.temperature

	for i, n := range nodes {
		disp := n.Displacement()
		if !disp.Finite() {
			return ErrNonFiniteCoordinate
		}

		pos := n.Position()
		length := disp.Length()
		if length > epsDisplacement {
			c := math.Min(length, tPre)
			pos = pos.Add(disp.Scale(c / length))
			energy += c
		}

		pos.X = clamp(pos.X, 0, e.w)
		pos.Y = clamp(pos.Y, 0, e.h)
		if !pos.Finite() {
			return ErrNonFiniteCoordinate
		}
		newPositions[i] = pos
	}

	for i, n := range nodes {
		n.SetPosition(newPositions[i])
	}

	e.lastKineticEnergy = energy
	e.temperature = math.Max(tPre*e.alpha, e.tMin)
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
