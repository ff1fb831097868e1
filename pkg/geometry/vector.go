// Package geometry provides the 2D primitives shared by the quadtree and
// force-directed layout packages: points/vectors and axis-aligned bounding
// boxes.
package geometry

import (
	"math"

	qcvector "github.com/quartercastle/vector"
)

// Vector is a 2D point or displacement in frame coordinates. The X/Y struct
// form is kept as the public API (used pervasively as a field literal across
// this codebase); the arithmetic itself is delegated to
// github.com/quartercastle/vector, the same force-directed-layout vector
// library the corpus uses for this concern.
type Vector struct {
	X, Y float64
}

func (v Vector) raw() qcvector.Vector {
	return qcvector.Vector{v.X, v.Y}
}

func fromRaw(r qcvector.Vector) Vector {
	return Vector{X: r.X(), Y: r.Y()}
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return fromRaw(v.raw().Add(w.raw()))
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return fromRaw(v.raw().Sub(w.raw()))
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	return fromRaw(v.raw().Scale(s))
}

// Length returns the Euclidean norm of v.
func (v Vector) Length() float64 {
	return v.raw().Magnitude()
}

// Finite reports whether both components are finite (not NaN or +/-Inf).
func (v Vector) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
