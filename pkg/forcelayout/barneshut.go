package forcelayout

import (
	"github.com/dd0wney/forcelayout/pkg/geometry"
	"github.com/dd0wney/forcelayout/pkg/graphmodel"
	"github.com/dd0wney/forcelayout/pkg/quadtree"
)

// BarnesHut is the O(|V| log |V|) approximate repulsive strategy: it builds
// a quadtree from the current node positions and, for each node, descends
// the tree accepting aggregated cells once s/d < theta. The tree is owned
// by the strategy and reused across calls; only subdivision growth
// allocates.
type BarnesHut struct {
	theta float64
	tree  *quadtree.QuadTree
}

// NewBarnesHut returns a Barnes-Hut strategy with the given acceptance
// threshold. theta=0 forces full recursion to leaves; the standard setting
// is DefaultTheta (0.5).
func NewBarnesHut(theta float64) *BarnesHut {
	return &BarnesHut{theta: theta}
}

// NumCells reports how many quadtree cells are currently allocated in the
// pool, for instrumentation. Zero before the first ComputeRepulsive call.
func (bh *BarnesHut) NumCells() int {
	if bh.tree == nil {
		return 0
	}
	return bh.tree.NumCells()
}

// ComputeRepulsive implements RepulsiveStrategy.
func (bh *BarnesHut) ComputeRepulsive(nodes []*graphmodel.Node, k float64) {
	if len(nodes) == 0 {
		return
	}

	pts := make([]geometry.Vector, len(nodes))
	for i, n := range nodes {
		pts[i] = n.Position()
	}
	bounds := geometry.FromPoints(pts, boundingBoxMargin)

	if bh.tree == nil {
		bh.tree = quadtree.New(bounds, len(nodes))
	} else {
		bh.tree.Reset(bounds)
	}
	for _, n := range nodes {
		// Precondition (bounds contains every point) holds by
		// construction from FromPoints; an error here would indicate a
		// geometry bug, not caller misuse, so it is not surfaced.
		_ = bh.tree.Insert(n.Position(), n.ID)
	}

	for _, n := range nodes {
		f := bh.forceOn(n.ID, n.Position(), bh.tree.Root(), k)
		n.AddDisplacement(f)
	}
}

// forceOn descends from cell, accumulating the aggregate repulsive force
// acting on the node identified by nodeID at position pos.
func (bh *BarnesHut) forceOn(nodeID uint32, pos geometry.Vector, cell int, k float64) geometry.Vector {
	totalMass := bh.tree.TotalMass(cell)
	if totalMass < 0.5 {
		return geometry.Vector{}
	}

	delta := pos.Sub(bh.tree.CenterOfMass(cell))
	d := delta.Length()
	if d < epsDistance {
		delta = geometry.Vector{X: epsDistance, Y: 0}
		d = epsDistance
	}

	isLeaf := bh.tree.IsLeaf(cell)
	if isLeaf && bh.tree.HasPoint(cell) {
		occupants := bh.tree.Occupants(cell)
		if len(occupants) == 1 && occupants[0] == nodeID {
			return geometry.Vector{}
		}
	}

	if isLeaf || bh.tree.Bounds(cell).Size()/d < bh.theta {
		magnitude := totalMass * k * k / (d * d)
		return delta.Scale(magnitude)
	}

	var sum geometry.Vector
	for _, q := range quadtree.QuadrantOrder() {
		child, ok := bh.tree.Child(cell, q)
		if !ok {
			continue
		}
		sum = sum.Add(bh.forceOn(nodeID, pos, child, k))
	}
	return sum
}
