// Package quadtree implements a pool-allocated point-region quadtree used
// by the Barnes-Hut repulsive strategy. All cells live in a single flat
// slice addressed by integer index; Reset clears the pool for reuse across
// simulation steps instead of freeing and reallocating a pointer tree.
package quadtree

import (
	"fmt"

	"github.com/dd0wney/forcelayout/pkg/geometry"
)

// maxDepth bounds recursive subdivision. Two coincident (or
// precision-indistinguishable) points would otherwise force infinite
// subdivision; past this depth a leaf becomes a bucket that accumulates
// every id sharing that location instead of splitting further. Each level
// halves the cell size, so a cell at this depth spans 2^-48 of the root's
// extent; only points closer together than that are bucketed.
const maxDepth = 48

// quadrantOrder is the canonical child visitation order used both for
// subdivision and for the Barnes-Hut walk (NE, NW, SW, SE).
var quadrantOrder = [4]geometry.Quadrant{geometry.NE, geometry.NW, geometry.SW, geometry.SE}

const noChild = -1

type cell struct {
	bounds       geometry.BoundingBox
	centerOfMass geometry.Vector
	totalMass    float64

	hasPoint bool
	pointPos geometry.Vector
	pointID  uint32
	// extraIDs holds ids bucketed into this leaf after maxDepth was
	// reached with an already-occupied cell (coincident points).
	extraIDs []uint32

	children [4]int32 // index into QuadTree.cells, or noChild for a leaf
}

func (c *cell) isLeaf() bool {
	return c.children[0] == noChild
}

// QuadTree is a pool-allocated point-region quadtree over 2D positions.
type QuadTree struct {
	cells []cell
}

// New allocates a quadtree rooted at bounds, reserving storage for roughly
// expected insertions worth of cells.
func New(bounds geometry.BoundingBox, expected int) *QuadTree {
	qt := &QuadTree{cells: make([]cell, 0, expected+1)}
	qt.pushRoot(bounds)
	return qt
}

// Reset clears the tree to a single root cell with the given bounds,
// reusing the underlying storage.
func (qt *QuadTree) Reset(bounds geometry.BoundingBox) {
	qt.cells = qt.cells[:0]
	qt.pushRoot(bounds)
}

func (qt *QuadTree) pushRoot(bounds geometry.BoundingBox) {
	qt.cells = append(qt.cells, cell{bounds: bounds, children: [4]int32{noChild, noChild, noChild, noChild}})
}

// Insert adds a point at position pos with the given node id. Precondition:
// the root bounds must contain pos.
func (qt *QuadTree) Insert(pos geometry.Vector, id uint32) error {
	if !qt.cells[0].bounds.Contains(pos) {
		return fmt.Errorf("quadtree: position %+v outside root bounds %+v", pos, qt.cells[0].bounds)
	}
	qt.insertAt(0, pos, id, 0)
	return nil
}

func (qt *QuadTree) insertAt(i int, pos geometry.Vector, id uint32, depth int) {
	n := qt.cells[i].totalMass
	qt.cells[i].centerOfMass = qt.cells[i].centerOfMass.Scale(n).Add(pos).Scale(1 / (n + 1))
	qt.cells[i].totalMass = n + 1

	if !qt.cells[i].isLeaf() {
		qt.routeInto(i, pos, id, depth+1)
		return
	}

	if !qt.cells[i].hasPoint {
		qt.cells[i].hasPoint = true
		qt.cells[i].pointPos = pos
		qt.cells[i].pointID = id
		return
	}

	if depth >= maxDepth {
		qt.cells[i].extraIDs = append(qt.cells[i].extraIDs, id)
		return
	}

	oldPos, oldID := qt.cells[i].pointPos, qt.cells[i].pointID
	qt.subdivide(i)
	qt.cells[i].hasPoint = false
	qt.routeInto(i, oldPos, oldID, depth+1)
	qt.routeInto(i, pos, id, depth+1)
}

// subdivide appends four child cells to the pool and wires them into
// cells[i].children. Appending may grow (and reallocate) qt.cells, so every
// access below re-indexes into the slice rather than caching a *cell across
// the append.
func (qt *QuadTree) subdivide(i int) {
	bounds := qt.cells[i].bounds
	for qi, q := range quadrantOrder {
		childBounds := bounds.Child(q)
		childIdx := int32(len(qt.cells))
		qt.cells = append(qt.cells, cell{bounds: childBounds, children: [4]int32{noChild, noChild, noChild, noChild}})
		qt.cells[i].children[qi] = childIdx
	}
}

// routeInto sends (pos, id) to whichever child of cell i contains pos,
// guarding against floating-point rounding at quadrant boundaries.
func (qt *QuadTree) routeInto(i int, pos geometry.Vector, id uint32, depth int) {
	bounds := qt.cells[i].bounds
	q := bounds.Quadrant(pos)
	qi := indexOfQuadrant(q)
	childIdx := int(qt.cells[i].children[qi])

	if !qt.cells[childIdx].bounds.Contains(pos) {
		for _, altIdx := range qt.cells[i].children {
			if int(altIdx) == childIdx {
				continue
			}
			if qt.cells[altIdx].bounds.Contains(pos) {
				childIdx = int(altIdx)
				break
			}
		}
	}
	qt.insertAt(childIdx, pos, id, depth)
}

func indexOfQuadrant(q geometry.Quadrant) int {
	for i, qq := range quadrantOrder {
		if qq == q {
			return i
		}
	}
	return 0
}

// NumCells returns the number of cells currently allocated in the pool.
func (qt *QuadTree) NumCells() int {
	return len(qt.cells)
}

// Root is always index 0 after New or Reset.
func (qt *QuadTree) Root() int {
	return 0
}

// Bounds returns the bounding box of cell i.
func (qt *QuadTree) Bounds(i int) geometry.BoundingBox {
	return qt.cells[i].bounds
}

// IsLeaf reports whether cell i has no children.
func (qt *QuadTree) IsLeaf(i int) bool {
	return qt.cells[i].isLeaf()
}

// TotalMass returns the number of insertions contained in cell i.
func (qt *QuadTree) TotalMass(i int) float64 {
	return qt.cells[i].totalMass
}

// CenterOfMass returns the running arithmetic mean of positions contained
// in cell i.
func (qt *QuadTree) CenterOfMass(i int) geometry.Vector {
	return qt.cells[i].centerOfMass
}

// HasPoint reports whether leaf cell i holds a point payload. It is also
// true for a coincident-point bucket, and false for an empty or internal
// cell.
func (qt *QuadTree) HasPoint(i int) bool {
	return qt.cells[i].hasPoint
}

// PointID returns the id stored at leaf cell i. Only meaningful when
// HasPoint(i) is true.
func (qt *QuadTree) PointID(i int) uint32 {
	return qt.cells[i].pointID
}

// Occupants returns every node id whose insertion landed in leaf cell i:
// the primary payload id plus any ids bucketed there after maxDepth was
// reached by coincident points.
func (qt *QuadTree) Occupants(i int) []uint32 {
	c := &qt.cells[i]
	if !c.hasPoint {
		return nil
	}
	if len(c.extraIDs) == 0 {
		return []uint32{c.pointID}
	}
	ids := make([]uint32, 0, len(c.extraIDs)+1)
	ids = append(ids, c.pointID)
	ids = append(ids, c.extraIDs...)
	return ids
}

// Child returns the child cell index of cell i for quadrant q, and whether
// cell i has children at all (false for a leaf).
func (qt *QuadTree) Child(i int, q geometry.Quadrant) (int, bool) {
	if qt.cells[i].isLeaf() {
		return 0, false
	}
	return int(qt.cells[i].children[indexOfQuadrant(q)]), true
}

// QuadrantOrder is the canonical NE, NW, SW, SE child visitation order.
func QuadrantOrder() [4]geometry.Quadrant {
	return quadrantOrder
}
