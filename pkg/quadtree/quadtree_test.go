package quadtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/forcelayout/pkg/geometry"
)

func newTestTree() *QuadTree {
	return New(geometry.NewBoundingBox(geometry.Vector{}, 100, 100), 16)
}

func TestQuadTree_SingleInsert(t *testing.T) {
	qt := newTestTree()
	require.NoError(t, qt.Insert(geometry.Vector{X: 5, Y: 5}, 1))

	assert.Equal(t, 1.0, qt.TotalMass(qt.Root()))
	assert.Equal(t, geometry.Vector{X: 5, Y: 5}, qt.CenterOfMass(qt.Root()))
	assert.True(t, qt.IsLeaf(qt.Root()))
}

func TestQuadTree_MassConservation(t *testing.T) {
	qt := newTestTree()
	pts := []geometry.Vector{{X: 5, Y: 5}, {X: -5, Y: 5}, {X: -5, Y: -5}, {X: 5, Y: -5}, {X: 50, Y: 50}, {X: 1, Y: 1}, {X: -90, Y: 90}}
	for i, p := range pts {
		require.NoError(t, qt.Insert(p, uint32(i)))
	}

	assert.Equal(t, float64(len(pts)), qt.TotalMass(qt.Root()))

	var sumX, sumY float64
	for _, p := range pts {
		sumX += p.X
		sumY += p.Y
	}
	want := geometry.Vector{X: sumX / float64(len(pts)), Y: sumY / float64(len(pts))}
	got := qt.CenterOfMass(qt.Root())
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestQuadTree_EveryPointInContainingLeaf(t *testing.T) {
	qt := newTestTree()
	pts := []geometry.Vector{{X: 99.999, Y: 99.999}, {X: 0, Y: 0}, {X: -99.999, Y: -99.999}, {X: 33.3, Y: -12.1}, {X: 0, Y: 50}}
	for i, p := range pts {
		require.NoError(t, qt.Insert(p, uint32(i)))
	}

	for i, p := range pts {
		leaf := findLeafContaining(t, qt, qt.Root(), p, uint32(i))
		assert.True(t, qt.Bounds(leaf).Contains(p))
	}
}

// findLeafContaining walks the tree the same way Insert routes a point
// (quadrant first, then any sibling that contains p), returning the leaf
// cell index that owns id at position p.
func findLeafContaining(t *testing.T, qt *QuadTree, i int, p geometry.Vector, id uint32) int {
	t.Helper()
	if qt.IsLeaf(i) {
		for _, occ := range qt.Occupants(i) {
			if occ == id {
				return i
			}
		}
		t.Fatalf("id %d not found in expected leaf", id)
	}
	q := qt.Bounds(i).Quadrant(p)
	child, ok := qt.Child(i, q)
	require.True(t, ok)
	if qt.Bounds(child).Contains(p) {
		return findLeafContaining(t, qt, child, p, id)
	}
	for _, quad := range QuadrantOrder() {
		c, _ := qt.Child(i, quad)
		if qt.Bounds(c).Contains(p) {
			return findLeafContaining(t, qt, c, p, id)
		}
	}
	t.Fatalf("no child contains point %+v", p)
	return -1
}

func TestQuadTree_CoincidentPointsTerminate(t *testing.T) {
	qt := newTestTree()
	const n = 50
	for i := 0; i < n; i++ {
		require.NoError(t, qt.Insert(geometry.Vector{X: 1, Y: 1}, uint32(i)))
	}
	assert.Equal(t, float64(n), qt.TotalMass(qt.Root()))
	assert.Less(t, qt.NumCells(), 10000, "coincident points must not blow up the pool")
}

func TestQuadTree_BoundaryCorners(t *testing.T) {
	qt := newTestTree()
	corners := []geometry.Vector{{X: 100, Y: 100}, {X: -100, Y: 100}, {X: -100, Y: -100}, {X: 100, Y: -100}, {X: 0, Y: 0}}
	for i, p := range corners {
		require.NoError(t, qt.Insert(p, uint32(i)))
	}
	assert.Equal(t, float64(len(corners)), qt.TotalMass(qt.Root()))
}

func TestQuadTree_InsertOutsideBoundsFails(t *testing.T) {
	qt := newTestTree()
	err := qt.Insert(geometry.Vector{X: 1000, Y: 1000}, 1)
	assert.Error(t, err)
}

func TestQuadTree_ResetReusesStorage(t *testing.T) {
	qt := newTestTree()
	for i := 0; i < 200; i++ {
		require.NoError(t, qt.Insert(geometry.Vector{X: float64(i % 50), Y: float64(i % 30)}, uint32(i)))
	}
	grown := qt.NumCells()
	require.Greater(t, grown, 1)

	qt.Reset(geometry.NewBoundingBox(geometry.Vector{}, 50, 50))
	assert.Equal(t, 1, qt.NumCells())
	assert.Equal(t, 0.0, qt.TotalMass(qt.Root()))

	require.NoError(t, qt.Insert(geometry.Vector{X: 1, Y: 1}, 0))
	assert.Equal(t, 1.0, qt.TotalMass(qt.Root()))
}

func TestQuadTree_LeafInvariant(t *testing.T) {
	qt := newTestTree()
	for i := 0; i < 30; i++ {
		x := math.Mod(float64(i)*7.3, 100) - 50
		y := math.Mod(float64(i)*3.1, 100) - 50
		require.NoError(t, qt.Insert(geometry.Vector{X: x, Y: y}, uint32(i)))
	}
	assertNoMultiOccupantInternal(t, qt, qt.Root())
}

func assertNoMultiOccupantInternal(t *testing.T, qt *QuadTree, i int) {
	t.Helper()
	if qt.IsLeaf(i) {
		return
	}
	assert.False(t, qt.HasPoint(i), "internal cell must not carry a leaf payload")
	for _, q := range QuadrantOrder() {
		c, ok := qt.Child(i, q)
		require.True(t, ok)
		assertNoMultiOccupantInternal(t, qt, c)
	}
}
