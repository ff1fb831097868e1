package forcelayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/forcelayout/pkg/geometry"
	"github.com/dd0wney/forcelayout/pkg/graphmodel"
)

func buildLine(t *testing.T, n int) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.AddNode(uint32(i))
		require.NoError(t, err)
	}
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(uint32(i), uint32(i+1)))
	}
	return g
}

func TestEngine_New_RejectsNonPositiveExtent(t *testing.T) {
	_, err := New(0, 100, 1.0)
	assert.ErrorIs(t, err, ErrNonPositiveExtent)

	_, err = New(100, -1, 1.0)
	assert.ErrorIs(t, err, ErrNonPositiveExtent)
}

func TestEngine_Initialize_EmptyGraph(t *testing.T) {
	e, err := New(100, 100, 1.0)
	require.NoError(t, err)
	err = e.Initialize(graphmodel.NewGraph(), 1)
	assert.ErrorIs(t, err, ErrEmptyGraph)
}

func TestEngine_Initialize_PositionsWithinFrame(t *testing.T) {
	g := buildLine(t, 10)
	e, err := New(200, 150, 1.0)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(g, 42))

	for _, n := range g.Nodes() {
		p := n.Position()
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 200.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 150.0)
	}
}

// S1 - two-node rest length.
func TestEngine_S1_TwoNodeRestLength(t *testing.T) {
	g := graphmodel.NewGraph()
	g.AddNode(0)
	g.AddNode(1)
	require.NoError(t, g.AddEdge(0, 1))

	e, err := New(100, 100, 1.0)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(g, 7))
	e.SetTemperature(10)
	e.SetCoolingRate(0.95)
	e.SetTemperatureFloor(1e-3)

	for i := 0; i < 500; i++ {
		require.NoError(t, e.Step(g))
	}

	n0, _ := g.NodeByID(0)
	n1, _ := g.NodeByID(1)
	dist := n0.Position().Sub(n1.Position()).Length()

	k := e.OptimalDistance()
	assert.GreaterOrEqual(t, dist, 0.5*k)
	assert.LessOrEqual(t, dist, 1.5*k)
}

// S2 - empty edge set: pure repulsion keeps nodes in bounds and cools.
func TestEngine_S2_EmptyEdgeSetStaysInBoundsAndCools(t *testing.T) {
	g := graphmodel.NewGraph()
	for i := 0; i < 10; i++ {
		g.AddNode(uint32(i))
	}

	e, err := New(100, 100, 1.0)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(g, 3))
	e.SetTemperature(10)
	e.SetCoolingRate(0.95)

	var early, late float64
	for i := 0; i < 200; i++ {
		require.NoError(t, e.Step(g))
		if i == 5 {
			early = e.KineticEnergy()
		}
		if i == 199 {
			late = e.KineticEnergy()
		}
		for _, n := range g.Nodes() {
			p := n.Position()
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.LessOrEqual(t, p.X, 100.0)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.LessOrEqual(t, p.Y, 100.0)
		}
	}
	assert.Less(t, late, early)
	assert.LessOrEqual(t, e.Temperature(), 10.0)
}

// S5 - coincident points separate after one step, no NaNs.
func TestEngine_S5_CoincidentPointsSeparate(t *testing.T) {
	g := graphmodel.NewGraph()
	n0, _ := g.AddNode(0)
	n1, _ := g.AddNode(1)
	n0.SetPosition(geometry.Vector{X: 50, Y: 50})
	n1.SetPosition(geometry.Vector{X: 50, Y: 50})

	e, err := New(100, 100, 1.0)
	require.NoError(t, err)
	e.SetTemperature(10)
	e.SetCoolingRate(0.95)
	// Skip Initialize (it would randomize positions) and set k directly.
	e.k = e.c
	_ = e.k

	require.NoError(t, e.Step(g))

	p0, p1 := n0.Position(), n1.Position()
	assert.True(t, p0.Finite())
	assert.True(t, p1.Finite())
	assert.NotEqual(t, p0, p1)

	dist := p0.Sub(p1).Length()
	assert.LessOrEqual(t, dist, 2*10.0+1e-9)
}

// S6 - quadtree boundary via the engine's BarnesHut strategy.
func TestEngine_S6_BarnesHutHandlesBoundaryPoints(t *testing.T) {
	g := graphmodel.NewGraph()
	pts := []struct{ x, y float64 }{
		{0, 0}, {100, 100}, {0, 100}, {100, 0}, {50, 50},
	}
	for i, p := range pts {
		n, _ := g.AddNode(uint32(i))
		n.SetPosition(geometry.Vector{X: p.x, Y: p.y})
	}

	e, err := New(100, 100, 1.0)
	require.NoError(t, err)
	e.SetStrategy(NewBarnesHut(DefaultTheta))
	e.SetTemperature(5)
	e.SetCoolingRate(0.9)
	e.k = 50

	require.NoError(t, e.Step(g))
	for _, n := range g.Nodes() {
		assert.True(t, n.Position().Finite())
	}
}

func TestEngine_CoolingMonotonic(t *testing.T) {
	g := buildLine(t, 5)
	e, err := New(100, 100, 1.0)
	require.NoError(t, err)
	require.NoError(t, e.Initialize(g, 1))
	e.SetTemperature(10)
	e.SetCoolingRate(0.9)
	e.SetTemperatureFloor(1e-3)

	prev := e.Temperature()
	for i := 0; i < 300; i++ {
		require.NoError(t, e.Step(g))
		got := e.Temperature()
		assert.LessOrEqual(t, got, prev)
		assert.GreaterOrEqual(t, got, 1e-3)
		prev = got
	}
	assert.InDelta(t, 1e-3, prev, 1e-9)
}

func TestEngine_Determinism(t *testing.T) {
	run := func() []float64 {
		g := buildLine(t, 20)
		e, err := New(300, 300, 1.0)
		require.NoError(t, err)
		require.NoError(t, e.Initialize(g, 99))
		var out []float64
		for i := 0; i < 50; i++ {
			require.NoError(t, e.Step(g))
		}
		for _, n := range g.Nodes() {
			p := n.Position()
			out = append(out, p.X, p.Y)
		}
		return out
	}

	a := run()
	b := run()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i], "bit-identical positions expected for a fixed seed")
	}
}
