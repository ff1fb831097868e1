package graphmodel

import "fmt"

// Graph is an ordered sequence of Nodes plus a set of canonical Edges and a
// symmetric adjacency index. Topology is frozen once built: the layout
// engine only ever mutates node positions and displacements.
type Graph struct {
	nodes   []*Node
	index   map[uint32]int // id -> position in nodes
	edges   map[Edge]struct{}
	edgeSeq []Edge // insertion order, for stable iteration
	adj     map[uint32][]uint32
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[uint32]int),
		edges: make(map[Edge]struct{}),
		adj:   make(map[uint32][]uint32),
	}
}

// AddNode appends a new node with the given id. Returns ErrDuplicateNode if
// the id is already present.
func (g *Graph) AddNode(id uint32) (*Node, error) {
	if _, exists := g.index[id]; exists {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	n := NewNode(id)
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	return n, nil
}

// AddEdge inserts the canonical edge between u and v. A no-op if the edge
// (in either orientation) already exists. Fails with ErrUnknownNode if
// either endpoint is not a node in the graph, or ErrSelfLoop if u == v.
func (g *Graph) AddEdge(u, v uint32) error {
	if u == v {
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	}
	if _, ok := g.index[u]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, u)
	}
	if _, ok := g.index[v]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, v)
	}
	e := NewEdge(u, v)
	if _, exists := g.edges[e]; exists {
		return nil
	}
	g.edges[e] = struct{}{}
	g.edgeSeq = append(g.edgeSeq, e)
	g.adj[e.Source] = append(g.adj[e.Source], e.Target)
	g.adj[e.Target] = append(g.adj[e.Target], e.Source)
	return nil
}

// VertexCount returns the number of nodes.
func (g *Graph) VertexCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct canonical edges.
func (g *Graph) EdgeCount() int {
	return len(g.edgeSeq)
}

// Nodes returns the mutable node sequence in stable insertion order. The
// layout engine mutates the returned nodes' positions and displacements
// directly.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Edges returns the canonical edges in insertion order.
func (g *Graph) Edges() []Edge {
	return g.edgeSeq
}

// Neighbors returns the ids adjacent to id, or nil if id is unknown.
func (g *Graph) Neighbors(id uint32) []uint32 {
	return g.adj[id]
}

// NodeByID returns the node with the given id, or ErrUnknownNode.
func (g *Graph) NodeByID(id uint32) (*Node, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return g.nodes[i], nil
}
