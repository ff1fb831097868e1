package graphmodel

import "errors"

// Sentinel errors surfaced at the core boundary. Callers can compare with
// errors.Is; wrapping call sites attach the offending value with %w.
var (
	// ErrUnknownNode indicates a precondition violation: an id that does
	// not name any node in the graph.
	ErrUnknownNode = errors.New("graphmodel: unknown node id")
	// ErrDuplicateNode indicates an id was already used by another node.
	ErrDuplicateNode = errors.New("graphmodel: duplicate node id")
	// ErrInvalidProbability indicates an Erdos-Renyi edge probability
	// outside [0,1].
	ErrInvalidProbability = errors.New("graphmodel: probability must be in [0,1]")
	// ErrSelfLoop indicates an edge was requested between a node and
	// itself; edges must join two distinct nodes.
	ErrSelfLoop = errors.New("graphmodel: edge endpoints must be distinct")
)
