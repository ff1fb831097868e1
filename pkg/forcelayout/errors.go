package forcelayout

import "errors"

var (
	// ErrNonPositiveExtent indicates W or H was not strictly positive.
	ErrNonPositiveExtent = errors.New("forcelayout: frame extents must be positive")
	// ErrEmptyGraph indicates initialize or step was called on a graph
	// with zero nodes.
	ErrEmptyGraph = errors.New("forcelayout: graph has no nodes")
	// ErrNonFiniteCoordinate indicates an intermediate position or
	// displacement became NaN or infinite during a step.
	ErrNonFiniteCoordinate = errors.New("forcelayout: non-finite coordinate")
)
