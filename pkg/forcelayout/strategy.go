package forcelayout

import "github.com/dd0wney/forcelayout/pkg/graphmodel"

// RepulsiveStrategy computes the repulsive component of the Fruchterman-
// Reingold force for every node and accumulates it into each node's
// displacement field. Implementations must not mutate node ids or graph
// topology.
type RepulsiveStrategy interface {
	ComputeRepulsive(nodes []*graphmodel.Node, k float64)
}
