package graphmodel

import "github.com/dd0wney/forcelayout/pkg/geometry"

// Node is a graph vertex carrying the kinematic state the layout engine
// mutates: a position and a per-step displacement accumulator. Mass is
// implicitly 1.0 for every node.
type Node struct {
	ID           uint32
	position     geometry.Vector
	displacement geometry.Vector
}

// NewNode constructs a node with the given id at the origin.
func NewNode(id uint32) *Node {
	return &Node{ID: id}
}

// Position returns the node's current position.
func (n *Node) Position() geometry.Vector {
	return n.position
}

// SetPosition overwrites the node's position. Called by the layout engine
// during initialize and step; not intended for use outside forcelayout.
func (n *Node) SetPosition(p geometry.Vector) {
	n.position = p
}

// Displacement returns the node's accumulated per-step displacement.
func (n *Node) Displacement() geometry.Vector {
	return n.displacement
}

// ResetDisplacement zeroes the accumulator at the start of a step.
func (n *Node) ResetDisplacement() {
	n.displacement = geometry.Vector{}
}

// AddDisplacement accumulates a force contribution.
func (n *Node) AddDisplacement(delta geometry.Vector) {
	n.displacement = n.displacement.Add(delta)
}
