// Copyright 2025 Kineto ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package neural

import (
	"github.com/kineto-ml/kineto/algebra"
	"github.com/kineto-ml/kineto/internal/neural"
)

// NodeID is a stable index into a graph's node arena.
type NodeID = neural.NodeID

// None marks an absent input connection, which feeds zero to the network.
const None = neural.None

// DefaultMaxDepth bounds recursive evaluation.
const DefaultMaxDepth = neural.DefaultMaxDepth

// Engine error values; match with errors.Is.
var (
	ErrUnresolvedInput = neural.ErrUnresolvedInput
	ErrDanglingInput   = neural.ErrDanglingInput
	ErrDepthExceeded   = neural.ErrDepthExceeded
	ErrDetached        = neural.ErrDetached
)

// Graph owns an arena of neural scalar nodes together with the name and
// blueprint registries that wire them.
type Graph[T any, A algebra.Algebra[T]] = neural.Graph[T, A]

// Node is a scalar whose value can be replaced or augmented by a small
// neural network fed from other nodes.
type Node[T any, A algebra.Algebra[T]] = neural.Node[T, A]

// Blueprint is a deferred wiring template consumed by Assign.
type Blueprint[T any] = neural.Blueprint[T]

// NodeAlgebra makes *Node satisfy algebra.Algebra, so generic numeric
// code runs unchanged over neural scalars.
type NodeAlgebra[T any, A algebra.Algebra[T]] = neural.NodeAlgebra[T, A]

// NewGraph creates an empty graph over the given scalar algebra.
//
// Example:
//
//	g := neural.NewGraph[float64](algebra.Float64{})
//	q := g.NewValueNode(0.3)
//	d := g.NewNode()
//	err := d.Connect(q.ID(), nn.Identity)
func NewGraph[T any, A algebra.Algebra[T]](alg A) *Graph[T, A] {
	return neural.NewGraph[T](alg)
}

// NewValue creates a detached plain node holding v. Plain nodes have no
// inputs and no network; they always evaluate to v.
func NewValue[T any, A algebra.Algebra[T]](alg A, v T) *Node[T, A] {
	return neural.NewValue(alg, v)
}

// NewNodeAlgebra lifts a scalar algebra to an algebra over nodes.
func NewNodeAlgebra[T any, A algebra.Algebra[T]](alg A) NodeAlgebra[T, A] {
	return neural.NewNodeAlgebra(alg)
}

// Lift wraps each value in a detached plain node.
func Lift[T any, A algebra.Algebra[T]](alg A, values []T) []*Node[T, A] {
	return neural.Lift(alg, values)
}

// Lower evaluates each node back to a plain value.
func Lower[T any, A algebra.Algebra[T]](nodes []*Node[T, A]) ([]T, error) {
	return neural.Lower(nodes)
}
