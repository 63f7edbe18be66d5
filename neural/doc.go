// Copyright 2025 Kineto ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package neural provides the neural scalar engine: a scalar type whose
// value can be transparently replaced or augmented by a small learned
// network wired over other scalars.
//
// # Overview
//
// This package contains:
//   - Graph: an arena of nodes plus the name and blueprint registries
//   - Node: a lazily evaluated, memoized scalar with input connections
//   - Blueprint: deferred wiring applied when a node is assigned a name
//   - NodeAlgebra: runs generic numeric code over neural scalars
//
// # Evaluation model
//
// Reading a node's value triggers a depth-first, memoized evaluation of
// its transitive inputs. The gathered input values are routed through
// the node's embedded network and, in residual mode (the default), the
// network output is added to the node's stored value; otherwise it
// replaces it. A node with no inputs always evaluates to its stored
// value. Mutating the value or the wiring invalidates the cache; the
// next read recomputes, and reads after that are free until the next
// invalidation.
//
// # Basic Usage
//
//	alg := algebra.Float64{}
//	g := neural.NewGraph[float64](alg)
//
//	q := g.NewValueNode(0.3)
//	qd := g.NewValueNode(-0.1)
//
//	damping := g.NewValueNode(0.7)
//	_ = damping.Connect(q.ID(), nn.Identity)
//	_ = damping.Connect(qd.ID(), nn.Identity)
//
//	v, err := damping.Evaluate() // value + network(q, qd)
//
// # Names and blueprints
//
// Assigning a name registers a node in its graph's name registry; the
// most recent holder of a name wins, and evaluation of older holders
// delegates to it. A blueprint stores input names and a network under a
// name before any node exists; the Assign call that adopts the name
// resolves the input names (strictly, returning ErrUnresolvedInput when
// one is missing) and copies the network in.
//
// # Errors
//
// Retrieve is the one recoverable lookup. Evaluation reports cyclic
// wiring as ErrDepthExceeded and references to removed nodes as
// ErrDanglingInput; both indicate a bug in graph construction.
//
// Graphs are not safe for concurrent mutation; build single-threaded,
// then share read-only.
package neural
