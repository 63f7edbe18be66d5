// Copyright 2025 Kineto ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the feed-forward network collaborator consumed by
// the neural scalar engine.
//
// The Network interface is the full contract the engine relies on; MLP
// is the built-in implementation, a small dense network generic over the
// scalar domain.
//
// Example:
//
//	alg := algebra.Float64{}
//	net := nn.NewMLP(alg, 2, false)
//	net.AddLinearLayer(nn.Identity, 1)
//	net.Seed(7)
//	net.Init(nn.Xavier)
//
//	out := make([]float64, 1)
//	err := net.Compute([]float64{0.5, -0.5}, out)
package nn

import (
	"github.com/kineto-ml/kineto/algebra"
	"github.com/kineto-ml/kineto/internal/nn"
)

// Network is the consumed contract for a feed-forward scalar network.
type Network[T any] = nn.Network[T]

// Activation selects the nonlinearity applied by a linear layer.
type Activation = nn.Activation

// Supported activations.
const (
	Identity = nn.Identity
	Tanh     = nn.Tanh
	Sigmoid  = nn.Sigmoid
	ReLU     = nn.ReLU
)

// InitPolicy selects how Init fills layer weights.
type InitPolicy = nn.InitPolicy

// Supported policies. Xavier is the default.
const (
	Xavier = nn.Xavier
	He     = nn.He
	Zeros  = nn.Zeros
	Ones   = nn.Ones
	Randn  = nn.Randn
)

// MLP is a small feed-forward network over an arbitrary scalar domain.
type MLP[T any, A algebra.Algebra[T]] = nn.MLP[T, A]

// NewMLP creates an empty network with the given input dimension. When
// useBias is set, a constant-one input is appended before the first
// layer.
//
// Example:
//
//	net := nn.NewMLP(algebra.Float64{}, 3, true)
//	net.AddLinearLayer(nn.Tanh, 1)
//	net.Init(nn.Xavier)
func NewMLP[T any, A algebra.Algebra[T]](alg A, inputDim int, useBias bool) *MLP[T, A] {
	return nn.NewMLP[T](alg, inputDim, useBias)
}
