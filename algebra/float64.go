// Copyright 2025 Kineto ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package algebra

import "math"

// Float64 implements Algebra over float64.
//
// It is the default scalar domain for simulation code and the inner domain
// for neural scalar graphs.
type Float64 struct{}

// Zero returns 0.
func (Float64) Zero() float64 { return 0 }

// One returns 1.
func (Float64) One() float64 { return 1 }

// FromFloat64 returns v unchanged.
func (Float64) FromFloat64(v float64) float64 { return v }

// ToFloat64 returns v unchanged.
func (Float64) ToFloat64(v float64) float64 { return v }

// Add returns a + b.
func (Float64) Add(a, b float64) float64 { return a + b }

// Sub returns a - b.
func (Float64) Sub(a, b float64) float64 { return a - b }

// Mul returns a * b.
func (Float64) Mul(a, b float64) float64 { return a * b }

// Div returns a / b.
func (Float64) Div(a, b float64) float64 { return a / b }

// Neg returns -a.
func (Float64) Neg(a float64) float64 { return -a }

// Sin returns sin(a).
func (Float64) Sin(a float64) float64 { return math.Sin(a) }

// Cos returns cos(a).
func (Float64) Cos(a float64) float64 { return math.Cos(a) }

// Sqrt returns the square root of a.
func (Float64) Sqrt(a float64) float64 { return math.Sqrt(a) }

// Exp returns e**a.
func (Float64) Exp(a float64) float64 { return math.Exp(a) }

// Tanh returns the hyperbolic tangent of a.
func (Float64) Tanh(a float64) float64 { return math.Tanh(a) }

// Less reports whether a < b.
func (Float64) Less(a, b float64) bool { return a < b }

// Equal reports whether a == b.
func (Float64) Equal(a, b float64) bool { return a == b }

var _ Algebra[float64] = Float64{}
