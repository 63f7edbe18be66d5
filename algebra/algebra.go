// Copyright 2025 Kineto ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package algebra defines the scalar domain contract used throughout Kineto.
//
// Every generic component in the framework (spatial vectors, neural scalar
// graphs, feed-forward networks) is parameterized over an Algebra, which
// supplies the arithmetic of the underlying scalar type. The canonical
// implementation is Float64; the neural package provides an Algebra over
// neural scalar nodes so that numeric code can run unchanged on top of a
// learned computation graph.
//
// Example:
//
//	alg := algebra.Float64{}
//	x := alg.FromFloat64(0.5)
//	y := alg.Add(x, algebra.Half(alg))
package algebra

import "math"

// Algebra supplies the scalar operations for a domain type T.
//
// Implementations must be cheap to copy; they are carried by value inside
// vectors, networks, and graph nodes. A stateless struct is the expected
// shape.
type Algebra[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T

	// FromFloat64 constructs a scalar from a floating-point literal.
	FromFloat64(v float64) T
	// ToFloat64 extracts a floating-point approximation of the scalar.
	ToFloat64(v T) float64

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(a T) T

	Sin(a T) T
	Cos(a T) T
	Sqrt(a T) T
	Exp(a T) T
	Tanh(a T) T

	Less(a, b T) bool
	Equal(a, b T) bool
}

// Fraction returns num/denom in the scalar domain.
func Fraction[T any, A Algebra[T]](alg A, num, denom int) T {
	return alg.FromFloat64(float64(num) / float64(denom))
}

// Two returns 2 in the scalar domain.
func Two[T any, A Algebra[T]](alg A) T { return alg.FromFloat64(2) }

// Half returns 1/2 in the scalar domain.
func Half[T any, A Algebra[T]](alg A) T { return alg.FromFloat64(0.5) }

// Pi returns the circle constant in the scalar domain.
func Pi[T any, A Algebra[T]](alg A) T { return alg.FromFloat64(math.Pi) }

// HalfPi returns pi/2 in the scalar domain.
func HalfPi[T any, A Algebra[T]](alg A) T { return alg.FromFloat64(math.Pi / 2) }
