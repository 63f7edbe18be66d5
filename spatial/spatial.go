// Copyright 2025 Kineto ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package spatial provides 6-dimensional spatial vector algebra for
// rigid-body dynamics.
//
// A spatial vector packs a 3D angular component (top) and a 3D linear
// component (bottom). MotionVector carries velocities and accelerations,
// ForceVector carries forces and momenta. Both are transformed by 6x6
// matrices via ApplyTransform.
//
// All types are generic over an algebra.Algebra, so they work equally over
// plain float64 scalars and neural scalar nodes.
//
// Example:
//
//	alg := algebra.Float64{}
//	v := spatial.NewMotionVector(alg,
//	    spatial.Vector3[float64]{0, 0, 1},  // angular
//	    spatial.Vector3[float64]{1, 0, 0},  // linear
//	)
//	w := v.Scale(alg.FromFloat64(0.5))
package spatial

import (
	"fmt"

	"github.com/kineto-ml/kineto/algebra"
)

// Vector3 is a 3-component column vector in the scalar domain T.
type Vector3[T any] [3]T

// Matrix6 is a 6x6 matrix in the scalar domain T, indexed [row][col].
type Matrix6[T any] [6][6]T

// Zero3 returns the zero 3-vector in alg's domain.
func Zero3[T any, A algebra.Algebra[T]](alg A) Vector3[T] {
	return Vector3[T]{alg.Zero(), alg.Zero(), alg.Zero()}
}

func add3[T any, A algebra.Algebra[T]](alg A, a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{alg.Add(a[0], b[0]), alg.Add(a[1], b[1]), alg.Add(a[2], b[2])}
}

func sub3[T any, A algebra.Algebra[T]](alg A, a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{alg.Sub(a[0], b[0]), alg.Sub(a[1], b[1]), alg.Sub(a[2], b[2])}
}

func neg3[T any, A algebra.Algebra[T]](alg A, a Vector3[T]) Vector3[T] {
	return Vector3[T]{alg.Neg(a[0]), alg.Neg(a[1]), alg.Neg(a[2])}
}

func scale3[T any, A algebra.Algebra[T]](alg A, a Vector3[T], s T) Vector3[T] {
	return Vector3[T]{alg.Mul(a[0], s), alg.Mul(a[1], s), alg.Mul(a[2], s)}
}

// SpatialVector is a 6D vector split into an angular (Top) and a linear
// (Bottom) 3-vector. Elements are indexed 0..5 with the split at 3.
type SpatialVector[T any, A algebra.Algebra[T]] struct {
	alg    A
	Top    Vector3[T]
	Bottom Vector3[T]
}

// NewSpatialVector builds a spatial vector from its two halves.
func NewSpatialVector[T any, A algebra.Algebra[T]](alg A, top, bottom Vector3[T]) SpatialVector[T, A] {
	return SpatialVector[T, A]{alg: alg, Top: top, Bottom: bottom}
}

// ZeroSpatial returns the zero spatial vector.
func ZeroSpatial[T any, A algebra.Algebra[T]](alg A) SpatialVector[T, A] {
	return NewSpatialVector(alg, Zero3[T](alg), Zero3[T](alg))
}

// At returns element i, where 0..2 address Top and 3..5 address Bottom.
func (v SpatialVector[T, A]) At(i int) T {
	if i < 3 {
		return v.Top[i]
	}
	return v.Bottom[i-3]
}

// Set assigns element i, with the same index split as At.
func (v *SpatialVector[T, A]) Set(i int, s T) {
	if i < 3 {
		v.Top[i] = s
		return
	}
	v.Bottom[i-3] = s
}

// SetZero resets both halves to the domain zero.
func (v *SpatialVector[T, A]) SetZero() {
	v.Top = Zero3[T](v.alg)
	v.Bottom = Zero3[T](v.alg)
}

// Transform returns m * v as a plain spatial vector.
func (v SpatialVector[T, A]) Transform(m Matrix6[T]) SpatialVector[T, A] {
	out := ZeroSpatial[T](v.alg)
	for i := 0; i < 6; i++ {
		acc := v.alg.Zero()
		for j := 0; j < 6; j++ {
			acc = v.alg.Add(acc, v.alg.Mul(m[i][j], v.At(j)))
		}
		out.Set(i, acc)
	}
	return out
}

// String formats the vector with its float approximations.
func (v SpatialVector[T, A]) String() string {
	return fmt.Sprintf("[ [%g %g %g]  [%g %g %g] ]",
		v.alg.ToFloat64(v.Top[0]), v.alg.ToFloat64(v.Top[1]), v.alg.ToFloat64(v.Top[2]),
		v.alg.ToFloat64(v.Bottom[0]), v.alg.ToFloat64(v.Bottom[1]), v.alg.ToFloat64(v.Bottom[2]))
}

// MotionVector is a spatial vector carrying angular and linear velocity
// (or acceleration).
type MotionVector[T any, A algebra.Algebra[T]] struct {
	SpatialVector[T, A]
}

// NewMotionVector builds a motion vector from angular (top) and linear
// (bottom) components.
func NewMotionVector[T any, A algebra.Algebra[T]](alg A, top, bottom Vector3[T]) MotionVector[T, A] {
	return MotionVector[T, A]{NewSpatialVector(alg, top, bottom)}
}

// ZeroMotion returns the zero motion vector.
func ZeroMotion[T any, A algebra.Algebra[T]](alg A) MotionVector[T, A] {
	return MotionVector[T, A]{ZeroSpatial[T](alg)}
}

// Add returns v + o.
func (v MotionVector[T, A]) Add(o MotionVector[T, A]) MotionVector[T, A] {
	return NewMotionVector(v.alg, add3(v.alg, v.Top, o.Top), add3(v.alg, v.Bottom, o.Bottom))
}

// Sub returns v - o.
func (v MotionVector[T, A]) Sub(o MotionVector[T, A]) MotionVector[T, A] {
	return NewMotionVector(v.alg, sub3(v.alg, v.Top, o.Top), sub3(v.alg, v.Bottom, o.Bottom))
}

// Neg returns -v.
func (v MotionVector[T, A]) Neg() MotionVector[T, A] {
	return NewMotionVector(v.alg, neg3(v.alg, v.Top), neg3(v.alg, v.Bottom))
}

// Scale returns v * s.
func (v MotionVector[T, A]) Scale(s T) MotionVector[T, A] {
	return NewMotionVector(v.alg, scale3(v.alg, v.Top, s), scale3(v.alg, v.Bottom, s))
}

// AddInPlace adds o into v.
func (v *MotionVector[T, A]) AddInPlace(o MotionVector[T, A]) {
	v.Top = add3(v.alg, v.Top, o.Top)
	v.Bottom = add3(v.alg, v.Bottom, o.Bottom)
}

// SubInPlace subtracts o from v.
func (v *MotionVector[T, A]) SubInPlace(o MotionVector[T, A]) {
	v.Top = sub3(v.alg, v.Top, o.Top)
	v.Bottom = sub3(v.alg, v.Bottom, o.Bottom)
}

// ScaleInPlace multiplies v by s.
func (v *MotionVector[T, A]) ScaleInPlace(s T) {
	v.Top = scale3(v.alg, v.Top, s)
	v.Bottom = scale3(v.alg, v.Bottom, s)
}

// ForceVector is a spatial vector carrying torque and linear force.
type ForceVector[T any, A algebra.Algebra[T]] struct {
	SpatialVector[T, A]
}

// NewForceVector builds a force vector from torque (top) and linear force
// (bottom) components.
func NewForceVector[T any, A algebra.Algebra[T]](alg A, top, bottom Vector3[T]) ForceVector[T, A] {
	return ForceVector[T, A]{NewSpatialVector(alg, top, bottom)}
}

// ZeroForce returns the zero force vector.
func ZeroForce[T any, A algebra.Algebra[T]](alg A) ForceVector[T, A] {
	return ForceVector[T, A]{ZeroSpatial[T](alg)}
}

// Add returns v + o.
func (v ForceVector[T, A]) Add(o ForceVector[T, A]) ForceVector[T, A] {
	return NewForceVector(v.alg, add3(v.alg, v.Top, o.Top), add3(v.alg, v.Bottom, o.Bottom))
}

// Sub returns v - o.
func (v ForceVector[T, A]) Sub(o ForceVector[T, A]) ForceVector[T, A] {
	return NewForceVector(v.alg, sub3(v.alg, v.Top, o.Top), sub3(v.alg, v.Bottom, o.Bottom))
}

// Neg returns -v.
func (v ForceVector[T, A]) Neg() ForceVector[T, A] {
	return NewForceVector(v.alg, neg3(v.alg, v.Top), neg3(v.alg, v.Bottom))
}

// Scale returns v * s.
func (v ForceVector[T, A]) Scale(s T) ForceVector[T, A] {
	return NewForceVector(v.alg, scale3(v.alg, v.Top, s), scale3(v.alg, v.Bottom, s))
}

// AddInPlace adds o into v.
func (v *ForceVector[T, A]) AddInPlace(o ForceVector[T, A]) {
	v.Top = add3(v.alg, v.Top, o.Top)
	v.Bottom = add3(v.alg, v.Bottom, o.Bottom)
}

// SubInPlace subtracts o from v.
func (v *ForceVector[T, A]) SubInPlace(o ForceVector[T, A]) {
	v.Top = sub3(v.alg, v.Top, o.Top)
	v.Bottom = sub3(v.alg, v.Bottom, o.Bottom)
}

// ScaleInPlace multiplies v by s.
func (v *ForceVector[T, A]) ScaleInPlace(s T) {
	v.Top = scale3(v.alg, v.Top, s)
	v.Bottom = scale3(v.alg, v.Bottom, s)
}

// ApplyTransform returns m * v, applying a 6x6 transform row by row.
func ApplyTransform[T any, A algebra.Algebra[T]](m Matrix6[T], v SpatialVector[T, A]) SpatialVector[T, A] {
	return v.Transform(m)
}
