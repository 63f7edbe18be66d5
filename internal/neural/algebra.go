package neural

import (
	"fmt"

	"github.com/kineto-ml/kineto/algebra"
)

// NodeAlgebra makes *Node satisfy algebra.Algebra, so generic numeric
// code (spatial vectors included) runs unchanged over neural scalars.
//
// Every operation collapses its operands to values and wraps the result
// in a detached plain node, mirroring the arithmetic surface. The
// Algebra contract is infallible, so evaluation failures (cyclic wiring,
// dangling inputs) panic; both are caller invariants.
type NodeAlgebra[T any, A algebra.Algebra[T]] struct {
	alg A
}

// NewNodeAlgebra lifts a scalar algebra to an algebra over nodes.
func NewNodeAlgebra[T any, A algebra.Algebra[T]](alg A) NodeAlgebra[T, A] {
	return NodeAlgebra[T, A]{alg: alg}
}

// Inner returns the underlying scalar algebra.
func (na NodeAlgebra[T, A]) Inner() A { return na.alg }

func (na NodeAlgebra[T, A]) lift(v T) *Node[T, A] { return NewValue(na.alg, v) }

// Zero returns a plain node holding the domain zero.
func (na NodeAlgebra[T, A]) Zero() *Node[T, A] { return na.lift(na.alg.Zero()) }

// One returns a plain node holding the domain one.
func (na NodeAlgebra[T, A]) One() *Node[T, A] { return na.lift(na.alg.One()) }

// FromFloat64 returns a plain node holding v.
func (na NodeAlgebra[T, A]) FromFloat64(v float64) *Node[T, A] {
	return na.lift(na.alg.FromFloat64(v))
}

// ToFloat64 evaluates the node and converts the result.
func (na NodeAlgebra[T, A]) ToFloat64(v *Node[T, A]) float64 {
	return na.alg.ToFloat64(v.MustEvaluate())
}

func must[T any, A algebra.Algebra[T]](n *Node[T, A], err error) *Node[T, A] {
	if err != nil {
		panic(fmt.Sprintf("neural: NodeAlgebra: %v", err))
	}
	return n
}

// Add returns a + b as a plain node.
func (na NodeAlgebra[T, A]) Add(a, b *Node[T, A]) *Node[T, A] { return must(a.Add(b)) }

// Sub returns a - b as a plain node.
func (na NodeAlgebra[T, A]) Sub(a, b *Node[T, A]) *Node[T, A] { return must(a.Sub(b)) }

// Mul returns a * b as a plain node.
func (na NodeAlgebra[T, A]) Mul(a, b *Node[T, A]) *Node[T, A] { return must(a.Mul(b)) }

// Div returns a / b as a plain node.
func (na NodeAlgebra[T, A]) Div(a, b *Node[T, A]) *Node[T, A] { return must(a.Div(b)) }

// Neg returns -a as a plain node.
func (na NodeAlgebra[T, A]) Neg(a *Node[T, A]) *Node[T, A] { return must(a.Neg()) }

// Sin evaluates a and returns sin(a) as a plain node.
func (na NodeAlgebra[T, A]) Sin(a *Node[T, A]) *Node[T, A] {
	return na.lift(na.alg.Sin(a.MustEvaluate()))
}

// Cos evaluates a and returns cos(a) as a plain node.
func (na NodeAlgebra[T, A]) Cos(a *Node[T, A]) *Node[T, A] {
	return na.lift(na.alg.Cos(a.MustEvaluate()))
}

// Sqrt evaluates a and returns its square root as a plain node.
func (na NodeAlgebra[T, A]) Sqrt(a *Node[T, A]) *Node[T, A] {
	return na.lift(na.alg.Sqrt(a.MustEvaluate()))
}

// Exp evaluates a and returns e**a as a plain node.
func (na NodeAlgebra[T, A]) Exp(a *Node[T, A]) *Node[T, A] {
	return na.lift(na.alg.Exp(a.MustEvaluate()))
}

// Tanh evaluates a and returns tanh(a) as a plain node.
func (na NodeAlgebra[T, A]) Tanh(a *Node[T, A]) *Node[T, A] {
	return na.lift(na.alg.Tanh(a.MustEvaluate()))
}

// Less reports a < b by evaluated value.
func (na NodeAlgebra[T, A]) Less(a, b *Node[T, A]) bool {
	return na.alg.Less(a.MustEvaluate(), b.MustEvaluate())
}

// Equal reports a == b by evaluated value.
func (na NodeAlgebra[T, A]) Equal(a, b *Node[T, A]) bool {
	return na.alg.Equal(a.MustEvaluate(), b.MustEvaluate())
}

// Lift wraps each value in a detached plain node.
func Lift[T any, A algebra.Algebra[T]](alg A, values []T) []*Node[T, A] {
	out := make([]*Node[T, A], len(values))
	for i, v := range values {
		out[i] = NewValue(alg, v)
	}
	return out
}

// Lower evaluates each node back to a plain value.
func Lower[T any, A algebra.Algebra[T]](nodes []*Node[T, A]) ([]T, error) {
	out := make([]T, len(nodes))
	for i, n := range nodes {
		v, err := n.Evaluate()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var _ algebra.Algebra[*Node[float64, algebra.Float64]] = NodeAlgebra[float64, algebra.Float64]{}
