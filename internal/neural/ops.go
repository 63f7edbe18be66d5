package neural

// Arithmetic between nodes collapses the graph to concrete values: both
// operands are fully evaluated (including network contributions) and the
// result is a new detached plain node. These operations never build graph
// edges, so a later mutation of an operand does not affect the result.

func (n *Node[T, A]) binary(o *Node[T, A], f func(a, b T) T) (*Node[T, A], error) {
	a, err := n.Evaluate()
	if err != nil {
		return nil, err
	}
	b, err := o.Evaluate()
	if err != nil {
		return nil, err
	}
	return NewValue(n.alg, f(a, b)), nil
}

// Add returns a plain node holding n + o.
func (n *Node[T, A]) Add(o *Node[T, A]) (*Node[T, A], error) {
	return n.binary(o, n.alg.Add)
}

// Sub returns a plain node holding n - o.
func (n *Node[T, A]) Sub(o *Node[T, A]) (*Node[T, A], error) {
	return n.binary(o, n.alg.Sub)
}

// Mul returns a plain node holding n * o.
func (n *Node[T, A]) Mul(o *Node[T, A]) (*Node[T, A], error) {
	return n.binary(o, n.alg.Mul)
}

// Div returns a plain node holding n / o.
func (n *Node[T, A]) Div(o *Node[T, A]) (*Node[T, A], error) {
	return n.binary(o, n.alg.Div)
}

// Neg returns a plain node holding -n.
func (n *Node[T, A]) Neg() (*Node[T, A], error) {
	v, err := n.Evaluate()
	if err != nil {
		return nil, err
	}
	return NewValue(n.alg, n.alg.Neg(v)), nil
}

func (n *Node[T, A]) compare(o *Node[T, A], f func(a, b T) bool) (bool, error) {
	a, err := n.Evaluate()
	if err != nil {
		return false, err
	}
	b, err := o.Evaluate()
	if err != nil {
		return false, err
	}
	return f(a, b), nil
}

// Less reports whether n < o.
func (n *Node[T, A]) Less(o *Node[T, A]) (bool, error) {
	return n.compare(o, n.alg.Less)
}

// LessEq reports whether n <= o.
func (n *Node[T, A]) LessEq(o *Node[T, A]) (bool, error) {
	return n.compare(o, func(a, b T) bool {
		return n.alg.Less(a, b) || n.alg.Equal(a, b)
	})
}

// Greater reports whether n > o.
func (n *Node[T, A]) Greater(o *Node[T, A]) (bool, error) {
	return n.compare(o, func(a, b T) bool { return n.alg.Less(b, a) })
}

// Eq reports whether n == o by evaluated value.
func (n *Node[T, A]) Eq(o *Node[T, A]) (bool, error) {
	return n.compare(o, n.alg.Equal)
}

// Neq reports whether n != o by evaluated value.
func (n *Node[T, A]) Neq(o *Node[T, A]) (bool, error) {
	eq, err := n.Eq(o)
	return !eq, err
}

// Compound assignment mutates the stored value in place with the
// operand's evaluated scalar and marks the node dirty. The inputs and
// network are untouched.

func (n *Node[T, A]) compound(o *Node[T, A], f func(a, b T) T) error {
	v, err := o.Evaluate()
	if err != nil {
		return err
	}
	n.value = f(n.value, v)
	n.dirty = true
	return nil
}

// AddAssign performs n += o on the stored value.
func (n *Node[T, A]) AddAssign(o *Node[T, A]) error {
	return n.compound(o, n.alg.Add)
}

// SubAssign performs n -= o on the stored value.
func (n *Node[T, A]) SubAssign(o *Node[T, A]) error {
	return n.compound(o, n.alg.Sub)
}

// MulAssign performs n *= o on the stored value.
func (n *Node[T, A]) MulAssign(o *Node[T, A]) error {
	return n.compound(o, n.alg.Mul)
}

// DivAssign performs n /= o on the stored value.
func (n *Node[T, A]) DivAssign(o *Node[T, A]) error {
	return n.compound(o, n.alg.Div)
}
