package neural

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kineto-ml/kineto/algebra"
	"github.com/kineto-ml/kineto/internal/nn"
)

// identityNet builds a deterministic single-layer network computing the
// plain sum of its inputs (ones weights, no bias, identity activation).
func identityNet(inputs int) *nn.MLP[float64, algebra.Float64] {
	m := nn.NewMLP[float64](algebra.Float64{}, inputs, false)
	m.AddLinearLayer(nn.Identity, 1)
	m.Init(nn.Ones)
	return m
}

// countingNet counts Compute invocations to observe recomputation.
type countingNet struct {
	nn.Network[float64]
	calls int
}

func (c *countingNet) Compute(in, out []float64) error {
	c.calls++
	return c.Network.Compute(in, out)
}

func newGraph() *Graph[float64, algebra.Float64] {
	return NewGraph[float64](algebra.Float64{})
}

func TestNoInputIdentity(t *testing.T) {
	g := newGraph()

	n := g.NewValueNode(3.5)
	require.True(t, n.Dirty())

	v, err := n.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
	assert.False(t, n.Dirty())

	// The residual flag is irrelevant without inputs.
	m := g.NewValueNode(-1.25)
	m.Residual = false
	v, err = m.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, -1.25, v)
}

func TestEvaluationIdempotence(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(2)
	counter := &countingNet{Network: identityNet(1)}

	n, err := g.NewWiredNode([]NodeID{x.ID()}, counter)
	require.NoError(t, err)
	n.SetValue(10)

	first, err := n.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, 1, counter.calls)

	second, err := n.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, counter.calls, "clean node must not recompute")
}

func TestResidualComposition(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(2)
	y := g.NewValueNode(3)

	n, err := g.NewWiredNode([]NodeID{x.ID(), y.ID()}, identityNet(2))
	require.NoError(t, err)
	n.SetValue(10)

	v, err := n.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 15.0, v, 1e-12, "residual: value + sum(inputs)")

	m, err := g.NewWiredNode([]NodeID{x.ID(), y.ID()}, identityNet(2))
	require.NoError(t, err)
	m.SetValue(10)
	m.Residual = false

	v, err = m.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-12, "non-residual: network output only")
}

func TestDirtyPropagation(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(2)
	counter := &countingNet{Network: identityNet(1)}

	n, err := g.NewWiredNode([]NodeID{x.ID()}, counter)
	require.NoError(t, err)
	n.SetValue(10)

	v, err := n.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 12.0, v, 1e-12)
	require.False(t, n.Dirty())

	n.SetValue(20)
	assert.True(t, n.Dirty())
	v, err = n.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 22.0, v, 1e-12)
	assert.Equal(t, 2, counter.calls)

	require.NoError(t, n.AddAssign(NewValue(algebra.Float64{}, 1.0)))
	assert.True(t, n.Dirty())
	v, err = n.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 23.0, v, 1e-12)
	assert.Equal(t, 3, counter.calls)
}

func TestConnectInvalidates(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(2)

	n := g.NewNode()
	n.Net().(*nn.MLP[float64, algebra.Float64]).Seed(42)
	n.SetValue(1)

	require.NoError(t, n.Connect(x.ID(), nn.Identity))
	assert.True(t, n.Dirty())
	assert.Equal(t, []NodeID{x.ID()}, n.Inputs())

	before, err := n.Evaluate()
	require.NoError(t, err)
	require.False(t, n.Dirty())

	// A second connection reinitializes all weights and dirties the node.
	require.NoError(t, n.Connect(None, nn.Identity))
	assert.True(t, n.Dirty())

	after, err := n.Evaluate()
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestConnectSeededReproducibility(t *testing.T) {
	build := func() float64 {
		g := newGraph()
		x := g.NewValueNode(2)
		n := g.NewNode()
		n.Net().(*nn.MLP[float64, algebra.Float64]).Seed(7)
		n.SetValue(1)
		require.NoError(t, n.Connect(x.ID(), nn.Tanh))
		v, err := n.Evaluate()
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, build(), build())
}

func TestNoneInputContributesZero(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(4)

	n, err := g.NewWiredNode([]NodeID{x.ID(), None}, identityNet(2))
	require.NoError(t, err)
	n.Residual = false

	v, err := n.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v, 1e-12)
}

func TestNameAliasing(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(1)
	y := g.NewValueNode(50)

	a, err := g.NewWiredNode([]NodeID{x.ID()}, identityNet(1))
	require.NoError(t, err)
	a.Residual = false
	require.NoError(t, a.Assign("shared"))

	b, err := g.NewWiredNode([]NodeID{y.ID()}, identityNet(1))
	require.NoError(t, err)
	b.Residual = false
	require.NoError(t, b.Assign("shared"))

	// a's name now resolves to b, so a delegates to b's evaluation.
	v, err := a.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 50.0, v, 1e-12)

	// Delegation leaves a dirty: it re-delegates on every call and
	// follows later changes to the target.
	assert.True(t, a.Dirty())
	y.SetValue(60)
	b.SetDirty()
	v, err = a.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 60.0, v, 1e-12)

	got, ok := g.Retrieve("shared")
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestBlueprintResolutionOrdering(t *testing.T) {
	g := newGraph()
	g.AddBlueprint("y", []string{"x"}, identityNet(1))

	// Consuming the blueprint before "x" is registered fails and leaves
	// the node and registries untouched.
	n := g.NewNode()
	err := n.Assign("y")
	require.ErrorIs(t, err, ErrUnresolvedInput)
	assert.Empty(t, n.Name())
	assert.Empty(t, n.Inputs())
	_, ok := g.Retrieve("y")
	assert.False(t, ok)

	// With "x" registered the same sequence succeeds and wires the first
	// input to the "x" node.
	x := g.NewValueNode(3)
	require.NoError(t, x.Assign("x"))

	m := g.NewNode()
	m.SetValue(10)
	require.NoError(t, m.Assign("y"))
	assert.Equal(t, []NodeID{x.ID()}, m.Inputs())

	v, err := m.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 13.0, v, 1e-12)
}

func TestBlueprintNetworkIsCopied(t *testing.T) {
	g := newGraph()
	net := identityNet(1)
	g.AddBlueprint("y", []string{"x"}, net)

	// Mutating the caller's network after registration must not affect
	// nodes wired from the blueprint.
	net.Init(nn.Zeros)

	x := g.NewValueNode(3)
	require.NoError(t, x.Assign("x"))

	n := g.NewNode()
	n.Residual = false
	require.NoError(t, n.Assign("y"))

	v, err := n.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, 1e-12)
}

func TestArithmeticCollapse(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(2)

	a, err := g.NewWiredNode([]NodeID{x.ID()}, identityNet(1))
	require.NoError(t, err)
	a.SetValue(1)
	b := g.NewValueNode(4)

	c, err := a.Add(b)
	require.NoError(t, err)

	// The result is a plain detached node: no graph, no inputs, no net.
	assert.Equal(t, None, c.ID())
	assert.Empty(t, c.Inputs())
	assert.Nil(t, c.Net())

	v, err := c.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 7.0, v, 1e-12) // (1 + 2) + 4

	// Later operand mutation does not reach the collapsed result.
	a.SetValue(100)
	x.SetValue(100)
	v, err = c.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 7.0, v, 1e-12)
}

func TestOperators(t *testing.T) {
	alg := algebra.Float64{}
	a := NewValue(alg, 6.0)
	b := NewValue(alg, 3.0)

	tests := []struct {
		name string
		op   func() (*Node[float64, algebra.Float64], error)
		want float64
	}{
		{"Add", func() (*Node[float64, algebra.Float64], error) { return a.Add(b) }, 9},
		{"Sub", func() (*Node[float64, algebra.Float64], error) { return a.Sub(b) }, 3},
		{"Mul", func() (*Node[float64, algebra.Float64], error) { return a.Mul(b) }, 18},
		{"Div", func() (*Node[float64, algebra.Float64], error) { return a.Div(b) }, 2},
		{"Neg", a.Neg, -6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.op()
			require.NoError(t, err)
			v, err := n.Evaluate()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v, 1e-12)
		})
	}

	less, err := b.Less(a)
	require.NoError(t, err)
	assert.True(t, less)
	greater, err := a.Greater(b)
	require.NoError(t, err)
	assert.True(t, greater)
	lessEq, err := a.LessEq(a)
	require.NoError(t, err)
	assert.True(t, lessEq)
	eq, err := a.Eq(NewValue(alg, 6.0))
	require.NoError(t, err)
	assert.True(t, eq)
	neq, err := a.Neq(b)
	require.NoError(t, err)
	assert.True(t, neq)
}

func TestCompoundAssignment(t *testing.T) {
	alg := algebra.Float64{}
	n := NewValue(alg, 10.0)

	require.NoError(t, n.AddAssign(NewValue(alg, 2.0)))
	require.NoError(t, n.SubAssign(NewValue(alg, 4.0)))
	require.NoError(t, n.MulAssign(NewValue(alg, 3.0)))
	require.NoError(t, n.DivAssign(NewValue(alg, 2.0)))

	v, err := n.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 12.0, v, 1e-12)
}

func TestSetFromNodeKeepsWiring(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(2)

	n, err := g.NewWiredNode([]NodeID{x.ID()}, identityNet(1))
	require.NoError(t, err)
	n.SetValue(1)
	require.NoError(t, n.Assign("n"))

	require.NoError(t, n.SetFromNode(g.NewValueNode(9)))

	// Only the stored value changed; inputs, network, and name survive.
	assert.Equal(t, []NodeID{x.ID()}, n.Inputs())
	assert.NotNil(t, n.Net())
	assert.Equal(t, "n", n.Name())

	v, err := n.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 11.0, v, 1e-12)
}

func TestSetDirtyGatedByOutputDim(t *testing.T) {
	g := newGraph()
	n := g.NewValueNode(5)

	_, err := n.Evaluate()
	require.NoError(t, err)
	require.False(t, n.Dirty())

	// The network has no outputs yet, so SetDirty is a no-op.
	n.SetDirty()
	assert.False(t, n.Dirty())

	// Direct assignment dirties regardless.
	n.SetValue(6)
	assert.True(t, n.Dirty())
}

func TestDanglingInputDetected(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(2)

	n, err := g.NewWiredNode([]NodeID{x.ID()}, identityNet(1))
	require.NoError(t, err)

	require.NoError(t, g.Remove(x.ID()))

	_, err = n.Evaluate()
	assert.ErrorIs(t, err, ErrDanglingInput)
}

func TestRemoveInvalidatesRetrieve(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(2)
	require.NoError(t, x.Assign("x"))

	require.NoError(t, g.Remove(x.ID()))

	_, ok := g.Retrieve("x")
	assert.False(t, ok)

	err := g.Remove(x.ID())
	assert.ErrorIs(t, err, ErrDanglingInput)
}

func TestCycleHitsDepthLimit(t *testing.T) {
	g := newGraph()
	g.SetMaxDepth(64)

	a := g.NewNode()
	b := g.NewNode()
	require.NoError(t, a.Connect(b.ID(), nn.Identity))
	require.NoError(t, b.Connect(a.ID(), nn.Identity))

	_, err := a.Evaluate()
	assert.ErrorIs(t, err, ErrDepthExceeded)
	assert.True(t, a.Dirty())
}

func TestRetrieveMissing(t *testing.T) {
	g := newGraph()
	n, ok := g.Retrieve("nope")
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestDetachedNodeOperations(t *testing.T) {
	n := NewValue(algebra.Float64{}, 1.0)

	err := n.Connect(None, nn.Identity)
	assert.ErrorIs(t, err, ErrDetached)

	err = n.Assign("x")
	assert.ErrorIs(t, err, ErrDetached)
}

func TestNewWiredNodeValidatesInputs(t *testing.T) {
	g := newGraph()
	_, err := g.NewWiredNode([]NodeID{NodeID(99)}, nil)
	assert.ErrorIs(t, err, ErrDanglingInput)

	n, err := g.NewWiredNode([]NodeID{None}, nil)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{None}, n.Inputs())
}

func TestLastAssignWins(t *testing.T) {
	g := newGraph()
	a := g.NewValueNode(1)
	b := g.NewValueNode(2)

	require.NoError(t, a.Assign("n"))
	require.NoError(t, b.Assign("n"))

	got, ok := g.Retrieve("n")
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestGraphIsolation(t *testing.T) {
	// Registries are per graph, not process wide.
	g1 := newGraph()
	g2 := newGraph()

	a := g1.NewValueNode(1)
	require.NoError(t, a.Assign("x"))

	_, ok := g2.Retrieve("x")
	assert.False(t, ok)
}

func TestEvaluateErrorIsWrapped(t *testing.T) {
	g := newGraph()
	x := g.NewValueNode(1)
	n, err := g.NewWiredNode([]NodeID{x.ID()}, identityNet(1))
	require.NoError(t, err)
	require.NoError(t, g.Remove(x.ID()))

	_, err = n.Evaluate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDanglingInput))
}
