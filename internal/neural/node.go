package neural

import (
	"fmt"

	"github.com/kineto-ml/kineto/algebra"
	"github.com/kineto-ml/kineto/internal/nn"
)

// Node is a scalar whose value can be replaced or augmented by a small
// neural network fed from other nodes.
//
// A node is either clean (cache valid) or dirty (cache stale). It starts
// dirty. Mutating the stored value or the wiring makes it dirty again;
// Evaluate recomputes the cache and cleans it.
//
// Nodes created by a Graph live in its arena and may be wired together.
// Nodes produced by the arithmetic methods are detached plain values with
// no inputs and no network.
type Node[T any, A algebra.Algebra[T]] struct {
	graph *Graph[T, A]
	id    NodeID
	alg   A

	value  T
	cache  T
	dirty  bool
	inputs []NodeID
	net    nn.Network[T]
	name   string

	// Residual selects whether the network output is added to the stored
	// value (true, the default) or replaces it.
	Residual bool

	// InitPolicy is the weight initialization used when Connect
	// reinitializes the network. The zero value is nn.Xavier.
	InitPolicy nn.InitPolicy
}

// NewValue creates a detached plain node holding v. Detached nodes have
// no inputs, no network, and no graph; they always evaluate to v.
func NewValue[T any, A algebra.Algebra[T]](alg A, v T) *Node[T, A] {
	return &Node[T, A]{
		id:       None,
		alg:      alg,
		value:    v,
		cache:    alg.Zero(),
		dirty:    true,
		Residual: true,
	}
}

// ID returns the node's arena index, or None for detached nodes.
func (n *Node[T, A]) ID() NodeID { return n.id }

// Name returns the node's registered name; empty means no sharing.
func (n *Node[T, A]) Name() string { return n.name }

// Net returns the embedded network. Detached nodes return nil.
func (n *Node[T, A]) Net() nn.Network[T] { return n.net }

// Inputs returns a copy of the node's input connections.
func (n *Node[T, A]) Inputs() []NodeID {
	return append([]NodeID(nil), n.inputs...)
}

// Dirty reports whether the next Evaluate will recompute.
func (n *Node[T, A]) Dirty() bool { return n.dirty }

// Value returns the stored value, ignoring any network contribution.
func (n *Node[T, A]) Value() T { return n.value }

// SetDirty invalidates the cache, unless the network has no outputs yet:
// an unwired network cannot contribute, so the node stays governed by
// direct value assignment alone.
func (n *Node[T, A]) SetDirty() {
	if n.net != nil && n.net.OutputDim() != 0 {
		n.dirty = true
	}
}

// SetValue replaces the stored value and invalidates the cache. The
// inputs, network, and name are never touched by assignment, so copying
// an evaluated value into a node cannot corrupt its wiring.
func (n *Node[T, A]) SetValue(v T) {
	n.value = v
	n.dirty = true
}

// SetFloat64 assigns a floating-point literal.
func (n *Node[T, A]) SetFloat64(v float64) {
	n.SetValue(n.alg.FromFloat64(v))
}

// SetFromNode assigns the other node's evaluated value. Like SetValue it
// replaces only the stored value.
func (n *Node[T, A]) SetFromNode(o *Node[T, A]) error {
	v, err := o.Evaluate()
	if err != nil {
		return err
	}
	n.SetValue(v)
	return nil
}

// Evaluate returns the node's current value, recomputing it only when
// the node is dirty.
//
// A clean node returns its cache with no side effects. A dirty node with
// no inputs caches and returns its stored value; the network is never
// consulted. A dirty node with inputs first follows name aliasing: if
// its name now resolves to a different node, evaluation delegates there
// outright and this node stays dirty, re-delegating on every call.
// Otherwise the inputs are evaluated depth first (absent inputs
// contribute zero), fed through the network, and the single output is
// added to the stored value in residual mode or returned as is.
//
// Cyclic wiring is reported as ErrDepthExceeded once recursion passes
// the graph's depth limit; references to removed nodes are reported as
// ErrDanglingInput.
func (n *Node[T, A]) Evaluate() (T, error) {
	return n.evaluate(0)
}

// MustEvaluate is Evaluate for contexts that cannot fail, such as the
// node algebra. It panics on error.
func (n *Node[T, A]) MustEvaluate() T {
	v, err := n.Evaluate()
	if err != nil {
		panic(fmt.Sprintf("neural: Node.MustEvaluate: %v", err))
	}
	return v
}

func (n *Node[T, A]) evaluate(depth int) (T, error) {
	var zero T
	if !n.dirty {
		return n.cache, nil
	}
	if len(n.inputs) == 0 {
		n.cache = n.value
		n.dirty = false
		return n.value, nil
	}

	// Only arena nodes can have inputs.
	g := n.graph
	if depth >= g.maxDepth {
		return zero, fmt.Errorf("%w (depth %d)", ErrDepthExceeded, depth)
	}

	// Name aliasing is resolved per evaluation: the current holder of the
	// name wins, even if it changed after this node was assigned.
	if n.name != "" {
		if id, ok := g.names[n.name]; ok && id != n.id {
			target, err := g.Node(id)
			if err != nil {
				return zero, fmt.Errorf("neural: alias %q: %w", n.name, err)
			}
			return target.evaluate(depth + 1)
		}
	}

	in := make([]T, len(n.inputs))
	for i, id := range n.inputs {
		if id == None {
			in[i] = n.alg.Zero()
			continue
		}
		src, err := g.Node(id)
		if err != nil {
			return zero, fmt.Errorf("neural: input %d: %w", i, err)
		}
		v, err := src.evaluate(depth + 1)
		if err != nil {
			return zero, err
		}
		in[i] = v
	}

	// A network with no output layer cannot contribute; the node falls
	// back to its stored value.
	if n.net == nil || n.net.OutputDim() == 0 {
		n.cache = n.value
		n.dirty = false
		return n.cache, nil
	}

	out := make([]T, n.net.OutputDim())
	if err := n.net.Compute(in, out); err != nil {
		return zero, fmt.Errorf("neural: node %d: %w", n.id, err)
	}
	if n.Residual {
		n.cache = n.alg.Add(n.value, out[0])
	} else {
		n.cache = out[0]
	}
	n.dirty = false
	return n.cache, nil
}

// Connect appends an input connection and grows the network by one
// input. If the network has no layers yet, a single linear output layer
// with the given activation is created, so the first Connect both
// declares inputs and builds the minimal network. Every Connect fully
// reinitializes the weights under the node's InitPolicy, discarding any
// previously assigned state, and marks the node dirty.
//
// input may be None for a placeholder that feeds zero.
func (n *Node[T, A]) Connect(input NodeID, act nn.Activation) error {
	if n.graph == nil {
		return fmt.Errorf("%w: Connect", ErrDetached)
	}
	if input != None {
		if _, err := n.graph.Node(input); err != nil {
			return fmt.Errorf("neural: Connect: %w", err)
		}
	}
	n.inputs = append(n.inputs, input)
	n.net.SetInputDim(n.net.InputDim() + 1)
	if n.net.NumLayers() == 0 {
		n.net.AddLinearLayer(act, 1)
	}
	n.net.Init(n.InitPolicy)
	n.SetDirty()
	return nil
}

// Assign names this node and registers it as the current holder of the
// name, overwriting any previous holder.
//
// If a blueprint exists under the name, its input names are resolved
// against the name registry and its network is copied in, replacing the
// node's inputs and network. Resolution is strict: every input name must
// already be registered, otherwise Assign returns ErrUnresolvedInput and
// leaves the node and registries unchanged.
func (n *Node[T, A]) Assign(name string) error {
	if n.graph == nil {
		return fmt.Errorf("%w: Assign", ErrDetached)
	}
	g := n.graph
	if bp, ok := g.blueprints[name]; ok {
		ids := make([]NodeID, len(bp.InputNames))
		for i, inputName := range bp.InputNames {
			id, ok := g.names[inputName]
			if !ok {
				return fmt.Errorf("%w: %q requested by blueprint %q", ErrUnresolvedInput, inputName, name)
			}
			ids[i] = id
		}
		n.inputs = ids
		n.net = bp.Net.Clone()
		n.SetDirty()
	}
	n.name = name
	g.names[name] = n.id
	return nil
}
