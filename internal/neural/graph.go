package neural

import (
	"fmt"

	"github.com/kineto-ml/kineto/algebra"
	"github.com/kineto-ml/kineto/internal/nn"
)

// NodeID is a stable index into a graph's node arena.
type NodeID int

// None marks an absent input connection. An absent input contributes the
// domain zero to the network.
const None NodeID = -1

// DefaultMaxDepth bounds recursive evaluation. A well-formed acyclic
// graph never comes close; hitting the limit means a cycle.
const DefaultMaxDepth = 1024

// Blueprint is a deferred wiring template. When a node is assigned the
// blueprint's name, the input names are resolved against the name
// registry and the network is copied into the node.
type Blueprint[T any] struct {
	InputNames []string
	Net        nn.Network[T]
}

// Graph owns an arena of neural scalar nodes together with the name and
// blueprint registries that wire them.
//
// The graph replaces process-wide registries with an explicit context:
// independent graphs coexist and tests run isolated. Node references are
// arena indices, so a reference to a removed node is a detectable error
// rather than undefined behavior.
//
// A Graph is not safe for concurrent mutation. Construct the graph on a
// single goroutine; concurrent use after that must be read-only, which
// rules out Evaluate on dirty nodes.
type Graph[T any, A algebra.Algebra[T]] struct {
	alg        A
	nodes      []*Node[T, A]
	names      map[string]NodeID
	blueprints map[string]Blueprint[T]
	maxDepth   int
}

// NewGraph creates an empty graph over the given scalar algebra.
func NewGraph[T any, A algebra.Algebra[T]](alg A) *Graph[T, A] {
	return &Graph[T, A]{
		alg:        alg,
		names:      make(map[string]NodeID),
		blueprints: make(map[string]Blueprint[T]),
		maxDepth:   DefaultMaxDepth,
	}
}

// Algebra returns the graph's scalar algebra.
func (g *Graph[T, A]) Algebra() A { return g.alg }

// SetMaxDepth adjusts the evaluation recursion limit.
func (g *Graph[T, A]) SetMaxDepth(n int) { g.maxDepth = n }

// Len returns the number of arena slots, including tombstones.
func (g *Graph[T, A]) Len() int { return len(g.nodes) }

func (g *Graph[T, A]) alloc() *Node[T, A] {
	n := &Node[T, A]{
		graph:    g,
		id:       NodeID(len(g.nodes)),
		alg:      g.alg,
		value:    g.alg.Zero(),
		cache:    g.alg.Zero(),
		dirty:    true,
		Residual: true,
	}
	g.nodes = append(g.nodes, n)
	return n
}

// NewNode creates a zero-valued node with no connections and an empty
// network. The node starts dirty, so the first Evaluate computes.
func (g *Graph[T, A]) NewNode() *Node[T, A] {
	n := g.alloc()
	n.net = nn.NewMLP[T](g.alg, 0, true)
	return n
}

// NewValueNode creates a node holding the given literal value.
func (g *Graph[T, A]) NewValueNode(v T) *Node[T, A] {
	n := g.NewNode()
	n.value = v
	return n
}

// NewWiredNode creates a node with explicit input connections. When net
// is nil, an empty biased network sized to the inputs is created; the
// caller then grows it via Connect or the network's own methods.
//
// Every non-None input must name a live arena slot.
func (g *Graph[T, A]) NewWiredNode(inputs []NodeID, net nn.Network[T]) (*Node[T, A], error) {
	for _, id := range inputs {
		if id == None {
			continue
		}
		if _, err := g.Node(id); err != nil {
			return nil, fmt.Errorf("neural: NewWiredNode: %w", err)
		}
	}
	n := g.alloc()
	n.inputs = append([]NodeID(nil), inputs...)
	if net == nil {
		net = nn.NewMLP[T](g.alg, len(inputs), true)
	}
	n.net = net
	return n, nil
}

// Node resolves an arena index to a live node.
func (g *Graph[T, A]) Node(id NodeID) (*Node[T, A], error) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, fmt.Errorf("%w: id %d out of range", ErrDanglingInput, id)
	}
	n := g.nodes[id]
	if n == nil {
		return nil, fmt.Errorf("%w: id %d was removed", ErrDanglingInput, id)
	}
	return n, nil
}

// Remove tombstones the node's arena slot. Registry entries and input
// lists referring to the slot are deliberately left in place; resolving
// them afterwards yields ErrDanglingInput.
func (g *Graph[T, A]) Remove(id NodeID) error {
	n, err := g.Node(id)
	if err != nil {
		return err
	}
	n.graph = nil
	g.nodes[id] = nil
	return nil
}

// Retrieve returns the node currently registered under name. The second
// result is false when the name is unregistered or its node was removed;
// a missing name is the one recoverable lookup in the engine.
func (g *Graph[T, A]) Retrieve(name string) (*Node[T, A], bool) {
	id, ok := g.names[name]
	if !ok {
		return nil, false
	}
	n, err := g.Node(id)
	if err != nil {
		return nil, false
	}
	return n, true
}

// AddBlueprint stores (or overwrites) a wiring template under name. The
// input names are not validated here; resolution happens in the Assign
// call that consumes the blueprint. The network is stored as a copy.
func (g *Graph[T, A]) AddBlueprint(name string, inputNames []string, net nn.Network[T]) {
	g.blueprints[name] = Blueprint[T]{
		InputNames: append([]string(nil), inputNames...),
		Net:        net.Clone(),
	}
}
