package neural

import "errors"

// Engine error values. All are wrapped with context by the operations
// that return them; match with errors.Is.
var (
	// ErrUnresolvedInput reports a blueprint input name with no registered
	// node at Assign time. Partially wired graphs are a programming error,
	// so the failed Assign leaves the node and registries untouched.
	ErrUnresolvedInput = errors.New("neural: blueprint input not registered")

	// ErrDanglingInput reports an input reference to a removed or invalid
	// arena slot.
	ErrDanglingInput = errors.New("neural: dangling input reference")

	// ErrDepthExceeded reports that evaluation recursed past the graph's
	// depth limit, which in practice means the input graph has a cycle.
	ErrDepthExceeded = errors.New("neural: evaluation depth limit exceeded")

	// ErrDetached reports a graph operation on a node that is not part of
	// a graph, such as the plain value nodes produced by arithmetic.
	ErrDetached = errors.New("neural: node is not part of a graph")
)
