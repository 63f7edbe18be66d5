package nn

// Network is the consumed contract for a feed-forward scalar network.
//
// A Network maps InputDim scalars to OutputDim scalars. The neural scalar
// engine drives it opaquely: it grows the input dimension as connections
// are added, lazily appends an output layer, reinitializes weights, and
// calls Compute during evaluation. Blueprints store copies, hence Clone.
type Network[T any] interface {
	// Compute writes exactly OutputDim() values into outputs given exactly
	// InputDim() values in inputs.
	Compute(inputs, outputs []T) error

	InputDim() int
	OutputDim() int
	// NumLayers counts linear layers; zero means no output layer exists yet.
	NumLayers() int

	SetInputDim(n int)
	AddLinearLayer(act Activation, width int)
	// Init discards all weights and reinitializes them under the policy.
	Init(policy InitPolicy)

	// Clone returns an independent deep copy.
	Clone() Network[T]
}
