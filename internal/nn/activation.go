package nn

import "github.com/kineto-ml/kineto/algebra"

// Activation selects the nonlinearity applied by a linear layer.
type Activation int

// Supported activations.
const (
	Identity Activation = iota
	Tanh
	Sigmoid
	ReLU
)

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case Identity:
		return "identity"
	case Tanh:
		return "tanh"
	case Sigmoid:
		return "sigmoid"
	case ReLU:
		return "relu"
	default:
		return "unknown"
	}
}

// applyActivation evaluates act at x in alg's domain.
func applyActivation[T any, A algebra.Algebra[T]](alg A, act Activation, x T) T {
	switch act {
	case Tanh:
		return alg.Tanh(x)
	case Sigmoid:
		// 1 / (1 + exp(-x))
		one := alg.One()
		return alg.Div(one, alg.Add(one, alg.Exp(alg.Neg(x))))
	case ReLU:
		if alg.Less(x, alg.Zero()) {
			return alg.Zero()
		}
		return x
	default:
		return x
	}
}
