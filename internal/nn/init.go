package nn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// InitPolicy selects how Init fills layer weights.
//
// Biases are always initialized to zero; only the weight matrices depend
// on the policy.
type InitPolicy int

// Supported policies. Xavier is the default used by the neural scalar
// engine when a connection reinitializes the network.
const (
	// Xavier draws weights from U(-b, b) with b = sqrt(6/(fanIn+fanOut)),
	// the variance-scaling scheme keyed to layer fan-in/fan-out.
	Xavier InitPolicy = iota
	// He draws weights from N(0, sqrt(2/fanIn)).
	He
	// Zeros fills weights with zero.
	Zeros
	// Ones fills weights with one, turning an identity-activated layer
	// into a plain sum of its inputs. Useful for deterministic tests.
	Ones
	// Randn draws weights from N(0, 1).
	Randn
)

// String returns the policy name.
func (p InitPolicy) String() string {
	switch p {
	case Xavier:
		return "xavier"
	case He:
		return "he"
	case Zeros:
		return "zeros"
	case Ones:
		return "ones"
	case Randn:
		return "randn"
	default:
		return "unknown"
	}
}

// sample returns one weight draw for a layer with the given fan-in and
// fan-out. src may be nil, in which case the global source is used.
func (p InitPolicy) sample(fanIn, fanOut int, src rand.Source) float64 {
	switch p {
	case Xavier:
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		return distuv.Uniform{Min: -bound, Max: bound, Src: src}.Rand()
	case He:
		return distuv.Normal{Mu: 0, Sigma: math.Sqrt(2.0 / float64(fanIn)), Src: src}.Rand()
	case Zeros:
		return 0
	case Ones:
		return 1
	default:
		return distuv.Normal{Mu: 0, Sigma: 1, Src: src}.Rand()
	}
}
