package nn

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/kineto-ml/kineto/algebra"
)

// layer is one dense layer: weight is [out][in], bias is [out].
// Weights are nil until Init allocates and fills them.
type layer[T any] struct {
	weight [][]T
	bias   []T
	act    Activation
	out    int
}

// MLP is a small feed-forward network over an arbitrary scalar domain.
//
// When useBias is set, a constant-one input is appended to the input
// vector before the first layer, so the first layer sees inputDim+1
// values. Weights are stored in the scalar domain; initialization draws
// float64 values and lifts them through the algebra.
type MLP[T any, A algebra.Algebra[T]] struct {
	alg      A
	inputDim int
	useBias  bool
	layers   []layer[T]
	rng      *rand.Rand
}

// NewMLP creates an empty network with the given input dimension and no
// layers. AddLinearLayer and Init must be called before Compute produces
// output.
func NewMLP[T any, A algebra.Algebra[T]](alg A, inputDim int, useBias bool) *MLP[T, A] {
	return &MLP[T, A]{alg: alg, inputDim: inputDim, useBias: useBias}
}

// Seed makes all subsequent Init draws deterministic.
func (m *MLP[T, A]) Seed(seed uint64) {
	m.rng = rand.New(rand.NewSource(seed))
}

// InputDim returns the declared input dimension, excluding the bias input.
func (m *MLP[T, A]) InputDim() int { return m.inputDim }

// OutputDim returns the width of the last layer, or zero when no layer
// has been added yet.
func (m *MLP[T, A]) OutputDim() int {
	if len(m.layers) == 0 {
		return 0
	}
	return m.layers[len(m.layers)-1].out
}

// NumLayers returns the number of linear layers.
func (m *MLP[T, A]) NumLayers() int { return len(m.layers) }

// SetInputDim changes the declared input dimension. Existing weights
// become stale; callers are expected to follow up with Init.
func (m *MLP[T, A]) SetInputDim(n int) { m.inputDim = n }

// AddLinearLayer appends a dense layer of the given width. The layer has
// no weights until Init runs.
func (m *MLP[T, A]) AddLinearLayer(act Activation, width int) {
	m.layers = append(m.layers, layer[T]{act: act, out: width})
}

// widthIn returns the input width of layer li, including the bias input
// for the first layer.
func (m *MLP[T, A]) widthIn(li int) int {
	if li == 0 {
		if m.useBias {
			return m.inputDim + 1
		}
		return m.inputDim
	}
	return m.layers[li-1].out
}

// Init discards every weight and bias and refills them under the policy.
// The whole network is reinitialized, not just layers whose shape changed.
func (m *MLP[T, A]) Init(policy InitPolicy) {
	var src rand.Source
	if m.rng != nil {
		src = m.rng
	}
	for li := range m.layers {
		l := &m.layers[li]
		fanIn := m.widthIn(li)
		l.weight = make([][]T, l.out)
		l.bias = make([]T, l.out)
		for j := 0; j < l.out; j++ {
			row := make([]T, fanIn)
			for i := range row {
				row[i] = m.alg.FromFloat64(policy.sample(fanIn, l.out, src))
			}
			l.weight[j] = row
			l.bias[j] = m.alg.Zero()
		}
	}
}

// Compute runs the forward pass. inputs must hold exactly InputDim values
// and outputs exactly OutputDim values.
func (m *MLP[T, A]) Compute(inputs, outputs []T) error {
	if len(inputs) != m.inputDim {
		return fmt.Errorf("nn: MLP.Compute: got %d inputs, want %d", len(inputs), m.inputDim)
	}
	if len(outputs) != m.OutputDim() {
		return fmt.Errorf("nn: MLP.Compute: got %d outputs, want %d", len(outputs), m.OutputDim())
	}
	if len(m.layers) == 0 {
		return nil
	}

	cur := inputs
	if m.useBias {
		withBias := make([]T, 0, len(inputs)+1)
		withBias = append(withBias, inputs...)
		cur = append(withBias, m.alg.One())
	}

	for li := range m.layers {
		l := &m.layers[li]
		if l.weight == nil {
			return fmt.Errorf("nn: MLP.Compute: layer %d has no weights, Init not called", li)
		}
		next := make([]T, l.out)
		for j := 0; j < l.out; j++ {
			row := l.weight[j]
			if len(row) != len(cur) {
				return fmt.Errorf("nn: MLP.Compute: layer %d expects %d inputs, got %d", li, len(row), len(cur))
			}
			acc := m.alg.Zero()
			for i := range cur {
				acc = m.alg.Add(acc, m.alg.Mul(row[i], cur[i]))
			}
			acc = m.alg.Add(acc, l.bias[j])
			next[j] = applyActivation(m.alg, l.act, acc)
		}
		cur = next
	}
	copy(outputs, cur)
	return nil
}

// Clone returns an independent deep copy. The clone shares the random
// stream of the original so seeded sequences stay reproducible.
func (m *MLP[T, A]) Clone() Network[T] {
	c := &MLP[T, A]{
		alg:      m.alg,
		inputDim: m.inputDim,
		useBias:  m.useBias,
		rng:      m.rng,
		layers:   make([]layer[T], len(m.layers)),
	}
	for li, l := range m.layers {
		nl := layer[T]{act: l.act, out: l.out}
		if l.weight != nil {
			nl.weight = make([][]T, len(l.weight))
			for j, row := range l.weight {
				nl.weight[j] = append([]T(nil), row...)
			}
			nl.bias = append([]T(nil), l.bias...)
		}
		c.layers[li] = nl
	}
	return c
}

var _ Network[float64] = (*MLP[float64, algebra.Float64])(nil)
