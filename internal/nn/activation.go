package nn

import (
	"fmt"
	"math"
	"sort"
)

// Activation pairs an elementwise nonlinearity with its derivative.
//
// The derivative is expressed in terms of the activation's own output, not
// the pre-activation input, so the backward pass can reuse the values the
// forward pass already computed. Activations are stateless and shared; the
// catalog is closed and a layer resolves its entry once at construction.
type Activation struct {
	name    string
	forward func(float64) float64
	deriv   func(float64) float64
}

// Name returns the catalog identifier.
func (a Activation) Name() string { return a.name }

// Forward applies the nonlinearity to a single pre-activation value.
func (a Activation) Forward(x float64) float64 { return a.forward(x) }

// Deriv evaluates the derivative at an already-computed output value y.
func (a Activation) Deriv(y float64) float64 { return a.deriv(y) }

var catalog = map[string]Activation{
	"sigmoid": {
		name:    "sigmoid",
		forward: func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
		deriv:   func(y float64) float64 { return y * (1 - y) },
	},
	"tanh": {
		name:    "tanh",
		forward: math.Tanh,
		deriv:   func(y float64) float64 { return 1 - y*y },
	},
	// relu's derivative is taken from the output's sign. The output is
	// non-negative, so this matches the usual input-sign rule everywhere
	// except exactly zero, which is treated as gradient 0.
	"relu": {
		name:    "relu",
		forward: func(x float64) float64 { return math.Max(0, x) },
		deriv: func(y float64) float64 {
			if y > 0 {
				return 1
			}
			return 0
		},
	},
	"linear": {
		name:    "linear",
		forward: func(x float64) float64 { return x },
		deriv:   func(float64) float64 { return 1 },
	},
}

// ResolveActivation looks up an activation by its identifier.
// Unknown identifiers are a configuration error.
func ResolveActivation(name string) (Activation, error) {
	act, ok := catalog[name]
	if !ok {
		return Activation{}, fmt.Errorf("%w: unknown activation %q (have %v)", ErrConfiguration, name, ActivationNames())
	}
	return act, nil
}

// ActivationNames returns the catalog identifiers in sorted order.
func ActivationNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
