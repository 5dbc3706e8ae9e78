package nn

import (
	"fmt"
	"math/rand"
)

// Role labels a layer spec record.
type Role string

// Layer spec roles.
const (
	RoleInput  Role = "input"
	RoleHidden Role = "hidden"
	RoleOutput Role = "output"
)

// DefaultActivation is used when a build spec record leaves the
// activation unset.
const DefaultActivation = "sigmoid"

// LayerSpec describes one record of a network build spec. The input record
// only supplies the network's input width and contributes no layer; every
// other record becomes a dense layer.
type LayerSpec struct {
	Role       Role
	Width      int
	Activation string
	UseBias    bool
}

// Build constructs a network from an ordered layer spec.
//
// The spec must start with exactly one input record followed by at least
// one hidden/output record; widths must be positive and activations known.
// Any violation is a configuration error and no network is produced.
func Build(specs []LayerSpec, rng *rand.Rand) (*Network, error) {
	if len(specs) < 2 {
		return nil, fmt.Errorf("%w: build spec needs an input record and at least one layer, got %d records", ErrConfiguration, len(specs))
	}
	if specs[0].Role != RoleInput {
		return nil, fmt.Errorf("%w: build spec must start with an input record, got %q", ErrConfiguration, specs[0].Role)
	}

	if specs[0].Width <= 0 {
		return nil, fmt.Errorf("%w: input width must be positive, got %d", ErrConfiguration, specs[0].Width)
	}

	net := NewNetwork(specs[0].Width)
	prevWidth := specs[0].Width
	for i, spec := range specs[1:] {
		switch spec.Role {
		case RoleHidden, RoleOutput:
		case RoleInput:
			return nil, fmt.Errorf("%w: duplicate input record at position %d", ErrConfiguration, i+1)
		default:
			return nil, fmt.Errorf("%w: unknown layer role %q at position %d", ErrConfiguration, spec.Role, i+1)
		}
		activation := spec.Activation
		if activation == "" {
			activation = DefaultActivation
		}
		layer, err := NewDense(prevWidth, spec.Width, activation, spec.UseBias, rng)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i+1, err)
		}
		net.Add(layer)
		prevWidth = spec.Width
	}
	return net, nil
}
