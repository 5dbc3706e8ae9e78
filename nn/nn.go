// Copyright 2025 The Fern Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API of the Fern feed-forward neural
// network engine: dense layers, the activation catalog, network
// composition, and the loss and accuracy metrics.
//
// Example:
//
//	net, err := nn.Build([]nn.LayerSpec{
//	    {Role: nn.RoleInput, Width: 2},
//	    {Role: nn.RoleHidden, Width: 2, Activation: "tanh", UseBias: true},
//	    {Role: nn.RoleOutput, Width: 1, Activation: "sigmoid", UseBias: true},
//	}, rand.New(rand.NewSource(1)))
package nn

import (
	"math/rand"

	"github.com/fern-ml/fern/internal/mat"
	"github.com/fern-ml/fern/internal/nn"
)

// Error kinds reported across the engine boundary; test with errors.Is.
var (
	ErrConfiguration = nn.ErrConfiguration
	ErrFormat        = nn.ErrFormat
	ErrUsage         = nn.ErrUsage
)

// Activation pairs an elementwise nonlinearity with its derivative,
// expressed in terms of the activation's own output.
type Activation = nn.Activation

// Dense is a fully connected layer: affine transform plus activation.
type Dense = nn.Dense

// Cache carries the forward-pass state consumed by the matching Backward.
type Cache = nn.Cache

// Network is an ordered chain of dense layers.
type Network = nn.Network

// LayerSpec describes one record of a network build spec.
type LayerSpec = nn.LayerSpec

// Role labels a layer spec record.
type Role = nn.Role

// Layer spec roles.
const (
	RoleInput  = nn.RoleInput
	RoleHidden = nn.RoleHidden
	RoleOutput = nn.RoleOutput
)

// DefaultActivation is used when a build spec record leaves the
// activation unset.
const DefaultActivation = nn.DefaultActivation

// LayerActivation captures one layer's activations for a single input.
type LayerActivation = nn.LayerActivation

// ResolveActivation looks up an activation by its identifier.
func ResolveActivation(name string) (Activation, error) {
	return nn.ResolveActivation(name)
}

// ActivationNames returns the catalog identifiers in sorted order.
func ActivationNames() []string {
	return nn.ActivationNames()
}

// NewDense creates a dense layer with freshly initialized parameters.
func NewDense(in, out int, activation string, useBias bool, rng *rand.Rand) (*Dense, error) {
	return nn.NewDense(in, out, activation, useBias, rng)
}

// NewNetwork creates an empty network with the declared input size.
func NewNetwork(inputSize int) *Network {
	return nn.NewNetwork(inputSize)
}

// Build constructs a network from an ordered layer spec.
func Build(specs []LayerSpec, rng *rand.Rand) (*Network, error) {
	return nn.Build(specs, rng)
}

// MSE computes the mean squared error between predictions and targets.
func MSE(pred, target *mat.Matrix) float64 {
	return nn.MSE(pred, target)
}

// MSEGrad computes the elementwise loss gradient 2·(pred-target)/outWidth.
func MSEGrad(pred, target *mat.Matrix) *mat.Matrix {
	return nn.MSEGrad(pred, target)
}

// Accuracy computes binary-threshold accuracy at 0.5.
func Accuracy(pred, target *mat.Matrix) float64 {
	return nn.Accuracy(pred, target)
}
