// Copyright 2025 The Fern Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization provides the public API for the persisted JSON
// formats: the weights format (full layer parameters) and the
// architecture format (topology only, optionally paired with weights).
package serialization

import (
	"math/rand"

	"github.com/fern-ml/fern/internal/nn"
	"github.com/fern-ml/fern/internal/serialization"
)

// LayerRecord is one entry of the persisted weights format.
type LayerRecord = serialization.LayerRecord

// ArchRecord is one entry of the persisted architecture format.
type ArchRecord = serialization.ArchRecord

// ModelFile pairs an architecture with an optional weights array.
type ModelFile = serialization.ModelFile

// ExportWeights serializes a network in the weights format.
func ExportWeights(net *nn.Network) ([]byte, error) {
	return serialization.ExportWeights(net)
}

// ImportWeights reconstructs a network from a weights-format payload.
func ImportWeights(data []byte) (*nn.Network, error) {
	return serialization.ImportWeights(data)
}

// ExportModel serializes a network's architecture with its weights.
func ExportModel(net *nn.Network) ([]byte, error) {
	return serialization.ExportModel(net)
}

// ImportModel rebuilds a network from a model file, applying the weights
// only when their layer count matches the rebuilt network.
func ImportModel(data []byte, rng *rand.Rand) (*nn.Network, error) {
	return serialization.ImportModel(data, rng)
}

// ImportArchitecture rebuilds a fresh random network from an
// architecture-format payload.
func ImportArchitecture(data []byte, rng *rand.Rand) (*nn.Network, error) {
	return serialization.ImportArchitecture(data, rng)
}

// SaveWeights writes a network's weights-format JSON to path.
func SaveWeights(path string, net *nn.Network) error {
	return serialization.SaveWeights(path, net)
}

// LoadWeights reads a weights-format JSON file and reconstructs the network.
func LoadWeights(path string) (*nn.Network, error) {
	return serialization.LoadWeights(path)
}
