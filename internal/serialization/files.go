package serialization

import (
	"fmt"
	"os"

	"github.com/fern-ml/fern/internal/nn"
)

// SaveWeights writes a network's weights-format JSON to path.
func SaveWeights(path string, net *nn.Network) error {
	data, err := ExportWeights(net)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save weights: %w", err)
	}
	return nil
}

// LoadWeights reads a weights-format JSON file and reconstructs the network.
func LoadWeights(path string) (*nn.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load weights: %w", err)
	}
	return ImportWeights(data)
}
