package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/fern-ml/fern/internal/mat"
)

// LayerActivation captures one layer's activations for a single input:
// the raw values and a per-layer min-max normalized copy in [0,1] suitable
// for presentation layers. A constant layer normalizes to all zeros.
type LayerActivation struct {
	Raw        []float64
	Normalized []float64
}

// Snapshot runs one input vector through the network and records every
// layer's activations. It is a side query: no training state is touched.
//
// Returns a usage error when the vector length does not match the declared
// input size.
func (n *Network) Snapshot(input []float64) ([]LayerActivation, error) {
	if len(input) != n.inputSize {
		return nil, fmt.Errorf("%w: input vector has %d values, network expects %d", ErrUsage, len(input), n.inputSize)
	}
	snapshots := make([]LayerActivation, len(n.layers))
	out := mat.RowVector(input)
	for i, layer := range n.layers {
		out = layer.Infer(out)
		raw := out.Row(0)
		snapshots[i] = LayerActivation{
			Raw:        raw,
			Normalized: normalize(raw),
		}
	}
	return snapshots, nil
}

// normalize min-max scales values into [0,1]; a constant slice maps to zeros.
func normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	lo := floats.Min(values)
	hi := floats.Max(values)
	if hi == lo {
		return out
	}
	span := hi - lo
	for i, v := range values {
		out[i] = (v - lo) / span
	}
	return out
}
