// Package nn implements the feed-forward neural network engine:
// dense layers, the activation catalog, weight initialization, loss and
// accuracy metrics, and the network composition that chains them.
//
// The engine is single-threaded and single-ownership: a network instance
// must not be shared across concurrent callers, because each forward pass
// produces caches consumed by the very next backward pass.
package nn

import (
	"fmt"

	"github.com/fern-ml/fern/internal/mat"
)

// Network is an ordered chain of dense layers. Adjacent layers must agree
// on widths (layer i's output width is layer i+1's input width); a
// violation surfaces as a shape panic at the first forward call.
type Network struct {
	inputSize int
	layers    []*Dense
}

// NewNetwork creates an empty network with the declared input size.
func NewNetwork(inputSize int) *Network {
	return &Network{inputSize: inputSize}
}

// Add appends a layer. The caller is responsible for width chaining.
func (n *Network) Add(layer *Dense) {
	n.layers = append(n.layers, layer)
}

// InputSize returns the declared input width.
func (n *Network) InputSize() int { return n.inputSize }

// OutputSize returns the final layer's output width, or 0 for an empty network.
func (n *Network) OutputSize() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[len(n.layers)-1].OutWidth()
}

// Layers returns the ordered layer chain.
func (n *Network) Layers() []*Dense { return n.layers }

// Forward folds the batch left through the layer chain and returns the
// final output. No backward caches are built; use ForwardTraining when a
// backward pass follows.
func (n *Network) Forward(batch *mat.Matrix) *mat.Matrix {
	out := batch
	for _, layer := range n.layers {
		out = layer.Infer(out)
	}
	return out
}

// ForwardTraining runs the forward pass and returns the per-layer caches
// the matching Backward call consumes.
func (n *Network) ForwardTraining(batch *mat.Matrix) (*mat.Matrix, []*Cache) {
	out := batch
	caches := make([]*Cache, len(n.layers))
	for i, layer := range n.layers {
		out, caches[i] = layer.Forward(out)
	}
	return out, caches
}

// Backward folds the output gradient right through the layer chain,
// updating every layer in place. The gradient with respect to the network
// input is discarded.
func (n *Network) Backward(caches []*Cache, gradOut *mat.Matrix, learningRate float64) {
	if len(caches) != len(n.layers) {
		panic(fmt.Sprintf("nn: Network.Backward: %d caches for %d layers", len(caches), len(n.layers)))
	}
	grad := gradOut
	for i := len(n.layers) - 1; i >= 0; i-- {
		grad = n.layers[i].Backward(caches[i], grad, learningRate)
	}
}

// Infer runs a single input vector through the network.
//
// Returns a usage error when the vector length does not match the declared
// input size; no computation is performed in that case.
func (n *Network) Infer(input []float64) ([]float64, error) {
	if len(input) != n.inputSize {
		return nil, fmt.Errorf("%w: input vector has %d values, network expects %d", ErrUsage, len(input), n.inputSize)
	}
	if len(n.layers) == 0 {
		return nil, fmt.Errorf("%w: network has no layers", ErrConfiguration)
	}
	out := n.Forward(mat.RowVector(input))
	return out.Row(0), nil
}
