// Package dataset provides the training data model: parallel input and
// target sequences, CSV loading, and the deterministic shuffler the
// training driver uses to order epochs.
package dataset

import (
	"fmt"
	"math/rand"

	"github.com/fern-ml/fern/internal/mat"
	"github.com/fern-ml/fern/internal/nn"
)

// Dataset holds parallel sequences of input feature vectors and target
// vectors. Every input row has the same length, as does every target row.
type Dataset struct {
	Inputs  [][]float64
	Targets [][]float64
}

// New builds a dataset after checking the sequences are parallel and
// rectangular.
func New(inputs, targets [][]float64) (*Dataset, error) {
	if len(inputs) != len(targets) {
		return nil, fmt.Errorf("%w: %d input rows but %d target rows", nn.ErrConfiguration, len(inputs), len(targets))
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: dataset is empty", nn.ErrConfiguration)
	}
	inWidth := len(inputs[0])
	outWidth := len(targets[0])
	for i := range inputs {
		if len(inputs[i]) != inWidth {
			return nil, fmt.Errorf("%w: input row %d has %d values, want %d", nn.ErrConfiguration, i, len(inputs[i]), inWidth)
		}
		if len(targets[i]) != outWidth {
			return nil, fmt.Errorf("%w: target row %d has %d values, want %d", nn.ErrConfiguration, i, len(targets[i]), outWidth)
		}
	}
	return &Dataset{Inputs: inputs, Targets: targets}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Inputs) }

// InputSize returns the feature vector width.
func (d *Dataset) InputSize() int {
	if len(d.Inputs) == 0 {
		return 0
	}
	return len(d.Inputs[0])
}

// TargetSize returns the target vector width.
func (d *Dataset) TargetSize() int {
	if len(d.Targets) == 0 {
		return 0
	}
	return len(d.Targets[0])
}

// Batch assembles the rows selected by indices into input and target
// matrices, in index order.
func (d *Dataset) Batch(indices []int) (inputs, targets *mat.Matrix) {
	inputs = mat.Zeros(len(indices), d.InputSize())
	targets = mat.Zeros(len(indices), d.TargetSize())
	for row, idx := range indices {
		copy(inputs.Data[row*inputs.Cols:(row+1)*inputs.Cols], d.Inputs[idx])
		copy(targets.Data[row*targets.Cols:(row+1)*targets.Cols], d.Targets[idx])
	}
	return inputs, targets
}

// Shuffler produces deterministic index permutations from a seed.
// One shuffler drives all epochs of a training run, so runs with the same
// seed see the same batch order.
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler creates a shuffler seeded with seed.
func NewShuffler(seed int64) *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewSource(seed))}
}

// Perm returns a pseudo-random permutation of [0, n).
func (s *Shuffler) Perm(n int) []int {
	return s.rng.Perm(n)
}
