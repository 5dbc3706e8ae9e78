// Package train implements the mini-batch gradient descent driver: the
// epoch/batch loop, deterministic shuffling, per-epoch evaluation, and
// cooperative cancellation.
package train

import (
	"context"
	"fmt"
	"time"

	"github.com/fern-ml/fern/internal/dataset"
	"github.com/fern-ml/fern/internal/nn"
)

// Report describes one completed epoch, evaluated over the full dataset.
type Report struct {
	Epoch    int
	Loss     float64
	Accuracy float64
	Elapsed  time.Duration
}

// Config holds the training hyperparameters.
type Config struct {
	LearningRate float64
	Epochs       int
	BatchSize    int
	Seed         int64

	// Progress, when set, is called after every epoch with that epoch's
	// full-dataset evaluation. It runs on the training goroutine.
	Progress func(Report)
}

func (c Config) validate(net *nn.Network, ds *dataset.Dataset) error {
	if net == nil || len(net.Layers()) == 0 {
		return fmt.Errorf("%w: network has no layers", nn.ErrConfiguration)
	}
	if ds == nil || ds.Len() == 0 {
		return fmt.Errorf("%w: dataset is empty", nn.ErrConfiguration)
	}
	if ds.InputSize() != net.InputSize() {
		return fmt.Errorf("%w: dataset rows have %d features, network expects %d",
			nn.ErrConfiguration, ds.InputSize(), net.InputSize())
	}
	if ds.TargetSize() != net.OutputSize() {
		return fmt.Errorf("%w: dataset targets have %d values, network produces %d",
			nn.ErrConfiguration, ds.TargetSize(), net.OutputSize())
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("%w: epochs must be > 0, got %d", nn.ErrConfiguration, c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be > 0, got %d", nn.ErrConfiguration, c.BatchSize)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning rate must be > 0, got %g", nn.ErrConfiguration, c.LearningRate)
	}
	return nil
}

// Run trains the network and returns the loss curve, one entry per
// completed epoch.
//
// Each epoch shuffles the dataset indices with the seeded shuffler,
// partitions them into batches (the last batch may be short), and runs one
// forward/backward/update step per batch. After the batches, one
// full-dataset forward pass produces the epoch's loss and accuracy.
//
// The epoch boundary is the only cancellation point: ctx is checked before
// each epoch starts, so a cancelled context stops the run with the curve
// accumulated so far and ctx.Err(). Work inside an epoch always completes;
// nothing is interrupted mid-batch.
func Run(ctx context.Context, net *nn.Network, ds *dataset.Dataset, cfg Config) ([]float64, error) {
	if err := cfg.validate(net, ds); err != nil {
		return nil, err
	}

	shuffler := dataset.NewShuffler(cfg.Seed)
	curve := make([]float64, 0, cfg.Epochs)

	all := make([]int, ds.Len())
	for i := range all {
		all[i] = i
	}

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return curve, err
		}
		start := time.Now()

		perm := shuffler.Perm(ds.Len())
		for from := 0; from < len(perm); from += cfg.BatchSize {
			to := from + cfg.BatchSize
			if to > len(perm) {
				to = len(perm)
			}
			inputs, targets := ds.Batch(perm[from:to])
			pred, caches := net.ForwardTraining(inputs)
			net.Backward(caches, nn.MSEGrad(pred, targets), cfg.LearningRate)
		}

		inputs, targets := ds.Batch(all)
		pred := net.Forward(inputs)
		loss := nn.MSE(pred, targets)
		curve = append(curve, loss)

		if cfg.Progress != nil {
			cfg.Progress(Report{
				Epoch:    epoch,
				Loss:     loss,
				Accuracy: nn.Accuracy(pred, targets),
				Elapsed:  time.Since(start),
			})
		}
	}
	return curve, nil
}
