// Copyright 2025 The Fern Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the public API for the Fern training driver.
//
// Run is synchronous and single-threaded: exactly one epoch's work is in
// flight at a time, and the context is checked only at epoch boundaries,
// so cancellation is cooperative and never interrupts a batch.
//
// Example:
//
//	curve, err := train.Run(ctx, net, ds, train.Config{
//	    LearningRate: 0.5,
//	    Epochs:       1000,
//	    BatchSize:    4,
//	    Seed:         42,
//	})
package train

import (
	"context"

	"github.com/fern-ml/fern/internal/dataset"
	"github.com/fern-ml/fern/internal/nn"
	"github.com/fern-ml/fern/internal/train"
)

// Config holds the training hyperparameters.
type Config = train.Config

// Report describes one completed epoch, evaluated over the full dataset.
type Report = train.Report

// Run trains the network and returns the loss curve, one entry per
// completed epoch.
func Run(ctx context.Context, net *nn.Network, ds *dataset.Dataset, cfg Config) ([]float64, error) {
	return train.Run(ctx, net, ds, cfg)
}
