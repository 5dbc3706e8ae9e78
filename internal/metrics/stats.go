// Package metrics aggregates per-epoch training statistics for logging.
package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Window accumulates epoch results between log lines.
type Window struct {
	losses   []float64
	elapsed  time.Duration
	epochs   int
	lastAcc  float64
	bestLoss float64
}

// Record adds one epoch's evaluation to the window.
func (w *Window) Record(loss, accuracy float64, elapsed time.Duration) {
	if w.epochs == 0 || loss < w.bestLoss {
		w.bestLoss = loss
	}
	w.losses = append(w.losses, loss)
	w.elapsed += elapsed
	w.epochs++
	w.lastAcc = accuracy
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{
		BestLoss: w.bestLoss,
		LastAcc:  w.lastAcc,
	}
	if w.epochs > 0 {
		snap.MeanLoss = stat.Mean(w.losses, nil)
		snap.LastLoss = w.losses[len(w.losses)-1]
	}
	if w.elapsed > 0 {
		snap.EpochsPerSec = float64(w.epochs) / w.elapsed.Seconds()
	}

	w.losses = w.losses[:0]
	w.elapsed = 0
	w.epochs = 0
	return snap
}

// Snapshot represents loggable training metrics.
type Snapshot struct {
	MeanLoss     float64
	LastLoss     float64
	BestLoss     float64
	LastAcc      float64
	EpochsPerSec float64
}
