package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fern-ml/fern/internal/metrics"
)

func TestWindowSnapshot(t *testing.T) {
	var w metrics.Window
	w.Record(0.4, 0.5, 100*time.Millisecond)
	w.Record(0.2, 0.75, 100*time.Millisecond)

	snap := w.Snapshot()
	assert.InDelta(t, 0.3, snap.MeanLoss, 1e-12)
	assert.Equal(t, 0.2, snap.LastLoss)
	assert.Equal(t, 0.2, snap.BestLoss)
	assert.Equal(t, 0.75, snap.LastAcc)
	assert.InDelta(t, 10.0, snap.EpochsPerSec, 1e-9)
}

func TestWindowResets(t *testing.T) {
	var w metrics.Window
	w.Record(0.4, 0.5, time.Millisecond)
	w.Snapshot()

	empty := w.Snapshot()
	assert.Zero(t, empty.MeanLoss)
	assert.Zero(t, empty.EpochsPerSec)
}
