package nn

import (
	"math"
	"math/rand"

	"github.com/fern-ml/fern/internal/mat"
)

// initScale keeps initial weights small so bounded activations start well
// away from their saturated regions.
const initScale = 0.1

// GaussianInit fills a rows×cols matrix with Box–Muller Gaussian samples
// scaled by initScale. The rand source is injected so callers control
// determinism.
func GaussianInit(rows, cols int, rng *rand.Rand) *mat.Matrix {
	m := mat.Zeros(rows, cols)
	for i := range m.Data {
		m.Data[i] = gaussian(rng) * initScale
	}
	return m
}

// ZeroBias returns the all-zero 1×cols bias row. Biases are never sampled.
func ZeroBias(cols int) *mat.Matrix {
	return mat.Zeros(1, cols)
}

// gaussian draws one N(0,1) sample via the Box–Muller transform.
// A uniform draw of exactly 0 would feed the logarithm, so it is redrawn.
func gaussian(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
