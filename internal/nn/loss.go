package nn

import (
	"fmt"

	"github.com/fern-ml/fern/internal/mat"
)

// MSE computes the mean squared error: the mean over rows of the row-wise
// sum of squared differences between predictions and targets.
func MSE(pred, target *mat.Matrix) float64 {
	requireSameShape("MSE", pred, target)
	var total float64
	for i, p := range pred.Data {
		d := p - target.Data[i]
		total += d * d
	}
	return total / float64(pred.Rows)
}

// MSEGrad computes the elementwise loss gradient 2·(pred-target)/outWidth.
//
// The gradient is normalized by the output width only; averaging over the
// batch happens later in the layer update.
func MSEGrad(pred, target *mat.Matrix) *mat.Matrix {
	requireSameShape("MSEGrad", pred, target)
	grad := mat.Zeros(pred.Rows, pred.Cols)
	scale := 2 / float64(pred.Cols)
	for i, p := range pred.Data {
		grad.Data[i] = scale * (p - target.Data[i])
	}
	return grad
}

// Accuracy computes binary-threshold accuracy: a row counts as correct when
// every prediction thresholded at 0.5 equals the corresponding 0/1 target.
// For the single-output case this is the usual binary accuracy.
func Accuracy(pred, target *mat.Matrix) float64 {
	requireSameShape("Accuracy", pred, target)
	correct := 0
	for i := 0; i < pred.Rows; i++ {
		rowCorrect := true
		for j := 0; j < pred.Cols; j++ {
			predicted := 0.0
			if pred.At(i, j) >= 0.5 {
				predicted = 1.0
			}
			if predicted != target.At(i, j) {
				rowCorrect = false
				break
			}
		}
		if rowCorrect {
			correct++
		}
	}
	return float64(correct) / float64(pred.Rows)
}

func requireSameShape(op string, a, b *mat.Matrix) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic(fmt.Sprintf("nn: %s: predictions %dx%d and targets %dx%d differ in shape",
			op, a.Rows, a.Cols, b.Rows, b.Cols))
	}
}
