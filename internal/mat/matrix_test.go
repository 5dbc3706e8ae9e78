package mat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmat "gonum.org/v1/gonum/mat"

	"github.com/fern-ml/fern/internal/mat"
)

func TestZeros(t *testing.T) {
	m := mat.Zeros(2, 3)
	require.Equal(t, 2, m.Rows)
	require.Equal(t, 3, m.Cols)
	for _, v := range m.Data {
		assert.Zero(t, v)
	}
}

func TestFromRowsRejectsRagged(t *testing.T) {
	assert.Panics(t, func() {
		mat.FromRows([][]float64{{1, 2}, {3}})
	})
}

func TestMatMul(t *testing.T) {
	a := mat.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	b := mat.FromRows([][]float64{
		{7, 8},
		{9, 10},
		{11, 12},
	})

	got := mat.MatMul(a, b)

	want := mat.FromRows([][]float64{
		{58, 64},
		{139, 154},
	})
	assert.True(t, got.Equal(want), "got %v", got.Data)
}

// TestMatMulAgainstGonum cross-checks the hand-rolled product against
// gonum's reference implementation on a non-square case.
func TestMatMulAgainstGonum(t *testing.T) {
	a := mat.FromSlice([]float64{0.5, -1.5, 2, 3.25, -0.125, 7, 1, 0, -2, 4, 0.75, 6}, 3, 4)
	b := mat.FromSlice([]float64{1, 2, -3, 0.5, 4, -0.25, 0.125, 9, 1.5, -6, 2, 11}, 4, 3)

	got := mat.MatMul(a, b)

	ga := gmat.NewDense(3, 4, a.Data)
	gb := gmat.NewDense(4, 3, b.Data)
	var gc gmat.Dense
	gc.Mul(ga, gb)

	require.Equal(t, 3, got.Rows)
	require.Equal(t, 3, got.Cols)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, gc.At(i, j), got.At(i, j), 1e-12)
		}
	}
}

func TestMatMulShapeMismatchPanics(t *testing.T) {
	a := mat.Zeros(2, 3)
	b := mat.Zeros(2, 3)
	assert.Panics(t, func() { mat.MatMul(a, b) })
}

func TestAddRow(t *testing.T) {
	a := mat.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	row := mat.RowVector([]float64{10, 20})

	got := mat.AddRow(a, row)

	want := mat.FromRows([][]float64{
		{11, 22},
		{13, 24},
	})
	assert.True(t, got.Equal(want))
	// input untouched
	assert.Equal(t, 1.0, a.At(0, 0))
}

func TestAddRowMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		mat.AddRow(mat.Zeros(2, 3), mat.RowVector([]float64{1, 2}))
	})
}

func TestHadamard(t *testing.T) {
	a := mat.FromRows([][]float64{{1, 2}, {3, 4}})
	b := mat.FromRows([][]float64{{5, 6}, {7, 8}})

	got := mat.Hadamard(a, b)

	want := mat.FromRows([][]float64{{5, 12}, {21, 32}})
	assert.True(t, got.Equal(want))
}

func TestTranspose(t *testing.T) {
	a := mat.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	got := mat.Transpose(a)

	want := mat.FromRows([][]float64{
		{1, 4},
		{2, 5},
		{3, 6},
	})
	assert.True(t, got.Equal(want))
}

func TestApply(t *testing.T) {
	a := mat.FromRows([][]float64{{-1, 2}, {-3, 4}})

	got := mat.Apply(a, func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return x
	})

	want := mat.FromRows([][]float64{{0, 2}, {0, 4}})
	assert.True(t, got.Equal(want))
	// Apply must not mutate its input.
	assert.Equal(t, -1.0, a.At(0, 0))
}

func TestColSums(t *testing.T) {
	a := mat.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	got := mat.ColSums(a)

	want := mat.RowVector([]float64{5, 7, 9})
	assert.True(t, got.Equal(want))
}

func TestCloneIsIndependent(t *testing.T) {
	a := mat.FromRows([][]float64{{1, 2}})
	b := a.Clone()
	b.Set(0, 0, 99)
	assert.Equal(t, 1.0, a.At(0, 0))
}
