// Package mat implements the dense 2D float64 matrices the engine is built on.
//
// Matrices are rectangular, row-major, and owned by exactly one holder at a
// time: a layer owns its weight and bias matrices, a forward pass owns its
// intermediate activations. Every operation here is a pure function returning
// a freshly allocated result; nothing aliases its inputs. Shape violations are
// programmer errors and panic with a descriptive message.
package mat

import "fmt"

// Matrix is a dense rows×cols matrix backed by a flat row-major buffer.
//
// Data has length Rows*Cols; element (i, j) lives at Data[i*Cols+j].
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// Zeros creates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("mat: Zeros: non-positive shape %dx%d", rows, cols))
	}
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

// FromSlice creates a rows×cols matrix from a flat row-major slice.
// The data is copied; the caller keeps ownership of the input slice.
func FromSlice(data []float64, rows, cols int) *Matrix {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("mat: FromSlice: %d values cannot fill a %dx%d matrix", len(data), rows, cols))
	}
	m := Zeros(rows, cols)
	copy(m.Data, data)
	return m
}

// FromRows creates a matrix from a slice of equally sized rows.
func FromRows(rows [][]float64) *Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("mat: FromRows: empty input")
	}
	cols := len(rows[0])
	m := Zeros(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("mat: FromRows: row %d has %d columns, want %d", i, len(row), cols))
		}
		copy(m.Data[i*cols:(i+1)*cols], row)
	}
	return m
}

// RowVector creates a 1×len(values) matrix.
func RowVector(values []float64) *Matrix {
	return FromSlice(values, 1, len(values))
}

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Set assigns element (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Cols+j] = v
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.Cols)
	copy(out, m.Data[i*m.Cols:(i+1)*m.Cols])
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return FromSlice(m.Data, m.Rows, m.Cols)
}

// Equal reports whether two matrices have the same shape and identical values.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.Rows != o.Rows || m.Cols != o.Cols {
		return false
	}
	for i, v := range m.Data {
		if o.Data[i] != v {
			return false
		}
	}
	return true
}

// sameShape panics unless a and b have identical dimensions.
func sameShape(op string, a, b *Matrix) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic(fmt.Sprintf("mat: %s: shape mismatch %dx%d vs %dx%d", op, a.Rows, a.Cols, b.Rows, b.Cols))
	}
}

// MatMul computes the standard matrix product a·b.
// Requires a.Cols == b.Rows.
func MatMul(a, b *Matrix) *Matrix {
	if a.Cols != b.Rows {
		panic(fmt.Sprintf("mat: MatMul: inner dimension mismatch %dx%d · %dx%d", a.Rows, a.Cols, b.Rows, b.Cols))
	}
	out := Zeros(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for k := 0; k < a.Cols; k++ {
			aik := a.Data[i*a.Cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.Cols; j++ {
				out.Data[i*b.Cols+j] += aik * b.Data[k*b.Cols+j]
			}
		}
	}
	return out
}

// AddRow adds a 1×cols row vector to every row of a.
func AddRow(a, row *Matrix) *Matrix {
	if row.Rows != 1 || row.Cols != a.Cols {
		panic(fmt.Sprintf("mat: AddRow: cannot broadcast %dx%d over %dx%d", row.Rows, row.Cols, a.Rows, a.Cols))
	}
	out := a.Clone()
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			out.Data[i*a.Cols+j] += row.Data[j]
		}
	}
	return out
}

// Hadamard computes the elementwise product of two equally shaped matrices.
func Hadamard(a, b *Matrix) *Matrix {
	sameShape("Hadamard", a, b)
	out := Zeros(a.Rows, a.Cols)
	for i, v := range a.Data {
		out.Data[i] = v * b.Data[i]
	}
	return out
}

// Sub computes the elementwise difference a-b of two equally shaped matrices.
func Sub(a, b *Matrix) *Matrix {
	sameShape("Sub", a, b)
	out := Zeros(a.Rows, a.Cols)
	for i, v := range a.Data {
		out.Data[i] = v - b.Data[i]
	}
	return out
}

// Transpose returns aᵀ.
func Transpose(a *Matrix) *Matrix {
	out := Zeros(a.Cols, a.Rows)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			out.Data[j*a.Rows+i] = a.Data[i*a.Cols+j]
		}
	}
	return out
}

// Apply maps fn over every element of a.
func Apply(a *Matrix, fn func(float64) float64) *Matrix {
	out := Zeros(a.Rows, a.Cols)
	for i, v := range a.Data {
		out.Data[i] = fn(v)
	}
	return out
}

// ColSums returns a 1×cols row of per-column sums.
func ColSums(a *Matrix) *Matrix {
	out := Zeros(1, a.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			out.Data[j] += a.Data[i*a.Cols+j]
		}
	}
	return out
}
