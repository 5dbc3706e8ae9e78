// Copyright 2025 The Fern Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mat provides the public API for the dense matrices the Fern
// engine is built on.
//
// A Matrix is a rectangular row-major float64 array. All operations are
// pure functions returning new matrices; shape violations panic.
//
// Example:
//
//	a := mat.FromRows([][]float64{{1, 2}, {3, 4}})
//	b := mat.Transpose(a)
//	c := mat.MatMul(a, b)
package mat

import (
	"github.com/fern-ml/fern/internal/mat"
)

// Matrix is a dense rows×cols matrix backed by a flat row-major buffer.
type Matrix = mat.Matrix

// Zeros creates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int) *Matrix {
	return mat.Zeros(rows, cols)
}

// FromSlice creates a rows×cols matrix from a flat row-major slice.
func FromSlice(data []float64, rows, cols int) *Matrix {
	return mat.FromSlice(data, rows, cols)
}

// FromRows creates a matrix from a slice of equally sized rows.
func FromRows(rows [][]float64) *Matrix {
	return mat.FromRows(rows)
}

// RowVector creates a 1×len(values) matrix.
func RowVector(values []float64) *Matrix {
	return mat.RowVector(values)
}

// MatMul computes the standard matrix product a·b.
func MatMul(a, b *Matrix) *Matrix {
	return mat.MatMul(a, b)
}

// AddRow adds a 1×cols row vector to every row of a.
func AddRow(a, row *Matrix) *Matrix {
	return mat.AddRow(a, row)
}

// Hadamard computes the elementwise product of two equally shaped matrices.
func Hadamard(a, b *Matrix) *Matrix {
	return mat.Hadamard(a, b)
}

// Sub computes the elementwise difference a-b.
func Sub(a, b *Matrix) *Matrix {
	return mat.Sub(a, b)
}

// Transpose returns aᵀ.
func Transpose(a *Matrix) *Matrix {
	return mat.Transpose(a)
}

// Apply maps fn over every element of a.
func Apply(a *Matrix, fn func(float64) float64) *Matrix {
	return mat.Apply(a, fn)
}

// ColSums returns a 1×cols row of per-column sums.
func ColSums(a *Matrix) *Matrix {
	return mat.ColSums(a)
}
