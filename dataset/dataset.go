// Copyright 2025 The Fern Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides the public API for training data: the Dataset
// type, the CSV loader, and the deterministic shuffler.
//
// The CSV format is comma-separated numeric rows with an optional header
// (detected by alphabetic characters). Each row's last column is the
// scalar target; the remaining columns are the input features.
package dataset

import (
	"io"

	"github.com/fern-ml/fern/internal/dataset"
)

// Dataset holds parallel sequences of input and target vectors.
type Dataset = dataset.Dataset

// Shuffler produces deterministic index permutations from a seed.
type Shuffler = dataset.Shuffler

// New builds a dataset after validating the sequences are parallel and
// rectangular.
func New(inputs, targets [][]float64) (*Dataset, error) {
	return dataset.New(inputs, targets)
}

// ParseCSV reads a comma-separated numeric dataset.
func ParseCSV(r io.Reader) (*Dataset, error) {
	return dataset.ParseCSV(r)
}

// LoadCSVFile reads a CSV dataset from disk.
func LoadCSVFile(path string) (*Dataset, error) {
	return dataset.LoadCSVFile(path)
}

// NewShuffler creates a shuffler seeded with seed.
func NewShuffler(seed int64) *Shuffler {
	return dataset.NewShuffler(seed)
}
