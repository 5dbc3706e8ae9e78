// Package serialization implements the persisted JSON formats: the weights
// format (full layer parameters) and the architecture format (topology
// only, optionally paired with weights).
//
// Imports never mutate an existing network: payloads are validated in full
// before any matrix is constructed, and failures leave the caller's model
// untouched.
package serialization

import (
	"encoding/json"
	"fmt"

	"github.com/fern-ml/fern/internal/mat"
	"github.com/fern-ml/fern/internal/nn"
)

// LayerRecord is one entry of the persisted weights format.
// B is null when the layer has no bias.
type LayerRecord struct {
	In         int         `json:"in"`
	Out        int         `json:"out"`
	Activation string      `json:"activation"`
	UseBias    bool        `json:"useBias"`
	W          [][]float64 `json:"W"`
	B          [][]float64 `json:"b"`
}

// WeightRecords captures a network's layers as weight-format records.
func WeightRecords(net *nn.Network) []LayerRecord {
	layers := net.Layers()
	records := make([]LayerRecord, len(layers))
	for i, layer := range layers {
		rec := LayerRecord{
			In:         layer.InWidth(),
			Out:        layer.OutWidth(),
			Activation: layer.ActivationName(),
			UseBias:    layer.UseBias(),
			W:          matrixRows(layer.Weight()),
		}
		if layer.UseBias() {
			rec.B = matrixRows(layer.Bias())
		}
		records[i] = rec
	}
	return records
}

// ExportWeights serializes a network in the weights format.
func ExportWeights(net *nn.Network) ([]byte, error) {
	data, err := json.Marshal(WeightRecords(net))
	if err != nil {
		return nil, fmt.Errorf("export weights: %w", err)
	}
	return data, nil
}

// ImportWeights reconstructs a network from a weights-format payload.
//
// The records must chain consistently (each record's out width equals the
// next record's in width); the first record's in width becomes the
// network's declared input size. Malformed JSON is a format error, an
// inconsistent chain a configuration error.
func ImportWeights(data []byte) (*nn.Network, error) {
	var records []LayerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: weights payload is not a layer sequence: %v", nn.ErrFormat, err)
	}
	return networkFromRecords(records)
}

func networkFromRecords(records []LayerRecord) (*nn.Network, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: weights payload holds no layers", nn.ErrConfiguration)
	}

	net := nn.NewNetwork(records[0].In)
	prevOut := records[0].In
	for i, rec := range records {
		if rec.In != prevOut {
			return nil, fmt.Errorf("%w: layer %d expects %d inputs but previous layer produces %d",
				nn.ErrConfiguration, i, rec.In, prevOut)
		}
		weight, err := matrixFromRows(rec.W, rec.In, rec.Out)
		if err != nil {
			return nil, fmt.Errorf("layer %d weight: %w", i, err)
		}
		var bias *mat.Matrix
		if rec.UseBias && rec.B != nil {
			bias, err = matrixFromRows(rec.B, 1, rec.Out)
			if err != nil {
				return nil, fmt.Errorf("layer %d bias: %w", i, err)
			}
		}
		layer, err := nn.NewDenseFromParams(rec.In, rec.Out, rec.Activation, rec.UseBias, weight, bias)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		net.Add(layer)
		prevOut = rec.Out
	}
	return net, nil
}

// matrixRows converts a matrix into the nested-array JSON form.
func matrixRows(m *mat.Matrix) [][]float64 {
	rows := make([][]float64, m.Rows)
	for i := range rows {
		rows[i] = m.Row(i)
	}
	return rows
}

// matrixFromRows validates a nested array against the expected shape
// before building a matrix, so malformed payloads report instead of panic.
func matrixFromRows(rows [][]float64, wantRows, wantCols int) (*mat.Matrix, error) {
	if len(rows) != wantRows {
		return nil, fmt.Errorf("%w: got %d rows, want %d", nn.ErrFormat, len(rows), wantRows)
	}
	for i, row := range rows {
		if len(row) != wantCols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", nn.ErrFormat, i, len(row), wantCols)
		}
	}
	return mat.FromRows(rows), nil
}
