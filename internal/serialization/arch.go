package serialization

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/fern-ml/fern/internal/nn"
)

// ArchRecord is one entry of the persisted architecture format: topology
// without parameter values.
type ArchRecord struct {
	Type       string `json:"type"`
	Neurons    int    `json:"neurons"`
	Activation string `json:"activation,omitempty"`
	Bias       bool   `json:"bias"`
}

// ModelFile pairs an architecture with an optional weights array. The
// weights are applied only when their layer count matches the rebuilt
// network; otherwise the network keeps its freshly initialized state.
type ModelFile struct {
	Architecture []ArchRecord  `json:"architecture"`
	Weights      []LayerRecord `json:"weights,omitempty"`
}

// ArchRecords captures a network's topology as architecture records:
// a leading input record, then one record per layer (the last labeled
// output).
func ArchRecords(net *nn.Network) []ArchRecord {
	layers := net.Layers()
	records := make([]ArchRecord, 0, len(layers)+1)
	records = append(records, ArchRecord{Type: "input", Neurons: net.InputSize()})
	for i, layer := range layers {
		kind := "hidden"
		if i == len(layers)-1 {
			kind = "output"
		}
		records = append(records, ArchRecord{
			Type:       kind,
			Neurons:    layer.OutWidth(),
			Activation: layer.ActivationName(),
			Bias:       layer.UseBias(),
		})
	}
	return records
}

// ExportModel serializes a network's architecture together with its
// current weights.
func ExportModel(net *nn.Network) ([]byte, error) {
	file := ModelFile{
		Architecture: ArchRecords(net),
		Weights:      WeightRecords(net),
	}
	data, err := json.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("export model: %w", err)
	}
	return data, nil
}

// ImportModel rebuilds a network from a model file.
//
// The architecture records are rebuilt into a fresh random network first.
// If a weights array is present and its layer count matches, the weights
// are validated in full and then applied; a count mismatch leaves the
// network at its freshly-rebuilt random state (no error and no partial
// assignment). Invalid weight shapes are a reported error, still with no
// partial assignment.
func ImportModel(data []byte, rng *rand.Rand) (*nn.Network, error) {
	var file ModelFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: model payload is not valid JSON: %v", nn.ErrFormat, err)
	}
	net, err := buildFromArch(file.Architecture, rng)
	if err != nil {
		return nil, err
	}
	if len(file.Weights) == 0 || len(file.Weights) != len(net.Layers()) {
		return net, nil
	}
	if err := ApplyWeightRecords(net, file.Weights); err != nil {
		return nil, err
	}
	return net, nil
}

// ImportArchitecture rebuilds a fresh random network from an
// architecture-format payload.
func ImportArchitecture(data []byte, rng *rand.Rand) (*nn.Network, error) {
	var records []ArchRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: architecture payload is not a record sequence: %v", nn.ErrFormat, err)
	}
	return buildFromArch(records, rng)
}

func buildFromArch(records []ArchRecord, rng *rand.Rand) (*nn.Network, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: architecture payload holds no records", nn.ErrConfiguration)
	}
	specs := make([]nn.LayerSpec, len(records))
	for i, rec := range records {
		specs[i] = nn.LayerSpec{
			Role:       nn.Role(rec.Type),
			Width:      rec.Neurons,
			Activation: rec.Activation,
			UseBias:    rec.Bias,
		}
	}
	return nn.Build(specs, rng)
}

// ApplyWeightRecords copies weight records into an existing network's
// layers. Everything is validated before the first copy, so a failure
// leaves the network exactly as it was.
func ApplyWeightRecords(net *nn.Network, records []LayerRecord) error {
	layers := net.Layers()
	if len(records) != len(layers) {
		return fmt.Errorf("%w: %d weight records for %d layers", nn.ErrConfiguration, len(records), len(layers))
	}
	for i, rec := range records {
		layer := layers[i]
		if rec.In != layer.InWidth() || rec.Out != layer.OutWidth() {
			return fmt.Errorf("%w: weight record %d is %dx%d but layer is %dx%d",
				nn.ErrConfiguration, i, rec.In, rec.Out, layer.InWidth(), layer.OutWidth())
		}
		if _, err := matrixFromRows(rec.W, rec.In, rec.Out); err != nil {
			return fmt.Errorf("weight record %d: %w", i, err)
		}
		if layer.UseBias() && rec.B != nil {
			if _, err := matrixFromRows(rec.B, 1, rec.Out); err != nil {
				return fmt.Errorf("bias record %d: %w", i, err)
			}
		}
	}
	for i, rec := range records {
		layer := layers[i]
		for r, row := range rec.W {
			for c, v := range row {
				layer.Weight().Set(r, c, v)
			}
		}
		if layer.UseBias() && rec.B != nil {
			for c, v := range rec.B[0] {
				layer.Bias().Set(0, c, v)
			}
		}
	}
	return nil
}
