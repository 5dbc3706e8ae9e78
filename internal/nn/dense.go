package nn

import (
	"fmt"
	"math/rand"

	"github.com/fern-ml/fern/internal/mat"
)

// Dense implements a fully connected layer: an affine transform followed by
// an elementwise activation.
//
// Performs y = act(x · W + b) where:
//   - x is the input batch with shape [batch, in]
//   - W is the weight matrix with shape [in, out]
//   - b is an optional bias row with shape [1, out]
//
// Weights are Gaussian-initialized (Box–Muller, scaled down), biases start
// at zero. Weights and bias are mutated in place by Backward; everything
// else is freshly allocated per call.
type Dense struct {
	in      int
	out     int
	act     Activation
	useBias bool
	weight  *mat.Matrix // [in, out]
	bias    *mat.Matrix // [1, out], nil when bias is disabled
}

// Cache carries the state Forward produces for the matching Backward call:
// the input batch and the post-activation output. Exactly one Forward/
// Backward pair may be in flight per layer; returning the cache instead of
// stashing it on the layer makes that pairing explicit at the call site.
type Cache struct {
	input  *mat.Matrix
	output *mat.Matrix
}

// Output returns the post-activation batch computed by Forward.
func (c *Cache) Output() *mat.Matrix { return c.output }

// NewDense creates a dense layer with freshly initialized parameters.
//
// Returns a configuration error if the activation identifier is unknown or
// a width is not positive.
func NewDense(in, out int, activation string, useBias bool, rng *rand.Rand) (*Dense, error) {
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("%w: dense layer widths must be positive, got %dx%d", ErrConfiguration, in, out)
	}
	act, err := ResolveActivation(activation)
	if err != nil {
		return nil, err
	}
	d := &Dense{
		in:      in,
		out:     out,
		act:     act,
		useBias: useBias,
		weight:  GaussianInit(in, out, rng),
	}
	if useBias {
		d.bias = ZeroBias(out)
	}
	return d, nil
}

// NewDenseFromParams creates a dense layer with the given parameter
// matrices, used when importing persisted weights. The matrices are copied.
func NewDenseFromParams(in, out int, activation string, useBias bool, weight, bias *mat.Matrix) (*Dense, error) {
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("%w: dense layer widths must be positive, got %dx%d", ErrConfiguration, in, out)
	}
	act, err := ResolveActivation(activation)
	if err != nil {
		return nil, err
	}
	if weight.Rows != in || weight.Cols != out {
		return nil, fmt.Errorf("%w: weight shape %dx%d does not match layer %dx%d",
			ErrConfiguration, weight.Rows, weight.Cols, in, out)
	}
	d := &Dense{
		in:      in,
		out:     out,
		act:     act,
		useBias: useBias,
		weight:  weight.Clone(),
	}
	if useBias {
		if bias == nil {
			d.bias = ZeroBias(out)
		} else {
			if bias.Rows != 1 || bias.Cols != out {
				return nil, fmt.Errorf("%w: bias shape %dx%d does not match layer output width %d",
					ErrConfiguration, bias.Rows, bias.Cols, out)
			}
			d.bias = bias.Clone()
		}
	}
	return d, nil
}

// Forward computes the layer output for a batch and returns the cache the
// matching Backward call consumes.
//
// Input shape: [batch, in]. Output shape: [batch, out].
func (d *Dense) Forward(batch *mat.Matrix) (*mat.Matrix, *Cache) {
	out := d.Infer(batch)
	return out, &Cache{input: batch, output: out}
}

// Infer computes the layer output without producing a backward cache.
func (d *Dense) Infer(batch *mat.Matrix) *mat.Matrix {
	if batch.Cols != d.in {
		panic(fmt.Sprintf("nn: Dense.Forward: expected input with %d features, got %d", d.in, batch.Cols))
	}
	linear := mat.MatMul(batch, d.weight)
	if d.useBias {
		linear = mat.AddRow(linear, d.bias)
	}
	return mat.Apply(linear, d.act.Forward)
}

// Backward consumes the gradient of the loss with respect to this layer's
// output, updates the parameters in place, and returns the gradient with
// respect to the layer's input.
//
// The update averages the batch gradient: W -= (lr/batch)·xᵀ·gradPre, and
// likewise for the bias via column sums. cache must come from the Forward
// call this gradient corresponds to.
func (d *Dense) Backward(cache *Cache, gradOut *mat.Matrix, learningRate float64) *mat.Matrix {
	if gradOut.Rows != cache.output.Rows || gradOut.Cols != cache.output.Cols {
		panic(fmt.Sprintf("nn: Dense.Backward: gradient shape %dx%d does not match cached output %dx%d",
			gradOut.Rows, gradOut.Cols, cache.output.Rows, cache.output.Cols))
	}

	gradPre := mat.Hadamard(gradOut, mat.Apply(cache.output, d.act.Deriv))
	gradWeight := mat.MatMul(mat.Transpose(cache.input), gradPre)
	gradInput := mat.MatMul(gradPre, mat.Transpose(d.weight))

	scale := learningRate / float64(cache.input.Rows)
	for i, g := range gradWeight.Data {
		d.weight.Data[i] -= scale * g
	}
	if d.useBias {
		gradBias := mat.ColSums(gradPre)
		for i, g := range gradBias.Data {
			d.bias.Data[i] -= scale * g
		}
	}
	return gradInput
}

// InWidth returns the number of input features.
func (d *Dense) InWidth() int { return d.in }

// OutWidth returns the number of output features.
func (d *Dense) OutWidth() int { return d.out }

// ActivationName returns the identifier of the layer's activation.
func (d *Dense) ActivationName() string { return d.act.name }

// UseBias reports whether the layer carries a bias row.
func (d *Dense) UseBias() bool { return d.useBias }

// Weight returns the live weight matrix. Mutating it changes the layer.
func (d *Dense) Weight() *mat.Matrix { return d.weight }

// Bias returns the live bias row, or nil when bias is disabled.
func (d *Dense) Bias() *mat.Matrix { return d.bias }
