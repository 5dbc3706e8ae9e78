package nn

import "errors"

// Error kinds reported across the engine boundary. Callers test with
// errors.Is; none of these are retried automatically.
var (
	// ErrConfiguration covers invalid build input: unknown activation
	// identifiers, shape-incompatible layer chains, empty datasets at
	// training start, import payloads matching no recognized format.
	ErrConfiguration = errors.New("configuration error")

	// ErrFormat covers malformed persisted payloads: broken JSON,
	// CSV rows with mismatched column counts.
	ErrFormat = errors.New("format error")

	// ErrUsage covers well-formed but inapplicable calls, such as an
	// inference vector whose length does not match the input size.
	ErrUsage = errors.New("usage error")
)
