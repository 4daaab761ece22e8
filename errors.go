package texteval

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidInput indicates an empty required sequence, mismatched
	// parallel arrays, or a zero-length normalizer.
	ErrInvalidInput = errors.New("texteval: invalid input")

	// ErrDegenerateDataset indicates a dataset on which the metric is
	// undefined, such as ranking labels that are all one class.
	ErrDegenerateDataset = errors.New("texteval: degenerate dataset")

	// ErrInvalidProbability indicates a caller-supplied probability outside
	// the interval (0, 1].
	ErrInvalidProbability = errors.New("texteval: probability outside (0, 1]")
)
