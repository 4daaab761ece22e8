package texteval

// Smoothing selects how a zero aggregate n-gram precision is handled when
// combining BLEU orders.
type Smoothing int

const (
	// SmoothingNone clamps the final score to 0 when any order has zero
	// precision.
	SmoothingNone Smoothing = iota

	// SmoothingEpsilon floors zero precisions at a small constant so short
	// candidates with partial overlap still receive a nonzero score.
	SmoothingEpsilon
)

// precisionEpsilon is the floor applied under SmoothingEpsilon.
const precisionEpsilon = 1e-7

// BLEUOption configures a BLEUScorer.
type BLEUOption func(*bleuConfig)

type bleuConfig struct {
	maxOrder  int
	weights   []float64
	smoothing Smoothing
}

func defaultBLEUConfig() bleuConfig {
	return bleuConfig{
		maxOrder:  4,
		smoothing: SmoothingNone,
	}
}

// WithMaxOrder sets the highest n-gram order scored (default: 4).
func WithMaxOrder(n int) BLEUOption {
	return func(c *bleuConfig) {
		if n > 0 {
			c.maxOrder = n
		}
	}
}

// WithWeights sets per-order precision weights (default: uniform 1/maxOrder).
// The slice length must equal the maximum order.
func WithWeights(w []float64) BLEUOption {
	return func(c *bleuConfig) {
		c.weights = append([]float64(nil), w...)
	}
}

// WithSmoothing sets the zero-precision handling (default: SmoothingNone).
func WithSmoothing(s Smoothing) BLEUOption {
	return func(c *bleuConfig) {
		c.smoothing = s
	}
}
