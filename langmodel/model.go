package langmodel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strconv"

	texteval "github.com/jamesainslie/go-texteval"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrModelNotFound indicates the model file does not exist.
	ErrModelNotFound = errors.New("langmodel: model file not found")

	// ErrShortSequence indicates fewer than two tokens; a causal model
	// scores each token conditioned on at least one predecessor.
	ErrShortSequence = errors.New("langmodel: need at least two tokens")
)

// Model scores token ID sequences with a pool of ONNX sessions.
// It is safe for concurrent use.
type Model struct {
	pool   *Pool
	logger *slog.Logger
}

// Option configures a Model.
type Option func(*config)

type config struct {
	poolSize int
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		poolSize: runtime.NumCPU(),
		logger:   slog.Default(),
	}
}

// WithPoolSize sets the ONNX session pool size (default: runtime.NumCPU()).
func WithPoolSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.poolSize = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Model from an ONNX causal LM file.
func New(modelPath string, opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := os.Stat(modelPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
		}
		return nil, fmt.Errorf("checking model file: %w", err)
	}

	pool, err := NewPool(modelPath, cfg.poolSize)
	if err != nil {
		return nil, fmt.Errorf("creating session pool: %w", err)
	}

	return &Model{
		pool:   pool,
		logger: cfg.logger,
	}, nil
}

// TokenProbabilities returns the model probability of each token given its
// predecessors: element i is p(ids[i+1] | ids[0..i]), so the result has
// len(ids)-1 entries. The first token has no predecessor and is not scored.
func (m *Model) TokenProbabilities(ctx context.Context, ids []int64) ([]float64, error) {
	if len(ids) < 2 {
		return nil, ErrShortSequence
	}

	session, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer m.pool.Release(session)

	attentionMask := make([]int64, len(ids))
	for i := range attentionMask {
		attentionMask[i] = 1
	}

	logits, err := session.Logits(ctx, ids, attentionMask)
	if err != nil {
		return nil, err
	}
	if len(logits) != len(ids) {
		return nil, fmt.Errorf("got %d logit rows for %d tokens", len(logits), len(ids))
	}

	probs := make([]float64, len(ids)-1)
	for i := 1; i < len(ids); i++ {
		row := logits[i-1]
		next := ids[i]
		if next < 0 || int(next) >= len(row) {
			return nil, fmt.Errorf("token ID %d outside vocabulary of size %d", next, len(row))
		}
		probs[i-1] = softmaxAt(row, int(next))
	}

	m.logger.Debug("scored sequence", "tokens", len(ids), "scored", len(probs))
	return probs, nil
}

// Perplexity returns the perplexity of a token ID sequence under the model,
// delegating the geometric-mean aggregation to the root package.
func (m *Model) Perplexity(ctx context.Context, ids []int64) (float64, error) {
	probs, err := m.TokenProbabilities(ctx, ids)
	if err != nil {
		return 0, err
	}

	tokens := make([]string, len(probs))
	for i := range probs {
		tokens[i] = strconv.FormatInt(ids[i+1], 10)
	}

	fn := func(pos int, _ string) float64 { return probs[pos] }
	return texteval.SequencePerplexity(fn, tokens)
}

// Close releases all sessions.
func (m *Model) Close() error {
	if m.pool != nil {
		return m.pool.Close()
	}
	return nil
}

// softmaxAt returns the softmax probability of index idx within the logit
// row, computed in float64 with max subtraction for stability.
func softmaxAt(row []float32, idx int) float64 {
	maxLogit := row[0]
	for _, v := range row[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}

	var sum float64
	for _, v := range row {
		sum += math.Exp(float64(v - maxLogit))
	}

	return math.Exp(float64(row[idx]-maxLogit)) / sum
}
