// Package pointwise provides the simple per-example metrics that accompany
// the sequence and ranking metrics in the root package: regression errors
// over parallel float slices and confusion-count classification scores.
package pointwise

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	texteval "github.com/jamesainslie/go-texteval"
)

// MSE returns the mean squared error between true and predicted values.
func MSE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	d := floats.Distance(yTrue, yPred, 2)
	return d * d / float64(len(yTrue)), nil
}

// RMSE returns the root mean squared error.
func RMSE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	d := floats.Distance(yTrue, yPred, 2)
	return d / math.Sqrt(float64(len(yTrue))), nil
}

// MAE returns the mean absolute error.
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	return floats.Distance(yTrue, yPred, 1) / float64(len(yTrue)), nil
}

// R2 returns the coefficient of determination of predictions against true
// values.
func R2(yTrue, yPred []float64) (float64, error) {
	if err := checkPair(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	return stat.RSquaredFrom(yPred, yTrue, nil), nil
}

// Confusion holds binary classification counts.
type Confusion struct {
	TP int
	FP int
	TN int
	FN int
}

// Confuse tallies confusion counts from parallel truth and prediction labels.
func Confuse(truth, pred []bool) (Confusion, error) {
	if err := checkPair(len(truth), len(pred)); err != nil {
		return Confusion{}, err
	}

	var c Confusion
	for i := range truth {
		switch {
		case truth[i] && pred[i]:
			c.TP++
		case !truth[i] && pred[i]:
			c.FP++
		case truth[i] && !pred[i]:
			c.FN++
		default:
			c.TN++
		}
	}
	return c, nil
}

// Accuracy returns the fraction of correct predictions.
func (c Confusion) Accuracy() float64 {
	total := c.TP + c.FP + c.TN + c.FN
	if total == 0 {
		return 0
	}
	return float64(c.TP+c.TN) / float64(total)
}

// Precision returns TP / (TP + FP), or 0 when nothing was predicted positive.
func (c Confusion) Precision() float64 {
	if c.TP+c.FP == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Recall returns TP / (TP + FN), or 0 when no positives exist.
func (c Confusion) Recall() float64 {
	if c.TP+c.FN == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

// F1 returns the harmonic mean of precision and recall.
func (c Confusion) F1() float64 {
	p := c.Precision()
	r := c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

func checkPair(nTrue, nPred int) error {
	if nTrue == 0 {
		return fmt.Errorf("%w: empty input", texteval.ErrInvalidInput)
	}
	if nTrue != nPred {
		return fmt.Errorf("%w: %d true vs %d predicted values", texteval.ErrInvalidInput, nTrue, nPred)
	}
	return nil
}
