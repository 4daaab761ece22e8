package pointwise

import (
	"errors"
	"math"
	"testing"

	texteval "github.com/jamesainslie/go-texteval"
)

func TestRegressionMetrics(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}
	yPred := []float64{1, 2, 5, 2}

	tests := []struct {
		name string
		fn   func([]float64, []float64) (float64, error)
		want float64
	}{
		{name: "MSE", fn: MSE, want: 2.0},    // (0+0+4+4)/4
		{name: "RMSE", fn: RMSE, want: math.Sqrt(2.0)},
		{name: "MAE", fn: MAE, want: 1.0},    // (0+0+2+2)/4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(yTrue, yPred)
			if err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestR2_PerfectFit(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}
	got, err := R2(y, y)
	if err != nil {
		t.Fatalf("R2 error = %v", err)
	}
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("R2 = %v, want 1.0 for perfect predictions", got)
	}
}

func TestRegressionMetrics_Errors(t *testing.T) {
	fns := map[string]func([]float64, []float64) (float64, error){
		"MSE": MSE, "RMSE": RMSE, "MAE": MAE, "R2": R2,
	}

	for name, fn := range fns {
		if _, err := fn(nil, nil); !errors.Is(err, texteval.ErrInvalidInput) {
			t.Errorf("%s(empty): expected ErrInvalidInput, got: %v", name, err)
		}
		if _, err := fn([]float64{1, 2}, []float64{1}); !errors.Is(err, texteval.ErrInvalidInput) {
			t.Errorf("%s(mismatch): expected ErrInvalidInput, got: %v", name, err)
		}
	}
}

func TestConfuse(t *testing.T) {
	truth := []bool{true, true, false, false, true}
	pred := []bool{true, false, true, false, true}

	c, err := Confuse(truth, pred)
	if err != nil {
		t.Fatalf("Confuse error = %v", err)
	}

	if c.TP != 2 || c.FP != 1 || c.FN != 1 || c.TN != 1 {
		t.Fatalf("counts = %+v, want TP=2 FP=1 FN=1 TN=1", c)
	}
	if got, want := c.Accuracy(), 0.6; math.Abs(got-want) > 1e-12 {
		t.Errorf("Accuracy = %v, want %v", got, want)
	}
	if got, want := c.Precision(), 2.0/3.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Precision = %v, want %v", got, want)
	}
	if got, want := c.Recall(), 2.0/3.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Recall = %v, want %v", got, want)
	}
	if got, want := c.F1(), 2.0/3.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("F1 = %v, want %v", got, want)
	}
}

func TestConfusion_ZeroGuards(t *testing.T) {
	var c Confusion
	if c.Accuracy() != 0 || c.Precision() != 0 || c.Recall() != 0 || c.F1() != 0 {
		t.Errorf("zero confusion should yield zero metrics, got %+v", c)
	}
}
