package texteval

import (
	"fmt"
	"sort"
)

// CurvePoint is one point of a ranking curve: (false positive rate, true
// positive rate) for ROC, (recall, precision) for precision-recall. Points
// are emitted in sweep order, ready for display.
type CurvePoint struct {
	X float64
	Y float64
}

// sweepCount holds cumulative counts after processing every pair at or above
// one distinct score value.
type sweepCount struct {
	tp int
	fp int
}

// sweep sorts score-label pairs by descending score and walks a threshold
// from +inf downward, emitting one cumulative count per distinct score.
// Pairs tied on score are folded into a single step so the curve does not
// depend on their input order.
func sweep(scores []float64, labels []bool) (counts []sweepCount, pos, neg int, err error) {
	if len(scores) != len(labels) {
		return nil, 0, 0, fmt.Errorf("%w: %d scores vs %d labels", ErrInvalidInput, len(scores), len(labels))
	}
	if len(scores) == 0 {
		return nil, 0, 0, fmt.Errorf("%w: empty score-label set", ErrInvalidInput)
	}

	for _, positive := range labels {
		if positive {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return nil, 0, 0, fmt.Errorf("%w: need at least one positive and one negative label", ErrDegenerateDataset)
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	var tp, fp int
	for k, idx := range order {
		if labels[idx] {
			tp++
		} else {
			fp++
		}
		// Emit only once all pairs tied at this score are included.
		if k+1 < len(order) && scores[order[k+1]] == scores[idx] {
			continue
		}
		counts = append(counts, sweepCount{tp: tp, fp: fp})
	}

	return counts, pos, neg, nil
}

// ROCCurve returns the receiver operating characteristic curve for the given
// score-label pairs: one (FPR, TPR) point per distinct score, swept from the
// highest score downward. It fails with ErrDegenerateDataset when the labels
// are all one class.
func ROCCurve(scores []float64, labels []bool) ([]CurvePoint, error) {
	counts, pos, neg, err := sweep(scores, labels)
	if err != nil {
		return nil, err
	}

	points := make([]CurvePoint, len(counts))
	for i, c := range counts {
		points[i] = CurvePoint{
			X: float64(c.fp) / float64(neg),
			Y: float64(c.tp) / float64(pos),
		}
	}
	return points, nil
}

// ROCAUC returns the area under the ROC curve via trapezoidal integration,
// anchored at (0,0). The sweep's final point is (1,1) by construction, so no
// terminal anchor is needed.
func ROCAUC(scores []float64, labels []bool) (float64, error) {
	points, err := ROCCurve(scores, labels)
	if err != nil {
		return 0, err
	}

	var auc float64
	prev := CurvePoint{}
	for _, p := range points {
		auc += (p.X - prev.X) * (p.Y + prev.Y) / 2
		prev = p
	}
	return auc, nil
}

// PRCurve returns the precision-recall curve for the given score-label
// pairs: one (recall, precision) point per distinct score, swept from the
// highest score downward.
func PRCurve(scores []float64, labels []bool) ([]CurvePoint, error) {
	counts, pos, _, err := sweep(scores, labels)
	if err != nil {
		return nil, err
	}

	points := make([]CurvePoint, len(counts))
	for i, c := range counts {
		points[i] = CurvePoint{
			X: float64(c.tp) / float64(pos),
			Y: float64(c.tp) / float64(c.tp+c.fp),
		}
	}
	return points, nil
}

// AveragePrecision returns the step-integrated area under the
// precision-recall curve: the sum over sweep steps of precision at the step
// times the recall increase. Precision is not linearly interpolated between
// steps; this matches the standard AP definition.
func AveragePrecision(scores []float64, labels []bool) (float64, error) {
	points, err := PRCurve(scores, labels)
	if err != nil {
		return 0, err
	}

	var ap, prevRecall float64
	for _, p := range points {
		ap += p.Y * (p.X - prevRecall)
		prevRecall = p.X
	}
	return ap, nil
}
