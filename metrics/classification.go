package metrics

import (
	"math"

	evalErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// MeanLogLoss calculates the average binary log loss.
//
// This is the mean of the elementwise LogLoss values, with the same case
// policy: 0 where actual equals predicted, +Inf for confident wrong
// predictions.
//
// Parameters:
//   - actual: Ground truth binary labels (0 or 1)
//   - predicted: Predicted probabilities in [0, 1]
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: The average binary log loss
//   - error: non-nil only when the inputs have different lengths
//
// Example:
//
//	actual := []float64{0, 0, 1, 1}
//	predicted := []float64{0.1, 0.2, 0.8, 0.9}
//	loss, err := metrics.MeanLogLoss(actual, predicted)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Log Loss: %f\n", loss)
func MeanLogLoss(actual, predicted []float64, opts ...Option) (float64, error) {
	ll, err := LogLoss(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return meanSkipMissing(ll, false), nil
}

// Precision calculates the fraction of predicted positives that are truly
// positive: the mean of actual restricted to positions where predicted == 1.
//
// Missing values are not pre-filtered; with WithRemoveMissing the mean skips
// NaN entries among the selected positions. When there are no predicted
// positives the metric is ill-defined: an UndefinedMetricWarning is emitted
// and NaN returned.
//
// Parameters:
//   - actual: Ground truth binary labels (0 or 1)
//   - predicted: Predicted binary labels (0 or 1)
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: Precision in [0, 1]
//   - error: non-nil only when the inputs have different lengths
func Precision(actual, predicted []float64, opts ...Option) (float64, error) {
	if err := checkDims("Precision", actual, predicted); err != nil {
		return 0, err
	}
	o := newOptions(opts)

	selected := make([]float64, 0, len(actual))
	for i := range predicted {
		if predicted[i] == 1 {
			selected = append(selected, actual[i])
		}
	}
	if len(selected) == 0 {
		evalErrors.Warn(evalErrors.NewUndefinedMetricWarning(
			"Precision",
			"no predicted positives",
			math.NaN(),
		))
		return math.NaN(), nil
	}
	return meanSkipMissing(selected, o.removeMissing), nil
}

// Recall calculates the fraction of true positives that were predicted
// positive: the mean of predicted restricted to positions where actual == 1.
//
// Missing values are not pre-filtered; with WithRemoveMissing the mean skips
// NaN entries among the selected positions. When there are no actual
// positives the metric is ill-defined: an UndefinedMetricWarning is emitted
// and NaN returned.
//
// Parameters:
//   - actual: Ground truth binary labels (0 or 1)
//   - predicted: Predicted binary labels (0 or 1)
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: Recall in [0, 1]
//   - error: non-nil only when the inputs have different lengths
func Recall(actual, predicted []float64, opts ...Option) (float64, error) {
	if err := checkDims("Recall", actual, predicted); err != nil {
		return 0, err
	}
	o := newOptions(opts)

	selected := make([]float64, 0, len(predicted))
	for i := range actual {
		if actual[i] == 1 {
			selected = append(selected, predicted[i])
		}
	}
	if len(selected) == 0 {
		evalErrors.Warn(evalErrors.NewUndefinedMetricWarning(
			"Recall",
			"no actual positives",
			math.NaN(),
		))
		return math.NaN(), nil
	}
	return meanSkipMissing(selected, o.removeMissing), nil
}

// FBetaScore calculates the weighted harmonic mean of precision and recall:
//
//	(1 + β²) · precision · recall / (β² · precision + recall)
//
// beta < 1 weights precision, beta > 1 weights recall, and beta == 1 (the
// default) is the plain harmonic mean (F1). When both precision and recall
// are zero the ratio is 0/0 and NaN propagates.
//
// Parameters:
//   - actual: Ground truth binary labels (0 or 1)
//   - predicted: Predicted binary labels (0 or 1)
//   - opts: WithRemoveMissing, WithBeta
//
// Returns:
//   - float64: F-beta score in [0, 1]
//   - error: DimensionError on mismatched lengths, ValidationError when
//     beta is not positive
func FBetaScore(actual, predicted []float64, opts ...Option) (float64, error) {
	o := newOptions(opts)
	if o.beta <= 0 {
		return 0, evalErrors.NewValidationError("beta", "must be positive", o.beta)
	}

	precision, err := Precision(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	recall, err := Recall(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}

	b2 := o.beta * o.beta
	return (1 + b2) * precision * recall / (b2*precision + recall), nil
}

// meanSkipMissing reduces a sequence to its mean. With skip set, NaN entries
// are left out of both the sum and the count; a fully-missing sequence is NaN.
func meanSkipMissing(xs []float64, skip bool) float64 {
	var sum float64
	var n int
	for _, v := range xs {
		if skip && math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
