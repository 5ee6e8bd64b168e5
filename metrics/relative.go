package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// The relative metrics compare the model against a naive baseline that
// always predicts the mean of the filtered actual values. Filtering is
// applied exactly once, before the baseline mean is taken, so the primary
// and baseline sums always see the same pairs — this keeps RSE, RRSE, RAE
// and ExplainedVariation mutually consistent.

// RSE calculates the Relative Squared Error:
//
//	Σ(actual - predicted)² / Σ(actual - mean(actual))²
//
// A value of 0 means perfect prediction, 1 means no better than predicting
// the mean. When actual is constant the baseline sum is zero and the result
// degenerates to 0/0 = NaN.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: Relative squared error
//   - error: non-nil only when the inputs have different lengths
func RSE(actual, predicted []float64, opts ...Option) (float64, error) {
	if err := checkDims("RSE", actual, predicted); err != nil {
		return 0, err
	}
	a, p := filterPairs(actual, predicted, newOptions(opts).missingOnly())
	num, den := baselineSums(a, p, false)
	return num / den, nil
}

// RRSE calculates the Root Relative Squared Error, the square root of RSE.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: Root relative squared error
//   - error: non-nil only when the inputs have different lengths
func RRSE(actual, predicted []float64, opts ...Option) (float64, error) {
	rse, err := RSE(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(rse), nil
}

// RAE calculates the Relative Absolute Error:
//
//	Σ|actual - predicted| / Σ|actual - mean(actual)|
//
// The absolute-error analogue of RSE, against the same predict-the-mean
// baseline.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: Relative absolute error
//   - error: non-nil only when the inputs have different lengths
func RAE(actual, predicted []float64, opts ...Option) (float64, error) {
	if err := checkDims("RAE", actual, predicted); err != nil {
		return 0, err
	}
	a, p := filterPairs(actual, predicted, newOptions(opts).missingOnly())
	num, den := baselineSums(a, p, true)
	return num / den, nil
}

// ExplainedVariation calculates the coefficient of determination, 1 - RSE.
//
// A score of 1 means perfect prediction, 0 means no better than predicting
// the mean, and negative values mean worse than that naive baseline.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: Explained variation score (best possible score is 1.0)
//   - error: non-nil only when the inputs have different lengths
//
// Example:
//
//	ev, err := metrics.ExplainedVariation(actual, predicted)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Explained Variation: %.4f\n", ev)
func ExplainedVariation(actual, predicted []float64, opts ...Option) (float64, error) {
	rse, err := RSE(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return 1 - rse, nil
}

// baselineSums accumulates the model error and the predict-the-mean baseline
// error over the same filtered pairs, squared or absolute.
func baselineSums(a, p []float64, abs bool) (num, den float64) {
	mu := stat.Mean(a, nil)
	for i := range a {
		e := a[i] - p[i]
		b := a[i] - mu
		if abs {
			num += math.Abs(e)
			den += math.Abs(b)
		} else {
			num += e * e
			den += b * b
		}
	}
	return num, den
}
