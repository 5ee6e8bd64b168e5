// Package metrics provides evaluation metrics for regression and binary
// classification models.
//
// The package operates on paired []float64 sequences of actual (ground-truth)
// and predicted values, with NaN as the missing-value marker:
//
// Elementwise metrics:
//   - SE, AE, APE, SLE, LogLoss: one output value per input pair
//
// Aggregate regression metrics:
//   - SSE, MSE, RMSE, MAE, MedAE, MAPE, SMAPE, MSLE, RMSLE, Bias, PercentBias
//
// Relative metrics (against a predict-the-mean baseline):
//   - RSE, RRSE, RAE, ExplainedVariation
//
// Classification metrics:
//   - AUC, MeanLogLoss, Precision, Recall, FBetaScore
//
// Numeric edge cases (division by zero, log of a non-positive argument, 0/0)
// propagate as ±Inf or NaN following floating-point semantics rather than
// returning errors; callers inspect outputs. The only error conditions are
// input validation: mismatched sequence lengths and invalid parameters.
//
// Example usage:
//
//	mse, err := metrics.MSE(actual, predicted)
//	rmse, err := metrics.RMSE(actual, predicted)
//	auc, err := metrics.AUC(labels, scores, metrics.WithRemoveMissing())
//
// Matrix inputs are supported through the *Matrix convenience wrappers.
package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SSE calculates the sum of squared errors.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: Sum of (actual[i] - predicted[i])²
//   - error: non-nil only when the inputs have different lengths
func SSE(actual, predicted []float64, opts ...Option) (float64, error) {
	se, err := SE(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return floats.Sum(se), nil
}

// MSE calculates the Mean Squared Error between actual and predicted values.
//
// MSE measures the average squared difference between predictions and actual
// values. Lower values indicate better model performance. MSE is sensitive to
// outliers due to the squared differences.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: MSE value (non-negative; NaN over zero surviving pairs)
//   - error: non-nil only when the inputs have different lengths
//
// Example:
//
//	mse, err := metrics.MSE(actual, predicted)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("MSE: %.4f\n", mse)
func MSE(actual, predicted []float64, opts ...Option) (float64, error) {
	se, err := SE(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return stat.Mean(se, nil), nil
}

// RMSE calculates the Root Mean Squared Error between actual and predicted
// values.
//
// RMSE is the square root of MSE, providing error measurement in the same
// units as the target variable.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: RMSE value (non-negative)
//   - error: non-nil only when the inputs have different lengths
func RMSE(actual, predicted []float64, opts ...Option) (float64, error) {
	mse, err := MSE(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE calculates the Mean Absolute Error between actual and predicted values.
//
// MAE is more robust to outliers than MSE as it does not square the
// differences.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: MAE value (non-negative)
//   - error: non-nil only when the inputs have different lengths
func MAE(actual, predicted []float64, opts ...Option) (float64, error) {
	ae, err := AE(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return stat.Mean(ae, nil), nil
}

// MedAE calculates the Median Absolute Error between actual and predicted
// values. For an even number of pairs the two central absolute errors are
// averaged.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: Median absolute error (NaN over zero surviving pairs)
//   - error: non-nil only when the inputs have different lengths
func MedAE(actual, predicted []float64, opts ...Option) (float64, error) {
	ae, err := AE(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return median(ae), nil
}

// median averages the two central order statistics for even n. The input
// slice is not modified.
func median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// MAPE calculates the Mean Absolute Percentage Error.
//
// MAPE is scale-independent but undefined where actual is 0: such positions
// contribute ±Inf or NaN unless WithDropZeroActual excludes them before
// averaging.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing, WithDropZeroActual
//
// Returns:
//   - float64: Mean of the absolute percent errors
//   - error: non-nil only when the inputs have different lengths
func MAPE(actual, predicted []float64, opts ...Option) (float64, error) {
	ape, err := APE(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return stat.Mean(ape, nil), nil
}

// SMAPE calculates the Symmetric Mean Absolute Percentage Error:
//
//	2 · mean(|actual - predicted| / (|actual| + |predicted|))
//
// SMAPE is symmetric: swapping actual and predicted yields the same value.
// A position is NaN only when actual and predicted are both 0 there; use
// WithDropBothZero to exclude those positions instead.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing, WithDropBothZero
//
// Returns:
//   - float64: SMAPE value in [0, 2]
//   - error: non-nil only when the inputs have different lengths
func SMAPE(actual, predicted []float64, opts ...Option) (float64, error) {
	if err := checkDims("SMAPE", actual, predicted); err != nil {
		return 0, err
	}
	o := newOptions(opts)
	o.dropZeroActual = false
	a, p := filterPairs(actual, predicted, o)

	terms := make([]float64, len(a))
	for i := range a {
		terms[i] = math.Abs(a[i]-p[i]) / (math.Abs(a[i]) + math.Abs(p[i]))
	}
	return 2 * stat.Mean(terms, nil), nil
}

// MSLE calculates the Mean Squared Log Error.
//
// Parameters:
//   - actual: True target values (≥ 0)
//   - predicted: Predicted values (≥ 0)
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: Mean of the squared log errors
//   - error: non-nil only when the inputs have different lengths
func MSLE(actual, predicted []float64, opts ...Option) (float64, error) {
	sle, err := SLE(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return stat.Mean(sle, nil), nil
}

// RMSLE calculates the Root Mean Squared Log Error.
//
// Parameters:
//   - actual: True target values (≥ 0)
//   - predicted: Predicted values (≥ 0)
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: Square root of MSLE
//   - error: non-nil only when the inputs have different lengths
func RMSLE(actual, predicted []float64, opts ...Option) (float64, error) {
	msle, err := MSLE(actual, predicted, opts...)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(msle), nil
}

// Bias calculates the mean signed difference between actual and predicted
// values. Unlike MAE the differences are not folded by absolute value, so
// over- and under-prediction cancel; Bias(a, a) == 0.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: mean(actual - predicted)
//   - error: non-nil only when the inputs have different lengths
func Bias(actual, predicted []float64, opts ...Option) (float64, error) {
	if err := checkDims("Bias", actual, predicted); err != nil {
		return 0, err
	}
	a, p := filterPairs(actual, predicted, newOptions(opts).missingOnly())

	diffs := make([]float64, len(a))
	for i := range a {
		diffs[i] = a[i] - p[i]
	}
	return stat.Mean(diffs, nil), nil
}

// PercentBias calculates the mean signed relative difference:
//
//	mean((actual - predicted) / |actual|)
//
// Positions where actual is 0 contribute ±Inf or NaN unless
// WithDropZeroActual excludes them.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing, WithDropZeroActual
//
// Returns:
//   - float64: Signed percent bias
//   - error: non-nil only when the inputs have different lengths
func PercentBias(actual, predicted []float64, opts ...Option) (float64, error) {
	if err := checkDims("PercentBias", actual, predicted); err != nil {
		return 0, err
	}
	o := newOptions(opts)
	o.dropBothZero = false
	a, p := filterPairs(actual, predicted, o)

	terms := make([]float64, len(a))
	for i := range a {
		terms[i] = (a[i] - p[i]) / math.Abs(a[i])
	}
	return stat.Mean(terms, nil), nil
}
