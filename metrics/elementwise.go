package metrics

import (
	"math"
)

// SE calculates the elementwise squared error between actual and predicted
// values.
//
// Each output element is (actual[i] - predicted[i])². The returned sequence
// has the same length as the (filtered) input.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - []float64: Squared error per position
//   - error: non-nil only when the inputs have different lengths
//
// Example:
//
//	se, err := metrics.SE([]float64{9, 10, 11}, []float64{11, 10, 9})
//	// se == [4, 0, 4]
func SE(actual, predicted []float64, opts ...Option) ([]float64, error) {
	if err := checkDims("SE", actual, predicted); err != nil {
		return nil, err
	}
	a, p := filterPairs(actual, predicted, newOptions(opts).missingOnly())

	out := make([]float64, len(a))
	for i := range a {
		diff := a[i] - p[i]
		out[i] = diff * diff
	}
	return out, nil
}

// AE calculates the elementwise absolute error between actual and predicted
// values.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - []float64: |actual[i] - predicted[i]| per position
//   - error: non-nil only when the inputs have different lengths
func AE(actual, predicted []float64, opts ...Option) ([]float64, error) {
	if err := checkDims("AE", actual, predicted); err != nil {
		return nil, err
	}
	a, p := filterPairs(actual, predicted, newOptions(opts).missingOnly())

	out := make([]float64, len(a))
	for i := range a {
		out[i] = math.Abs(a[i] - p[i])
	}
	return out, nil
}

// APE calculates the elementwise absolute percent error.
//
// Each output element is |actual[i] - predicted[i]| / |actual[i]|. Positions
// where actual is 0 yield +Inf (or NaN when predicted is also 0); use
// WithDropZeroActual to exclude them instead.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing, WithDropZeroActual
//
// Returns:
//   - []float64: Absolute percent error per position
//   - error: non-nil only when the inputs have different lengths
func APE(actual, predicted []float64, opts ...Option) ([]float64, error) {
	if err := checkDims("APE", actual, predicted); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	o.dropBothZero = false
	a, p := filterPairs(actual, predicted, o)

	out := make([]float64, len(a))
	for i := range a {
		out[i] = math.Abs(a[i]-p[i]) / math.Abs(a[i])
	}
	return out, nil
}

// SLE calculates the elementwise squared log error.
//
// Each output element is (ln(1+actual[i]) - ln(1+predicted[i]))². Inputs must
// be ≥ -1 (practically ≥ 0); negative inputs are the caller's responsibility
// and produce NaN through the log.
//
// Parameters:
//   - actual: True target values
//   - predicted: Predicted values
//   - opts: WithRemoveMissing
//
// Returns:
//   - []float64: Squared log error per position
//   - error: non-nil only when the inputs have different lengths
func SLE(actual, predicted []float64, opts ...Option) ([]float64, error) {
	if err := checkDims("SLE", actual, predicted); err != nil {
		return nil, err
	}
	a, p := filterPairs(actual, predicted, newOptions(opts).missingOnly())

	out := make([]float64, len(a))
	for i := range a {
		diff := math.Log1p(a[i]) - math.Log1p(p[i])
		out[i] = diff * diff
	}
	return out, nil
}

// LogLoss calculates the elementwise binary log loss.
//
// Each output element is -(actual·ln(predicted) + (1-actual)·ln(1-predicted)),
// with two case adjustments: the loss is exactly 0 wherever actual equals
// predicted (this resolves the 0·ln(0) indeterminate form for confident
// correct predictions), and +Inf wherever the formula is otherwise
// indeterminate (confident wrong predictions).
//
// Parameters:
//   - actual: True binary labels (0 or 1)
//   - predicted: Predicted probabilities in [0, 1]
//   - opts: WithRemoveMissing
//
// Returns:
//   - []float64: Log loss per position
//   - error: non-nil only when the inputs have different lengths
//
// Example:
//
//	ll, err := metrics.LogLoss([]float64{1, 0}, []float64{0.9, 0.1})
func LogLoss(actual, predicted []float64, opts ...Option) ([]float64, error) {
	if err := checkDims("LogLoss", actual, predicted); err != nil {
		return nil, err
	}
	a, p := filterPairs(actual, predicted, newOptions(opts).missingOnly())

	out := make([]float64, len(a))
	for i := range a {
		out[i] = logLossAt(a[i], p[i])
	}
	return out, nil
}

func logLossAt(y, p float64) float64 {
	// Unfiltered missing inputs stay missing.
	if math.IsNaN(y) || math.IsNaN(p) {
		return math.NaN()
	}
	if y == p {
		return 0
	}
	v := -(y*math.Log(p) + (1-y)*math.Log(1-p))
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}
