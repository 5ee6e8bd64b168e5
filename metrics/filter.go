package metrics

import (
	"math"

	evalErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// options holds the optional behavior shared by the metric functions.
// Each function documents which options it honors; the rest are ignored.
type options struct {
	removeMissing  bool
	dropZeroActual bool
	dropBothZero   bool
	beta           float64
}

// Option configures a metric computation.
type Option func(*options)

// WithRemoveMissing drops positions where either actual or predicted is NaN
// before computing. Without it, NaN inputs propagate through the arithmetic.
func WithRemoveMissing() Option {
	return func(o *options) {
		o.removeMissing = true
	}
}

// WithDropZeroActual additionally drops positions where actual == 0.
// Honored by APE, MAPE, and PercentBias.
func WithDropZeroActual() Option {
	return func(o *options) {
		o.dropZeroActual = true
	}
}

// WithDropBothZero additionally drops positions where both actual and
// predicted are 0. Honored by SMAPE.
func WithDropBothZero() Option {
	return func(o *options) {
		o.dropBothZero = true
	}
}

// WithBeta sets the precision/recall weighting for FBetaScore. Defaults to 1.
func WithBeta(beta float64) Option {
	return func(o *options) {
		o.beta = beta
	}
}

func newOptions(opts []Option) options {
	o := options{beta: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// missingOnly strips the zero-dropping flags, for metrics that honor only
// WithRemoveMissing.
func (o options) missingOnly() options {
	return options{removeMissing: o.removeMissing, beta: o.beta}
}

// checkDims rejects mismatched sequence lengths. Silently pairing elements
// of unequal sequences is never what a caller intends.
func checkDims(op string, actual, predicted []float64) error {
	if len(actual) != len(predicted) {
		return evalErrors.NewDimensionError(op, len(actual), len(predicted), 0)
	}
	return nil
}

// filterPairs applies the configured position filters once, up front,
// returning compacted copies. Callers never see their inputs mutated.
// With no filters set, the inputs are returned as-is.
func filterPairs(actual, predicted []float64, o options) ([]float64, []float64) {
	if !o.removeMissing && !o.dropZeroActual && !o.dropBothZero {
		return actual, predicted
	}
	a := make([]float64, 0, len(actual))
	p := make([]float64, 0, len(predicted))
	for i := range actual {
		if o.removeMissing && (math.IsNaN(actual[i]) || math.IsNaN(predicted[i])) {
			continue
		}
		if o.dropZeroActual && actual[i] == 0 {
			continue
		}
		if o.dropBothZero && actual[i] == 0 && predicted[i] == 0 {
			continue
		}
		a = append(a, actual[i])
		p = append(p, predicted[i])
	}
	return a, p
}
