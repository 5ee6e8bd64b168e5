package metrics

import (
	"gonum.org/v1/gonum/mat"

	evalErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// Matrix wrappers for callers holding gonum column vectors. Each extracts
// the single column into a []float64 and delegates to the slice function.

// MSEMatrix calculates MSE for column-vector (n×1) matrix inputs.
//
// Parameters:
//   - actual: True target values as an n×1 matrix
//   - predicted: Predicted values as an n×1 matrix
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: MSE value
//   - error: ValueError for nil/empty/non-column inputs, DimensionError on
//     mismatched lengths
//
// Example:
//
//	mse, err := metrics.MSEMatrix(actualMatrix, predictedMatrix)
func MSEMatrix(actual, predicted mat.Matrix, opts ...Option) (float64, error) {
	a, err := columnVector("MSEMatrix", actual)
	if err != nil {
		return 0, err
	}
	p, err := columnVector("MSEMatrix", predicted)
	if err != nil {
		return 0, err
	}
	return MSE(a, p, opts...)
}

// MAEMatrix calculates MAE for column-vector (n×1) matrix inputs.
//
// Parameters:
//   - actual: True target values as an n×1 matrix
//   - predicted: Predicted values as an n×1 matrix
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: MAE value
//   - error: ValueError for nil/empty/non-column inputs, DimensionError on
//     mismatched lengths
func MAEMatrix(actual, predicted mat.Matrix, opts ...Option) (float64, error) {
	a, err := columnVector("MAEMatrix", actual)
	if err != nil {
		return 0, err
	}
	p, err := columnVector("MAEMatrix", predicted)
	if err != nil {
		return 0, err
	}
	return MAE(a, p, opts...)
}

// AUCMatrix calculates AUC for column-vector (n×1) matrix inputs.
//
// Parameters:
//   - actual: Ground truth binary labels as an n×1 matrix
//   - predicted: Predicted scores as an n×1 matrix
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: The AUC score
//   - error: ValueError for nil/empty/non-column inputs, DimensionError on
//     mismatched lengths
func AUCMatrix(actual, predicted mat.Matrix, opts ...Option) (float64, error) {
	a, err := columnVector("AUCMatrix", actual)
	if err != nil {
		return 0, err
	}
	p, err := columnVector("AUCMatrix", predicted)
	if err != nil {
		return 0, err
	}
	return AUC(a, p, opts...)
}

// columnVector copies the single column of an n×1 matrix into a slice.
func columnVector(op string, m mat.Matrix) ([]float64, error) {
	if m == nil {
		return nil, evalErrors.NewValueError(op, "input matrix cannot be nil")
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, evalErrors.NewValueError(op, "input matrix cannot be empty")
	}
	if c != 1 {
		return nil, evalErrors.NewValueError(op, "must be a column vector (n×1 matrix)")
	}
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = m.At(i, 0)
	}
	return out, nil
}
