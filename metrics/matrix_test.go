package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ezoic/evalmetrics/metrics"
	evalErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

func TestMSEMatrix(t *testing.T) {
	actual := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	predicted := mat.NewDense(4, 1, []float64{2, 3, 4, 4})

	mse, err := metrics.MSEMatrix(actual, predicted)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, mse, epsilon)
}

func TestMAEMatrix(t *testing.T) {
	actual := mat.NewDense(3, 1, []float64{1, 2, 3})
	predicted := mat.NewDense(3, 1, []float64{2, 4, 3})

	mae, err := metrics.MAEMatrix(actual, predicted)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mae, epsilon)
}

func TestAUCMatrix(t *testing.T) {
	actual := mat.NewDense(4, 1, []float64{0, 0, 1, 1})
	predicted := mat.NewDense(4, 1, []float64{0.1, 0.4, 0.35, 0.8})

	auc, err := metrics.AUCMatrix(actual, predicted)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, auc, epsilon)
}

func TestMatrix_RejectsNonColumnInput(t *testing.T) {
	wide := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	col := mat.NewDense(2, 1, []float64{1, 2})

	_, err := metrics.MSEMatrix(wide, col)
	require.Error(t, err)

	var valErr *evalErrors.ValueError
	assert.True(t, evalErrors.As(err, &valErr))
}

func TestMatrix_RejectsNilInput(t *testing.T) {
	col := mat.NewDense(2, 1, []float64{1, 2})
	_, err := metrics.AUCMatrix(nil, col)
	require.Error(t, err)
}
