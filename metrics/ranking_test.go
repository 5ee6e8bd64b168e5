package metrics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezoic/evalmetrics/metrics"
	evalErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// bruteForceAUC compares every positive/negative pair directly, counting
// ties as half a win.
func bruteForceAUC(actual, predicted []float64) float64 {
	var wins, pairs float64
	for i := range actual {
		if actual[i] != 1 {
			continue
		}
		for j := range actual {
			if actual[j] == 1 {
				continue
			}
			pairs++
			switch {
			case predicted[i] > predicted[j]:
				wins++
			case predicted[i] == predicted[j]:
				wins += 0.5
			}
		}
	}
	return wins / pairs
}

func TestAUC(t *testing.T) {
	actual := []float64{1, 1, 1, 0, 0, 0}
	predicted := []float64{0.9, 0.8, 0.4, 0.5, 0.3, 0.2}

	auc, err := metrics.AUC(actual, predicted)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/9.0, auc, epsilon)
	assert.InDelta(t, bruteForceAUC(actual, predicted), auc, epsilon)
}

func TestAUC_MatchesBruteForceWithTies(t *testing.T) {
	actual := []float64{1, 0, 1, 0, 1, 0, 0, 1}
	predicted := []float64{0.7, 0.7, 0.9, 0.1, 0.3, 0.3, 0.2, 0.3}

	auc, err := metrics.AUC(actual, predicted)
	require.NoError(t, err)
	assert.InDelta(t, bruteForceAUC(actual, predicted), auc, epsilon)
}

func TestAUC_PerfectAndInverted(t *testing.T) {
	actual := []float64{0, 0, 1, 1}

	auc, err := metrics.AUC(actual, []float64{0.1, 0.2, 0.8, 0.9})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, auc, epsilon)

	auc, err = metrics.AUC(actual, []float64{0.9, 0.8, 0.2, 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, auc, epsilon)
}

func TestAUC_RemoveMissingFiltersRanksAndCounts(t *testing.T) {
	// The NaN pairs are excluded from ranking as well as from the counts.
	actual := []float64{1, 0, math.NaN(), 1, 0}
	predicted := []float64{0.9, 0.2, 0.99, math.NaN(), 0.4}

	auc, err := metrics.AUC(actual, predicted, metrics.WithRemoveMissing())
	require.NoError(t, err)

	want := bruteForceAUC([]float64{1, 0, 0}, []float64{0.9, 0.2, 0.4})
	assert.InDelta(t, want, auc, epsilon)
}

func TestAUC_SingleClassWarnsAndReturnsNaN(t *testing.T) {
	var warned error
	evalErrors.SetWarningHandler(func(w error) { warned = w })
	defer evalErrors.SetWarningHandler(func(error) {})

	auc, err := metrics.AUC([]float64{1, 1, 1}, []float64{0.1, 0.5, 0.9})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(auc))

	require.Error(t, warned)
	var umw *evalErrors.UndefinedMetricWarning
	require.True(t, evalErrors.As(warned, &umw))
	assert.Equal(t, "AUC", umw.Metric)
}
