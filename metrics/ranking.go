package metrics

import (
	"math"
	"sort"

	evalErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// AUC calculates the Area Under the ROC Curve for binary classification.
//
// The AUC is the probability that a randomly chosen positive instance is
// scored higher than a randomly chosen negative instance. It is computed
// from the Mann-Whitney rank-sum: each predicted score is assigned its
// fractional rank (ties share the average rank of the tie group), the ranks
// of the positive-labeled positions are summed, and
//
//	AUC = (rankSum - nPos·(nPos+1)/2) / (nPos·nNeg)
//
// AUC values range from 0 to 1, where:
//   - 0.5 indicates random guessing
//   - 1.0 indicates perfect classification
//   - 0.0 indicates perfectly wrong classification
//
// With WithRemoveMissing, pairs containing NaN are dropped before ranking,
// so the ranks and the positive/negative counts always cover the same
// positions. When only one class is present the ratio is 0/0: an
// UndefinedMetricWarning is emitted and NaN returned.
//
// Parameters:
//   - actual: Ground truth binary labels (1 is the positive class; anything
//     else counts as negative)
//   - predicted: Predicted probabilities or decision scores
//   - opts: WithRemoveMissing
//
// Returns:
//   - float64: The AUC score
//   - error: non-nil only when the inputs have different lengths
//
// Example:
//
//	actual := []float64{0, 0, 1, 1}
//	predicted := []float64{0.1, 0.4, 0.35, 0.8}
//	auc, err := metrics.AUC(actual, predicted)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("AUC: %f\n", auc) // Output: AUC: 0.75
func AUC(actual, predicted []float64, opts ...Option) (float64, error) {
	if err := checkDims("AUC", actual, predicted); err != nil {
		return 0, err
	}
	a, p := filterPairs(actual, predicted, newOptions(opts).missingOnly())

	ranks := midRanks(p)

	var nPos, nNeg, rankSum float64
	for i := range a {
		if a[i] == 1 {
			nPos++
			rankSum += ranks[i]
		} else {
			nNeg++
		}
	}

	if nPos == 0 || nNeg == 0 {
		evalErrors.Warn(evalErrors.NewUndefinedMetricWarning(
			"AUC",
			"only one class present in actual",
			math.NaN(),
		))
		return math.NaN(), nil
	}

	return (rankSum - nPos*(nPos+1)/2) / (nPos * nNeg), nil
}

// midRanks assigns each value its 1-based rank in ascending order, with tied
// values sharing the average rank of their tie group.
func midRanks(x []float64) []float64 {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return x[idx[i]] < x[idx[j]]
	})

	ranks := make([]float64, len(x))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && x[idx[j+1]] == x[idx[i]] {
			j++
		}
		// Positions i..j (0-based) hold the same value; their shared rank
		// is the average of the 1-based positions.
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}
