package metrics_test

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ezoic/evalmetrics/metrics"
)

// ExampleMSE demonstrates Mean Squared Error calculation
func ExampleMSE() {
	actual := []float64{1.0, 2.0, 3.0, 4.0}
	predicted := []float64{2.0, 3.0, 4.0, 4.0}

	mse, err := metrics.MSE(actual, predicted)
	if err != nil {
		slog.Error("Example failed", "error", err)
		return
	}

	fmt.Printf("MSE: %.2f\n", mse)

	// Output: MSE: 0.75
}

// ExampleRMSE demonstrates Root Mean Squared Error calculation
func ExampleRMSE() {
	actual := []float64{1.0, 2.0, 3.0, 4.0}
	predicted := []float64{1.0, 2.0, 3.0, 5.0}

	rmse, err := metrics.RMSE(actual, predicted)
	if err != nil {
		slog.Error("Example failed", "error", err)
		return
	}

	fmt.Printf("RMSE: %.2f\n", rmse)

	// Output: RMSE: 0.50
}

// ExampleSE demonstrates elementwise squared error
func ExampleSE() {
	se, err := metrics.SE([]float64{9, 10, 11}, []float64{11, 10, 9})
	if err != nil {
		slog.Error("Example failed", "error", err)
		return
	}

	fmt.Println(se)

	// Output: [4 0 4]
}

// ExampleMAPE demonstrates Mean Absolute Percentage Error calculation
func ExampleMAPE() {
	actual := []float64{1.0, 2.0, 3.0}
	predicted := []float64{2.0, 3.0, 4.0}

	mape, err := metrics.MAPE(actual, predicted)
	if err != nil {
		slog.Error("Example failed", "error", err)
		return
	}

	fmt.Printf("MAPE: %.4f\n", mape)

	// Output: MAPE: 0.6111
}

// ExampleSMAPE demonstrates the symmetry of SMAPE
func ExampleSMAPE() {
	forward, err := metrics.SMAPE([]float64{1}, []float64{-1})
	if err != nil {
		slog.Error("Example failed", "error", err)
		return
	}
	backward, err := metrics.SMAPE([]float64{-1}, []float64{1})
	if err != nil {
		slog.Error("Example failed", "error", err)
		return
	}

	fmt.Printf("SMAPE: %.1f == %.1f\n", forward, backward)

	// Output: SMAPE: 2.0 == 2.0
}

// ExampleExplainedVariation demonstrates the coefficient of determination
func ExampleExplainedVariation() {
	actual := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	predicted := []float64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	ev, err := metrics.ExplainedVariation(actual, predicted)
	if err != nil {
		slog.Error("Example failed", "error", err)
		return
	}

	fmt.Printf("Explained Variation: %.1f\n", ev)

	// Output: Explained Variation: 0.6
}

// ExampleAUC demonstrates ROC AUC from rank statistics
func ExampleAUC() {
	actual := []float64{0, 0, 1, 1}
	predicted := []float64{0.1, 0.4, 0.35, 0.8}

	auc, err := metrics.AUC(actual, predicted)
	if err != nil {
		slog.Error("Example failed", "error", err)
		return
	}

	fmt.Printf("AUC: %.2f\n", auc)

	// Output: AUC: 0.75
}

// ExampleFBetaScore demonstrates the F1 score (beta = 1)
func ExampleFBetaScore() {
	actual := []float64{1, 1, 0, 0, 1}
	predicted := []float64{1, 0, 1, 1, 1}

	f1, err := metrics.FBetaScore(actual, predicted)
	if err != nil {
		slog.Error("Example failed", "error", err)
		return
	}

	fmt.Printf("F1: %.4f\n", f1)

	// Output: F1: 0.5714
}

// ExampleMSE_removeMissing demonstrates missing-value removal
func ExampleMSE_removeMissing() {
	actual := []float64{1, math.NaN(), 3, 4}
	predicted := []float64{2, 3, math.NaN(), 4}

	mse, err := metrics.MSE(actual, predicted, metrics.WithRemoveMissing())
	if err != nil {
		slog.Error("Example failed", "error", err)
		return
	}

	fmt.Printf("MSE: %.2f\n", mse)

	// Output: MSE: 0.50
}
