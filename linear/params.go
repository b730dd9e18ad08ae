package linear

import (
	"fmt"

	"github.com/YuminosukeSato/linreg/core/parallel"
)

// 並列処理の閾値（この値以下の要素数では逐次処理を使用）
const parallelThreshold = 1000

// Params is a fitted parameter pair of y = Intercept + Coefficient*x.
//
// A Params value is the fitted state of a model: it predicts without any
// failure mode, so code holding one cannot hit a not-fitted error.
type Params struct {
	Intercept   float64 `json:"intercept"`
	Coefficient float64 `json:"coefficient"`
}

// Predict returns Intercept + Coefficient*x.
func (p Params) Predict(x float64) float64 {
	return p.Intercept + p.Coefficient*x
}

// PredictList applies Predict to every element of xs, preserving order and length.
func (p Params) PredictList(xs []float64) []float64 {
	predictions := make([]float64, len(xs))
	parallel.ParallelizeWithThreshold(len(xs), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			predictions[i] = p.Predict(xs[i])
		}
	})
	return predictions
}

// String formats the pair as a line equation.
func (p Params) String() string {
	return fmt.Sprintf("y = %g + %g*x", p.Intercept, p.Coefficient)
}

// Solver estimates a parameter pair from paired samples.
type Solver interface {
	// Name identifies the estimation strategy in logs and reports.
	Name() string
	// Solve fits the samples. x and y must have the same length.
	Solve(x, y []float64) (Params, error)
}
