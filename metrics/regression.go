// Package metrics provides error measures between target and predicted values.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// MSE は平均二乗誤差（Mean Squared Error）を計算する
//
// MSE = (1/n) * Σ(yTrue - yPred)²
func MSE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if err := errors.CheckSameLength("metrics.MSE", n, len(yPred)); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.NewValidationError("yTrue", errors.ErrEmptyData.Error(), n)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yPred[i] - yTrue[i]
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MSEVec computes MSE over gonum vectors.
func MSEVec(yTrue, yPred *mat.VecDense) (float64, error) {
	return MSE(rawVector(yTrue), rawVector(yPred))
}

// RMSEVec computes RMSE over gonum vectors.
func RMSEVec(yTrue, yPred *mat.VecDense) (float64, error) {
	return RMSE(rawVector(yTrue), rawVector(yPred))
}

// rawVector copies v into a contiguous slice; a zero VecDense yields nil.
func rawVector(v *mat.VecDense) []float64 {
	if v == nil || v.IsEmpty() {
		return nil
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
