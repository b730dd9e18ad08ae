// Package stats provides the summary statistics used by the estimators:
// arithmetic mean, population variance and population covariance.
//
// Empty input is a valid degenerate case and evaluates to 0 rather than NaN.
package stats

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/linreg/pkg/errors"
)

// Mean returns the arithmetic mean of values, or 0 when values is empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values) / float64(len(values))
}

// Variance returns the population variance of values (divisor n).
// It returns 0 for an empty slice.
func Variance(values []float64) float64 {
	_, variance := MeanVariance(values)
	return variance
}

// MeanVariance returns the mean and population variance in one call.
func MeanVariance(values []float64) (mean, variance float64) {
	n := len(values)
	if n == 0 {
		return 0, 0
	}

	mean = Mean(values)
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	return mean, variance / float64(n)
}

// Covariance returns the population covariance of x and y (divisor n).
// It returns 0 when both are empty and a LengthMismatchError when the
// lengths differ.
func Covariance(x, y []float64) (float64, error) {
	if err := errors.CheckSameLength("stats.Covariance", len(x), len(y)); err != nil {
		return 0, err
	}
	return covarianceMeans(x, y, Mean(x), Mean(y)), nil
}

// covarianceMeans assumes len(x) == len(y).
func covarianceMeans(x, y []float64, xMean, yMean float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}

	var cov float64
	for i := 0; i < n; i++ {
		cov += (x[i] - xMean) * (y[i] - yMean)
	}
	return cov / float64(n)
}
