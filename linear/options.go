package linear

import "github.com/YuminosukeSato/linreg/pkg/log"

// Option is a function that configures LinearRegression
type Option func(*LinearRegression)

// WithSolver sets the estimation strategy used by Fit. The default is OLS;
// nil leaves the current solver in place.
func WithSolver(s Solver) Option {
	return func(lr *LinearRegression) {
		if s == nil {
			return
		}
		lr.solver = s
	}
}

// WithGradientDescent fits with batch gradient descent instead of OLS.
func WithGradientDescent(epochs int, learningRate float64) Option {
	return func(lr *LinearRegression) {
		lr.solver = NewGradientDescent(epochs, learningRate)
	}
}

// WithLogger sets the logger used for fit and evaluate records.
func WithLogger(l log.Logger) Option {
	return func(lr *LinearRegression) {
		lr.logger = l
	}
}
