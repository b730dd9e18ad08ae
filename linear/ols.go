package linear

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
	"github.com/YuminosukeSato/linreg/stats"
)

// OLS is the closed-form ordinary least squares solver:
//
//	coefficient = cov(x, y) / var(x)
//	intercept   = mean(y) - coefficient*mean(x)
//
// Empty input and constant x have no unique solution and fail with a
// DegenerateInputError instead of producing NaN or Inf.
type OLS struct{}

// Name implements Solver.
func (OLS) Name() string {
	return log.SolverOLS
}

// Solve implements Solver.
func (OLS) Solve(x, y []float64) (Params, error) {
	return FitOLS(x, y)
}

// FitOLS fits x and y in closed form.
func FitOLS(x, y []float64) (Params, error) {
	const op = "OLS.Solve"

	if err := errors.CheckSameLength(op, len(x), len(y)); err != nil {
		return Params{}, err
	}
	if len(x) == 0 {
		return Params{}, errors.NewDegenerateInputError(op, errors.ErrEmptyData)
	}

	// 丸め誤差で分散が 0 にならない定数列 (0.1, 0.1, 0.1 など) も弾く
	if floats.Min(x) == floats.Max(x) {
		return Params{}, errors.NewDegenerateInputError(op, errors.ErrZeroVariance)
	}

	xMean, xVar := stats.MeanVariance(x)
	if xVar == 0 {
		return Params{}, errors.NewDegenerateInputError(op, errors.ErrZeroVariance)
	}

	cov, err := stats.Covariance(x, y)
	if err != nil {
		return Params{}, err
	}

	coefficient := cov / xVar
	return Params{
		Intercept:   stats.Mean(y) - coefficient*xMean,
		Coefficient: coefficient,
	}, nil
}
