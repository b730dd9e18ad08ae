// Package linreg fits a straight line y = intercept + coefficient*x to paired
// samples and measures the fit with root mean squared error.
//
// Two estimators are provided: closed-form ordinary least squares and batch
// gradient descent. Both produce a linear.Params value, which a
// linear.LinearRegression model holds once fitted.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/linreg/linear"
//	)
//
//	func main() {
//	    x := []float64{1, 2, 3, 4, 5}
//	    y := []float64{1, 3, 2, 3, 5}
//
//	    model := linear.NewLinearRegression()
//	    if err := model.Fit(x, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    rmse, err := model.Evaluate(x, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("RMSE:", rmse) // 0.6928...
//	}
//
// Gradient descent is selected with an option:
//
//	model := linear.NewLinearRegression(linear.WithGradientDescent(10000, 0.01))
//
// # Packages
//
//   - stats: mean, population variance, population covariance
//   - linear: Params, OLS, GradientDescent, LinearRegression
//   - metrics: MSE and RMSE
//   - visualize: sample scatter plus fitted line charts (gonum/plot)
//   - core/model: estimator state and interfaces
//   - core/parallel: range fan-out for batch prediction
//   - pkg/errors: structured error kinds and warnings
//   - pkg/log: structured logging backed by zerolog
//
// # Errors
//
// Fit fails with a DegenerateInputError on empty data or constant x when
// using OLS, and with a LengthMismatchError when x and y differ in length.
// Predict, PredictList and Evaluate on an unfitted model fail with a
// NotFittedError. Gradient descent divergence is not an error; the returned
// parameters are simply non-finite and a warning is raised.
package linreg
