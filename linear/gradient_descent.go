package linear

import (
	"context"
	"math"
	"time"

	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

// GradientDescent fits y = b + m*x by batch gradient descent on the mean
// squared error, starting from (0, 0).
//
// Every epoch computes both gradients over the whole batch against the
// parameters at the start of the epoch and then updates them:
//
//	b_gradient = mean(-2 * (y - (m*x + b)))
//	m_gradient = mean(-2 * x * (y - (m*x + b)))
//
// Exactly Epochs steps are taken. There is no convergence check and no
// clamping; a learning rate that is too large diverges, which is reported
// as a warning but never as an error.
type GradientDescent struct {
	Epochs       int
	LearningRate float64
	// Logger receives the completion record. nil uses the global
	// "linear.gradient_descent" logger.
	Logger log.Logger
}

// NewGradientDescent returns a solver running epochs steps of size learningRate.
func NewGradientDescent(epochs int, learningRate float64) *GradientDescent {
	return &GradientDescent{Epochs: epochs, LearningRate: learningRate}
}

// FitGradientDescent is shorthand for NewGradientDescent(epochs, learningRate).Solve(x, y).
func FitGradientDescent(x, y []float64, epochs int, learningRate float64) (Params, error) {
	return NewGradientDescent(epochs, learningRate).Solve(x, y)
}

// Name implements Solver.
func (gd *GradientDescent) Name() string {
	return log.SolverGradientDescent
}

// Validate checks the hyperparameters.
func (gd *GradientDescent) Validate() error {
	if gd.Epochs < 0 {
		return errors.NewValidationError("epochs", "must be non-negative", gd.Epochs)
	}
	if !(gd.LearningRate > 0) || math.IsInf(gd.LearningRate, 0) {
		return errors.NewValidationError("learning_rate", "must be a finite positive number", gd.LearningRate)
	}
	return nil
}

// Solve implements Solver.
func (gd *GradientDescent) Solve(x, y []float64) (Params, error) {
	const op = "GradientDescent.Solve"

	if err := errors.CheckSameLength(op, len(x), len(y)); err != nil {
		return Params{}, err
	}
	if err := gd.Validate(); err != nil {
		return Params{}, err
	}

	start := time.Now()
	var p Params
	for epoch := 0; epoch < gd.Epochs; epoch++ {
		p = step(p, x, y, gd.LearningRate)
	}

	// 発散しても結果はそのまま返し、警告のみ出す
	loss := squaredLoss(p, x, y)
	if err := errors.CheckNumericalStability("gradient_descent", []float64{p.Intercept, p.Coefficient}, gd.Epochs); err != nil {
		errors.Warn(err)
	} else if err := errors.CheckScalar("gradient_descent.loss", loss, gd.Epochs); err != nil {
		errors.Warn(err)
	}

	logger := gd.Logger
	if logger == nil {
		logger = log.GetLoggerWithName("linear.gradient_descent")
	}
	if logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("gradient descent completed",
			log.SamplesKey, len(x),
			log.EpochKey, gd.Epochs,
			log.LearningRateKey, gd.LearningRate,
			log.InterceptKey, p.Intercept,
			log.CoefficientKey, p.Coefficient,
			log.LossKey, loss,
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}

	return p, nil
}

// step performs one batch update. An empty batch has zero gradients.
func step(p Params, x, y []float64, learningRate float64) Params {
	n := len(y)
	if n == 0 {
		return p
	}

	scale := 2 / float64(n)
	var bGradient, mGradient float64
	for i := 0; i < n; i++ {
		residual := y[i] - (p.Coefficient*x[i] + p.Intercept)
		bGradient += -scale * residual
		mGradient += -scale * x[i] * residual
	}

	return Params{
		Intercept:   p.Intercept - learningRate*bGradient,
		Coefficient: p.Coefficient - learningRate*mGradient,
	}
}

// squaredLoss is mean((y - (m*x + b))^2), 0 for an empty batch.
func squaredLoss(p Params, x, y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	var sum float64
	for i := range y {
		r := y[i] - p.Predict(x[i])
		sum += r * r
	}
	return sum / float64(len(y))
}
