package linear

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linreg/core/model"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

func newFittedModel(t *testing.T, opts ...Option) *LinearRegression {
	t.Helper()
	lr := NewLinearRegression(opts...)
	require.NoError(t, lr.Fit(referenceX, referenceY))
	return lr
}

func TestLinearRegressionFit(t *testing.T) {
	lr := newFittedModel(t)

	assert.True(t, lr.IsFitted())
	assert.Equal(t, model.Fitted, lr.State())

	p, err := lr.Params()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, p.Intercept, 1e-5)
	assert.InDelta(t, 0.8, p.Coefficient, 1e-5)
	assert.Equal(t, log.SolverOLS, lr.Solver().Name())
}

func TestLinearRegressionPredict(t *testing.T) {
	lr := newFittedModel(t)

	want := []float64{1.2, 2.0, 2.8, 3.6, 4.4}
	for i, x := range referenceX {
		got, err := lr.Predict(x)
		require.NoError(t, err)
		assert.InDelta(t, want[i], got, 1e-5, "predict(%v)", x)
	}
}

func TestLinearRegressionPredictList(t *testing.T) {
	lr := newFittedModel(t)

	predictions, err := lr.PredictList(referenceX)
	require.NoError(t, err)
	require.Len(t, predictions, len(referenceX))

	want := []float64{1.2, 2.0, 2.8, 3.6, 4.4}
	assert.InDeltaSlice(t, want, predictions, 1e-5)

	// 順序が保たれること
	reversed, err := lr.PredictList([]float64{5, 4, 3, 2, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4.4, 3.6, 2.8, 2.0, 1.2}, reversed, 1e-5)

	empty, err := lr.PredictList([]float64{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPredictListParallelMatchesSequential(t *testing.T) {
	p := Params{Intercept: -1.5, Coefficient: 3.25}

	rng := rand.New(rand.NewPCG(42, 42))
	xs := make([]float64, parallelThreshold*5+3)
	for i := range xs {
		xs[i] = rng.Float64()*200 - 100
	}

	predictions := p.PredictList(xs)
	require.Len(t, predictions, len(xs))
	for i, x := range xs {
		if predictions[i] != p.Predict(x) {
			t.Fatalf("prediction %d = %v, want %v", i, predictions[i], p.Predict(x))
		}
	}
}

func TestLinearRegressionEvaluate(t *testing.T) {
	lr := newFittedModel(t)

	rmse, err := lr.Evaluate(referenceX, referenceY)
	require.NoError(t, err)
	assert.InDelta(t, 0.693, rmse, 1e-3)
}

func TestLinearRegressionEvaluateErrors(t *testing.T) {
	lr := newFittedModel(t)

	_, err := lr.Evaluate([]float64{1, 2}, []float64{1})
	var lenErr *errors.LengthMismatchError
	assert.True(t, errors.As(err, &lenErr))

	_, err = lr.Evaluate(nil, nil)
	var valErr *errors.ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestLinearRegressionNotFitted(t *testing.T) {
	lr := NewLinearRegression()

	assert.False(t, lr.IsFitted())
	assert.Equal(t, model.NotFitted, lr.State())

	tests := []struct {
		name string
		call func() error
	}{
		{name: "Predict", call: func() error { _, err := lr.Predict(1); return err }},
		{name: "PredictList", call: func() error { _, err := lr.PredictList(referenceX); return err }},
		{name: "Evaluate", call: func() error { _, err := lr.Evaluate(referenceX, referenceY); return err }},
		{name: "Params", call: func() error { _, err := lr.Params(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)

			var notFitted *errors.NotFittedError
			require.True(t, errors.As(err, &notFitted))
			assert.Equal(t, tt.name, notFitted.Method)
		})
	}

	// NotFitted はその呼び出しだけの失敗で、後から学習できる
	require.NoError(t, lr.Fit(referenceX, referenceY))
	_, err := lr.Predict(1)
	assert.NoError(t, err)
}

func TestLinearRegressionRefitReplacesParams(t *testing.T) {
	lr := newFittedModel(t)

	require.NoError(t, lr.Fit([]float64{1, 2, 3}, []float64{2, 4, 6}))
	p, err := lr.Params()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p.Intercept, 1e-9)
	assert.InDelta(t, 2.0, p.Coefficient, 1e-9)
}

func TestLinearRegressionFailedFitKeepsState(t *testing.T) {
	t.Run("unfit model stays unfit", func(t *testing.T) {
		lr := NewLinearRegression()
		err := lr.Fit(nil, nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
		assert.False(t, lr.IsFitted())
	})

	t.Run("fitted model keeps previous params", func(t *testing.T) {
		lr := newFittedModel(t)
		err := lr.Fit([]float64{4, 4, 4}, []float64{1, 2, 3})

		require.Error(t, err)
		var degErr *errors.DegenerateInputError
		assert.True(t, errors.As(err, &degErr))
		assert.True(t, errors.Is(err, errors.ErrZeroVariance))

		p, err := lr.Params()
		require.NoError(t, err)
		assert.InDelta(t, 0.4, p.Intercept, 1e-5)
		assert.InDelta(t, 0.8, p.Coefficient, 1e-5)
	})

	t.Run("length mismatch", func(t *testing.T) {
		lr := NewLinearRegression()
		err := lr.Fit([]float64{1, 2, 3}, []float64{1, 2})

		var lenErr *errors.LengthMismatchError
		assert.True(t, errors.As(err, &lenErr))
		assert.False(t, lr.IsFitted())
	})
}

func TestLinearRegressionWithGradientDescent(t *testing.T) {
	lr := newFittedModel(t, WithGradientDescent(10000, 0.01))

	p, err := lr.Params()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, p.Intercept, 1e-6)
	assert.InDelta(t, 0.8, p.Coefficient, 1e-6)
	assert.Equal(t, log.SolverGradientDescent, lr.Solver().Name())

	rmse, err := lr.Evaluate(referenceX, referenceY)
	require.NoError(t, err)
	assert.InDelta(t, 0.693, rmse, 1e-3)
}

func TestLinearRegressionNilSolverKeepsOLS(t *testing.T) {
	lr := NewLinearRegression(WithSolver(nil))
	require.NotNil(t, lr.Solver())
	assert.Equal(t, log.SolverOLS, lr.Solver().Name())

	require.NoError(t, lr.Fit(referenceX, referenceY))
	p, err := lr.Params()
	require.NoError(t, err)
	assert.InDelta(t, 0.8, p.Coefficient, 1e-5)

	gd := NewLinearRegression(WithGradientDescent(10, 0.01), WithSolver(nil))
	assert.Equal(t, log.SolverGradientDescent, gd.Solver().Name())
}

func TestLinearRegressionGradientDescentAcceptsEmptyData(t *testing.T) {
	lr := NewLinearRegression(WithSolver(NewGradientDescent(10, 0.1)))
	require.NoError(t, lr.Fit(nil, nil))

	got, err := lr.Predict(3)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestLinearRegressionLogging(t *testing.T) {
	testLogger, _ := log.NewTestLogger(log.LevelDebug)
	lr := newFittedModel(t, WithLogger(testLogger))

	_, err := lr.Evaluate(referenceX, referenceY)
	require.NoError(t, err)

	assert.True(t, testLogger.ContainsMessage("fit completed"))
	assert.True(t, testLogger.ContainsField(log.ModelNameKey, "LinearRegression"))
	assert.True(t, testLogger.ContainsField(log.SolverKey, log.SolverOLS))
	assert.True(t, testLogger.ContainsField(log.OperationKey, log.OperationEvaluate))
	assert.True(t, testLogger.ContainsField(log.SamplesKey, 5.0))
}

func TestParamsString(t *testing.T) {
	assert.Equal(t, "y = 0.4 + 0.8*x", Params{Intercept: 0.4, Coefficient: 0.8}.String())
}
