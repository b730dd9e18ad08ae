package linear

import (
	"time"

	"github.com/YuminosukeSato/linreg/core/model"
	"github.com/YuminosukeSato/linreg/metrics"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

const modelName = "LinearRegression"

var _ model.Regressor = (*LinearRegression)(nil)

// LinearRegression は単回帰モデル y = intercept + coefficient*x
//
// 学習前 (NotFitted) の Predict / PredictList / Evaluate は NotFittedError を返す。
// 内部でロックを取らないため、複数ゴルーチンから使う場合は Fit と予測を呼び出し側で直列化すること。
type LinearRegression struct {
	model.BaseEstimator // BaseEstimatorを埋め込み

	solver Solver
	logger log.Logger
	params Params
}

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{solver: OLS{}}
	for _, opt := range opts {
		opt(lr)
	}
	if lr.logger == nil {
		lr.logger = log.GetLoggerWithName("linear")
	}
	lr.logger = lr.logger.With(log.ModelNameKey, modelName)
	return lr
}

// Fit はモデルを訓練データで学習させる
// 以前の学習結果は破棄される。失敗した場合は状態を変更しない。
func (lr *LinearRegression) Fit(x, y []float64) error {
	start := time.Now()

	p, err := lr.solver.Solve(x, y)
	if err != nil {
		return errors.Wrapf(err, "%s.Fit", modelName)
	}

	lr.params = p
	lr.SetFitted()

	lr.logger.Debug("fit completed",
		log.OperationKey, log.OperationFit,
		log.SolverKey, lr.solver.Name(),
		log.SamplesKey, len(x),
		log.InterceptKey, p.Intercept,
		log.CoefficientKey, p.Coefficient,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Params returns the fitted parameter pair.
func (lr *LinearRegression) Params() (Params, error) {
	if !lr.IsFitted() {
		return Params{}, errors.NewNotFittedError(modelName, "Params")
	}
	return lr.params, nil
}

// Solver returns the configured estimation strategy.
func (lr *LinearRegression) Solver() Solver {
	return lr.solver
}

// Predict は単一の入力に対する予測を行う
func (lr *LinearRegression) Predict(x float64) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError(modelName, "Predict")
	}
	return lr.params.Predict(x), nil
}

// PredictList は入力列の各要素に対する予測を行う
func (lr *LinearRegression) PredictList(xs []float64) ([]float64, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError(modelName, "PredictList")
	}
	return lr.params.PredictList(xs), nil
}

// Evaluate はテストデータに対する RMSE を計算する
func (lr *LinearRegression) Evaluate(xTest, yTest []float64) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError(modelName, "Evaluate")
	}

	predictions := lr.params.PredictList(xTest)
	rmse, err := metrics.RMSE(yTest, predictions)
	if err != nil {
		return 0, errors.Wrapf(err, "%s.Evaluate", modelName)
	}

	lr.logger.Debug("evaluate completed",
		log.OperationKey, log.OperationEvaluate,
		log.SamplesKey, len(xTest),
		log.RMSEKey, rmse,
	)
	return rmse, nil
}
