package model

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データ (x, y) で学習させる
	Fit(x, y []float64) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は単一の入力に対する予測を行う
	Predict(x float64) (float64, error)
	// PredictList は入力列の各要素に対する予測を順序を保って返す
	PredictList(xs []float64) ([]float64, error)
}

// Evaluator は予測誤差を評価できるモデルのインターフェース
type Evaluator interface {
	// Evaluate はテストデータに対するRMSEを返す
	Evaluate(xTest, yTest []float64) (float64, error)
}

// Regressor combines the interfaces of a univariate regression model.
type Regressor interface {
	Fitter
	Predictor
	Evaluator
	IsFitted() bool
}
