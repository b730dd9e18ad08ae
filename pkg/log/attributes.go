// Package log defines standard attribute keys for regression operations.
//
// Using these keys keeps log output consistent across packages. The keys
// follow a hierarchical naming convention (e.g., "model.name",
// "data.samples") to enable structured log analysis and filtering.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "LinearRegression"
	ModelNameKey = "model.name"

	// SolverKey identifies the estimation strategy used by a fit.
	// Examples: "ols", "gradient_descent"
	SolverKey = "model.solver"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "evaluate"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is logging.
	// Examples: "linear", "metrics", "visualize"
	ComponentKey = "ml.component"
)

// Data Shape
const (
	// SamplesKey indicates the number of (x, y) pairs.
	SamplesKey = "data.samples"
)

// Model Parameters and Metrics
const (
	// InterceptKey records the fitted intercept.
	InterceptKey = "model.intercept"

	// CoefficientKey records the fitted coefficient (slope).
	CoefficientKey = "model.coefficient"

	// LossKey records the mean squared training loss.
	LossKey = "metrics.loss"

	// RMSEKey records root mean squared error of an evaluation.
	RMSEKey = "metrics.rmse"

	// EpochKey records the number of gradient descent epochs.
	EpochKey = "training.epoch"

	// LearningRateKey records the learning rate for gradient descent.
	LearningRateKey = "hyperparams.learning_rate"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error Context
const (
	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Populated from cockroachdb/errors safe details by the error logging path.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationEvaluate = "evaluate"

	SolverOLS             = "ols"
	SolverGradientDescent = "gradient_descent"
)
