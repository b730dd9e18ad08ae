package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/YuminosukeSato/linreg/linear"
)

// report is everything the command prints for one fit.
type report struct {
	Solver      string    `json:"solver"`
	Samples     int       `json:"samples"`
	Intercept   float64   `json:"intercept"`
	Coefficient float64   `json:"coefficient"`
	Predictions []float64 `json:"predictions"`
	RMSE        float64   `json:"rmse"`
}

func buildReport(model *linear.LinearRegression, x, y []float64) (*report, error) {
	params, err := model.Params()
	if err != nil {
		return nil, err
	}
	predictions, err := model.PredictList(x)
	if err != nil {
		return nil, err
	}
	rmse, err := model.Evaluate(x, y)
	if err != nil {
		return nil, err
	}

	return &report{
		Solver:      model.Solver().Name(),
		Samples:     len(x),
		Intercept:   params.Intercept,
		Coefficient: params.Coefficient,
		Predictions: predictions,
		RMSE:        rmse,
	}, nil
}

func writeReport(w io.Writer, format string, rep *report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	preds := make([]string, len(rep.Predictions))
	for i, p := range rep.Predictions {
		preds[i] = strconv.FormatFloat(p, 'g', 6, 64)
	}

	_, err := fmt.Fprintf(w, "Solver:      %s\nSamples:     %d\nIntercept:   %.6g\nCoefficient: %.6g\nPredictions: [%s]\nRMSE:        %.6g\n",
		rep.Solver, rep.Samples, rep.Intercept, rep.Coefficient, strings.Join(preds, ", "), rep.RMSE)
	return err
}
