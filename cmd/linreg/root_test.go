package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	previous := log.GetProvider()
	t.Cleanup(func() {
		log.SetProvider(previous)
		errors.SetZerologWarnFunc(nil)
	})

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandDefaultText(t *testing.T) {
	out, _, err := runCommand(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Solver:      ols")
	assert.Contains(t, out, "Samples:     5")
	assert.Contains(t, out, "Intercept:   0.4")
	assert.Contains(t, out, "Coefficient: 0.8")
	assert.Contains(t, out, "Predictions: [1.2, 2, 2.8, 3.6, 4.4]")
	assert.Contains(t, out, "RMSE:        0.6928")
}

func TestRootCommandJSON(t *testing.T) {
	out, _, err := runCommand(t, "--format", "json", "--x", "1,2,3,4,5", "--y", "2,4,6,8,10")
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	assert.Equal(t, "ols", rep.Solver)
	assert.Equal(t, 5, rep.Samples)
	assert.InDelta(t, 0.0, rep.Intercept, 1e-9)
	assert.InDelta(t, 2.0, rep.Coefficient, 1e-9)
	assert.InDeltaSlice(t, []float64{2, 4, 6, 8, 10}, rep.Predictions, 1e-9)
	assert.InDelta(t, 0.0, rep.RMSE, 1e-9)
}

func TestRootCommandGradientDescent(t *testing.T) {
	out, _, err := runCommand(t, "-f", "json", "--solver", "gd", "--epochs", "10000", "--learning-rate", "0.01")
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	assert.Equal(t, log.SolverGradientDescent, rep.Solver)
	assert.InDelta(t, 0.4, rep.Intercept, 1e-6)
	assert.InDelta(t, 0.8, rep.Coefficient, 1e-6)
}

func TestRootCommandDebugLogging(t *testing.T) {
	_, stderr, err := runCommand(t, "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, stderr, "fit completed")
	assert.Contains(t, stderr, `"model.solver":"ols"`)
}

func TestRootCommandPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fit.png")

	_, _, err := runCommand(t, "--plot", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRootCommandErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, err error)
	}{
		{
			name: "unknown solver",
			args: []string{"--solver", "newton"},
			check: func(t *testing.T, err error) {
				var valErr *errors.ValidationError
				assert.True(t, errors.As(err, &valErr))
			},
		},
		{
			name: "unknown format",
			args: []string{"--format", "yaml"},
			check: func(t *testing.T, err error) {
				var valErr *errors.ValidationError
				assert.True(t, errors.As(err, &valErr))
			},
		},
		{
			name: "unknown log level",
			args: []string{"--log-level", "loud"},
			check: func(t *testing.T, err error) {
				var valErr *errors.ValidationError
				assert.True(t, errors.As(err, &valErr))
			},
		},
		{
			name: "constant x",
			args: []string{"--x", "2,2,2", "--y", "1,2,3"},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, errors.ErrZeroVariance))
			},
		},
		{
			name: "length mismatch",
			args: []string{"--x", "1,2,3", "--y", "1,2"},
			check: func(t *testing.T, err error) {
				var lenErr *errors.LengthMismatchError
				assert.True(t, errors.As(err, &lenErr))
			},
		},
		{
			name: "invalid learning rate",
			args: []string{"--solver", "gd", "--learning-rate", "-1"},
			check: func(t *testing.T, err error) {
				var valErr *errors.ValidationError
				assert.True(t, errors.As(err, &valErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCommand(t, tt.args...)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
