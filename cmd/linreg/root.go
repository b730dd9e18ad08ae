package main

import (
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/linreg/linear"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
	"github.com/YuminosukeSato/linreg/visualize"
)

var version = "dev"

type options struct {
	x            []float64
	y            []float64
	solver       string
	epochs       int
	learningRate float64
	format       string
	plotPath     string
	logLevel     string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "linreg",
		Short: "Fit y = intercept + coefficient*x to paired samples",
		Long: `linreg fits a univariate linear model with ordinary least squares or
batch gradient descent, then prints the fitted parameters, the predictions
for the training x values and the root mean squared error.

Without --x and --y the built-in sample set x=[1..5], y=[1,3,2,3,5] is used.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&opts.x, "x", []float64{1, 2, 3, 4, 5}, "x values, comma separated")
	flags.Float64SliceVar(&opts.y, "y", []float64{1, 3, 2, 3, 5}, "y values, comma separated")
	flags.StringVar(&opts.solver, "solver", log.SolverOLS, "Estimation strategy: ols or gd")
	flags.IntVar(&opts.epochs, "epochs", 1000, "Gradient descent epochs")
	flags.Float64Var(&opts.learningRate, "learning-rate", 0.01, "Gradient descent learning rate")
	flags.StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")
	flags.StringVar(&opts.plotPath, "plot", "", "Write a chart of the samples and fitted line to this file (.png, .svg, .pdf)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	return cmd
}

func newSolver(opts *options) (linear.Solver, error) {
	switch opts.solver {
	case log.SolverOLS:
		return linear.OLS{}, nil
	case "gd", log.SolverGradientDescent:
		return linear.NewGradientDescent(opts.epochs, opts.learningRate), nil
	default:
		return nil, errors.NewValidationError("solver", "must be ols or gd", opts.solver)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	if _, err := log.Setup(opts.logLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}
	if opts.format != "text" && opts.format != "json" {
		return errors.NewValidationError("format", "must be text or json", opts.format)
	}

	solver, err := newSolver(opts)
	if err != nil {
		return err
	}

	model := linear.NewLinearRegression(linear.WithSolver(solver))
	if err := model.Fit(opts.x, opts.y); err != nil {
		return err
	}

	rep, err := buildReport(model, opts.x, opts.y)
	if err != nil {
		return err
	}

	if opts.plotPath != "" {
		params, err := model.Params()
		if err != nil {
			return err
		}
		chart, err := visualize.NewChart(opts.x, opts.y, params)
		if err != nil {
			return err
		}
		if err := chart.Save(opts.plotPath); err != nil {
			return err
		}
	}

	return writeReport(cmd.OutOrStdout(), opts.format, rep)
}

func execute() error {
	return newRootCommand().Execute()
}
