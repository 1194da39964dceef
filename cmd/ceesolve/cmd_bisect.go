package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hiter-joe/Computing-in-CEE/bisect"
	"github.com/hiter-joe/Computing-in-CEE/expr"
)

var bisectFlags struct {
	fn      string
	a, b    float64
	eps     float64
	maxIter int
}

var bisectCmd = &cobra.Command{
	Use:   "bisect",
	Short: "Find a root by interval halving on a sign-change bracket",
	Long: `Solves f(x) = 0 on [a, b] by bisection. The endpoints must bracket a
sign change; an interval without one is rejected rather than iterated.`,
	Args: cobra.NoArgs,
	RunE: runBisect,
}

func init() {
	bisectCmd.Flags().StringVar(&bisectFlags.fn, "func", "", "f(x) expression (required)")
	bisectCmd.Flags().Float64Var(&bisectFlags.a, "a", 0, "left bracket endpoint")
	bisectCmd.Flags().Float64Var(&bisectFlags.b, "b", 1, "right bracket endpoint")
	bisectCmd.Flags().Float64Var(&bisectFlags.eps, "eps", bisect.DefaultEpsilon,
		"relative-error threshold, percent")
	bisectCmd.Flags().IntVar(&bisectFlags.maxIter, "max-iter", bisect.DefaultMaxIterations,
		"iteration cap")
	_ = bisectCmd.MarkFlagRequired("func")

	rootCmd.AddCommand(bisectCmd)
}

func runBisect(cmd *cobra.Command, _ []string) error {
	f, err := expr.Compile(bisectFlags.fn)
	if err != nil {
		return err
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	opts := bisect.DefaultOptions()
	opts.Epsilon = bisectFlags.eps
	opts.MaxIterations = bisectFlags.maxIter
	opts.OnIteration = func(it bisect.Iteration) error {
		logger.Info("halving",
			zap.Int("k", it.K),
			zap.Float64("a", it.A),
			zap.Float64("b", it.B),
			zap.Float64("estimate", it.Estimate),
			zap.Float64("relerr_pct", it.RelErr))
		return nil
	}

	res, err := bisect.Find(f, bisectFlags.a, bisectFlags.b, &opts)
	if errors.Is(err, bisect.ErrMaxIterations) {
		fmt.Fprintf(cmd.OutOrStdout(),
			"did not converge after %d iterations; best estimate %.10g (relerr %.3g%%)\n",
			res.Iterations, res.Root, res.RelErr)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "root = %.10g (%d iterations, relerr %.3g%%)\n",
		res.Root, res.Iterations, res.RelErr)
	return nil
}
