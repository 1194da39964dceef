package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hiter-joe/Computing-in-CEE/expr"
	"github.com/hiter-joe/Computing-in-CEE/secant"
)

var secantFlags struct {
	fn      string
	x0, x1  float64
	eps     float64
	maxIter int
}

var secantCmd = &cobra.Command{
	Use:   "secant",
	Short: "Find a root by the secant method from two starting guesses",
	Long: `Solves f(x) = 0 by the secant method. No bracket is required — only two
distinct starting guesses — but convergence is not guaranteed for a poor
pair; prefer bisect when a sign-change interval is known.`,
	Args: cobra.NoArgs,
	RunE: runSecant,
}

func init() {
	secantCmd.Flags().StringVar(&secantFlags.fn, "func", "", "f(x) expression (required)")
	secantCmd.Flags().Float64Var(&secantFlags.x0, "x0", 0, "first starting guess")
	secantCmd.Flags().Float64Var(&secantFlags.x1, "x1", 1, "second starting guess")
	secantCmd.Flags().Float64Var(&secantFlags.eps, "eps", secant.DefaultEpsilon,
		"relative-error threshold, percent")
	secantCmd.Flags().IntVar(&secantFlags.maxIter, "max-iter", secant.DefaultMaxIterations,
		"iteration cap")
	_ = secantCmd.MarkFlagRequired("func")

	rootCmd.AddCommand(secantCmd)
}

func runSecant(cmd *cobra.Command, _ []string) error {
	f, err := expr.Compile(secantFlags.fn)
	if err != nil {
		return err
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	opts := secant.DefaultOptions()
	opts.Epsilon = secantFlags.eps
	opts.MaxIterations = secantFlags.maxIter
	opts.OnIteration = func(it secant.Iteration) error {
		logger.Info("secant step",
			zap.Int("k", it.K),
			zap.Float64("x2", it.X2),
			zap.Float64("f_x2", it.FX2),
			zap.Float64("relerr_pct", it.RelErr))
		return nil
	}

	res, err := secant.Find(f, secantFlags.x0, secantFlags.x1, &opts)
	if errors.Is(err, secant.ErrMaxIterations) || errors.Is(err, secant.ErrStalled) {
		fmt.Fprintf(cmd.OutOrStdout(),
			"did not converge after %d iterations; best estimate %.10g\n",
			res.Iterations, res.Root)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "root = %.10g (%d iterations, relerr %.3g%%)\n",
		res.Root, res.Iterations, res.RelErr)
	return nil
}
