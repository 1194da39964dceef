package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// traceEnabled switches per-iteration logging on for every subcommand.
var traceEnabled bool

var rootCmd = &cobra.Command{
	Use:   "ceesolve",
	Short: "Numerical-methods course solvers: bisection, secant, direct linear solve",
	Long: `ceesolve exposes the Computing-in-CEE solver library on the command line.

Root finding takes f(x) as a govaluate expression (variable x; sin, cos,
tan, exp, log, sqrt, abs and pow(base, power) are available). Linear
systems are read from a YAML file with keys "a" (matrix rows) and "b"
(right-hand side).`,
	SilenceUsage: true,
}

// Execute runs the CLI and exits non-zero on any error, including a
// solver that failed to converge.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&traceEnabled, "trace", false,
		"log every solver iteration")
}

// newLogger returns a development logger when tracing is requested and
// a no-op logger otherwise, so solver observers can log unconditionally.
func newLogger() *zap.Logger {
	if !traceEnabled {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
