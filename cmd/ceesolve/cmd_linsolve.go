package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hiter-joe/Computing-in-CEE/linsolve"
)

// systemFile is the YAML shape linsolve consumes:
//
//	a:
//	  - [8, 0, -3]
//	  - [-8, 13, 0]
//	  - [0, -13, 13]
//	b: [50, 100, 0]
type systemFile struct {
	A [][]float64 `yaml:"a"`
	B []float64   `yaml:"b"`
}

var linsolveCmd = &cobra.Command{
	Use:   "linsolve <system.yaml>",
	Short: "Solve a dense linear system a·x = b from a YAML file",
	Long: `Reads a YAML file with keys "a" (matrix rows) and "b" (right-hand side)
and solves the system by Gaussian elimination with scaled partial
pivoting. Prints the solution and the maximum residual component.`,
	Args: cobra.ExactArgs(1),
	RunE: runLinsolve,
}

func init() {
	rootCmd.AddCommand(linsolveCmd)
}

func runLinsolve(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var sys systemFile
	if err := yaml.Unmarshal(raw, &sys); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()
	logger.Info("system loaded",
		zap.String("file", args[0]),
		zap.Int("order", len(sys.A)))

	x, err := linsolve.Solve(sys.A, sys.B)
	if err != nil {
		return err
	}

	r, err := linsolve.Residual(sys.A, sys.B, x)
	if err != nil {
		return err
	}
	maxRes := 0.0
	for _, ri := range r {
		maxRes = math.Max(maxRes, math.Abs(ri))
	}

	for i, xi := range x {
		fmt.Fprintf(cmd.OutOrStdout(), "x[%d] = %.10g\n", i, xi)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "max residual = %.3g\n", maxRes)
	return nil
}
