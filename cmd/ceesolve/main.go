// Command ceesolve drives the course's solvers from the terminal:
// root finding on textual f(x) expressions and direct solves of small
// linear systems described in YAML.
//
//	ceesolve bisect --func "pow(x,2) - 2" --a 0 --b 2
//	ceesolve secant --func "cos(x) - x" --x0 0 --x1 1
//	ceesolve linsolve reactors.yaml
//
// The --trace flag logs every solver iteration, mirroring the printed
// convergence tables in the notebooks.
package main

func main() {
	Execute()
}
