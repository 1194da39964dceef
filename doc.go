// Package cee is the Go home of the Computing-in-CEE numerical-methods
// course material: small, rigorously specified solvers for the handful
// of problem shapes a civil/environmental engineer meets first.
//
// 🚀 What is Computing-in-CEE?
//
//	A dependency-light library that brings together:
//		• Root finding: bisection on a sign-change bracket (bisect),
//		  the secant method from two guesses (secant)
//		• Linear systems: dense direct solve with scaled partial
//		  pivoting (linsolve)
//		• Expressions: textual f(x) compiled to callbacks (expr)
//		• Worked problems: beam deflection, Green-Ampt infiltration,
//		  reactor mixing as explicit parameter structs (problems)
//		• A CLI driver over all of the above (cmd/ceesolve)
//
// ✨ Why this shape?
//
//   - Honest convergence – non-convergence is a tagged result plus a
//     sentinel error, never a silent wrong answer
//   - Explicit parameters – every physical constant lives in a struct
//     the caller owns; no globals captured by closures
//   - Pure Go – no cgo; testify for tests, govaluate for expressions,
//     cobra/zap/yaml only in the CLI
//   - Observable – every solver exposes a per-iteration hook for the
//     convergence tables the course's notebooks print
//
// Under the hood, everything is organized as one package per method:
//
//	bisect/   — bracketing root finder (the course's workhorse)
//	secant/   — bracket-free, superlinear root finder
//	linsolve/ — Gaussian elimination for the mixing/reactor systems
//	expr/     — f(x) strings → core.Func
//	problems/ — the notebooks' parameter sets as structs
//	core/     — shared Func/Sign/IsFinite primitives
//
// Dive into each package's doc.go and example_test.go for worked
// scenarios, and examples/ for the notebook walkthroughs end to end.
//
//	go get github.com/hiter-joe/Computing-in-CEE
package cee
