// Package core defines the shared numeric primitives every solver in
// Computing-in-CEE builds on: the scalar callback type Func, the
// three-valued Sign test that drives bracketing decisions, and the
// IsFinite guard solvers use to fail fast on misbehaving callbacks.
//
// Design rules:
//   - core stays tiny and dependency-free; algorithm packages
//     (bisect, secant, linsolve) import core, never each other.
//   - A Func owns its parameters: fixed physical constants are captured
//     by the closure (see the problems package), so no solver ever
//     reads shared module-level state.
package core
