// Package problems carries the course's worked problem setups as
// explicit parameter structs, each producing the core.Func or linear
// system its solver consumes.
//
// Every physical constant lives in a struct field and is captured by
// the closure the struct builds — no module-level globals, no hidden
// state shared between examples. Validate reports unusable parameter
// sets before a solver ever runs.
//
// Problems:
//   - BeamDeflection — where along a uniformly loaded simply supported
//     beam does the deflection reach a prescribed offset? Root problem
//     for bisect.
//   - GreenAmpt — cumulative infiltration after t hours of ponding,
//     implicit in F. Root problem for secant.
//   - MixingReactors — steady-state tracer concentrations in a
//     three-reactor cascade with recycle. Linear system for linsolve.
package problems
