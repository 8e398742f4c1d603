// Package physics provides the theoretical diffusion models.
//
// Both models describe planar semi-infinite diffusion after a potential step:
//
//   - Cottrell: current decay I(t) = n·F·S·C·sqrt(D/(π·t)), see [TheoreticalCurrent]
//   - Cox: normalized concentration C(x,t)/C* = erf(x/(2·sqrt(D·t))), see [ConcentrationProfile]
//
// # Time origin
//
// The Cottrell current diverges at t = 0. [TimeGrid] is a plain inclusive
// linear grid and may contain 0; [TheoreticalCurve] drops every leading
// sample with t <= 0 before evaluating, so a grid built from 0 with n points
// yields n-1 strictly positive samples. [TheoreticalCurrent] itself rejects
// non-positive times with [chrono.ErrNonPositiveValue].
//
//	curve, _ := physics.TheoreticalCurve(params, 0, 20, 1000)
//	// curve.Times[0] == 20.0/999
package physics
