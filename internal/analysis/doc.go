// Package analysis extracts a diffusion coefficient from a measured current
// transient.
//
// A working series is cut out of the raw data with [ApplyInterval], after
// [ValidateInterval] has checked it against the recorded range. [Regress]
// then fits ln I against ln t by ordinary least squares and inverts the
// Cottrell intercept:
//
//	ln I = ln(n·F·S·C·sqrt(D/π)) - 0.5·ln t
//	D    = π·(exp(b)/(n·F·S·C))²
//
// A slope far from -0.5 means the transient is not diffusion limited over the
// chosen interval; the slope is reported unchanged so callers can judge.
package analysis
