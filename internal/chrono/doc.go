// Package chrono provides the core data model for chronoamperometry analysis.
//
// The package defines the values exchanged between the computation packages
// and whatever layer presents their results:
//
//   - [TimeSeries]: index-aligned time/value sequences
//   - [PhysicalParameters]: electrons exchanged, electrode area, concentration, diffusion coefficient
//   - [Interval]: closed time window used to derive a working dataset
//   - [RegressionResult]: log-log fit and the diffusion coefficient derived from it
//
// Every operation on these values returns a new value; raw datasets are never
// mutated, so an interval can be redefined any number of times without
// re-reading the source file.
//
// # Units
//
// Times are in seconds, currents in amperes, surface in cm², concentration in
// mol/cm³ and diffusion coefficients in cm²/s.
package chrono
