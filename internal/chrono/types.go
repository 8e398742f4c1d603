package chrono

import (
	"fmt"
	"math"
)

// Faraday is the Faraday constant in C/mol.
const Faraday = 96485.0

type TimeSeries struct {
	Times  []float64
	Values []float64
}

// NewTimeSeries copies times and values into a new series.
func NewTimeSeries(times, values []float64) (TimeSeries, error) {
	if len(times) != len(values) {
		return TimeSeries{}, fmt.Errorf("%w: %d times for %d values", ErrMalformedData, len(times), len(values))
	}
	ts := TimeSeries{
		Times:  make([]float64, len(times)),
		Values: make([]float64, len(values)),
	}
	copy(ts.Times, times)
	copy(ts.Values, values)
	return ts, nil
}

func (s TimeSeries) Len() int {
	return len(s.Times)
}

// Clone copies both slices as they are, mismatched lengths included.
func (s TimeSeries) Clone() TimeSeries {
	return TimeSeries{
		Times:  append([]float64(nil), s.Times...),
		Values: append([]float64(nil), s.Values...),
	}
}

// TimeRange returns the smallest and largest time. Both are zero for an empty series.
func (s TimeSeries) TimeRange() (float64, float64) {
	return bounds(s.Times)
}

func (s TimeSeries) ValueRange() (float64, float64) {
	return bounds(s.Values)
}

func bounds(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

// PhysicalParameters describe one electrochemical cell.
type PhysicalParameters struct {
	N int     // electrons exchanged
	S float64 // electrode surface, cm²
	C float64 // bulk concentration, mol/cm³
	D float64 // diffusion coefficient, cm²/s
}

func (p PhysicalParameters) Validate() error {
	switch {
	case p.N <= 0:
		return fmt.Errorf("%w: n must be positive, got %d", ErrDegenerateParameters, p.N)
	case !(p.S > 0) || math.IsInf(p.S, 0):
		return fmt.Errorf("%w: S must be positive, got %g", ErrDegenerateParameters, p.S)
	case !(p.C >= 0) || math.IsInf(p.C, 0):
		return fmt.Errorf("%w: C must be non-negative, got %g", ErrDegenerateParameters, p.C)
	case !(p.D > 0) || math.IsInf(p.D, 0):
		return fmt.Errorf("%w: D must be positive, got %g", ErrDegenerateParameters, p.D)
	}
	return nil
}

// CurrentFactor is n·F·S·C, the prefactor shared by the Cottrell relation and its inverse.
func (p PhysicalParameters) CurrentFactor() float64 {
	return float64(p.N) * Faraday * p.S * p.C
}

// Interval is a closed time window [Min, Max].
type Interval struct {
	Min float64
	Max float64
}

func NewInterval(min, max float64) (Interval, error) {
	if !(min < max) {
		return Interval{}, fmt.Errorf("%w: min %g must be below max %g", ErrInvalidInterval, min, max)
	}
	return Interval{Min: min, Max: max}, nil
}

func (iv Interval) Contains(t float64) bool {
	return iv.Min <= t && t <= iv.Max
}

func (iv Interval) Width() float64 {
	return iv.Max - iv.Min
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Min, iv.Max)
}

// RegressionResult is produced once per regression call.
type RegressionResult struct {
	Slope     float64
	Intercept float64
	DerivedD  float64

	RSquared  float64
	Points    int
	LogTimes  []float64
	LogValues []float64
	Fitted    []float64
}
