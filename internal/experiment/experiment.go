// Package experiment is the entry point for presentation layers. It wires the
// reader, the models and the regression together; every call is stateless
// given its arguments.
package experiment

import (
	"fmt"

	"github.com/san-kum/redoxlab/internal/analysis"
	"github.com/san-kum/redoxlab/internal/chrono"
	"github.com/san-kum/redoxlab/internal/dataio"
	"github.com/san-kum/redoxlab/internal/physics"
)

// LoadExperimentalData reads the raw dataset at path.
func LoadExperimentalData(path string) (chrono.TimeSeries, error) {
	return dataio.ReadFile(path)
}

// BuildTheoreticalCurve returns the Cottrell curve on a grid from start to stop.
func BuildTheoreticalCurve(params chrono.PhysicalParameters, start, stop float64, pointCount int) (chrono.TimeSeries, error) {
	return physics.TheoreticalCurve(params, start, stop, pointCount)
}

// BuildConcentrationProfile returns the Cox profile at each position.
func BuildConcentrationProfile(d, t float64, positions []float64) ([]float64, error) {
	return physics.ConcentrationProfile(d, t, positions)
}

// ApplyInterval derives a working series from raw without modifying it.
func ApplyInterval(raw chrono.TimeSeries, tmin, tmax float64) (chrono.TimeSeries, error) {
	iv, err := chrono.NewInterval(tmin, tmax)
	if err != nil {
		return chrono.TimeSeries{}, err
	}
	return analysis.ApplyInterval(raw, iv)
}

// Regress estimates the diffusion coefficient from series.
func Regress(series chrono.TimeSeries, n int, s, c float64) (chrono.RegressionResult, error) {
	return analysis.Regress(series, n, s, c)
}

// Session pairs a raw dataset with the interval currently applied to it.
// Sessions are values: WithInterval returns a new one and the raw data is
// never modified, so a new file always starts from a fresh Session.
type Session struct {
	raw      chrono.TimeSeries
	working  chrono.TimeSeries
	interval chrono.Interval
	minWidth float64
}

// NewSession starts with the full time range of raw as working interval.
func NewSession(raw chrono.TimeSeries, minWidth float64) (Session, error) {
	if len(raw.Times) != len(raw.Values) {
		return Session{}, fmt.Errorf("%w: %d times for %d values", chrono.ErrMalformedData, len(raw.Times), len(raw.Values))
	}
	if raw.Len() == 0 {
		return Session{}, chrono.ErrEmptyDataset
	}
	if minWidth < 0 {
		return Session{}, fmt.Errorf("%w: minimum interval width %g is negative", chrono.ErrInvalidInterval, minWidth)
	}

	lo, hi := raw.TimeRange()
	return Session{
		raw:      raw.Clone(),
		working:  raw.Clone(),
		interval: chrono.Interval{Min: lo, Max: hi},
		minWidth: minWidth,
	}, nil
}

// WithInterval validates iv against the raw data and returns a session
// whose working series is restricted to it.
func (s Session) WithInterval(iv chrono.Interval) (Session, error) {
	if err := analysis.ValidateInterval(s.raw, iv, s.minWidth); err != nil {
		return Session{}, err
	}
	working, err := analysis.ApplyInterval(s.raw, iv)
	if err != nil {
		return Session{}, err
	}
	return Session{
		raw:      s.raw,
		working:  working,
		interval: iv,
		minWidth: s.minWidth,
	}, nil
}

func (s Session) Raw() chrono.TimeSeries {
	return s.raw.Clone()
}

func (s Session) Working() chrono.TimeSeries {
	return s.working.Clone()
}

func (s Session) Interval() chrono.Interval {
	return s.interval
}

// TheoreticalGrid spans the Cottrell curve from 0 to the last working time.
func (s Session) TheoreticalGrid(params chrono.PhysicalParameters, pointCount int) (chrono.TimeSeries, error) {
	_, hi := s.working.TimeRange()
	return physics.TheoreticalCurve(params, 0, hi, pointCount)
}

// Regress runs the log-log regression on the working series.
func (s Session) Regress(params chrono.PhysicalParameters) (chrono.RegressionResult, error) {
	return analysis.Regress(s.working, params.N, params.S, params.C)
}
