package analysis

import (
	"fmt"

	"github.com/san-kum/redoxlab/internal/chrono"
)

// DefaultMinIntervalWidth is the narrowest accepted working interval, in
// seconds. Narrower windows hold too few samples for a meaningful fit.
const DefaultMinIntervalWidth = 0.2

// Filter keeps the samples with tmin <= t <= tmax. The inputs are not modified.
// An interval containing no sample yields two empty slices and no error.
func Filter(times, values []float64, tmin, tmax float64) ([]float64, []float64, error) {
	if !(tmin < tmax) {
		return nil, nil, fmt.Errorf("%w: min %g must be below max %g", chrono.ErrInvalidInterval, tmin, tmax)
	}
	if len(times) != len(values) {
		return nil, nil, fmt.Errorf("%w: %d times for %d values", chrono.ErrMalformedData, len(times), len(values))
	}

	outT := make([]float64, 0, len(times))
	outV := make([]float64, 0, len(values))
	for i, t := range times {
		if tmin <= t && t <= tmax {
			outT = append(outT, t)
			outV = append(outV, values[i])
		}
	}
	return outT, outV, nil
}

// ApplyInterval derives the working series from raw. It fails with
// [chrono.ErrEmptyDataset] when no sample lies inside iv.
func ApplyInterval(raw chrono.TimeSeries, iv chrono.Interval) (chrono.TimeSeries, error) {
	times, values, err := Filter(raw.Times, raw.Values, iv.Min, iv.Max)
	if err != nil {
		return chrono.TimeSeries{}, err
	}
	if len(times) == 0 {
		return chrono.TimeSeries{}, fmt.Errorf("%w: no sample in %s", chrono.ErrEmptyDataset, iv)
	}
	return chrono.TimeSeries{Times: times, Values: values}, nil
}

// ValidateInterval checks iv against the time range of raw: both bounds must
// lie inside the data and the width must exceed minWidth.
func ValidateInterval(raw chrono.TimeSeries, iv chrono.Interval, minWidth float64) error {
	if raw.Len() == 0 {
		return chrono.ErrEmptyDataset
	}
	if !(iv.Min < iv.Max) {
		return fmt.Errorf("%w: min %g must be below max %g", chrono.ErrInvalidInterval, iv.Min, iv.Max)
	}

	lo, hi := raw.TimeRange()
	if iv.Min < lo || iv.Max > hi {
		return fmt.Errorf("%w: %s outside data range [%g, %g]", chrono.ErrInvalidInterval, iv, lo, hi)
	}
	if !(iv.Width() > minWidth) {
		return fmt.Errorf("%w: width %g must exceed %g", chrono.ErrInvalidInterval, iv.Width(), minWidth)
	}
	return nil
}
