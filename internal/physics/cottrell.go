package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/redoxlab/internal/chrono"
)

// TheoreticalCurrent evaluates the Cottrell current at every time in times.
// Every time must be strictly positive.
func TheoreticalCurrent(p chrono.PhysicalParameters, times []float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for i, t := range times {
		if !(t > 0) || math.IsInf(t, 0) {
			return nil, &chrono.ValueError{Series: "time", Index: i, Value: t, Wrapped: chrono.ErrNonPositiveValue}
		}
	}

	// I(t) = k / sqrt(t) with k = n·F·S·C·sqrt(D/π)
	k := p.CurrentFactor() * math.Sqrt(p.D/math.Pi)
	current := make([]float64, len(times))
	parallelFor(len(times), func(start, end int) {
		for i := start; i < end; i++ {
			current[i] = k / math.Sqrt(times[i])
		}
	})
	return current, nil
}

// TheoreticalCurve builds the Cottrell curve on a linear grid from start to
// stop. Leading grid points with t <= 0 are dropped.
func TheoreticalCurve(p chrono.PhysicalParameters, start, stop float64, pointCount int) (chrono.TimeSeries, error) {
	grid, err := TimeGrid(start, stop, pointCount)
	if err != nil {
		return chrono.TimeSeries{}, err
	}

	first := 0
	for first < len(grid) && grid[first] <= 0 {
		first++
	}
	times := grid[first:]
	if len(times) == 0 {
		return chrono.TimeSeries{}, fmt.Errorf("%w: grid [%g, %g] has no positive time", chrono.ErrEmptyDataset, start, stop)
	}

	current, err := TheoreticalCurrent(p, times)
	if err != nil {
		return chrono.TimeSeries{}, err
	}
	return chrono.TimeSeries{Times: times, Values: current}, nil
}

// CottrellIntercept is ln(n·F·S·C·sqrt(D/π)), the intercept of ln I against ln t.
func CottrellIntercept(p chrono.PhysicalParameters) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.C == 0 {
		return 0, fmt.Errorf("%w: concentration is zero, ln I is undefined", chrono.ErrDegenerateParameters)
	}
	return math.Log(p.CurrentFactor() * math.Sqrt(p.D/math.Pi)), nil
}
