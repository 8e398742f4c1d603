package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/redoxlab/internal/chrono"
)

// Linspace returns count evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, count int) ([]float64, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: grid needs at least 2 points, got %d", chrono.ErrDegenerateParameters, count)
	}
	if !(stop > start) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("%w: grid stop %g must exceed start %g", chrono.ErrDegenerateParameters, stop, start)
	}

	step := (stop - start) / float64(count-1)
	grid := make([]float64, count)
	for i := range grid {
		grid[i] = start + float64(i)*step
	}
	grid[count-1] = stop
	return grid, nil
}

// TimeGrid is the x-axis of a theoretical current curve.
func TimeGrid(start, stop float64, pointCount int) ([]float64, error) {
	return Linspace(start, stop, pointCount)
}

// Positions is a spatial grid from the electrode surface (x = 0) to xmax, in cm.
func Positions(xmax float64, count int) ([]float64, error) {
	return Linspace(0, xmax, count)
}
