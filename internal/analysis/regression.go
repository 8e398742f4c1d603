package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/redoxlab/internal/chrono"
)

// Line is a least-squares fit y = Intercept + Slope·x.
type Line struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

func (l Line) At(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// LogTransform applies the natural logarithm to every time and value.
// Any entry that is not strictly positive fails with [chrono.ErrNonPositiveValue].
func LogTransform(times, values []float64) ([]float64, []float64, error) {
	if len(times) != len(values) {
		return nil, nil, fmt.Errorf("%w: %d times for %d values", chrono.ErrMalformedData, len(times), len(values))
	}

	logT, err := logAll("time", times)
	if err != nil {
		return nil, nil, err
	}
	logV, err := logAll("current", values)
	if err != nil {
		return nil, nil, err
	}
	return logT, logV, nil
}

func logAll(name string, xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if !(x > 0) || math.IsInf(x, 1) {
			return nil, &chrono.ValueError{Series: name, Index: i, Value: x, Wrapped: chrono.ErrNonPositiveValue}
		}
		out[i] = math.Log(x)
	}
	return out, nil
}

// FitLine is an ordinary least-squares fit minimizing vertical residuals.
func FitLine(x, y []float64) (Line, error) {
	if len(x) != len(y) {
		return Line{}, fmt.Errorf("%w: %d abscissae for %d ordinates", chrono.ErrMalformedData, len(x), len(y))
	}
	if len(x) < 2 {
		return Line{}, fmt.Errorf("%w: need at least 2 points, got %d", chrono.ErrDegenerateFit, len(x))
	}

	distinct := false
	for _, xi := range x[1:] {
		if xi != x[0] {
			distinct = true
			break
		}
	}
	if !distinct {
		return Line{}, fmt.Errorf("%w: all %d points share x = %g", chrono.ErrDegenerateFit, len(x), x[0])
	}

	n := float64(len(x))
	var mx, my float64
	for i := range x {
		mx += x[i]
		my += y[i]
	}
	mx /= n
	my /= n

	var sxx, sxy, syy float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}
	if sxx == 0 {
		return Line{}, fmt.Errorf("%w: zero variance in x", chrono.ErrDegenerateFit)
	}

	slope := sxy / sxx
	r2 := 1.0
	if syy > 0 {
		r2 = min(sxy*sxy/(sxx*syy), 1)
	}

	return Line{
		Slope:     slope,
		Intercept: my - slope*mx,
		RSquared:  r2,
	}, nil
}

// DeriveD inverts the Cottrell intercept: D = π·(exp(intercept)/(n·F·S·C))².
func DeriveD(intercept float64, n int, s, c float64) (float64, error) {
	if n <= 0 || !(s > 0) || !(c > 0) {
		return 0, fmt.Errorf("%w: n, S and C must be positive, got n=%d S=%g C=%g", chrono.ErrDegenerateParameters, n, s, c)
	}

	ratio := math.Exp(intercept) / (float64(n) * chrono.Faraday * s * c)
	d := math.Pi * ratio * ratio
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("%w: intercept %g gives D = %g", chrono.ErrDegenerateParameters, intercept, d)
	}
	return d, nil
}

// Regress fits ln I against ln t and derives the experimental diffusion
// coefficient. The slope is reported as is; a Cottrell response gives -0.5.
func Regress(series chrono.TimeSeries, n int, s, c float64) (chrono.RegressionResult, error) {
	if series.Len() == 0 {
		return chrono.RegressionResult{}, chrono.ErrEmptyDataset
	}

	logT, logI, err := LogTransform(series.Times, series.Values)
	if err != nil {
		return chrono.RegressionResult{}, err
	}

	line, err := FitLine(logT, logI)
	if err != nil {
		return chrono.RegressionResult{}, err
	}

	d, err := DeriveD(line.Intercept, n, s, c)
	if err != nil {
		return chrono.RegressionResult{}, err
	}

	fitted := make([]float64, len(logT))
	for i, x := range logT {
		fitted[i] = line.At(x)
	}

	return chrono.RegressionResult{
		Slope:     line.Slope,
		Intercept: line.Intercept,
		DerivedD:  d,
		RSquared:  line.RSquared,
		Points:    len(logT),
		LogTimes:  logT,
		LogValues: logI,
		Fitted:    fitted,
	}, nil
}
