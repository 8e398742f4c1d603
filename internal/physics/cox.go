package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/redoxlab/internal/chrono"
)

// belowOne is the largest float64 under 1. math.Erf rounds to 1 beyond z ≈ 5.9
// while the diffusion profile never reaches bulk concentration at finite x.
var belowOne = math.Nextafter(1, 0)

// ConcentrationProfile returns C(x,t)/C* = erf(x/(2·sqrt(D·t))) at each position.
func ConcentrationProfile(d, t float64, positions []float64) ([]float64, error) {
	if !(d > 0) || !(t > 0) {
		return nil, fmt.Errorf("%w: D and t must be positive, got D=%g t=%g", chrono.ErrDegenerateParameters, d, t)
	}
	constant := 2 * math.Sqrt(d*t)
	if constant == 0 || math.IsInf(constant, 0) {
		return nil, fmt.Errorf("%w: 2·sqrt(D·t) = %g", chrono.ErrDegenerateParameters, constant)
	}

	profile := make([]float64, len(positions))
	for i, x := range positions {
		c := math.Erf(x / constant)
		if c > belowOne {
			c = belowOne
		}
		profile[i] = c
	}
	return profile, nil
}

// DiffusionLayerThickness is the Nernst layer estimate sqrt(π·D·t), in cm.
func DiffusionLayerThickness(d, t float64) (float64, error) {
	if !(d > 0) || !(t > 0) {
		return 0, fmt.Errorf("%w: D and t must be positive, got D=%g t=%g", chrono.ErrDegenerateParameters, d, t)
	}
	return math.Sqrt(math.Pi * d * t), nil
}
