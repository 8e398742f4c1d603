package viz

import "github.com/san-kum/redoxlab/internal/chrono"

var hints = map[string]string{
	"FileNotFound":         "check the path; the data file could not be opened",
	"MalformedData":        "each data line must hold two comma-separated numbers: time, current",
	"EmptyDataset":         "no samples to work with; check the file or widen the interval",
	"InvalidInterval":      "choose tmin < tmax inside the recorded time range",
	"NonPositiveValue":     "the selection contains zero or negative times or currents; move tmin past the potential step",
	"DegenerateFit":        "the fit needs at least two distinct times; widen the interval",
	"DegenerateParameters": "check n, S, C and D; they must be positive and finite",
}

// ErrorMessage returns an actionable message for err followed by its detail.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	hint, ok := hints[chrono.Kind(err)]
	if !ok {
		return err.Error()
	}
	return hint + "\n  " + err.Error()
}
