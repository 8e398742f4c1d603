package chrono

import (
	"errors"
	"fmt"
)

// Domain errors for chronoamperometry operations.
var (
	// ErrFileNotFound indicates the input path does not resolve to a readable file.
	ErrFileNotFound = errors.New("chrono: data file not found")

	// ErrMalformedData indicates a data line that is not two numeric fields.
	ErrMalformedData = errors.New("chrono: malformed data")

	// ErrEmptyDataset indicates a dataset with no samples.
	ErrEmptyDataset = errors.New("chrono: empty dataset")

	// ErrInvalidInterval indicates an interval with min >= max or outside the data range.
	ErrInvalidInterval = errors.New("chrono: invalid interval")

	// ErrNonPositiveValue indicates a zero or negative entry where a logarithm or sqrt(1/t) is taken.
	ErrNonPositiveValue = errors.New("chrono: non-positive value")

	// ErrDegenerateFit indicates a line fit with fewer than two distinct abscissae.
	ErrDegenerateFit = errors.New("chrono: degenerate fit")

	// ErrDegenerateParameters indicates physical parameters that make a formula undefined.
	ErrDegenerateParameters = errors.New("chrono: degenerate parameters")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrFileNotFound, "FileNotFound"},
	{ErrMalformedData, "MalformedData"},
	{ErrEmptyDataset, "EmptyDataset"},
	{ErrInvalidInterval, "InvalidInterval"},
	{ErrNonPositiveValue, "NonPositiveValue"},
	{ErrDegenerateFit, "DegenerateFit"},
	{ErrDegenerateParameters, "DegenerateParameters"},
}

// Kind returns the taxonomy name of err, or "" if err is not a domain error.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

// ParseError wraps a data error with its position in the input.
type ParseError struct {
	Line    int
	Field   string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Field, e.Wrapped)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// ValueError wraps an error with the offending sample.
type ValueError struct {
	Series  string
	Index   int
	Value   float64
	Wrapped error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s[%d] = %g: %v", e.Series, e.Index, e.Value, e.Wrapped)
}

func (e *ValueError) Unwrap() error {
	return e.Wrapped
}
