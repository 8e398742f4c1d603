package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/redoxlab/internal/chrono"
)

const (
	Delimiter = ','
	Comment   = '#'
)

const byteOrderMark = "\ufeff"

// ReadFile parses the data file at path.
func ReadFile(path string) (chrono.TimeSeries, error) {
	info, err := os.Stat(path)
	if err != nil {
		return chrono.TimeSeries{}, fmt.Errorf("%w: %w", chrono.ErrFileNotFound, err)
	}
	if info.IsDir() {
		return chrono.TimeSeries{}, fmt.Errorf("%w: %s is a directory", chrono.ErrFileNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return chrono.TimeSeries{}, fmt.Errorf("%w: %w", chrono.ErrFileNotFound, err)
	}
	defer file.Close()

	ts, err := Read(file)
	if err != nil {
		return chrono.TimeSeries{}, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}

// Read parses samples from r.
func Read(r io.Reader) (chrono.TimeSeries, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.Comment = Comment
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var times, values []float64
	first, start := true, true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return chrono.TimeSeries{}, &chrono.ParseError{Line: pe.Line, Wrapped: fmt.Errorf("%w: %v", chrono.ErrMalformedData, pe.Err)}
			}
			return chrono.TimeSeries{}, err
		}
		line, _ := reader.FieldPos(0)
		if start {
			start = false
			record[0] = strings.TrimPrefix(record[0], byteOrderMark)
		}
		lead := strings.TrimSpace(record[0])
		if len(record) == 1 && lead == "" {
			continue
		}
		// encoding/csv only skips comments at column 0
		if strings.HasPrefix(lead, string(Comment)) {
			continue
		}

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		if len(record) != 2 {
			return chrono.TimeSeries{}, &chrono.ParseError{
				Line:    line,
				Wrapped: fmt.Errorf("%w: expected 2 fields, got %d", chrono.ErrMalformedData, len(record)),
			}
		}

		t, err := parseField(record[0], line)
		if err != nil {
			return chrono.TimeSeries{}, err
		}
		v, err := parseField(record[1], line)
		if err != nil {
			return chrono.TimeSeries{}, err
		}

		times = append(times, t)
		values = append(values, v)
	}

	if len(times) == 0 {
		return chrono.TimeSeries{}, fmt.Errorf("%w: no data rows", chrono.ErrEmptyDataset)
	}

	return chrono.TimeSeries{Times: times, Values: values}, nil
}

func parseField(field string, line int) (float64, error) {
	s := strings.TrimSpace(field)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &chrono.ParseError{Line: line, Field: s, Wrapped: fmt.Errorf("%w: not a number", chrono.ErrMalformedData)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &chrono.ParseError{Line: line, Field: s, Wrapped: fmt.Errorf("%w: not a finite number", chrono.ErrMalformedData)}
	}
	return v, nil
}

func isHeader(record []string) bool {
	if len(record) != 2 {
		return false
	}
	for _, f := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err == nil {
			return false
		}
	}
	return true
}
