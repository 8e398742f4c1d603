package dataio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes equal-length columns under header, one row per index.
func WriteCSV(w io.Writer, header []string, columns ...[]float64) error {
	if len(header) != len(columns) {
		return fmt.Errorf("header has %d names for %d columns", len(header), len(columns))
	}
	rows := 0
	for i, col := range columns {
		if i == 0 {
			rows = len(col)
		} else if len(col) != rows {
			return fmt.Errorf("column %q has %d rows, want %d", header[i], len(col), rows)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(columns))
	for i := 0; i < rows; i++ {
		for j, col := range columns {
			row[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
