package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes one "real,imag" row per sample after a header row.
func WriteCSV(w io.Writer, x, y []float64) error {
	if err := validateData(x, y); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"real", "imag"}); err != nil {
		return fmt.Errorf("render: write csv header: %w", err)
	}
	row := make([]string, 2)
	for i := range x {
		row[0] = strconv.FormatFloat(x[i], 'g', -1, 64)
		row[1] = strconv.FormatFloat(y[i], 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("render: write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("render: flush csv: %w", err)
	}
	return nil
}
