// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/bmad/matrix"
)

// MissingMarker is written for NaN cells and read back as NaN (an empty
// cell is read as missing too).
const MissingMarker = "?"

const (
	ctxReadCSV  = "dataset.ReadCSV"
	ctxWriteCSV = "dataset.WriteCSV"
)

// ReadCSV parses a numeric CSV table whose first numLabels columns are labels.
//
// Implementation:
//   - Stage 1: read every record; the reader enforces one field count.
//   - Stage 2: the first record is a header when any of its cells is neither
//     a number nor a missing marker; its cells become the column names.
//   - Stage 3: parse the remaining cells ("?" or empty ⇒ NaN).
//
// Errors:
//   - ErrEmpty (no data rows), ErrParse (bad cell), matrix.ErrBadShape
//     (ragged records), ErrInvalidLabelCount.
func ReadCSV(r io.Reader, numLabels int) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%s: %v: %w", ctxReadCSV, err, matrix.ErrBadShape)
		}
		return nil, fmt.Errorf("%s: %v: %w", ctxReadCSV, err, ErrParse)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxReadCSV, ErrEmpty)
	}

	var names []string
	if isHeader(records[0]) {
		names = make([]string, len(records[0]))
		for j, cell := range records[0] {
			names[j] = strings.TrimSpace(cell)
		}
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: header only: %w", ctxReadCSV, ErrEmpty)
	}

	rows := make([][]float64, len(records))
	var v float64
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, cell := range rec {
			if v, err = parseCell(cell); err != nil {
				return nil, fmt.Errorf("%s: record %d column %d %q: %w", ctxReadCSV, i, j, cell, ErrParse)
			}
			rows[i][j] = v
		}
	}

	d, err := FromRows(rows, numLabels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxReadCSV, err)
	}
	if names == nil {
		return d, nil
	}

	return d.WithNames(names)
}

// WriteCSV writes d as CSV: a header when d has names, then one record per
// instance with NaN rendered as MissingMarker.
func WriteCSV(w io.Writer, d *Dataset) error {
	if d == nil {
		return fmt.Errorf("%s: %w", ctxWriteCSV, matrix.ErrNilMatrix)
	}
	cw := csv.NewWriter(w)
	if d.names != nil {
		if err := cw.Write(d.names); err != nil {
			return fmt.Errorf("%s: %w", ctxWriteCSV, err)
		}
	}

	rec := make([]string, d.Cols())
	var row []float64
	var err error
	for i := 0; i < d.Rows(); i++ {
		if row, err = d.data.Row(i); err != nil {
			return fmt.Errorf("%s: %w", ctxWriteCSV, err)
		}
		for j, v := range row {
			rec[j] = formatCell(v)
		}
		if err = cw.Write(rec); err != nil {
			return fmt.Errorf("%s: %w", ctxWriteCSV, err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", ctxWriteCSV, err)
	}

	return nil
}

// isHeader reports whether rec contains a cell that is not data.
func isHeader(rec []string) bool {
	for _, cell := range rec {
		if _, err := parseCell(cell); err != nil {
			return true
		}
	}

	return false
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == MissingMarker {
		return math.NaN(), nil
	}

	return strconv.ParseFloat(cell, 64)
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return MissingMarker
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
