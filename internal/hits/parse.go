// internal/hits/parse.go
package hits

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// RequiredColumns lists the header names every hit table must carry.
// Column order is irrelevant; names are fixed.
var RequiredColumns = []string{
	"start", "end", "length", "tetrads", "y1", "y2", "y3", "gscore", "sequence",
}

// MissingColumnError identifies exactly which required column is absent.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q in hit table", e.Column)
}

// Parse reads a headered CSV hit table. A header row with zero data rows
// yields zero records, not an error. Numeric columns use strict base-10
// parsing; the sequence field is trimmed and lower-folded unless the caller
// requests case-sensitive handling.
func Parse(r io.Reader, caseSensitive bool) ([]Hit, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &MissingColumnError{Column: RequiredColumns[0]}
	}
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range RequiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, &MissingColumnError{Column: name}
		}
	}

	var list []Hit
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		h, err := fromRow(row, idx, caseSensitive)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		list = append(list, h)
	}
	return list, nil
}

// Load opens and parses a hit table from disk.
func Load(path string, caseSensitive bool) ([]Hit, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	list, err := Parse(fh, caseSensitive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

func fromRow(row []string, idx map[string]int, caseSensitive bool) (Hit, error) {
	var h Hit
	ints := []struct {
		name string
		dst  *int
	}{
		{"start", &h.Start},
		{"end", &h.End},
		{"length", &h.Length},
		{"tetrads", &h.Tetrads},
		{"y1", &h.Y1},
		{"y2", &h.Y2},
		{"y3", &h.Y3},
		{"gscore", &h.GScore},
	}
	for _, c := range ints {
		i := idx[c.name]
		if i >= len(row) {
			return h, &MissingColumnError{Column: c.name}
		}
		v, err := strconv.Atoi(strings.TrimSpace(row[i]))
		if err != nil {
			return h, fmt.Errorf("column %q: bad integer %q", c.name, row[i])
		}
		*c.dst = v
	}
	i := idx["sequence"]
	if i >= len(row) {
		return h, &MissingColumnError{Column: "sequence"}
	}
	h.Sequence = strings.TrimSpace(row[i])
	if !caseSensitive {
		h.Sequence = strings.ToLower(h.Sequence)
	}
	return h, nil
}
