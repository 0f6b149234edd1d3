package chart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a chart from a CSV file.
// The header row is "name,<axis>,<axis>,...". A row whose name is "max"
// (case-insensitive) sets the per-axis maxima; otherwise every axis tops
// out at 1. Every other row is a series.
func LoadCSV(path string) (Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return Chart{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV is LoadCSV over an arbitrary reader.
func ReadCSV(r io.Reader) (Chart, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Chart{}, err
	}
	if len(recs) == 0 {
		return Chart{}, errors.New("empty csv")
	}
	header := recs[0]
	if len(header) < 3 {
		return Chart{}, fmt.Errorf("%w: csv header needs a name column and at least 2 axes", ErrInvalidChart)
	}
	c := Chart{Axes: make([]string, 0, len(header)-1)}
	for _, h := range header[1:] {
		c.Axes = append(c.Axes, strings.TrimSpace(h))
	}
	for line, row := range recs[1:] {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		name := strings.TrimSpace(row[0])
		vals, err := parseValues(row[1:])
		if err != nil {
			return Chart{}, fmt.Errorf("csv row %d: %w", line+2, err)
		}
		if strings.EqualFold(name, "max") {
			c.Max = vals
			continue
		}
		c.Series = append(c.Series, Series{Name: name, Values: vals})
	}
	if c.Max == nil {
		c.Max = UnitMax(len(c.Axes))
	}
	if err := c.Validate(); err != nil {
		return Chart{}, err
	}
	return c, nil
}

func parseValues(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
