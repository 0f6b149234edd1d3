package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type jsonSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type jsonChart struct {
	Title  string          `json:"title"`
	Axes   []string        `json:"axes"`
	Max    json.RawMessage `json:"max"`
	Series []jsonSeries    `json:"series"`
}

// LoadJSON reads a chart from a JSON file of the form
//
//	{"title": "...", "axes": ["a", "b", "c"], "max": 100,
//	 "series": [{"name": "x", "values": [1, 2, 3]}]}
//
// "max" may be a single number for every axis or one number per axis.
func LoadJSON(path string) (Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return Chart{}, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadJSON is LoadJSON over an arbitrary reader.
func ReadJSON(r io.Reader) (Chart, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Chart{}, err
	}
	var raw jsonChart
	if err := json.Unmarshal(data, &raw); err != nil {
		return Chart{}, err
	}
	c := Chart{Title: raw.Title, Axes: raw.Axes}
	if len(c.Axes) == 0 && len(raw.Series) > 0 {
		c.Axes = DefaultAxes(len(raw.Series[0].Values))
	}
	c.Max, err = parseMax(raw.Max, len(c.Axes))
	if err != nil {
		return Chart{}, err
	}
	for _, s := range raw.Series {
		c.Series = append(c.Series, Series{Name: s.Name, Values: s.Values})
	}
	if err := c.Validate(); err != nil {
		return Chart{}, err
	}
	return c, nil
}

func parseMax(msg json.RawMessage, n int) ([]float64, error) {
	if len(msg) == 0 || string(msg) == "null" {
		return UnitMax(n), nil
	}
	var one float64
	if err := json.Unmarshal(msg, &one); err == nil {
		out := UnitMax(n)
		for i := range out {
			out[i] = one
		}
		return out, nil
	}
	var many []float64
	if err := json.Unmarshal(msg, &many); err != nil {
		return nil, fmt.Errorf("max: want a number or an array of numbers: %w", err)
	}
	return many, nil
}
