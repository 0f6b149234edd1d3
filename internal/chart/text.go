package chart

import (
	"errors"
	"fmt"
	"strings"
)

// ParseText parses pasted chart data, one series per line:
//
//	axes: speed, power, range
//	max: 10
//	alpha: 7, 3.5, 9
//	beta: 2, 8, 4
//
// The axes and max lines are optional; axes default to A1..An and max to 1.
// A max line may list one value or one per axis. Lines without a colon are
// taken as unnamed series. Semicolons separate lines as well as newlines.
func ParseText(s string) (Chart, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Chart{}, errors.New("empty input")
	}
	var c Chart
	var maxima []float64
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == ';' })
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			name, rest = fmt.Sprintf("series %d", len(c.Series)+1), line
		}
		name = strings.TrimSpace(name)
		fields := strings.Split(rest, ",")
		switch strings.ToLower(name) {
		case "axes":
			c.Axes = c.Axes[:0]
			for _, f := range fields {
				c.Axes = append(c.Axes, strings.TrimSpace(f))
			}
			continue
		case "title":
			c.Title = strings.TrimSpace(rest)
			continue
		}
		vals, err := parseValues(fields)
		if err != nil {
			return Chart{}, fmt.Errorf("line %d: %w", n+1, err)
		}
		if strings.EqualFold(name, "max") {
			maxima = vals
			continue
		}
		c.Series = append(c.Series, Series{Name: name, Values: vals})
	}
	if len(c.Axes) == 0 {
		if len(c.Series) == 0 {
			return Chart{}, fmt.Errorf("%w: no series", ErrInvalidChart)
		}
		c.Axes = DefaultAxes(len(c.Series[0].Values))
	}
	switch len(maxima) {
	case 0:
		c.Max = UnitMax(len(c.Axes))
	case 1:
		c.Max = UnitMax(len(c.Axes))
		for i := range c.Max {
			c.Max[i] = maxima[0]
		}
	default:
		c.Max = maxima
	}
	if err := c.Validate(); err != nil {
		return Chart{}, err
	}
	return c, nil
}
