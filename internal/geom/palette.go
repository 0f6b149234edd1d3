package geom

import "fmt"

// ColorCycle hands out colors in order, wrapping around at the end.
// It is not safe for concurrent use; give each render pass its own.
type ColorCycle[C any] struct {
	colors []C
	cursor int
}

// NewColorCycle copies colors into a new cycle starting at the first entry.
func NewColorCycle[C any](colors ...C) (*ColorCycle[C], error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("%w: color cycle needs at least one color", ErrInvalidArgument)
	}
	cs := make([]C, len(colors))
	copy(cs, colors)
	return &ColorCycle[C]{colors: cs}, nil
}

// Next returns the current color and advances the cursor.
func (cc *ColorCycle[C]) Next() C {
	c := cc.colors[cc.cursor]
	cc.cursor = (cc.cursor + 1) % len(cc.colors)
	return c
}

func (cc *ColorCycle[C]) Len() int { return len(cc.colors) }

// Reset rewinds the cursor to the first color.
func (cc *ColorCycle[C]) Reset() { cc.cursor = 0 }
