package tui

import "math"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// round converts a micro-pixel float coordinate to the nearest integer.
func round(v float64) int {
	return int(math.Round(v))
}
