// Package colorutil provides shared color utilities for heatmap rendering.
package colorutil

import (
	"image/color"
	"math"
)

// Heatmap colors.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// BlueToRed maps t in [0, 1] onto the two-channel heat ramp.
// Red carries round(255*t), blue the complement, green stays 0.
// Values outside [0, 1] are clamped.
func BlueToRed(t float64) color.RGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	red := uint8(math.Round(255 * t))
	return color.RGBA{R: red, G: 0, B: 255 - red, A: 255}
}
