package colorutil

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlueToRed(t *testing.T) {
	tests := []struct {
		t    float64
		want color.RGBA
	}{
		{0, Blue},
		{1, Red},
		{0.5, color.RGBA{R: 128, G: 0, B: 127, A: 255}},
		{-0.2, Blue},
		{1.7, Red},
		{math.NaN(), Blue},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BlueToRed(tt.t), "t=%v", tt.t)
	}
}
