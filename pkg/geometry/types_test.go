package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsOf(t *testing.T) {
	r := BoundsOf([]PointInt{{X: 3, Y: 1}, {X: 1, Y: 4}, {X: 2, Y: 2}})
	assert.Equal(t, RectInt{X: 1, Y: 1, Width: 3, Height: 4}, r)

	assert.Equal(t, RectInt{}, BoundsOf(nil))
}

func TestCentroid(t *testing.T) {
	c := Centroid([]PointInt{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}})
	assert.Equal(t, Point2D{X: 1, Y: 1}, c)
	assert.Equal(t, Point2D{}, Centroid(nil))
}
