// Package heatmap maps cell areas onto a blue-to-red color ramp normalized
// against the areas of a single segmentation.
package heatmap

import (
	"fmt"
	"image/color"

	"leaf-cells/internal/area"
	"leaf-cells/pkg/colorutil"
)

// Colorizer holds the area range of one segmentation.
type Colorizer struct {
	minArea int
	maxArea int
}

// Entry is the heatmap color assigned to one cell.
type Entry struct {
	ID    int
	Color color.RGBA
}

// Build computes the area range of the table.
// It returns area.ErrEmptySegmentation when the table is empty.
func Build(t area.Table) (*Colorizer, error) {
	lo, hi, err := t.Range()
	if err != nil {
		return nil, fmt.Errorf("building heatmap: %w", err)
	}
	return &Colorizer{minArea: lo, maxArea: hi}, nil
}

// MinArea returns the smallest area observed.
func (c *Colorizer) MinArea() int { return c.minArea }

// MaxArea returns the largest area observed.
func (c *Colorizer) MaxArea() int { return c.maxArea }

// Degenerate reports whether every cell has the same area. In that case all
// cells normalize to 0 and are colored blue.
func (c *Colorizer) Degenerate() bool {
	return c.maxArea == c.minArea
}

// Normalize rescales a into [0, 1] relative to the observed range.
func (c *Colorizer) Normalize(a int) float64 {
	if c.Degenerate() {
		return 0
	}
	n := float64(a-c.minArea) / float64(c.maxArea-c.minArea)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// ColorFor returns (round(255*n), 0, 255-round(255*n)) for the normalized area n.
func (c *Colorizer) ColorFor(a int) color.RGBA {
	return colorutil.BlueToRed(c.Normalize(a))
}

// Entries returns the color of every cell in table order.
func (c *Colorizer) Entries(t area.Table) []Entry {
	out := make([]Entry, len(t))
	for i, r := range t {
		out[i] = Entry{ID: r.ID, Color: c.ColorFor(r.Area)}
	}
	return out
}
