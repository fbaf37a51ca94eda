package heatmap

import (
	"image/color"
	"testing"

	"leaf-cells/internal/area"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	blue = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	red  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

func TestColorFor_EndPoints(t *testing.T) {
	c, err := Build(area.Table{{ID: 1, Area: 2}, {ID: 2, Area: 12}})
	require.NoError(t, err)

	assert.False(t, c.Degenerate())
	assert.Equal(t, 2, c.MinArea())
	assert.Equal(t, 12, c.MaxArea())
	assert.Equal(t, blue, c.ColorFor(2))
	assert.Equal(t, red, c.ColorFor(12))
}

func TestColorFor_Ramp(t *testing.T) {
	c, err := Build(area.Table{{ID: 1, Area: 0}, {ID: 2, Area: 100}})
	require.NoError(t, err)

	tests := []struct {
		area int
		want color.RGBA
	}{
		{25, color.RGBA{R: 64, G: 0, B: 191, A: 255}},
		{50, color.RGBA{R: 128, G: 0, B: 127, A: 255}},
		{90, color.RGBA{R: 230, G: 0, B: 25, A: 255}},
		{-10, blue},
		{500, red},
	}
	for _, tt := range tests {
		got := c.ColorFor(tt.area)
		assert.Equal(t, tt.want, got, "area %d", tt.area)
		assert.Equal(t, uint8(0), got.G)
		assert.Equal(t, uint8(255), got.R+got.B)
	}
}

func TestColorFor_Deterministic(t *testing.T) {
	table := area.Table{{ID: 1, Area: 3}, {ID: 2, Area: 17}, {ID: 3, Area: 8}}
	a, err := Build(table)
	require.NoError(t, err)
	b, err := Build(table)
	require.NoError(t, err)

	for _, r := range table {
		assert.Equal(t, a.ColorFor(r.Area), a.ColorFor(r.Area))
		assert.Equal(t, a.ColorFor(r.Area), b.ColorFor(r.Area))
	}
}

func TestDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		table area.Table
	}{
		{"single cell", area.Table{{ID: 1, Area: 9}}},
		{"equal areas", area.Table{{ID: 1, Area: 4}, {ID: 2, Area: 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Build(tt.table)
			require.NoError(t, err)
			assert.True(t, c.Degenerate())
			for _, r := range tt.table {
				assert.Equal(t, blue, c.ColorFor(r.Area))
			}
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, area.ErrEmptySegmentation)
}

func TestEntries(t *testing.T) {
	table := area.Table{{ID: 4, Area: 2}, {ID: 9, Area: 12}}
	c, err := Build(table)
	require.NoError(t, err)

	assert.Equal(t, []Entry{{ID: 4, Color: blue}, {ID: 9, Color: red}}, c.Entries(table))
}
