package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"leaf-cells/internal/area"
	"leaf-cells/internal/heatmap"
	"leaf-cells/internal/labelmap"
	"leaf-cells/pkg/colorutil"
)

// BlankColor fills pixels that belong to no cell.
var BlankColor = colorutil.Black

// RenderHeatmap paints every cell region with its heatmap entry color on a
// blank canvas the size of the label map.
func RenderHeatmap(m *labelmap.Map, t area.Table, c *heatmap.Colorizer) (*image.RGBA, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(BlankColor), image.Point{}, draw.Src)

	colors := make(map[int]color.RGBA, len(t))
	for _, e := range c.Entries(t) {
		colors[e.ID] = e.Color
	}
	for _, id := range m.Identifiers() {
		col, ok := colors[id]
		if !ok {
			return nil, fmt.Errorf("cell %d has no area record", id)
		}
		region, err := m.Region(id)
		if err != nil {
			return nil, err
		}
		for _, p := range region {
			canvas.SetRGBA(p.X, p.Y, col)
		}
	}
	return canvas, nil
}

// WriteHeatmap renders the heatmap and writes it to path as a PNG.
func WriteHeatmap(m *labelmap.Map, t area.Table, c *heatmap.Colorizer, path string) error {
	img, err := RenderHeatmap(m, t, c)
	if err != nil {
		return err
	}
	return WritePNG(img, path)
}

// WritePNG encodes img as a PNG at path, replacing any existing file.
func WritePNG(img image.Image, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}
