package labelmap

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage builds a Map from a label image whose pixel value is the cell
// identifier. 8-bit and 16-bit grayscale images are read directly; colour
// images must have equal R, G and B channels (id 1 is #010101), compared at
// their own bit depth.
func FromImage(img image.Image) (*Map, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty label image", ErrInvalidLabelMap)
	}

	labels := make([]int, w*h)
	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				labels[y*w+x] = int(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
	case *image.Gray16:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				labels[y*w+x] = int(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
	case *image.RGBA64:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := src.RGBA64At(bounds.Min.X+x, bounds.Min.Y+y)
				id, err := grayValue(x, y, c.R, c.G, c.B)
				if err != nil {
					return nil, err
				}
				labels[y*w+x] = id
			}
		}
	case *image.NRGBA64:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := src.NRGBA64At(bounds.Min.X+x, bounds.Min.Y+y)
				id, err := grayValue(x, y, c.R, c.G, c.B)
				if err != nil {
					return nil, err
				}
				labels[y*w+x] = id
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				px := img.At(bounds.Min.X+x, bounds.Min.Y+y)
				c := color.NRGBAModel.Convert(px).(color.NRGBA)
				// Reject pixels that do not survive the 8-bit conversion.
				if n := color.NRGBA64Model.Convert(px).(color.NRGBA64); n.R != uint16(c.R)*0x101 ||
					n.G != uint16(c.G)*0x101 || n.B != uint16(c.B)*0x101 {
					return nil, fmt.Errorf("%w: pixel (%d,%d) does not fit 8 bits per channel",
						ErrInvalidLabelMap, x, y)
				}
				id, err := grayValue(x, y, uint16(c.R), uint16(c.G), uint16(c.B))
				if err != nil {
					return nil, err
				}
				labels[y*w+x] = id
			}
		}
	}

	return New(w, h, labels)
}

func grayValue(x, y int, r, g, b uint16) (int, error) {
	if r != g || g != b {
		return 0, fmt.Errorf("%w: pixel (%d,%d) has unequal channels %d,%d,%d",
			ErrInvalidLabelMap, x, y, r, g, b)
	}
	return int(r), nil
}

// Image renders the map as a 16-bit grayscale label image.
// Identifiers above 65535 cannot be represented and are rejected.
func (m *Map) Image() (*image.Gray16, error) {
	img := image.NewGray16(image.Rect(0, 0, m.width, m.height))
	for i, id := range m.labels {
		if id > 0xffff {
			return nil, fmt.Errorf("identifier %d does not fit a 16-bit label image", id)
		}
		img.SetGray16(i%m.width, i/m.width, color.Gray16{Y: uint16(id)})
	}
	return img, nil
}
