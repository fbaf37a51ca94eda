// Package imageio provides image loading and channel extraction for
// microscopy inputs.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/tiff"
)

// Channel indexes for multi-channel rasters.
const (
	ChannelRed   = 0
	ChannelGreen = 1
	ChannelBlue  = 2
)

// Raster is a decoded image with explicit dimensions and channel count.
// Pixels are held as 8-bit NRGBA regardless of the source format.
type Raster struct {
	Path     string       // Source file path
	Format   string       // Decoder name, e.g. "png" or "tiff"
	Width    int          // Width in pixels
	Height   int          // Height in pixels
	Channels int          // 1 for grayscale sources, 3 for colour, 4 with alpha
	Pixels   *image.NRGBA // Normalised pixel data, origin at (0,0)
}

// Load decodes the image at path.
func Load(path string) (*Raster, error) {
	img, format, err := Decode(path)
	if err != nil {
		return nil, err
	}

	r := FromImage(img)
	r.Path = path
	r.Format = format
	return r, nil
}

// Decode reads the image at path without converting its pixel format, so
// 16-bit label images keep their full range.
func Decode(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, format, nil
}

// FromImage wraps an in-memory image as a Raster.
func FromImage(img image.Image) *Raster {
	pixels := imaging.Clone(img)
	bounds := pixels.Bounds()
	return &Raster{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: channelCount(img.ColorModel()),
		Pixels:   pixels,
	}
}

// Channel extracts channel c as a grayscale image. Single-channel rasters
// return their only channel for any c.
func (r *Raster) Channel(c int) *image.Gray {
	if r.Channels == 1 || c < 0 || c > 3 {
		c = ChannelRed
	}
	out := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		src := r.Pixels.Pix[y*r.Pixels.Stride:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < r.Width; x++ {
			dst[x] = src[x*4+c]
		}
	}
	return out
}

// Intensity returns the grayscale intensity used for segmentation: the
// green channel of colour micrographs, or the only channel otherwise.
func (r *Raster) Intensity() *image.Gray {
	return r.Channel(ChannelGreen)
}

// Mask returns the first channel, the convention for mask images.
func (r *Raster) Mask() *image.Gray {
	return r.Channel(ChannelRed)
}

// SameSize reports whether two rasters have identical dimensions.
func (r *Raster) SameSize(other *Raster) bool {
	return r.Width == other.Width && r.Height == other.Height
}

func channelCount(m color.Model) int {
	switch m {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model:
		return 4
	default:
		return 3
	}
}

// decoders maps file extensions to the registered decoder that reads them.
var decoders = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".tif":  "tiff",
	".tiff": "tiff",
}

// IsSupportedFormat reports whether path has an extension one of the
// registered decoders reads.
func IsSupportedFormat(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}
