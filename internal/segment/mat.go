package segment

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// ErrInvalidInput is returned for images or parameters segmentation cannot use.
var ErrInvalidInput = errors.New("invalid segmentation input")

func errorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

// Recorder receives intermediate images produced while segmenting.
type Recorder interface {
	Record(name string, img image.Image)
}

// record hands a copy of m to rec. A nil Recorder discards it.
func record(rec Recorder, name string, m gocv.Mat) {
	if rec == nil {
		return
	}
	img, err := m.ToImage()
	if err != nil {
		return
	}
	rec.Record(name, img)
}

// grayToMat converts a grayscale image with origin (0,0) into a CV_8UC1 Mat.
func grayToMat(img *image.Gray) (gocv.Mat, error) {
	if img == nil || img.Rect.Empty() {
		return gocv.NewMat(), errorf("empty image")
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	data := make([]byte, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		copy(data[y*w:], row)
	}
	return gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC1, data)
}

// binarize maps every nonzero pixel of src to 255.
func binarize(src gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	gocv.Threshold(src, &dst, 0, 255, gocv.ThresholdBinary)
	return dst
}

// fullMask returns an all-foreground CV_8UC1 Mat of the given size.
func fullMask(rows, cols int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC1)
}
