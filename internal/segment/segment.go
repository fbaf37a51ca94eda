// Package segment turns cell outline micrographs into label maps using
// OpenCV thresholding, morphology, connected components and watershed.
package segment

import (
	"image"

	"leaf-cells/internal/labelmap"

	"gocv.io/x/gocv"
)

// Cells segments an outline image in which cell walls are bright.
//
// Seeds are the pixels that are not fully saturated, eroded with a 3x3
// cross so touching cells separate, and restricted to the mask. Seeds are
// labelled by connected components and flooded by watershed over the
// inverted image, so the flood meets on the walls. The flood never crosses
// pixels outside the mask, so mask regions without a seed stay background.
// Watershed ridges and pixels outside the mask are background. A nil mask
// covers the whole image.
func Cells(intensity, mask *image.Gray, params Params, rec Recorder) (*labelmap.Map, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if mask != nil && !mask.Rect.Size().Eq(intensity.Rect.Size()) {
		return nil, errorf("mask is %v, image is %v", mask.Rect.Size(), intensity.Rect.Size())
	}

	img, err := grayToMat(intensity)
	if err != nil {
		return nil, err
	}
	defer img.Close()
	rows, cols := img.Rows(), img.Cols()

	var maskBin gocv.Mat
	if mask == nil {
		maskBin = fullMask(rows, cols)
	} else {
		raw, err := grayToMat(mask)
		if err != nil {
			return nil, err
		}
		maskBin = binarize(raw)
		raw.Close()
	}
	defer maskBin.Close()
	record(rec, "mask", maskBin)

	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(img, &inverted)

	seeds := binarize(inverted)
	defer seeds.Close()
	record(rec, "seeds", seeds)

	kernel := gocv.GetStructuringElement(gocv.MorphCross, image.Point{X: 3, Y: 3})
	defer kernel.Close()
	for i := 0; i < params.ErodeIterations; i++ {
		gocv.Erode(seeds, &seeds, kernel)
	}
	record(rec, "eroded_seeds", seeds)

	gocv.BitwiseAnd(seeds, maskBin, &seeds)
	record(rec, "masked_seeds", seeds)

	markers := gocv.NewMat()
	defer markers.Close()
	n := gocv.ConnectedComponentsWithParams(seeds, &markers, params.Connectivity,
		gocv.MatTypeCV32S, gocv.CCL_DEFAULT)

	labels := make([]int, rows*cols)
	if n > 1 {
		// Watershed needs a 3-channel 8-bit image; the inverted outline
		// plays the role of the negated intensity.
		flood := gocv.NewMat()
		defer flood.Close()
		gocv.CvtColor(inverted, &flood, gocv.ColorGrayToBGR)

		// Pixels outside the mask carry their own label n, so no cell can
		// flood through them into an unseeded part of the mask.
		outside := int32(n)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				if maskBin.GetUCharAt(y, x) == 0 {
					markers.SetIntAt(y, x, outside)
				}
			}
		}
		gocv.Watershed(flood, &markers)

		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				id := int(markers.GetIntAt(y, x))
				if id < 0 || id == n || maskBin.GetUCharAt(y, x) == 0 {
					id = labelmap.Background
				}
				labels[y*cols+x] = id
			}
		}
	}

	m, err := labelmap.New(cols, rows, labels)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		if labelImg, err := m.Image(); err == nil {
			rec.Record("segmentation", labelImg)
		}
	}
	return m, nil
}
