package segment

import (
	"image"

	"gocv.io/x/gocv"
)

// SketchWalls produces a binary sketch of the cell walls for manual
// curation. Each pixel is compared with the mean of its (2r+1)^2
// neighbourhood, a local stand-in for the rank Otsu threshold, and
// foreground objects smaller than MinObjectSize are dropped.
func SketchWalls(intensity *image.Gray, params SketchParams, rec Recorder) (*image.Gray, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	img, err := grayToMat(intensity)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	walls := gocv.NewMat()
	defer walls.Close()
	gocv.AdaptiveThreshold(img, &walls, 255, gocv.AdaptiveThresholdMean,
		gocv.ThresholdBinary, 2*params.Radius+1, float32(params.Offset))
	record(rec, "local_threshold", walls)

	return removeSmallObjects(walls, params.MinObjectSize), nil
}

// removeSmallObjects keeps 4-connected foreground objects of at least
// minSize pixels.
func removeSmallObjects(bin gocv.Mat, minSize int) *image.Gray {
	labels := gocv.NewMat()
	defer labels.Close()
	stats := gocv.NewMat()
	defer stats.Close()
	centroids := gocv.NewMat()
	defer centroids.Close()

	n := gocv.ConnectedComponentsWithStatsWithParams(bin, &labels, &stats, &centroids,
		4, gocv.MatTypeCV32S, gocv.CCL_DEFAULT)

	keep := make([]bool, n)
	for i := 1; i < n; i++ {
		keep[i] = int(stats.GetIntAt(i, int(gocv.CC_STAT_AREA))) >= minSize
	}

	rows, cols := bin.Rows(), bin.Cols()
	out := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if keep[labels.GetIntAt(y, x)] {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}
