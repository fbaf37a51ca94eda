package area

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of cell areas in one segmentation.
type Summary struct {
	Count  int     `json:"count"`
	Total  int     `json:"total_area"`
	Min    int     `json:"min_area"`
	Max    int     `json:"max_area"`
	Mean   float64 `json:"mean_area"`
	StdDev float64 `json:"stddev_area"`
	Median float64 `json:"median_area"`
}

// Summarize computes distribution statistics for the table.
func Summarize(t Table) (Summary, error) {
	if len(t) == 0 {
		return Summary{}, ErrEmptySegmentation
	}

	xs := make([]float64, len(t))
	for i, r := range t {
		xs[i] = float64(r.Area)
	}
	sort.Float64s(xs)

	s := Summary{
		Count:  len(xs),
		Total:  t.Total(),
		Min:    int(floats.Min(xs)),
		Max:    int(floats.Max(xs)),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
	}
	s.Mean = stat.Mean(xs, nil)
	// Sample standard deviation is undefined for a single cell.
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}
	return s, nil
}
