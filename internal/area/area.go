// Package area computes per-cell areas from a label map.
package area

import (
	"errors"
	"fmt"

	"leaf-cells/internal/labelmap"
)

// ErrEmptySegmentation is returned when a label map has no cells, so the
// area range is undefined.
var ErrEmptySegmentation = errors.New("no cells detected")

// Record is the pixel area of one cell.
type Record struct {
	ID   int `json:"cell_id"`
	Area int `json:"area"`
}

// Table holds one record per identifier, in label map identifier order.
type Table []Record

// Compute counts the pixels of every cell in a single pass over the map.
// The result does not depend on pixel iteration order.
func Compute(m *labelmap.Map) (Table, error) {
	counts := make(map[int]int, m.Len())
	m.Scan(func(_, _, id int) {
		if id != labelmap.Background {
			counts[id]++
		}
	})

	table := make(Table, 0, m.Len())
	for _, id := range m.Identifiers() {
		n := counts[id]
		if n == 0 {
			return nil, fmt.Errorf("%w: identifier %d has no pixels", labelmap.ErrInvalidLabelMap, id)
		}
		table = append(table, Record{ID: id, Area: n})
	}
	return table, nil
}

// Total returns the summed area of all cells.
func (t Table) Total() int {
	n := 0
	for _, r := range t {
		n += r.Area
	}
	return n
}

// Range returns the smallest and largest area in the table.
func (t Table) Range() (minArea, maxArea int, err error) {
	if len(t) == 0 {
		return 0, 0, ErrEmptySegmentation
	}
	minArea, maxArea = t[0].Area, t[0].Area
	for _, r := range t[1:] {
		if r.Area < minArea {
			minArea = r.Area
		}
		if r.Area > maxArea {
			maxArea = r.Area
		}
	}
	return minArea, maxArea, nil
}
