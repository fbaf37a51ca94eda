// Package labelmap provides the per-pixel cell identifier raster produced by
// segmentation, together with its identifier registry and region lookup.
package labelmap

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"leaf-cells/pkg/geometry"
)

// Background is the reserved identifier for pixels that belong to no cell.
const Background = 0

var (
	// ErrUnknownIdentifier is returned when an identifier is not present in the map.
	ErrUnknownIdentifier = errors.New("unknown cell identifier")

	// ErrInvalidLabelMap is returned when a label map violates its invariants.
	ErrInvalidLabelMap = errors.New("invalid label map")
)

// Map assigns a cell identifier to every pixel of an image.
// A Map is immutable once constructed and safe for concurrent reads.
type Map struct {
	width  int
	height int
	labels []int // row-major, len == width*height
	ids    []int // ascending, background excluded

	regionOnce sync.Once
	regions    map[int][]geometry.PointInt
}

// New creates a Map from row-major labels. The slice is copied.
func New(width, height int, labels []int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLabelMap, width, height)
	}
	if len(labels) != width*height {
		return nil, fmt.Errorf("%w: got %d labels for %dx%d pixels",
			ErrInvalidLabelMap, len(labels), width, height)
	}

	m := &Map{
		width:  width,
		height: height,
		labels: make([]int, len(labels)),
	}
	copy(m.labels, labels)

	seen := make(map[int]struct{})
	for i, id := range m.labels {
		if id < 0 {
			return nil, fmt.Errorf("%w: negative identifier %d at (%d,%d)",
				ErrInvalidLabelMap, id, i%width, i/width)
		}
		if id == Background {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			m.ids = append(m.ids, id)
		}
	}
	sort.Ints(m.ids)

	return m, nil
}

// Width returns the map width in pixels.
func (m *Map) Width() int { return m.width }

// Height returns the map height in pixels.
func (m *Map) Height() int { return m.height }

// At returns the identifier at (x, y). Out of bounds pixels are background.
func (m *Map) At(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Background
	}
	return m.labels[y*m.width+x]
}

// Identifiers returns the distinct non-background identifiers in ascending order.
func (m *Map) Identifiers() []int {
	out := make([]int, len(m.ids))
	copy(out, m.ids)
	return out
}

// Len returns the number of non-background identifiers.
func (m *Map) Len() int {
	return len(m.ids)
}

// Has reports whether id is a non-background identifier of the map.
func (m *Map) Has(id int) bool {
	i := sort.SearchInts(m.ids, id)
	return i < len(m.ids) && m.ids[i] == id
}

// Region returns the pixels carrying id, in row-major order.
func (m *Map) Region(id int) ([]geometry.PointInt, error) {
	if !m.Has(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIdentifier, id)
	}
	m.regionOnce.Do(m.indexRegions)
	return m.regions[id], nil
}

// Bounds returns the bounding rectangle of the region carrying id.
func (m *Map) Bounds(id int) (geometry.RectInt, error) {
	region, err := m.Region(id)
	if err != nil {
		return geometry.RectInt{}, err
	}
	return geometry.BoundsOf(region), nil
}

// BackgroundCount returns the number of background pixels.
func (m *Map) BackgroundCount() int {
	n := 0
	for _, id := range m.labels {
		if id == Background {
			n++
		}
	}
	return n
}

// Scan calls fn for every pixel in row-major order.
func (m *Map) Scan(fn func(x, y, id int)) {
	for i, id := range m.labels {
		fn(i%m.width, i/m.width, id)
	}
}

func (m *Map) indexRegions() {
	m.regions = make(map[int][]geometry.PointInt, len(m.ids))
	for i, id := range m.labels {
		if id == Background {
			continue
		}
		m.regions[id] = append(m.regions[id], geometry.PointInt{X: i % m.width, Y: i / m.width})
	}
}
