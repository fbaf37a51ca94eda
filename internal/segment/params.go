package segment

// Params configures cell segmentation from an outline image.
type Params struct {
	ErodeIterations int `yaml:"erode_iterations"` // 3x3 cross erosions applied to seeds
	Connectivity    int `yaml:"connectivity"`     // 4 or 8, neighbourhood used to label seeds
}

// SketchParams configures the cell wall sketch.
type SketchParams struct {
	Radius        int     `yaml:"radius"`          // Local threshold window is 2*Radius+1 pixels
	Offset        float64 `yaml:"offset"`          // Subtracted from the local mean before comparison
	MinObjectSize int     `yaml:"min_object_size"` // Foreground objects below this pixel count are removed
}

// DefaultParams returns the segmentation parameters used for curated outlines.
func DefaultParams() Params {
	return Params{
		ErodeIterations: 1,
		Connectivity:    4,
	}
}

// DefaultSketchParams returns the wall sketch parameters tuned for leaf
// epidermis micrographs.
func DefaultSketchParams() SketchParams {
	return SketchParams{
		Radius:        30,
		Offset:        0,
		MinObjectSize: 100,
	}
}

// Validate checks the parameters before any OpenCV work is done.
func (p Params) Validate() error {
	if p.ErodeIterations < 0 {
		return errorf("erode iterations must not be negative, got %d", p.ErodeIterations)
	}
	if p.Connectivity != 4 && p.Connectivity != 8 {
		return errorf("connectivity must be 4 or 8, got %d", p.Connectivity)
	}
	return nil
}

// Validate checks the sketch parameters.
func (p SketchParams) Validate() error {
	if p.Radius < 1 {
		return errorf("sketch radius must be positive, got %d", p.Radius)
	}
	if p.MinObjectSize < 0 {
		return errorf("minimum object size must not be negative, got %d", p.MinObjectSize)
	}
	return nil
}
