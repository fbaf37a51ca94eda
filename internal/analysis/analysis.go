// Package analysis runs the leaf cell pipeline: segmentation, area
// measurement, heatmap rendering and report output.
package analysis

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"leaf-cells/internal/area"
	"leaf-cells/internal/config"
	"leaf-cells/internal/heatmap"
	"leaf-cells/internal/imageio"
	"leaf-cells/internal/labelmap"
	"leaf-cells/internal/logging"
	"leaf-cells/internal/report"
	"leaf-cells/internal/segment"
	"leaf-cells/pkg/geometry"

	"github.com/rs/zerolog"
)

// Summary is written as the JSON run summary.
type Summary struct {
	area.Summary
	Image            string `json:"image,omitempty"`
	Mask             string `json:"mask,omitempty"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	BackgroundPixels int    `json:"background_pixels"`
	Degenerate       bool   `json:"degenerate_area_range"`
}

// Result describes the outputs of one analysed file.
type Result struct {
	OutputDir   string
	Table       area.Table
	Summary     Summary
	CSVPath     string
	HeatmapPath string
	SummaryPath string
}

// Analyzer runs analyses with a fixed configuration.
type Analyzer struct {
	cfg config.Config
	log *logging.Logger
}

// New creates an Analyzer. A nil logger discards all entries.
func New(cfg config.Config, log *logging.Logger) *Analyzer {
	if log == nil {
		log = logging.Nop()
	}
	return &Analyzer{cfg: cfg, log: log}
}

// AnalyseFile segments the outline image at inputPath, restricted to the
// mask at maskPath (the whole image when maskPath is empty), and writes the
// area CSV, heatmap and summary into outputDir.
func (a *Analyzer) AnalyseFile(inputPath, maskPath, outputDir string) (*Result, error) {
	log := a.log.Component("analysis").With().Str("image", inputPath).Logger()
	log.Info().Msg("Analysing file")

	input, err := imageio.Load(inputPath)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("width", input.Width).Int("height", input.Height).
		Int("channels", input.Channels).Str("format", input.Format).Msg("image loaded")

	var mask *image.Gray
	if maskPath != "" {
		log.Info().Str("mask", maskPath).Msg("Mask file")
		maskRaster, err := imageio.Load(maskPath)
		if err != nil {
			return nil, err
		}
		if !maskRaster.SameSize(input) {
			return nil, fmt.Errorf("mask %s is %dx%d but image is %dx%d", maskPath,
				maskRaster.Width, maskRaster.Height, input.Width, input.Height)
		}
		mask = maskRaster.Mask()
	}

	rec := a.recorder(outputDir, log)
	m, err := segment.Cells(input.Intensity(), mask, a.cfg.Segment, rec)
	if err != nil {
		return nil, fmt.Errorf("segmentation failed: %w", err)
	}
	log.Info().Int("cells", m.Len()).Msg("segmentation complete")

	return a.measure(m, outputDir, Summary{Image: inputPath, Mask: maskPath}, log)
}

// AnalyseLabels measures an existing label map and writes the reports into
// outputDir.
func (a *Analyzer) AnalyseLabels(m *labelmap.Map, outputDir string) (*Result, error) {
	log := a.log.Component("analysis")
	return a.measure(m, outputDir, Summary{}, log)
}

// SketchFile writes a cell wall sketch of the image at inputPath into
// outputDir and returns its path.
func (a *Analyzer) SketchFile(inputPath, outputDir string) (string, error) {
	log := a.log.Component("sketch").With().Str("image", inputPath).Logger()
	log.Info().Msg("Analysing file")

	input, err := imageio.Load(inputPath)
	if err != nil {
		return "", err
	}

	sketch, err := segment.SketchWalls(input.Intensity(), a.cfg.Sketch, a.recorder(outputDir, log))
	if err != nil {
		return "", fmt.Errorf("sketch failed: %w", err)
	}

	path := filepath.Join(outputDir, a.cfg.Outputs.Sketch)
	if err := report.WritePNG(sketch, path); err != nil {
		return "", err
	}
	log.Info().Str("path", path).Msg("wrote wall sketch")
	return path, nil
}

func (a *Analyzer) measure(m *labelmap.Map, outputDir string, summary Summary, log zerolog.Logger) (*Result, error) {
	table, err := area.Compute(m)
	if err != nil {
		return nil, err
	}

	colorizer, err := heatmap.Build(table)
	if err != nil {
		if errors.Is(err, area.ErrEmptySegmentation) {
			log.Warn().Msg("no cells detected")
		}
		return nil, err
	}
	log.Debug().Int("min_area", colorizer.MinArea()).Int("max_area", colorizer.MaxArea()).
		Msg("heatmap range")
	if colorizer.Degenerate() {
		log.Info().Int("area", colorizer.MinArea()).Msg("all cells have the same area; heatmap is uniform")
	}

	stats, err := area.Summarize(table)
	if err != nil {
		return nil, err
	}
	summary.Summary = stats
	summary.Width = m.Width()
	summary.Height = m.Height()
	summary.BackgroundPixels = m.BackgroundCount()
	summary.Degenerate = colorizer.Degenerate()

	res := &Result{
		OutputDir:   outputDir,
		Table:       table,
		Summary:     summary,
		CSVPath:     filepath.Join(outputDir, a.cfg.Outputs.CSV),
		HeatmapPath: filepath.Join(outputDir, a.cfg.Outputs.Heatmap),
		SummaryPath: filepath.Join(outputDir, a.cfg.Outputs.Summary),
	}

	if err := report.WriteCSV(table, res.CSVPath); err != nil {
		return nil, err
	}
	if err := report.WriteHeatmap(m, table, colorizer, res.HeatmapPath); err != nil {
		return nil, err
	}
	if err := report.WriteJSON(summary, res.SummaryPath); err != nil {
		return nil, err
	}

	if log.Debug().Enabled() {
		for _, r := range table {
			region, err := m.Region(r.ID)
			if err != nil {
				return nil, err
			}
			bounds, err := m.Bounds(r.ID)
			if err != nil {
				return nil, err
			}
			c := geometry.Centroid(region)
			log.Debug().Int("cell_id", r.ID).Int("area", r.Area).
				Interface("bounds", bounds).
				Float64("x", c.X).Float64("y", c.Y).Msg("cell")
		}
	}
	log.Info().
		Int("cells", stats.Count).
		Int("min_area", stats.Min).
		Int("max_area", stats.Max).
		Float64("mean_area", stats.Mean).
		Str("csv", res.CSVPath).
		Str("heatmap", res.HeatmapPath).
		Msg("analysis complete")

	return res, nil
}

// recorder returns the intermediate image hook, or nil outside debug mode.
func (a *Analyzer) recorder(outputDir string, log zerolog.Logger) segment.Recorder {
	if !a.cfg.Debug {
		return nil
	}
	return NewArtifactWriter(outputDir, log)
}

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
