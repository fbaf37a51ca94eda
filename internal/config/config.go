// Package config provides analysis configuration with YAML file support.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"leaf-cells/internal/segment"

	"gopkg.in/yaml.v3"
)

const (
	appDir     = "leaf-cells"
	configFile = "config.yaml"
)

// Outputs names the files written into each output directory.
type Outputs struct {
	CSV     string `yaml:"csv"`
	Heatmap string `yaml:"heatmap"`
	Sketch  string `yaml:"sketch"`
	Summary string `yaml:"summary"`
	Log     string `yaml:"log"`
}

// Config holds everything one analysis run needs. It is passed explicitly
// through the pipeline rather than kept in package state.
type Config struct {
	Debug   bool                 `yaml:"debug"`   // Write intermediate images and log at debug level
	Workers int                  `yaml:"workers"` // Parallel files in batch mode
	Segment segment.Params       `yaml:"segment"`
	Sketch  segment.SketchParams `yaml:"sketch"`
	Outputs Outputs              `yaml:"outputs"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Segment: segment.DefaultParams(),
		Sketch:  segment.DefaultSketchParams(),
		Outputs: Outputs{
			CSV:     "areas.csv",
			Heatmap: "heatmap_leaf.png",
			Sketch:  "sketch.png",
			Summary: "summary.json",
			Log:     "audit.log",
		},
	}
}

// WithDebug returns a copy of c with debug output switched on or off.
func (c Config) WithDebug(debug bool) Config {
	c.Debug = debug
	return c
}

// WithWorkers returns a copy of c with the batch worker count set.
// Values below 1 leave the current setting unchanged.
func (c Config) WithWorkers(n int) Config {
	if n > 0 {
		c.Workers = n
	}
	return c
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Segment.Validate(); err != nil {
		return err
	}
	if err := c.Sketch.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	for name, v := range map[string]string{
		"csv": c.Outputs.CSV, "heatmap": c.Outputs.Heatmap, "sketch": c.Outputs.Sketch,
		"summary": c.Outputs.Summary, "log": c.Outputs.Log,
	} {
		if v == "" || filepath.Base(v) != v {
			return fmt.Errorf("output %s must be a plain file name, got %q", name, v)
		}
	}
	return nil
}

// Parse overlays YAML data on the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration file at path. An empty path falls back to
// ~/.config/leaf-cells/config.yaml, and to the defaults when that file does
// not exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, appDir, configFile)
}
