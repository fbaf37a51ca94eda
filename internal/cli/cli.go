// Package cli holds the start-up steps shared by the leaf-cells commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"leaf-cells/internal/analysis"
	"leaf-cells/internal/config"
	"leaf-cells/internal/imageio"
	"leaf-cells/internal/logging"
	"leaf-cells/internal/version"
)

// ParseArgs parses flags that may appear before, between or after the
// positional arguments, and returns the positionals in order.
func ParseArgs(flags *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flags.Parse(args); err != nil {
			return nil, err
		}
		if flags.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, flags.Arg(0))
		args = flags.Args()[1:]
	}
}

// RequireFile fails with a descriptive error unless path is an existing
// regular file.
func RequireFile(path, what string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s does not exist: %s", what, path)
	}
	if err != nil {
		return fmt.Errorf("cannot read %s %s: %w", what, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory: %s", what, path)
	}
	return nil
}

// RequireImage is RequireFile for inputs that must also be in a format the
// image decoders read.
func RequireImage(path, what string) error {
	if err := RequireFile(path, what); err != nil {
		return err
	}
	if !imageio.IsSupportedFormat(path) {
		return fmt.Errorf("%s is not a PNG, JPEG or TIFF image: %s", what, path)
	}
	return nil
}

// Env is the configured state a command runs with.
type Env struct {
	Config config.Config
	Log    *logging.Logger
}

// Start loads the configuration, creates outputDir and opens the audit log
// inside it. The caller must Close the returned Env.
func Start(script, configPath string, debug bool, outputDir string) (*Env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg = cfg.WithDebug(true)
	}

	if err := analysis.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	log, err := logging.Open(filepath.Join(outputDir, cfg.Outputs.Log), cfg.Debug)
	if err != nil {
		return nil, err
	}
	log.LogRunStart(script, version.Version)
	if configPath != "" {
		log.Info().Str("path", configPath).Msg("loaded config")
	}
	return &Env{Config: cfg, Log: log}, nil
}

// Analyzer returns an analyzer for the environment.
func (e *Env) Analyzer() *analysis.Analyzer {
	return analysis.New(e.Config, e.Log)
}

// Close flushes and closes the audit log.
func (e *Env) Close() error {
	return e.Log.Close()
}

// Fatal prints err to stderr and exits with status 1.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
