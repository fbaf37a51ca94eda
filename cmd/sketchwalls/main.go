// Command sketchwalls produces a thresholded cell-wall sketch of a leaf
// image for manual curation.
package main

import (
	"flag"
	"fmt"
	"os"

	"leaf-cells/internal/analysis"
	"leaf-cells/internal/cli"
)

func main() {
	debug := flag.Bool("debug", false, "Write intermediate images and log at debug level")
	configPath := flag.String("config", "", "Path to YAML config (default: user config dir)")
	radius := flag.Int("radius", 0, "Local threshold radius in pixels (default from config)")
	minSize := flag.Int("min-size", 0, "Smallest wall fragment kept, in pixels (default from config)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sketchwalls [-debug] [-radius 30] [-min-size 100] input_file output_dir")
		flag.PrintDefaults()
	}

	args, err := cli.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		cli.Fatal(err)
	}
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputFile, outputDir := args[0], args[1]

	if err := cli.RequireImage(inputFile, "input file"); err != nil {
		cli.Fatal(err)
	}

	env, err := cli.Start(os.Args[0], *configPath, *debug, outputDir)
	if err != nil {
		cli.Fatal(err)
	}
	defer env.Close()

	cfg := env.Config
	if *radius > 0 {
		cfg.Sketch.Radius = *radius
	}
	if *minSize > 0 {
		cfg.Sketch.MinObjectSize = *minSize
	}

	path, err := analysis.New(cfg, env.Log).SketchFile(inputFile, outputDir)
	if err != nil {
		env.Log.Error().Err(err).Str("image", inputFile).Msg("sketch failed")
		env.Close()
		cli.Fatal(err)
	}
	fmt.Printf("Wrote %s\n", path)
}
