// Command cellareas segments a leaf cell-outline image, measures every cell
// and writes an area CSV and heatmap.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"leaf-cells/internal/area"
	"leaf-cells/internal/cli"
	"leaf-cells/internal/version"
)

func main() {
	debug := flag.Bool("debug", false, "Write intermediate images and log at debug level")
	configPath := flag.String("config", "", "Path to YAML config (default: user config dir)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cellareas [-debug] [-config path] input_file mask_file output_dir")
		flag.PrintDefaults()
	}

	args, err := cli.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		cli.Fatal(err)
	}
	if *showVersion {
		fmt.Println("cellareas", version.String())
		return
	}
	if len(args) != 3 {
		flag.Usage()
		os.Exit(1)
	}
	inputFile, maskFile, outputDir := args[0], args[1], args[2]

	if err := cli.RequireImage(inputFile, "input file"); err != nil {
		cli.Fatal(err)
	}
	if err := cli.RequireImage(maskFile, "mask file"); err != nil {
		cli.Fatal(err)
	}

	env, err := cli.Start(os.Args[0], *configPath, *debug, outputDir)
	if err != nil {
		cli.Fatal(err)
	}
	defer env.Close()

	res, err := env.Analyzer().AnalyseFile(inputFile, maskFile, outputDir)
	if errors.Is(err, area.ErrEmptySegmentation) {
		env.Close()
		cli.Fatal(fmt.Errorf("no cells detected in %s", inputFile))
	}
	if err != nil {
		env.Log.Error().Err(err).Str("image", inputFile).Msg("analysis failed")
		env.Close()
		cli.Fatal(err)
	}

	s := res.Summary
	fmt.Printf("Cells: %d\n", s.Count)
	fmt.Printf("Area: min %d, max %d, mean %.1f, median %.1f px\n", s.Min, s.Max, s.Mean, s.Median)
	if s.Degenerate {
		fmt.Println("All cells have the same area; heatmap is uniform blue")
	}
	fmt.Printf("Wrote %s\n", res.CSVPath)
	fmt.Printf("Wrote %s\n", res.HeatmapPath)
}
