// Command labelareas measures cells in an existing label image, where each
// pixel value is a cell identifier and 0 is background.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"leaf-cells/internal/area"
	"leaf-cells/internal/cli"
	"leaf-cells/internal/imageio"
	"leaf-cells/internal/labelmap"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (default: user config dir)")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: labelareas [-config path] labels_file output_dir")
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
	labelsFile, outputDir := args[0], args[1]

	if err := cli.RequireImage(labelsFile, "labels file"); err != nil {
		cli.Fatal(err)
	}

	img, format, err := imageio.Decode(labelsFile)
	if err != nil {
		cli.Fatal(err)
	}
	m, err := labelmap.FromImage(img)
	if err != nil {
		cli.Fatal(fmt.Errorf("%s: %w", labelsFile, err))
	}

	env, err := cli.Start(os.Args[0], *configPath, *debug, outputDir)
	if err != nil {
		cli.Fatal(err)
	}
	defer env.Close()
	env.Log.Info().Str("labels", labelsFile).Str("format", format).
		Int("width", m.Width()).Int("height", m.Height()).Msg("loaded label image")

	res, err := env.Analyzer().AnalyseLabels(m, outputDir)
	if errors.Is(err, area.ErrEmptySegmentation) {
		env.Close()
		cli.Fatal(fmt.Errorf("no cells in %s", labelsFile))
	}
	if err != nil {
		env.Close()
		cli.Fatal(err)
	}

	fmt.Printf("Cells: %d\n", res.Summary.Count)
	fmt.Printf("Wrote %s\n", res.CSVPath)
	fmt.Printf("Wrote %s\n", res.HeatmapPath)
}
